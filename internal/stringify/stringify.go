package stringify

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var ErrUnsupportedType = errors.New("unsupported type for stringification")

// Provider is the subset of culture/format rules Stringify needs. The root
// package's FormatProvider satisfies it.
type Provider interface {
	Sprintf(format string, args ...any) string
	Sprint(arg any) string
}

// Stringify converts a value to its path-segment string form, honoring an
// optional format string and the provider's formatting conventions.
//
// Rules, in order:
//   - nil values (nil interfaces and nil pointers) produce ""
//   - with a format string: time.Time values use it as a reference-time
//     layout; "%"-verb formats go through the provider; anything else falls
//     back to the default representation below
//   - without one: basic kinds convert through strconv, time.Time renders as
//     RFC 3339, fmt.Stringer and encoding.TextMarshaler are honored, structs,
//     slices and maps fall back to JSON
func Stringify(value any, format string, p Provider) (string, error) {
	if value == nil {
		return "", nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", nil
		}
		rv = rv.Elem()
	}
	value = rv.Interface()

	if format != "" {
		if t, ok := value.(time.Time); ok {
			return t.Format(format), nil
		}
		if strings.HasPrefix(format, "%") {
			return p.Sprintf(format, value), nil
		}
		// The value has no format-aware path for this format string; use its
		// default representation instead.
	}

	if t, ok := value.(time.Time); ok {
		return t.Format(time.RFC3339), nil
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), nil
	}
	if m, ok := value.(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
		return marshalJSON(value)
	case reflect.Array, reflect.Map, reflect.Struct:
		return marshalJSON(value)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	default:
		return p.Sprint(value), nil
	}
}

func marshalJSON(value any) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
