package paramx

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hengadev/paramx/internal/stringify"
)

// JSONSerializer implements the PathSerializer interface using the
// encoding/json package. Basic types are converted directly so strings land
// in the path segment without the quotes JSON would add around them; complex
// types fall back to their compact JSON form. It is a good default choice for
// structured parameter values.
type JSONSerializer struct{}

func (j JSONSerializer) SerializePathParam(value any, sctx SerializationContext) (string, error) {
	if value == nil {
		return "", nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("json serialization failed: %w", err)
		}
		return string(data), nil
	}
}

// MsgpackSerializer implements the PathSerializer interface using
// MessagePack. The binary form preserves more type information than JSON
// (e.g. it distinguishes int from float) and is base64url-encoded so the
// result is safe inside a path segment without further escaping.
type MsgpackSerializer struct{}

func (m MsgpackSerializer) SerializePathParam(value any, sctx SerializationContext) (string, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("msgpack serialization failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// TextSerializer implements the PathSerializer interface by applying the same
// stringification rules as SerializeToString, honoring the format string
// carried in the serialization context. Use it when parameters declared with
// MethodSerialized should still render as plain text.
type TextSerializer struct {
	// Provider supplies the format rules; Invariant() when nil.
	Provider FormatProvider
}

func (t TextSerializer) SerializePathParam(value any, sctx SerializationContext) (string, error) {
	p := t.Provider
	if p == nil {
		p = Invariant()
	}

	if sctx.Format != "" {
		if f, ok := value.(Formattable); ok && !isNilValue(value) {
			return f.Format(sctx.Format, p)
		}
	}

	return stringify.Stringify(value, sctx.Format, p)
}
