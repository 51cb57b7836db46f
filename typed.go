package paramx

import (
	"errors"
	"reflect"

	"github.com/hengadev/paramx/internal/stringify"
)

// Typed is the sole ParameterDescriptor implementation: an immutable value
// record holding a parameter's name, its typed payload, an optional format
// string, and the two policy flags. All fields are set once at construction
// and never change; copying a Typed produces an independent equal instance.
//
// Construction performs no validation. An empty name or a nil value is legal
// here; failures, if any, surface at serialization time or in the downstream
// URL builder.
type Typed[T any] struct {
	name      string
	value     T
	format    string
	urlEncode bool
	method    SerializationMethod
}

// NewTyped creates a descriptor storing all fields verbatim.
func NewTyped[T any](name string, value T, format string, urlEncode bool, method SerializationMethod) Typed[T] {
	return Typed[T]{
		name:      name,
		value:     value,
		format:    format,
		urlEncode: urlEncode,
		method:    method,
	}
}

// New creates a descriptor with the package defaults (URL encoding on,
// MethodToString, no format string), adjusted by the given options.
func New[T any](name string, value T, opts ...Option) Typed[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return NewTyped(name, value, s.format, s.urlEncode, s.method)
}

// Name returns the path-template placeholder this parameter fills.
func (d Typed[T]) Name() string { return d.name }

// Value returns the stored typed payload.
func (d Typed[T]) Value() T { return d.value }

// Format returns the format string, empty when none was set.
func (d Typed[T]) Format() string { return d.format }

func (d Typed[T]) URLEncode() bool { return d.urlEncode }

func (d Typed[T]) Method() SerializationMethod { return d.method }

// SerializeValue delegates the value→string conversion to the given strategy,
// passing it a SerializationContext built from the request context and the
// descriptor's format string. Argument checks happen before any other work so
// a missing collaborator is always reported as parameter validation rather
// than surfacing as a downstream nil dereference. Strategy failures propagate
// unchanged.
func (d Typed[T]) SerializeValue(s PathSerializer, req *RequestContext) (Pair, error) {
	if s == nil {
		return Pair{}, NewNilSerializerError(d.name)
	}
	if req == nil {
		return Pair{}, NewNilRequestContextError(d.name)
	}

	value, err := s.SerializePathParam(d.value, SerializationContext{
		Request: req,
		Format:  d.format,
	})
	if err != nil {
		return Pair{}, err
	}

	return Pair{Name: d.name, Value: value}, nil
}

// SerializeToString converts the stored value using its own formatting
// behavior: Formattable values apply the descriptor's format string
// themselves, everything else goes through the built-in stringification
// rules. A nil provider is replaced with Invariant(); nil values produce an
// empty string. Formatting failures propagate unchanged.
func (d Typed[T]) SerializeToString(p FormatProvider) (Pair, error) {
	if p == nil {
		p = Invariant()
	}

	if d.format != "" {
		if f, ok := any(d.value).(Formattable); ok && !isNilValue(d.value) {
			value, err := f.Format(d.format, p)
			if err != nil {
				return Pair{}, err
			}
			return Pair{Name: d.name, Value: value}, nil
		}
	}

	value, err := stringify.Stringify(d.value, d.format, p)
	if err != nil {
		if errors.Is(err, stringify.ErrUnsupportedType) {
			return Pair{}, NewUnsupportedTypeError(d.name, reflect.TypeOf(d.value).String())
		}
		return Pair{}, err
	}

	return Pair{Name: d.name, Value: value}, nil
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
