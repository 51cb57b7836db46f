package paramx

import "fmt"

// SerializationMethod selects which serialization entry point the caller
// should invoke for a given parameter. The descriptor never dispatches on it
// internally; the URL-building layer is expected to respect the discriminant.
type SerializationMethod int8

const (
	// MethodSerialized routes the parameter through an injected PathSerializer
	// strategy via SerializeValue.
	MethodSerialized SerializationMethod = iota

	// MethodToString routes the parameter through the zero-configuration
	// stringification path via SerializeToString.
	MethodToString
)

var methods = [2]string{
	"serialized",
	"tostring",
}

func (m SerializationMethod) String() string {
	if m < 0 || int(m) >= len(methods) {
		return "unknown"
	}
	return methods[m]
}

// ParseMethod converts the textual form used in configuration back to a
// SerializationMethod.
func ParseMethod(s string) (SerializationMethod, error) {
	for i, name := range methods {
		if s == name {
			return SerializationMethod(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown serialization method '%s'", ErrInvalidConfiguration, s)
}

// Pair is the name/value result of serializing a single path parameter.
// Name is the path-template placeholder to substitute; Value is the
// serialized string, not yet percent-encoded.
type Pair struct {
	Name  string
	Value string
}

// ParameterDescriptor is the uniform surface every typed path parameter
// exposes to a URL-building layer, so that layer can stay generic over the
// underlying value types.
//
// Heterogeneous collections of Typed[T] descriptors (differing in T) are
// stored and iterated through this interface. The caller consults Method to
// pick the entry point and URLEncode to decide whether to percent-encode the
// returned value before substituting it into the path template.
type ParameterDescriptor interface {
	// Name returns the path-template placeholder this parameter fills.
	Name() string

	// URLEncode reports whether the serialized value must be percent-encoded
	// before path substitution. The descriptor exposes the flag but never
	// applies the encoding itself.
	URLEncode() bool

	// Method returns the serialization entry point the caller should use.
	Method() SerializationMethod

	// SerializeValue converts the stored value to a string through the given
	// serializer strategy. Both arguments are required; a nil serializer or
	// request context fails with an error wrapping ErrInvalidArgument before
	// any other work. Failures inside the strategy propagate unchanged.
	SerializeValue(s PathSerializer, req *RequestContext) (Pair, error)

	// SerializeToString converts the stored value to a string using the
	// value's own formatting behavior and the descriptor's format string.
	// A nil provider is replaced with Invariant(); absent values produce an
	// empty string.
	SerializeToString(p FormatProvider) (Pair, error)
}
