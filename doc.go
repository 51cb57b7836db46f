// Package paramx provides typed path-parameter serialization for Go REST clients.
//
// Context7 Metadata:
// - Library Type: HTTP Client Utilities
// - Use Cases: URL path building, typed parameter serialization, locale-aware formatting
// - Complexity: Beginner to Intermediate
// - Performance: High (immutable value descriptors, no reflection on hot basic-type paths)
// - Integration: encoding/json, MessagePack, golang.org/x/text locales
//
// PARAMX turns strongly-typed path parameters into the name/value pairs that
// populate a templated URL path segment. Each parameter is an immutable
// descriptor that knows how to serialize its value either through a pluggable
// serializer strategy or through a zero-configuration stringification path
// honoring culture/format rules and an optional format string.
//
// # Key Features
//
//   - Generic Typed[T] descriptors behind a uniform ParameterDescriptor contract
//   - Two serialization paths selected per parameter: strategy or stringify
//   - Pluggable PathSerializer strategies (JSON, MessagePack, plain text)
//   - Locale-aware format providers backed by golang.org/x/text
//   - Per-parameter URL-encoding policy, applied by the URL-building layer
//   - Serializer stubs for testing consumer wiring
//
// # Quick Start
//
// Declare one descriptor per path placeholder and serialize the set:
//
//	params := []paramx.ParameterDescriptor{
//	    paramx.New("id", 42),
//	    paramx.New("date", time.Now(), paramx.WithFormat("2006-01-02")),
//	    paramx.New("filter", filter, paramx.WithMethod(paramx.MethodSerialized)),
//	}
//
//	req := paramx.NewRequestContext("GET", "/users/{id}/{date}/{filter}")
//	pairs, err := paramx.SerializeAll(params, paramx.JSONSerializer{}, req, paramx.Invariant())
//
// Each Pair carries the placeholder name and the serialized (and, when the
// descriptor asks for it, percent-encoded) value; substituting the pairs into
// the path template stays with the caller.
//
// # Serialization Methods
//
// Each descriptor carries a SerializationMethod discriminant the caller must
// respect:
//
//   - MethodSerialized - SerializeValue routes the value through an injected
//     PathSerializer strategy, passing it the request context and the
//     descriptor's format string
//   - MethodToString - SerializeToString converts the value directly, using
//     the format string and a FormatProvider when the value supports
//     format-aware conversion
//
// # Format Providers
//
// The stringification path consults a FormatProvider for culture rules:
//
//	paramx.Invariant()                 // locale independent, plain fmt semantics
//	paramx.Locale(language.German)     // "1.000.000" instead of "1000000" for %d
//
// # Configuration
//
// Defaults for new descriptors can come from the environment or a YAML file:
//
//	cfg, err := paramx.LoadConfigFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id := paramx.New("id", 42, paramx.FromConfig(cfg))
package paramx
