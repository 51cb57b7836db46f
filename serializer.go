package paramx

// SerializationContext bundles the ambient request information and the
// descriptor's format string for a single SerializePathParam call. It is
// built per call and never retained by either side.
type SerializationContext struct {
	// Request carries the ambient request information supplied by the caller.
	Request *RequestContext

	// Format is the descriptor's format string, empty when none was set.
	// Strategies are free to ignore it; TextSerializer honors it.
	Format string
}

// PathSerializer is the pluggable strategy that converts a typed value into
// its path-segment string form.
//
// Implementations:
//   - JSONSerializer: encoding/json with basic-type fast paths
//   - MsgpackSerializer: MessagePack binary form, base64url-encoded
//   - TextSerializer: format-aware stringification, same rules as
//     SerializeToString
//
// A strategy may return any string, including an empty one; the descriptor
// performs no validation of the result.
type PathSerializer interface {
	SerializePathParam(value any, sctx SerializationContext) (string, error)
}
