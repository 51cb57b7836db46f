package paramx

// This file provides serializer stubs for use in examples and external
// testing of descriptor wiring.

import "errors"

// RecordingSerializer implements an in-memory PathSerializer for testing. It
// records every value and serialization context it receives and returns a
// fixed result.
type RecordingSerializer struct {
	// Result is the string returned for every call. Defaults to "".
	Result string

	// Values and Contexts hold the arguments of every call, in order.
	Values   []any
	Contexts []SerializationContext
}

func (r *RecordingSerializer) SerializePathParam(value any, sctx SerializationContext) (string, error) {
	r.Values = append(r.Values, value)
	r.Contexts = append(r.Contexts, sctx)
	return r.Result, nil
}

// CallCount returns how many times the serializer was invoked.
func (r *RecordingSerializer) CallCount() int {
	return len(r.Values)
}

// FailingSerializer implements a PathSerializer that always fails with the
// configured error, for exercising pass-through failure paths.
type FailingSerializer struct {
	Err error
}

func (f FailingSerializer) SerializePathParam(value any, sctx SerializationContext) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return "", errors.New("serialization failed")
}
