package paramx

import (
	"net/url"

	"github.com/hengadev/errsx"
)

// SerializeAll serializes a collection of descriptors into ordered name/value
// pairs, dispatching each one on its Method and percent-encoding values whose
// descriptor has URLEncode set. Merging the pairs into a final URI stays with
// the caller.
//
// Serialization continues past individual failures; every failed parameter is
// reported, keyed by name, in the returned error. Pairs are returned for the
// parameters that succeeded.
func SerializeAll(params []ParameterDescriptor, s PathSerializer, req *RequestContext, p FormatProvider) ([]Pair, error) {
	var errs errsx.Map

	pairs := make([]Pair, 0, len(params))
	for _, d := range params {
		var pair Pair
		var err error

		switch d.Method() {
		case MethodSerialized:
			pair, err = d.SerializeValue(s, req)
		default:
			pair, err = d.SerializeToString(p)
		}
		if err != nil {
			errs.Set(d.Name(), err)
			continue
		}

		if d.URLEncode() {
			pair.Value = url.PathEscape(pair.Value)
		}
		pairs = append(pairs, pair)
	}

	return pairs, errs.AsError()
}
