package paramx

import (
	"fmt"

	"github.com/google/uuid"
)

// RequestContext carries the ambient information about the outgoing request
// that serializer strategies may consult. It contains only data, no behavior;
// descriptors read from it for the duration of a single call and never
// retain or mutate it.
type RequestContext struct {
	// Method is the HTTP method of the outgoing request, e.g. "GET".
	Method string

	// Endpoint is the path template being populated, e.g. "/users/{id}".
	Endpoint string

	// ID identifies the outgoing request for diagnostics. Assigned by
	// NewRequestContext; strategies may use it to correlate serialization
	// failures with a request.
	ID uuid.UUID
}

// NewRequestContext creates a request context for a single outgoing request
// and assigns it a fresh request ID.
func NewRequestContext(method, endpoint string) *RequestContext {
	return &RequestContext{
		Method:   method,
		Endpoint: endpoint,
		ID:       uuid.New(),
	}
}

func (r *RequestContext) String() string {
	return fmt.Sprintf("%s %s (%s)", r.Method, r.Endpoint, r.ID)
}
