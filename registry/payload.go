package registry

import "github.com/querymock-project/querymock/operation"

// PayloadError is one error record from a failed response. The shape mirrors
// what the data-fetching environment produces; only Message is interpreted
// here, the rest passes through untouched.
type PayloadError struct {
	// Message is the human-readable failure description.
	Message string

	// Path locates the failing field within the operation, when known.
	Path []string

	// Extensions carries arbitrary environment-defined detail.
	Extensions map[string]any
}

// Error implements the error interface so a PayloadError can settle a handle
// directly on the rejection path.
func (e PayloadError) Error() string {
	return e.Message
}

// Payload is a simulated server response: either query data or a list of
// errors, never both.
type Payload struct {
	// Data holds the response data for a successful operation.
	Data map[string]any

	// Errors holds the failure records for an unsuccessful operation.
	Errors []PayloadError
}

// PayloadFunc derives a payload from the matched entry's recorded variables.
// It is invoked with the variables the intercepted fetch was dispatched with,
// not the ones supplied to the resolution call.
type PayloadFunc func(operation.Variables) Payload
