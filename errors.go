package querymock

import "errors"

var (
	// ErrEnvironmentNil is returned when no environment is provided.
	ErrEnvironmentNil = errors.New("environment cannot be nil")

	// ErrNetworkNotMocked means a network write was attempted against an
	// environment whose network was never mocked.
	ErrNetworkNotMocked = errors.New("environment network was never mocked")

	// ErrPayloadMissingData means a direct cache write was attempted with a
	// payload lacking query data.
	ErrPayloadMissingData = errors.New("payload is missing data")

	// ErrPayloadHasErrors means a direct cache write was attempted with an
	// error payload; only success payloads can be committed to the cache.
	ErrPayloadHasErrors = errors.New("payload must not contain errors")
)
