package mock

import (
	"github.com/querymock-project/querymock/environment"
	"github.com/querymock-project/querymock/operation"
)

// Operation names used in recorded calls.
const (
	OpCompile = "COMPILE"
	OpCommit  = "COMMIT"
)

// Call captures a single operation observed by the mock environment.
type Call struct {
	// Op identifies the operation (OpCompile or OpCommit).
	Op string
	// Descriptor is the compiled selection involved in the call.
	Descriptor operation.Descriptor
	// Data carries the committed payload data for OpCommit calls.
	Data map[string]any
}

// Config controls construction of a mock environment.
type Config struct {
	// CommitValidator inspects each committed payload. Validation failures
	// are collected in Failures for later assertion; CommitPayload itself
	// has no error path to surface them through.
	CommitValidator func(desc operation.Descriptor, data map[string]any) error
}

// Env implements environment.Environment with call recording for tests. It
// deliberately does NOT implement environment.Mockable, which makes it the
// unsupported environment variant: a mocker wrapping it warns and skips
// network interception.
type Env struct {
	// Calls records every operation performed against the mock.
	Calls []Call

	// Failures collects CommitValidator errors in commit order.
	Failures []error

	validator func(desc operation.Descriptor, data map[string]any) error
}

// New creates a new mock environment.
func New(config Config) *Env {
	return &Env{
		Calls:     []Call{},
		validator: config.CommitValidator,
	}
}

// Compile implements environment.Environment and records the call.
func (e *Env) Compile(op operation.Operation, vars operation.Variables) operation.Descriptor {
	desc := operation.Descriptor{Operation: op, Variables: vars}
	e.Calls = append(e.Calls, Call{Op: OpCompile, Descriptor: desc})
	return desc
}

// CommitPayload implements environment.Environment, records the call, and
// runs the configured validator.
func (e *Env) CommitPayload(desc operation.Descriptor, data map[string]any) {
	e.Calls = append(e.Calls, Call{Op: OpCommit, Descriptor: desc, Data: data})
	if e.validator != nil {
		if err := e.validator(desc, data); err != nil {
			e.Failures = append(e.Failures, err)
		}
	}
}

// Commits returns the recorded OpCommit calls.
func (e *Env) Commits() []Call {
	var commits []Call
	for _, c := range e.Calls {
		if c.Op == OpCommit {
			commits = append(commits, c)
		}
	}
	return commits
}

// MockableEnv extends Env with the network-installation hook, making it the
// supported environment variant.
//
// revive:disable:exported // Name mirrors the capability it mocks; stutter with the package is acceptable here.
type MockableEnv struct {
	Env

	// Network is the most recently installed network, nil before
	// interception.
	Network environment.Network

	// SetNetworkCalls counts installations, for idempotency assertions.
	SetNetworkCalls int
}

// revive:enable:exported

// NewMockable creates a mock environment that supports interception.
func NewMockable(config Config) *MockableEnv {
	return &MockableEnv{Env: *New(config)}
}

// SetNetwork implements environment.Mockable.
func (e *MockableEnv) SetNetwork(n environment.Network) {
	e.Network = n
	e.SetNetworkCalls++
}

// Compile-time checks: Env is the unsupported variant, MockableEnv the
// supported one.
var (
	_ environment.Environment = (*Env)(nil)
	_ environment.Mockable    = (*MockableEnv)(nil)
)
