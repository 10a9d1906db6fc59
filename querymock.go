package querymock

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/querymock-project/querymock/environment"
	"github.com/querymock-project/querymock/idgen"
	"github.com/querymock-project/querymock/operation"
	"github.com/querymock-project/querymock/registry"
)

// Aliases for the types a test touches most, so simple suites only import
// this package and operation.
type (
	// Payload is the simulated server response.
	Payload = registry.Payload
	// PayloadError is one error record from a failed response.
	PayloadError = registry.PayloadError
	// PayloadFunc derives a payload from a matched entry's recorded variables.
	PayloadFunc = registry.PayloadFunc
)

// Config provides construction options for a Mocker.
type Config struct {
	// Environment is the data-fetching environment to wrap. Required.
	Environment environment.Environment

	// Registry backs the pending-fetch bookkeeping. When nil the
	// process-wide shared registry is used, so independent mockers in one
	// process observe the same pending fetches.
	Registry *registry.Registry

	// Factory builds the replacement network from the mocker's fetch
	// function. Defaults to environment.NewNetwork.
	Factory environment.Factory

	// Logger receives the unsupported-environment warning and debug events.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// Mocker wraps one environment and drives manual resolution of its
// intercepted fetches. Instances are cheap one-per-environment wrappers; the
// pending-fetch registry behind them is shared unless Config.Registry says
// otherwise.
type Mocker struct {
	env      environment.Environment
	mockable environment.Mockable // nil when the environment variant is unsupported
	reg      *registry.Registry
	log      *zap.Logger
}

// interceptions records which environments already carry a replacement
// network and the registry feeding it, making interception idempotent across
// mocker instances.
var (
	interceptionsMu sync.Mutex
	interceptions   = map[environment.Mockable]*registry.Registry{}
)

// New creates a Mocker around an environment and, when the environment
// supports it, installs the replacement network transport.
//
// Environments that do not implement environment.Mockable are wrapped
// without interception: a warning is logged, DataWrite keeps working, and
// NetworkWrite/NetworkError fail with ErrNetworkNotMocked. Wrapping an
// already-intercepted environment is a no-op install; the new Mocker shares
// the registry the transport was wired to, regardless of Config.Registry.
func New(config Config) (*Mocker, error) {
	if config.Environment == nil {
		return nil, ErrEnvironmentNil
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := config.Registry
	if reg == nil {
		reg = registry.Default()
	}
	factory := config.Factory
	if factory == nil {
		factory = environment.NewNetwork
	}

	m := &Mocker{
		env: config.Environment,
		reg: reg,
		log: log,
	}

	mockable, ok := config.Environment.(environment.Mockable)
	if !ok {
		log.Warn("environment does not support network mocking; network writes against it will fail")
		return m, nil
	}
	m.mockable = mockable

	interceptionsMu.Lock()
	defer interceptionsMu.Unlock()
	if existing, done := interceptions[mockable]; done {
		m.reg = existing
		return m, nil
	}

	mockable.SetNetwork(factory(m.fetch))
	interceptions[mockable] = reg
	return m, nil
}

// fetch is the replacement transport. It records the dispatch and returns a
// pending handle without blocking; it never fails for a well-formed
// operation.
func (m *Mocker) fetch(op operation.Operation, vars operation.Variables, cacheConfig any) *registry.Handle {
	operation.StripUnused(vars)
	identifier := operation.Identifier(op)
	desc := m.mockable.Compile(op, vars)

	entry := m.reg.Add(identifier, vars, cacheConfig, desc)
	m.log.Debug("fetch intercepted",
		zap.String("identifier", identifier),
		zap.String("entry", entry.ID),
	)
	return entry.Handle()
}

// WriteRequest carries the inputs for a direct cache write.
type WriteRequest struct {
	// Operation is the operation whose selection the data is written under.
	Operation operation.Operation
	// Variables bind the operation for the write.
	Variables operation.Variables
	// Payload must carry Data and no Errors.
	Payload Payload
}

// DataWrite commits a payload's data straight into the environment's cache,
// bypassing the registry. Use it when the code under test reads from a
// pre-seeded cache and issues no fetch to intercept.
//
// The payload is asserted before any cache mutation: it must carry Data and
// must not carry Errors.
func (m *Mocker) DataWrite(req WriteRequest) error {
	if len(req.Payload.Errors) > 0 {
		return fmt.Errorf("%w: payload for %q carries %d errors",
			ErrPayloadHasErrors, req.Operation.Name, len(req.Payload.Errors))
	}
	if req.Payload.Data == nil {
		return fmt.Errorf("%w: payload for %q", ErrPayloadMissingData, req.Operation.Name)
	}

	desc := m.env.Compile(req.Operation, req.Variables)
	m.env.CommitPayload(desc, req.Payload.Data)
	m.log.Debug("payload committed directly", zap.String("identifier", operation.Identifier(req.Operation)))
	return nil
}

// ResolveRequest carries the inputs for resolving one pending fetch.
type ResolveRequest struct {
	// Operation names the pending fetch; matching uses its identifier.
	Operation operation.Operation

	// Variables, when non-nil, additionally require deep equality against a
	// pending entry's recorded variables. They are normalized the same way
	// dispatch normalizes, mutating the supplied mapping.
	Variables operation.Variables

	// Payload is the literal response. Ignored when PayloadFunc is set.
	Payload Payload

	// PayloadFunc derives the response from the matched entry's recorded
	// variables instead of a literal.
	PayloadFunc PayloadFunc
}

// NetworkWrite resolves the unique pending fetch matching the request, as if
// the server had responded. Matching and failure modes are documented on
// registry.Registry; continuations chained on the original fetch's handle
// have run by the time NetworkWrite returns.
func (m *Mocker) NetworkWrite(req ResolveRequest) error {
	if m.mockable == nil {
		return fmt.Errorf("%w: cannot resolve %q", ErrNetworkNotMocked, req.Operation.Name)
	}

	fn := req.PayloadFunc
	if fn == nil {
		payload := req.Payload
		fn = func(operation.Variables) Payload { return payload }
	}
	return m.reg.Resolve(operation.Identifier(req.Operation), normalized(req.Variables), fn)
}

// ErrorRequest carries the inputs for rejecting one pending fetch.
type ErrorRequest struct {
	// Operation names the pending fetch; matching uses its identifier.
	Operation operation.Operation
	// Variables follow the same matching rules as ResolveRequest.
	Variables operation.Variables
	// Error settles the matched entry's handle on its rejection path.
	Error PayloadError
}

// NetworkError rejects the unique pending fetch matching the request,
// simulating a failed response. Matching is identical to NetworkWrite.
func (m *Mocker) NetworkError(req ErrorRequest) error {
	if m.mockable == nil {
		return fmt.Errorf("%w: cannot reject %q", ErrNetworkNotMocked, req.Operation.Name)
	}
	return m.reg.Reject(operation.Identifier(req.Operation), normalized(req.Variables), req.Error)
}

// IsLoading reports whether a fetch with the identifier is outstanding.
func (m *Mocker) IsLoading(identifier string) bool {
	return m.reg.IsLoading(identifier)
}

// Registry returns the registry backing this mocker.
func (m *Mocker) Registry() *registry.Registry {
	return m.reg
}

// normalized applies the dispatch-side normalization to resolution variables
// so both sides compare like for like. nil stays nil, meaning "match on
// identifier alone".
func normalized(vars operation.Variables) operation.Variables {
	if vars == nil {
		return nil
	}
	return operation.StripUnused(vars)
}

// GenerateID returns the next id from the process-wide generator. Ids are
// unique within a test run; the counter wraps after exhausting its range.
func GenerateID() string {
	return idgen.Next()
}

// Identifier derives the registry correlation key for an operation.
func Identifier(op operation.Operation) string {
	return operation.Identifier(op)
}

// StripUnused normalizes a variable mapping in place and returns it. See
// operation.StripUnused.
func StripUnused(vars operation.Variables) operation.Variables {
	return operation.StripUnused(vars)
}
