package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/querymock-project/querymock/environment"
	"github.com/querymock-project/querymock/operation"
	"github.com/querymock-project/querymock/registry"
)

var (
	// ErrNoNetwork is returned by Execute before a network is installed.
	ErrNoNetwork = errors.New("no network installed")
)

// Env is an in-memory Mockable environment. Committed payloads land in a flat
// record store keyed by the descriptor's identifier and canonical variables,
// where tests can read them back with Lookup.
type Env struct {
	mu      sync.Mutex
	records map[string]map[string]any
	network environment.Network
}

// SeedRecord pre-populates one cache record.
type SeedRecord struct {
	// Descriptor is the compiled selection the data is stored under.
	Descriptor operation.Descriptor
	// Data is the record content.
	Data map[string]any
}

// Config controls Env construction.
type Config struct {
	// Seed pre-populates the cache, for code under test that reads without
	// fetching.
	Seed []SeedRecord
}

// New creates an Env, optionally pre-seeded.
func New(config Config) *Env {
	e := &Env{records: make(map[string]map[string]any)}
	for _, rec := range config.Seed {
		e.records[recordKey(rec.Descriptor)] = rec.Data
	}
	return e
}

// Compile implements environment.Environment. Binding here is plain
// association: the descriptor carries the operation and variables as given.
func (e *Env) Compile(op operation.Operation, vars operation.Variables) operation.Descriptor {
	return operation.Descriptor{Operation: op, Variables: vars}
}

// CommitPayload implements environment.Environment.
func (e *Env) CommitPayload(desc operation.Descriptor, data map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records[recordKey(desc)] = data
}

// SetNetwork implements environment.Mockable.
func (e *Env) SetNetwork(n environment.Network) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.network = n
}

// Execute dispatches an operation through the installed network, standing in
// for the application-side fetch a component under test would issue. It fails
// until a mocker (or the test itself) has installed a network.
func (e *Env) Execute(op operation.Operation, vars operation.Variables, cacheConfig any) (*registry.Handle, error) {
	e.mu.Lock()
	network := e.network
	e.mu.Unlock()

	if network == nil {
		return nil, fmt.Errorf("%w: environment was never intercepted", ErrNoNetwork)
	}
	return network.Execute(op, vars, cacheConfig), nil
}

// Lookup reads back the data committed under a descriptor.
func (e *Env) Lookup(desc operation.Descriptor) (map[string]any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	data, ok := e.records[recordKey(desc)]
	return data, ok
}

// Len reports the number of committed records.
func (e *Env) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.records)
}

// recordKey flattens a descriptor into a stable store key. Variable maps
// serialize with sorted keys under encoding/json, so equal descriptors
// produce equal keys.
func recordKey(desc operation.Descriptor) string {
	vars, err := json.Marshal(desc.Variables)
	if err != nil {
		vars = []byte(fmt.Sprintf("%v", desc.Variables))
	}
	return string(desc.Operation.Kind) + " " + desc.Operation.Name + " " + string(vars)
}

// Compile-time check: Env satisfies the full mockable capability set.
var _ environment.Mockable = (*Env)(nil)
