package environment

import (
	"github.com/querymock-project/querymock/operation"
	"github.com/querymock-project/querymock/registry"
)

// Fetch is the replacement transport function the mocker installs. It records
// the dispatch in a pending-fetch registry and returns immediately with a
// handle that settles only when a test drives resolution.
type Fetch func(op operation.Operation, vars operation.Variables, cacheConfig any) *registry.Handle

// Network is the object an environment executes operations through.
type Network interface {
	Execute(op operation.Operation, vars operation.Variables, cacheConfig any) *registry.Handle
}

// Factory builds the Network an environment will use from a fetch function.
// The default factory is NewNetwork; callers that need to decorate the
// transport supply their own.
type Factory func(fetch Fetch) Network

// Environment is the minimal surface a data-fetching environment exposes:
// compiling an operation against variables and committing response data into
// its cache.
type Environment interface {
	// Compile binds an operation and variables into a descriptor usable for
	// cache reads and writes.
	Compile(op operation.Operation, vars operation.Variables) operation.Descriptor

	// CommitPayload writes response data into the cache under the
	// descriptor's selection.
	CommitPayload(desc operation.Descriptor, data map[string]any)
}

// Mockable is the capability set required for network interception: an
// Environment that also lets callers swap its network. Environments that do
// not implement Mockable can still receive direct cache writes, but their
// fetches cannot be intercepted or manually resolved.
type Mockable interface {
	Environment

	// SetNetwork replaces the environment's network. Subsequent fetches
	// issued by the environment go through it.
	SetNetwork(n Network)
}

// fetchNetwork adapts a bare fetch function into a Network.
type fetchNetwork struct {
	fetch Fetch
}

// NewNetwork wraps a fetch function in the trivial Network adapter.
func NewNetwork(fetch Fetch) Network {
	return &fetchNetwork{fetch: fetch}
}

// Execute implements Network.
func (n *fetchNetwork) Execute(op operation.Operation, vars operation.Variables, cacheConfig any) *registry.Handle {
	return n.fetch(op, vars, cacheConfig)
}
