package registry

import (
	"sync"

	"github.com/querymock-project/querymock/operation"
	"github.com/querymock-project/querymock/scheduler"
)

// Handle is the pending result returned by an intercepted fetch. It settles
// exactly once, when a test resolves or rejects the matching registry entry;
// further settlement attempts are no-ops.
//
// Continuations registered with OnSettle do not run inline at settlement.
// They are submitted to the registry's scheduler queue and run when that
// queue is drained, which the registry does synchronously after every
// settlement.
type Handle struct {
	mu        sync.Mutex
	settled   bool
	payload   *Payload
	err       error
	callbacks []func(*Payload, error)

	done  chan struct{}
	sched *scheduler.Queue
}

func newHandle(sched *scheduler.Queue) *Handle {
	return &Handle{
		done:  make(chan struct{}),
		sched: sched,
	}
}

// Done returns a channel closed at settlement.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Settled reports whether the handle has been resolved or rejected.
func (h *Handle) Settled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.settled
}

// Result returns the settlement outcome. Before settlement both values are
// zero; after a resolution the payload is set, after a rejection the error.
func (h *Handle) Result() (*Payload, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.payload, h.err
}

// OnSettle registers a continuation invoked with the settlement outcome. If
// the handle is already settled the continuation is queued immediately; it
// still runs only at the next scheduler drain.
func (h *Handle) OnSettle(fn func(*Payload, error)) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	if h.settled {
		payload, err := h.payload, h.err
		h.mu.Unlock()
		h.sched.Submit(func() { fn(payload, err) })
		return
	}
	h.callbacks = append(h.callbacks, fn)
	h.mu.Unlock()
}

// settle records the outcome once and queues continuations. Returns false if
// the handle was already settled.
func (h *Handle) settle(payload *Payload, err error) bool {
	h.mu.Lock()
	if h.settled {
		h.mu.Unlock()
		return false
	}
	h.settled = true
	h.payload = payload
	h.err = err
	callbacks := h.callbacks
	h.callbacks = nil
	h.mu.Unlock()

	close(h.done)
	for _, fn := range callbacks {
		fn := fn
		h.sched.Submit(func() { fn(payload, err) })
	}
	return true
}

// Entry is one simulated in-flight network call recorded by the registry.
type Entry struct {
	// ID is a per-entry diagnostic id carried in log fields. It plays no
	// part in matching.
	ID string

	// Identifier correlates this entry with a later resolution call. It is
	// the operation's declared name and is not unique across entries.
	Identifier string

	// Variables are the invocation's arguments after StripUnused.
	Variables operation.Variables

	// CacheConfig is the cache-policy value supplied at dispatch, passed
	// through uninterpreted.
	CacheConfig any

	// Descriptor is the compiled, variable-bound operation, needed when a
	// payload is later committed for this entry.
	Descriptor operation.Descriptor

	handle *Handle
}

// Handle returns the pending result the transport hands back to the caller.
func (e *Entry) Handle() *Handle {
	return e.handle
}
