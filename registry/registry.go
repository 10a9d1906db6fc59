package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"github.com/querymock-project/querymock/operation"
	"github.com/querymock-project/querymock/scheduler"
)

var (
	// ErrNoMatch is returned when no pending entry matches a resolution call.
	ErrNoMatch = errors.New("no pending fetch matches")

	// ErrAmbiguousMatch is returned when several pending entries share the
	// identifier and no variables were supplied to disambiguate.
	ErrAmbiguousMatch = errors.New("ambiguous pending fetch")
)

// Registry is an ordered collection of pending fetches. Entries are appended
// when a transport intercepts a dispatch and removed when a test settles
// them; nothing else removes an entry, so uncovered dispatches stay pending
// for the life of the registry.
//
// Matching scans in insertion order. When two pending entries are fully
// identical (same identifier and deeply equal variables), a resolution call
// settles the oldest one; this first-match tie-break is deliberate policy.
type Registry struct {
	mu      sync.Mutex
	entries []*Entry

	sched *scheduler.Queue
	log   *zap.Logger
}

// Config controls Registry construction. The zero value is usable.
type Config struct {
	// Scheduler receives settlement continuations; a fresh queue is created
	// when nil.
	Scheduler *scheduler.Queue

	// Logger receives debug events for dispatch and settlement. Defaults to
	// a no-op logger.
	Logger *zap.Logger
}

// New creates an empty Registry.
func New(config Config) *Registry {
	sched := config.Scheduler
	if sched == nil {
		sched = scheduler.New()
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		sched: sched,
		log:   log,
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide shared Registry. Mockers that are not
// given an explicit registry all feed this one, so independent mocker
// instances in the same process observe each other's pending fetches.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(Config{})
	})
	return defaultRegistry
}

// Scheduler returns the deferred-work queue drained after settlements.
func (r *Registry) Scheduler() *scheduler.Queue {
	return r.sched
}

// Add records a new pending fetch and returns its entry. The entry's handle
// is what the replacement transport hands back to the dispatching caller.
func (r *Registry) Add(identifier string, vars operation.Variables, cacheConfig any, desc operation.Descriptor) *Entry {
	entry := &Entry{
		ID:          uuid.NewString(),
		Identifier:  identifier,
		Variables:   vars,
		CacheConfig: cacheConfig,
		Descriptor:  desc,
		handle:      newHandle(r.sched),
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	pending := len(r.entries)
	r.mu.Unlock()

	r.log.Debug("pending fetch recorded",
		zap.String("identifier", identifier),
		zap.String("entry", entry.ID),
		zap.Int("pending", pending),
	)
	return entry
}

// IsLoading reports whether at least one pending entry has the identifier.
func (r *Registry) IsLoading(identifier string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Identifier == identifier {
			return true
		}
	}
	return false
}

// Len reports the number of pending entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Resolve settles the matching pending entry with the payload fn derives
// from the entry's recorded variables, then drains the scheduler so that
// continuations observe the settlement before Resolve returns.
//
// vars may be nil when the identifier alone is unambiguous; with multiple
// same-identifier entries pending, nil vars is an ErrAmbiguousMatch.
func (r *Registry) Resolve(identifier string, vars operation.Variables, fn PayloadFunc) error {
	entry, err := r.take(identifier, vars)
	if err != nil {
		return err
	}

	payload := fn(entry.Variables)
	entry.handle.settle(&payload, nil)
	r.log.Debug("pending fetch resolved",
		zap.String("identifier", identifier),
		zap.String("entry", entry.ID),
	)
	r.sched.Drain()
	return nil
}

// Reject settles the matching pending entry with the supplied error, then
// drains the scheduler. Matching follows the same rules as Resolve.
func (r *Registry) Reject(identifier string, vars operation.Variables, perr PayloadError) error {
	entry, err := r.take(identifier, vars)
	if err != nil {
		return err
	}

	entry.handle.settle(nil, perr)
	r.log.Debug("pending fetch rejected",
		zap.String("identifier", identifier),
		zap.String("entry", entry.ID),
		zap.String("message", perr.Message),
	)
	r.sched.Drain()
	return nil
}

// take locates the unique matching entry and removes it from the registry.
func (r *Registry) take(identifier string, vars operation.Variables) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var candidates []*Entry
	for _, e := range r.entries {
		if e.Identifier == identifier {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		return nil, noMatchError(identifier, vars, nil)
	}

	var match *Entry
	if vars == nil {
		if len(candidates) > 1 {
			return nil, fmt.Errorf("%w: %d entries pending for %q; supply variables to disambiguate",
				ErrAmbiguousMatch, len(candidates), identifier)
		}
		match = candidates[0]
	} else {
		for _, e := range candidates {
			if reflect.DeepEqual(e.Variables, vars) {
				match = e
				break
			}
		}
		if match == nil {
			return nil, noMatchError(identifier, vars, candidates)
		}
	}

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e != match {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return match, nil
}

// noMatchError builds the primary diagnostic for misconfigured tests: the
// identifier, the serialized variables used for matching, and a diff against
// each pending candidate's variables.
func noMatchError(identifier string, vars operation.Variables, candidates []*Entry) error {
	if vars == nil {
		return fmt.Errorf("%w: identifier %q", ErrNoMatch, identifier)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "identifier %q with variables %s", identifier, canonicalJSON(vars))
	for _, e := range candidates {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(indentedJSON(e.Variables)),
			B:        difflib.SplitLines(indentedJSON(vars)),
			FromFile: "pending " + e.ID,
			ToFile:   "wanted",
			Context:  2,
		})
		if err != nil || diff == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(diff)
	}
	return fmt.Errorf("%w: %s", ErrNoMatch, b.String())
}

func canonicalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func indentedJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b) + "\n"
}
