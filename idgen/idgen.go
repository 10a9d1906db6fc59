package idgen

import (
	"strconv"
	"sync/atomic"
)

// counter backs the process-wide generator. All generators created without an
// explicit counter share it, mirroring the shared pending-fetch registry.
var counter atomic.Uint64

// Next returns the next id from the process-wide generator.
func Next() string {
	return strconv.FormatUint(counter.Add(1), 10)
}

// Generator produces monotonically increasing string ids from a dedicated
// counter, for callers that need isolation from the process-wide sequence.
type Generator struct {
	n atomic.Uint64
}

// New creates a Generator with its own counter starting at zero.
func New() *Generator {
	return &Generator{}
}

// Next returns the next id in this generator's sequence.
func (g *Generator) Next() string {
	return strconv.FormatUint(g.n.Add(1), 10)
}
