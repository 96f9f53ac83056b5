// Package sources contains the adapters that pull raw job candidates from
// external feeds, APIs and job boards. Every adapter implements Source and
// reports failures through its error return; a broken adapter never takes
// the rest of a fetch cycle down with it.
package sources

import (
	"context"

	"github.com/jobupdate/jobwire/internal/types"
)

// Source is a single upstream job feed.
type Source interface {
	// Name identifies the adapter in logs and run summaries.
	Name() string
	// Fetch returns up to limit raw candidates. Implementations must honor
	// ctx cancellation and return partial results with an error when the
	// upstream fails midway.
	Fetch(ctx context.Context, limit int) ([]types.RawCandidate, error)
}

// Registry holds the configured adapters in registration order.
type Registry struct {
	sources []Source
}

// NewRegistry builds a registry from the given adapters.
func NewRegistry(srcs ...Source) *Registry {
	return &Registry{sources: srcs}
}

// Register appends an adapter.
func (r *Registry) Register(s Source) {
	r.sources = append(r.sources, s)
}

// All returns the registered adapters in order.
func (r *Registry) All() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return len(r.sources)
}
