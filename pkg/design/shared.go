package design

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// Shared guards a Design with a read-write lock so that resolution from many
// goroutines can overlap with occasional mutation.
type Shared struct {
	mu sync.RWMutex
	d  *Design
}

// NewShared wraps d. A nil d is replaced by an empty Design.
func NewShared(d *Design) *Shared {
	if d == nil {
		d = New()
	}
	return &Shared{d: d}
}

// View runs fn with the read lock held. fn must not mutate the Design.
func (s *Shared) View(fn func(d *Design) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.d)
}

// Update runs fn with the write lock held.
func (s *Shared) Update(fn func(d *Design) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.d)
}

// Snapshot returns a deep copy taken under the read lock. The copy can be
// resolved without further locking.
func (s *Shared) Snapshot() *Design {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Clone()
}

// ResolveAll resolves the given frames using up to workers goroutines and
// returns the results in the order of indices. d must not be mutated until
// ResolveAll returns. Returns ErrInvalidIndex if a frame does not exist or its
// parent chain is broken, and ctx.Err() if ctx is cancelled first.
func ResolveAll(ctx context.Context, d *Design, indices []int, workers int) ([]Resolved, error) {
	out := make([]Resolved, len(indices))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for n, i := range indices {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.resolvable(i) {
				return fmt.Errorf("frame %d: %w", i, types.ErrInvalidIndex)
			}
			out[n] = d.Resolve(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
