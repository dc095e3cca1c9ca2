package tessellation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/mundimonium/pkg/isometric"
)

// PointPair is one distance query.
type PointPair struct {
	A, B *isometric.Point
}

// Distances evaluates A.DistanceFrom(B) for every pair on up to workers
// goroutines while holding the read lock, so no vertex moves mid-batch.
// workers <= 0 means unbounded. The first failure cancels the rest.
func (t *Tessellation) Distances(ctx context.Context, pairs []PointPair, workers int) ([]float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]float64, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if pair.A == nil || pair.B == nil {
				return fmt.Errorf("pair %d: %w: nil point", i, isometric.ErrInvalidOperand)
			}
			d, err := pair.A.DistanceFrom(pair.B)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
