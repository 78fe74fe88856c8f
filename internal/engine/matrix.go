package engine

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// PairVerdict is the outcome for one unordered pair of elements.
type PairVerdict struct {
	A, B     string
	Collides bool
}

// Matrix checks every unordered pair of elements against a single snapshot
// of the registry. Pairs are returned in name order. workers <= 0 uses
// GOMAXPROCS.
func (e *Engine) Matrix(ctx context.Context, workers int) ([]PairVerdict, error) {
	snap := e.elements.Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	var pairs []PairVerdict
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			pairs = append(pairs, PairVerdict{A: names[i], B: names[j]})
		}
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := &pairs[i]
			p.Collides = e.eval.Collides(snap[p.A], snap[p.B])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("matrix checked", "elements", len(names), "pairs", len(pairs))
	return pairs, nil
}
