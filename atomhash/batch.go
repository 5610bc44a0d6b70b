// SPDX-License-Identifier: MIT
package atomhash

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/molhash/core"
)

// GenerateAll hashes every molecule concurrently and returns results in
// input order. workers <= 0 means no limit. The first error cancels the
// remaining work; cancellation is checked before each molecule starts.
func GenerateAll(ctx context.Context, gen AtomHashGenerator, mols []core.Container, workers int) ([][]int64, error) {
	out := make([][]int64, len(mols))
	err := forEach(ctx, len(mols), workers, func(i int) error {
		h, err := gen.Generate(mols[i])
		if err != nil {
			return err
		}
		out[i] = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HashAll computes molecule hashes concurrently, in input order.
func HashAll(ctx context.Context, gen MoleculeHashGenerator, mols []core.Container, workers int) ([]int64, error) {
	out := make([]int64, len(mols))
	err := forEach(ctx, len(mols), workers, func(i int) error {
		h, err := gen.Generate(mols[i])
		if err != nil {
			return err
		}
		out[i] = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func forEach(ctx context.Context, n, workers int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return fmt.Errorf("molecule %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
