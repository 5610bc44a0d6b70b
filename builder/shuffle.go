// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// shuffle.go - seeded atom reordering.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/molhash/core"
)

const defaultShuffleSeed int64 = 1

// Shuffle returns a copy of m with atoms in a pseudorandom order drawn from
// seed (0 selects a fixed default) and the permutation used: atom i of the
// result is atom order[i] of m.
func Shuffle(m *core.Molecule, seed int64) (*core.Molecule, []int, error) {
	if seed == 0 {
		seed = defaultShuffleSeed
	}
	rng := rand.New(rand.NewSource(seed))

	order := make([]int, m.AtomCount())
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	out, err := m.Permute(order)
	if err != nil {
		return nil, nil, fmt.Errorf("Shuffle: %w", err)
	}
	return out, order, nil
}
