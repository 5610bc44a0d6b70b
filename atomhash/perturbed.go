// SPDX-License-Identifier: MIT
// File: perturbed.go
// Role: Symmetry breaking by seed perturbation over an equivalent set.
package atomhash

import (
	"slices"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/equiv"
	"github.com/katalvlaran/molhash/mix"
)

// PerturbedGenerator wraps a BasicGenerator. For every vertex of the
// equivalent set it recomputes the whole molecule with that vertex's seed
// rotated, then folds the n × (m+1) matrix into one value per atom.
type PerturbedGenerator struct {
	basic  *BasicGenerator
	finder equiv.Finder
}

// NewPerturbedGenerator returns a generator perturbing the vertices
// proposed by finder.
//
// Errors:
//   - ErrNilGenerator, ErrNilFinder.
func NewPerturbedGenerator(basic *BasicGenerator, finder equiv.Finder) (*PerturbedGenerator, error) {
	if basic == nil {
		return nil, ErrNilGenerator
	}
	if finder == nil {
		return nil, ErrNilFinder
	}
	return &PerturbedGenerator{basic: basic, finder: finder}, nil
}

// Generate returns one hash per atom. With fewer than two unsuppressed
// candidates the result equals the wrapped generator's output.
//
// Implementation:
//   - Stage 1: Unperturbed pass → original (column 0).
//   - Stage 2: Ask the finder for candidates; drop suppressed vertices.
//   - Stage 3: Per candidate v: seed[v] = Rotate(original[v]), reset the
//     stereo encoder, refine a copy of the seeds, restore seed[v].
//   - Stage 4: Fold each row.
//
// Complexity:
//   - (m+1) × the basic pass, plus O(n · m log m) for the fold.
func (g *PerturbedGenerator) Generate(c core.Container) ([]int64, error) {
	state, err := g.basic.prepare(c)
	if err != nil {
		return nil, err
	}

	original := g.basic.refine(Clone(state.seeds), state)

	candidates := g.finder.Find(original, c, state.graph)
	equivalent := candidates[:0:0]
	for _, v := range candidates {
		if !state.suppressed.Contains(v) {
			equivalent = append(equivalent, v)
		}
	}
	m := len(equivalent)
	if m < 2 {
		return original, nil
	}
	klog.V(4).Infof("atomhash: perturbing %d equivalent vertices of %d atoms", m, len(original))

	perturbed := make([][]int64, len(original))
	for i := range perturbed {
		perturbed[i] = make([]int64, m+1)
		perturbed[i][0] = original[i]
	}

	seeds := state.seeds
	for j, v := range equivalent {
		saved := seeds[v]
		seeds[v] = g.basic.mixer.Rotate(original[v])
		state.stereo.Reset()
		column := g.basic.refine(Clone(seeds), state)
		seeds[v] = saved
		for i, h := range column {
			perturbed[i][j+1] = h
		}
	}

	return fold(perturbed, g.basic.mixer), nil
}

// fold sorts each row and XORs it down to one value. A value equal to its
// predecessor contributes a rotation of the previous contribution instead
// of itself.
func fold(perturbed [][]int64, mixer mix.Mixer) []int64 {
	combined := make([]int64, len(perturbed))
	var rotated []int64
	for i, row := range perturbed {
		slices.Sort(row)
		if cap(rotated) < len(row) {
			rotated = make([]int64, len(row))
		}
		rotated = rotated[:len(row)]
		for j, value := range row {
			if j > 0 && value == row[j-1] {
				rotated[j] = mixer.Rotate(rotated[j-1])
			} else {
				rotated[j] = value
			}
			combined[i] ^= rotated[j]
		}
	}
	return combined
}

var (
	_ AtomHashGenerator = (*BasicGenerator)(nil)
	_ AtomHashGenerator = (*PerturbedGenerator)(nil)
)
