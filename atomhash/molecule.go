// SPDX-License-Identifier: MIT
package atomhash

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/mix"
)

// moleculeBase is the starting value of the molecule fold.
const moleculeBase int64 = 2147483647

// MoleculeGenerator reduces atom hashes to a single molecule hash.
type MoleculeGenerator struct {
	atoms AtomHashGenerator
	mixer mix.Mixer
}

// NewMoleculeGenerator wraps an atom hash generator; the fold uses the
// default xorshift mixer unless a mixer is given.
//
// Errors:
//   - ErrNilGenerator if atoms is nil.
func NewMoleculeGenerator(atoms AtomHashGenerator, mixer ...mix.Mixer) (*MoleculeGenerator, error) {
	if atoms == nil {
		return nil, ErrNilGenerator
	}
	g := &MoleculeGenerator{atoms: atoms, mixer: mix.Default}
	if len(mixer) > 0 {
		g.mixer = mixer[0]
	}
	return g, nil
}

// Generate sorts the atom hashes and XORs them into moleculeBase; a repeated
// value contributes a rotation of the previous contribution.
func (g *MoleculeGenerator) Generate(c core.Container) (int64, error) {
	hashes, err := g.atoms.Generate(c)
	if err != nil {
		return 0, fmt.Errorf("MoleculeGenerator: %w", err)
	}
	return Reduce(hashes, g.mixer), nil
}

// Reduce folds atom hashes into one value. hashes is sorted in place.
func Reduce(hashes []int64, mixer mix.Mixer) int64 {
	slices.Sort(hashes)
	rotated := make([]int64, len(hashes))
	hash := moleculeBase
	for i, h := range hashes {
		if i > 0 && h == hashes[i-1] {
			rotated[i] = mixer.Rotate(rotated[i-1])
		} else {
			rotated[i] = h
		}
		hash ^= rotated[i]
	}
	return hash
}

var _ MoleculeHashGenerator = (*MoleculeGenerator)(nil)
