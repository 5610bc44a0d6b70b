// SPDX-License-Identifier: MIT
package atomhash

import "github.com/katalvlaran/molhash/core"

// AtomHashGenerator produces one hash per atom, in container order.
type AtomHashGenerator interface {
	Generate(c core.Container) ([]int64, error)
}

// MoleculeHashGenerator produces one hash per molecule.
type MoleculeHashGenerator interface {
	Generate(c core.Container) (int64, error)
}
