// SPDX-License-Identifier: MIT

// Package atomhash computes deterministic, isomorphism-sensitive hashes for
// every atom of a molecule, and a single hash for the whole molecule.
//
// Pipeline:
//
//	container → ToAdjList → SeedGenerator (suppression-aware)
//	          → stereo convergence
//	          → depth × (neighbor mix → stereo convergence)
//	          → zero suppressed atoms
//	          → [PerturbedGenerator: equivalent set → perturb + fold]
//	          → []int64, one value per atom in container order
//
// Generators:
//   - BasicGenerator: the iterative refinement.
//   - PerturbedGenerator: re-runs the refinement once per suspected
//     symmetric vertex with that vertex's seed rotated, then folds.
//   - MoleculeGenerator: reduces atom hashes to one int64.
//
// Assembly:
//
//	gen, err := atomhash.NewAtomic(
//	    atomhash.Depth(8),
//	    atomhash.Elemental(),
//	    atomhash.Charged(),
//	    atomhash.SuppressHydrogens(),
//	    atomhash.Chiral(),
//	    atomhash.Perturbed(),
//	)
//
// With no options the result is the plain behavior: depth 0, no encoders,
// no suppression, no stereo, no perturbation.
//
// Concurrency:
//   - Generators are immutable and safe for concurrent use. Every call owns
//     its buffers and creates its own stereo encoder. GenerateAll and
//     HashAll hash many molecules in parallel.
//
// Errors:
//
//	ErrNegativeDepth, ErrNilSeedGenerator, ErrNilFactory, ErrNilSuppression,
//	ErrNilGenerator, ErrNilFinder, ErrOptionViolation
//	    construction-time configuration errors.
//	ErrBondEndpoint
//	    call-time: a bond references an atom absent from the container.
//	    The call aborts without a partial result.
package atomhash
