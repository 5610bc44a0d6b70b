// SPDX-License-Identifier: MIT
package encoder

import (
	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/mix"
	"github.com/katalvlaran/molhash/suppress"
)

// SeedGenerator produces the initial invariant of every atom.
// It is immutable and safe for concurrent use.
type SeedGenerator struct {
	encoder AtomEncoder
	mixer   mix.Mixer
}

// SeedOption customizes a SeedGenerator.
type SeedOption func(*SeedGenerator)

// WithMixer overrides the pseudorandom mixer (default xorshift).
func WithMixer(m mix.Mixer) SeedOption {
	return func(g *SeedGenerator) { g.mixer = m }
}

// NewSeedGenerator returns a generator over the given encoder.
//
// Errors:
//   - ErrNilEncoder if enc is nil.
func NewSeedGenerator(enc AtomEncoder, opts ...SeedOption) (*SeedGenerator, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	g := &SeedGenerator{encoder: enc, mixer: mix.Default}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Mixer returns the generator's mixer.
func (g *SeedGenerator) Mixer() mix.Mixer { return g.mixer }

// Generate returns seeds[i] = Distribute(seed*31 + encode(atom i)), where
// seed = 9803 % m for m = unsuppressed atom count > 1 and 1 otherwise.
// Suppressed atoms receive a seed as well; zeroing them is the caller's job.
// Complexity: O(n · cost(encode)).
func (g *SeedGenerator) Generate(c core.Container, suppressed suppress.Suppressed) []int64 {
	n := c.AtomCount()
	m := n - suppressed.Count()
	seed := int64(1)
	if m > 1 {
		seed = int64(9803 % m)
	}

	hashes := make([]int64, n)
	for i := 0; i < n; i++ {
		hashes[i] = g.mixer.Distribute(seed*31 + int64(g.encoder.Encode(c.Atom(i), c)))
	}
	return hashes
}
