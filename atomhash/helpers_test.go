// SPDX-License-Identifier: MIT
// Package atomhash_test contains shared fixtures for the atomhash tests.
package atomhash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/encoder"
	"github.com/katalvlaran/molhash/stereo"
)

// atomic assembles a generator from options and fails the test on error.
func atomic(t testing.TB, opts ...atomhash.Option) atomhash.AtomHashGenerator {
	t.Helper()
	g, err := atomhash.NewAtomic(opts...)
	require.NoError(t, err)
	return g
}

// hashes runs g over m and fails the test on error.
func hashes(t testing.TB, g atomhash.AtomHashGenerator, m core.Container) []int64 {
	t.Helper()
	h, err := g.Generate(m)
	require.NoError(t, err)
	require.Len(t, h, m.AtomCount())
	return h
}

// byID maps atom IDs to their hashes.
func byID(m *core.Molecule, h []int64) map[string]int64 {
	out := make(map[string]int64, len(h))
	for i, v := range h {
		out[m.Atom(i).ID] = v
	}
	return out
}

// distinct counts distinct values.
func distinct(h []int64) int {
	seen := make(map[int64]struct{}, len(h))
	for _, v := range h {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// basic builds a BasicGenerator with the element and connectivity encoders.
func basic(t testing.TB, depth int, opts ...atomhash.GeneratorOption) *atomhash.BasicGenerator {
	t.Helper()
	conj, err := encoder.Conjugate(encoder.AtomicNumber, encoder.ConnectedAtoms)
	require.NoError(t, err)
	seeds, err := encoder.NewSeedGenerator(conj)
	require.NoError(t, err)
	g, err := atomhash.NewBasicGenerator(seeds, depth, opts...)
	require.NoError(t, err)
	return g
}

// countingEncoder records Encode and Reset calls; Encode reports always.
type countingEncoder struct {
	always  bool
	encodes int
	resets  int
}

func (e *countingEncoder) Encode(_, _ []int64) bool {
	e.encodes++
	return e.always
}

func (e *countingEncoder) Reset() { e.resets++ }

// factoryOf returns a factory that always hands out enc.
func factoryOf(enc stereo.Encoder) stereo.Factory {
	return stereo.FactoryFunc(func(core.Container, [][]int) stereo.Encoder { return enc })
}

// brokenContainer reports a bond to an atom it does not hold.
type brokenContainer struct {
	*core.Molecule
}

func (b brokenContainer) Bonds() []*core.Bond {
	return append(b.Molecule.Bonds(), &core.Bond{ID: "ghost", Begin: b.Atom(0).ID, End: "nowhere", Order: core.OrderSingle})
}
