// SPDX-License-Identifier: MIT
// File: basic.go
// Role: Iterative neighbor-mixing refinement with interleaved stereo convergence.
//
// Determinism:
//   - Output depends only on the container, the encoders and depth; the
//     neighbor fold is independent of adjacency order.
//
// Concurrency:
//   - BasicGenerator is immutable. Buffers and the stereo encoder are per call.
package atomhash

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/encoder"
	"github.com/katalvlaran/molhash/mix"
	"github.com/katalvlaran/molhash/stereo"
	"github.com/katalvlaran/molhash/suppress"
)

// BasicGenerator is the unperturbed atom hash generator.
type BasicGenerator struct {
	seeds       *encoder.SeedGenerator
	depth       int
	factory     stereo.Factory
	suppression suppress.AtomSuppression
	mixer       mix.Mixer
	passLimit   int // 0 = unbounded
}

// GeneratorOption customizes a BasicGenerator.
type GeneratorOption func(*BasicGenerator)

// WithStereo sets the stereo encoder factory (default stereo.EmptyFactory).
func WithStereo(f stereo.Factory) GeneratorOption {
	return func(g *BasicGenerator) { g.factory = f }
}

// WithSuppression sets the suppression policy (default suppress.Unsuppressed()).
func WithSuppression(s suppress.AtomSuppression) GeneratorOption {
	return func(g *BasicGenerator) { g.suppression = s }
}

// WithMixer sets the pseudorandom mixer used by the neighbor fold.
// The seed generator keeps its own mixer.
func WithMixer(m mix.Mixer) GeneratorOption {
	return func(g *BasicGenerator) { g.mixer = m }
}

// WithStereoPassLimit bounds each stereo convergence loop to k passes.
// k = 0 leaves it unbounded; a truncated loop logs a warning.
func WithStereoPassLimit(k int) GeneratorOption {
	return func(g *BasicGenerator) { g.passLimit = k }
}

// NewBasicGenerator returns a generator running depth mixing rounds over
// the seeds produced by seeds.
//
// Errors:
//   - ErrNilSeedGenerator, ErrNegativeDepth, ErrNilFactory,
//     ErrNilSuppression, ErrOptionViolation (negative pass limit).
func NewBasicGenerator(seeds *encoder.SeedGenerator, depth int, opts ...GeneratorOption) (*BasicGenerator, error) {
	if seeds == nil {
		return nil, ErrNilSeedGenerator
	}
	if depth < 0 {
		return nil, fmt.Errorf("NewBasicGenerator: depth=%d: %w", depth, ErrNegativeDepth)
	}
	g := &BasicGenerator{
		seeds:       seeds,
		depth:       depth,
		factory:     stereo.EmptyFactory,
		suppression: suppress.Unsuppressed(),
		mixer:       seeds.Mixer(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.factory == nil {
		return nil, ErrNilFactory
	}
	if g.suppression == nil {
		return nil, ErrNilSuppression
	}
	if g.passLimit < 0 {
		return nil, fmt.Errorf("NewBasicGenerator: stereo pass limit %d: %w", g.passLimit, ErrOptionViolation)
	}
	return g, nil
}

// Depth returns the number of mixing rounds.
func (g *BasicGenerator) Depth() int { return g.depth }

// Generate returns one hash per atom. Suppressed atoms hash to 0.
//
// Errors:
//   - ErrBondEndpoint from ToAdjList.
//
// Complexity:
//   - Time O(depth · Σ deg(v)²) worst case (the duplicate scan is linear in
//     the number of distinct neighbor values), Space O(n + b).
func (g *BasicGenerator) Generate(c core.Container) ([]int64, error) {
	state, err := g.prepare(c)
	if err != nil {
		return nil, err
	}
	return g.refine(Clone(state.seeds), state), nil
}

// callState is everything a single Generate call derives from the container.
type callState struct {
	graph      [][]int
	suppressed suppress.Suppressed
	seeds      []int64
	stereo     stereo.Encoder
}

func (g *BasicGenerator) prepare(c core.Container) (*callState, error) {
	graph, err := ToAdjList(c)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	suppressed := g.suppression.Suppress(c)

	return &callState{
		graph:      graph,
		suppressed: suppressed,
		seeds:      g.seeds.Generate(c, suppressed),
		stereo:     g.factory.Create(c, graph),
	}, nil
}

// refine runs the refinement in place on current and returns it.
func (g *BasicGenerator) refine(current []int64, s *callState) []int64 {
	n := len(current)
	next := Clone(current)

	g.converge(s.stereo, current, next)

	maxDeg := 0
	for _, row := range s.graph {
		maxDeg = max(maxDeg, len(row))
	}
	unique := make([]int64, maxDeg)
	included := make([]int64, maxDeg)

	for round := 0; round < g.depth; round++ {
		for v := 0; v < n; v++ {
			next[v] = g.next(s.graph, v, current, unique, included, s.suppressed)
		}
		CopyN(current, next, n)
		g.converge(s.stereo, current, next)
	}

	for _, v := range s.suppressed.Indices() {
		current[v] = 0
	}
	return current
}

// converge repeats the stereo step until it reports no change.
func (g *BasicGenerator) converge(enc stereo.Encoder, current, next []int64) {
	for pass := 1; enc.Encode(current, next); pass++ {
		CopyN(current, next, len(current))
		if g.passLimit > 0 && pass >= g.passLimit {
			klog.Warningf("atomhash: stereo convergence stopped after %d passes", pass)
			return
		}
	}
}

// next mixes the neighbors of v into a new invariant.
//
// A neighbor value seen for the first time is XORed in as is; each repeat
// XORs a further rotation of that value's previous contribution, so the
// result depends on the multiset of neighbor values only. Suppressed
// neighbors are skipped; they reach v only through its seed. unique and
// included are scratch buffers; only the first nUnique entries are live.
func (g *BasicGenerator) next(graph [][]int, v int, current, unique, included []int64, suppressed suppress.Suppressed) int64 {
	if suppressed.Contains(v) {
		return current[v]
	}

	invariant := g.mixer.Distribute(current[v])
	nUnique := 0
	for _, w := range graph[v] {
		if suppressed.Contains(w) {
			continue
		}
		adj := current[w]
		i := 0
		for i < nUnique && unique[i] != adj {
			i++
		}
		if i == nUnique {
			unique[nUnique] = adj
			included[nUnique] = adj
			nUnique++
			invariant ^= adj
			continue
		}
		included[i] = g.mixer.Rotate(included[i])
		invariant ^= included[i]
	}
	return invariant
}
