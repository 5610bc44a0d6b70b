// SPDX-License-Identifier: MIT
package equiv

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/molhash/core"
)

// Finder proposes an ascending set of vertex indices suspected to be
// symmetric only because the refinement could not tell them apart.
type Finder interface {
	Find(invariants []int64, c core.Container, graph [][]int) []int
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(invariants []int64, c core.Container, graph [][]int) []int

// Find calls f.
func (f FinderFunc) Find(invariants []int64, c core.Container, graph [][]int) []int {
	return f(invariants, c, graph)
}

// cyclicClasses groups cyclic vertices by invariant value, in ascending
// value order. Vertices within a class are ascending.
func cyclicClasses(invariants []int64, graph [][]int) [][]int {
	cyclic := Cyclic(graph)
	classes := treemap.NewWith(utils.Int64Comparator)
	for v, isCyclic := range cyclic {
		if !isCyclic {
			continue
		}
		members, _ := classes.Get(invariants[v])
		list, _ := members.([]int)
		classes.Put(invariants[v], append(list, v))
	}

	out := make([][]int, 0, classes.Size())
	it := classes.Iterator()
	for it.Next() {
		out = append(out, it.Value().([]int))
	}
	return out
}

type minimumCyclicSet struct{}

// MinimumCyclicSet returns the smallest class of size > 1 of equivalent
// cyclic vertices; among equal sizes the class with the smallest invariant.
func MinimumCyclicSet() Finder { return minimumCyclicSet{} }

func (minimumCyclicSet) Find(invariants []int64, _ core.Container, graph [][]int) []int {
	var best []int
	for _, class := range cyclicClasses(invariants, graph) {
		if len(class) > 1 && (best == nil || len(class) < len(best)) {
			best = class
		}
	}
	return best
}

type minimumCyclicSetUnion struct{}

// MinimumCyclicSetUnion returns the union of every minimum-size class.
func MinimumCyclicSetUnion() Finder { return minimumCyclicSetUnion{} }

func (minimumCyclicSetUnion) Find(invariants []int64, _ core.Container, graph [][]int) []int {
	classes := cyclicClasses(invariants, graph)
	minSize := 0
	for _, class := range classes {
		if len(class) > 1 && (minSize == 0 || len(class) < minSize) {
			minSize = len(class)
		}
	}
	var out []int
	for _, class := range classes {
		if len(class) == minSize {
			out = append(out, class...)
		}
	}
	sort.Ints(out)
	return out
}

type allCyclicSet struct{}

// AllCyclicSet returns every cyclic vertex that shares its invariant with
// another cyclic vertex.
func AllCyclicSet() Finder { return allCyclicSet{} }

func (allCyclicSet) Find(invariants []int64, _ core.Container, graph [][]int) []int {
	var out []int
	for _, class := range cyclicClasses(invariants, graph) {
		if len(class) > 1 {
			out = append(out, class...)
		}
	}
	sort.Ints(out)
	return out
}
