// SPDX-License-Identifier: MIT
// File: elements.go
// Role: Factories that turn declared core stereo elements into geometry encoders.
package stereo

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/molhash/core"
)

type tetrahedralFactory struct{}

// TetrahedralFactory encodes declared tetrahedral centres. A ligand equal
// to the focus (implicit hydrogen) is ranked by the focus' own invariant.
func TetrahedralFactory() Factory { return tetrahedralFactory{} }

func (tetrahedralFactory) Create(c core.Container, _ [][]int) Encoder {
	var encs []Encoder
	for _, t := range c.Tetrahedrals() {
		focus := c.IndexOf(t.Focus)
		if focus < 0 {
			klog.V(4).Infof("stereo: tetrahedral focus %q not in container, skipped", t.Focus)
			continue
		}
		var ligands [4]int
		ok := true
		for i, l := range t.Ligands {
			if ligands[i] = c.IndexOf(l); ligands[i] < 0 {
				ok = false
			}
		}
		if !ok {
			klog.V(4).Infof("stereo: tetrahedral %q has an unresolved ligand, skipped", t.Focus)
			continue
		}
		encs = append(encs, NewGeometryEncoder(
			[]int{focus},
			NewBasicPermutationParity(ligands[:]...),
			PredefinedParity(t.Winding),
		))
	}
	return NewMulti(encs)
}

type doubleBondFactory struct{}

// DoubleBondFactory encodes declared double-bond configurations. Each side
// is ranked over (ligand, other substituent); with no other explicit
// substituent the double-bond atom itself stands in for it.
func DoubleBondFactory() Factory { return doubleBondFactory{} }

func (doubleBondFactory) Create(c core.Container, graph [][]int) Encoder {
	var encs []Encoder
	for _, d := range c.DoubleBondStereos() {
		u, v := c.IndexOf(d.Begin), c.IndexOf(d.End)
		x, y := c.IndexOf(d.Ligands[0]), c.IndexOf(d.Ligands[1])
		if u < 0 || v < 0 || x < 0 || y < 0 {
			klog.V(4).Infof("stereo: double bond %s=%s has an unresolved atom, skipped", d.Begin, d.End)
			continue
		}
		left, okL := otherSubstituent(graph[u], v, x, u)
		right, okR := otherSubstituent(graph[v], u, y, v)
		if !okL || !okR {
			klog.V(4).Infof("stereo: double bond %s=%s is not planar-trigonal, skipped", d.Begin, d.End)
			continue
		}
		encs = append(encs, NewGeometryEncoder(
			[]int{u, v},
			NewCombinedPermutationParity(
				NewBasicPermutationParity(x, left),
				NewBasicPermutationParity(y, right),
			),
			PredefinedParity(d.Conformation),
		))
	}
	return NewMulti(encs)
}

// otherSubstituent returns the neighbor of a double-bond atom that is
// neither its partner nor the declared ligand, or self when there is none.
// More than one such neighbor is not a valid double-bond centre.
func otherSubstituent(neighbors []int, partner, ligand, self int) (int, bool) {
	other := self
	for _, w := range neighbors {
		if w == partner || w == ligand {
			continue
		}
		if other != self {
			return 0, false
		}
		other = w
	}
	return other, true
}
