// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// polyhedra.go - cage skeletons of the five Platonic solids.
//
// Each skeleton is a fixed edge list with u < v, sorted by (u, v) within
// each group. The lists are part of the fixture contract: changing one
// changes atom IDs and bond IDs of every Polyhedrane built from it.
package builder

// Polyhedron names a Platonic cage skeleton.
type Polyhedron int

// Supported skeletons. Carbon cages: Tetrahedron (tetrahedrane), Cube
// (cubane), Dodecahedron (dodecahedrane). Octahedron and Icosahedron are the
// closo-borane cages.
const (
	Tetrahedron  Polyhedron = iota // V=4,  E=6,  3-regular
	Cube                           // V=8,  E=12, 3-regular
	Octahedron                     // V=6,  E=12, 4-regular
	Dodecahedron                   // V=20, E=30, 3-regular
	Icosahedron                    // V=12, E=30, 5-regular
)

// String returns the solid's name.
func (p Polyhedron) String() string {
	if s, ok := cages[p]; ok {
		return s.name
	}
	return "Unknown"
}

type cage struct {
	name  string
	atoms int
	bonds [][2]int
}

var cages = map[Polyhedron]cage{
	Tetrahedron: {"Tetrahedron", 4, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}},
	// Two squares 0-3 and 4-7 joined by verticals.
	Cube: {"Cube", 8, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {0, 3},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	}},
	// Poles 0 and 1 over the equator 2-4-3-5.
	Octahedron: {"Octahedron", 6, [][2]int{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	}},
	// Pentagons 0-4 and 5-9, middle 10-cycle 10..19, spokes to alternate
	// middle atoms.
	Dodecahedron: {"Dodecahedron", 20, [][2]int{
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	}},
	// Pole 0, upper pentagon 1-5, lower pentagon 6-10, pole 11.
	Icosahedron: {"Icosahedron", 12, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	}},
}
