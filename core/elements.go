// SPDX-License-Identifier: MIT
// File: elements.go
// Role: Element table (symbol → atomic number, default valence).
//
// Pseudo-atom labels map to atomic number 0 and valence 0.
package core

type element struct {
	z       int
	valence int // lowest common valence; 0 = no implicit hydrogens
}

var elements = map[string]element{
	"H": {1, 1}, "He": {2, 0},
	"Li": {3, 1}, "Be": {4, 2}, "B": {5, 3}, "C": {6, 4}, "N": {7, 3}, "O": {8, 2}, "F": {9, 1}, "Ne": {10, 0},
	"Na": {11, 1}, "Mg": {12, 2}, "Al": {13, 3}, "Si": {14, 4}, "P": {15, 3}, "S": {16, 2}, "Cl": {17, 1}, "Ar": {18, 0},
	"K": {19, 1}, "Ca": {20, 2}, "Sc": {21, 0}, "Ti": {22, 0}, "V": {23, 0}, "Cr": {24, 0}, "Mn": {25, 0},
	"Fe": {26, 0}, "Co": {27, 0}, "Ni": {28, 0}, "Cu": {29, 0}, "Zn": {30, 0},
	"Ga": {31, 3}, "Ge": {32, 4}, "As": {33, 3}, "Se": {34, 2}, "Br": {35, 1}, "Kr": {36, 0},
	"Rb": {37, 1}, "Sr": {38, 2}, "Ag": {47, 0}, "Cd": {48, 0},
	"In": {49, 3}, "Sn": {50, 4}, "Sb": {51, 3}, "Te": {52, 2}, "I": {53, 1}, "Xe": {54, 0},
	"Cs": {55, 1}, "Ba": {56, 2}, "Pt": {78, 0}, "Au": {79, 0}, "Hg": {80, 0},
	"Tl": {81, 3}, "Pb": {82, 4}, "Bi": {83, 3},
}

var pseudoSymbols = map[string]struct{}{
	"R": {}, "*": {}, "A": {}, "Q": {}, "L": {}, "LP": {}, "R#": {},
}

// AtomicNumber returns Z for an element symbol. Pseudo-atom labels
// ("R", "*", "A", "Q", …) return (0, true); unknown symbols return (0, false).
// Complexity: O(1).
func AtomicNumber(symbol string) (int, bool) {
	if e, ok := elements[symbol]; ok {
		return e.z, true
	}
	if _, ok := pseudoSymbols[symbol]; ok {
		return 0, true
	}

	return 0, false
}

// DefaultValence returns the lowest common valence of an element, or 0 for
// pseudo atoms, noble gases, metals and unknown symbols.
func DefaultValence(symbol string) int {
	return elements[symbol].valence
}

// IsPseudo reports whether symbol is a pseudo-atom label.
func IsPseudo(symbol string) bool {
	_, ok := pseudoSymbols[symbol]
	return ok
}
