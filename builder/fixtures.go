// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// fixtures.go - named molecules with implicit hydrogens.
package builder

import "github.com/katalvlaran/molhash/core"

func titled(title string) []core.MoleculeOption {
	return []core.MoleculeOption{core.WithTitle(title)}
}

// Propane is C-C-C; atoms c0, c1, c2.
func Propane() (*core.Molecule, error) {
	return BuildMolecule(titled("propane"), nil, Chain("c", "C", 3), Hydrogenate())
}

// Chloropropane is 2-chloropropane C-C(Cl)-C; atoms c0, c1, c2, cl.
func Chloropropane() (*core.Molecule, error) {
	return BuildMolecule(titled("2-chloropropane"), nil,
		Chain("c", "C", 3),
		Attach("c1", "cl", "Cl", core.OrderSingle),
		Hydrogenate(),
	)
}

// Benzene is a Kekulé C6 ring; atoms c0..c5.
func Benzene() (*core.Molecule, error) {
	return BuildMolecule(titled("benzene"), nil, Kekule("c", "C", 6), Hydrogenate())
}

// Cyclohexane is a saturated C6 ring; atoms c0..c5.
func Cyclohexane() (*core.Molecule, error) {
	return BuildMolecule(titled("cyclohexane"), nil, Ring("c", "C", 6), Hydrogenate())
}

// Cubane is the C8 cube cage; atoms c0..c7.
func Cubane() (*core.Molecule, error) {
	return BuildMolecule(titled("cubane"), nil, Polyhedrane("c", "C", Cube), Hydrogenate())
}

// Butene is but-2-ene c0-c1=c2-c3 with the given double-bond configuration.
func Butene(conf core.Conformation) (*core.Molecule, error) {
	return BuildMolecule(titled("but-2-ene"), nil,
		Chain("c", "C", 2),
		Chain("d", "C", 2),
		Link("c1", "d0", core.OrderDouble),
		Hydrogenate(),
		DoubleBond("c1", "d0", "c0", "d1", conf),
	)
}

// Bromochlorofluoromethane is CHFClBr with the given winding of
// (F, Cl, Br, H) around the carbon; atoms c0 (C), c1 (F), cl, br.
func Bromochlorofluoromethane(w core.Winding) (*core.Molecule, error) {
	return BuildMolecule(titled("bromochlorofluoromethane"), nil,
		Star("c", "C", "F", 1),
		Attach("c0", "cl", "Cl", core.OrderSingle),
		Attach("c0", "br", "Br", core.OrderSingle),
		Hydrogenate(),
		Tetrahedral("c0", [4]string{"c1", "cl", "br", "c0"}, w),
	)
}

// RingMixture is a disconnected cyclohexane plus two cyclopropanes. Every
// carbon has the same seed and two identical neighbors, so refinement alone
// cannot separate the hexagon from the triangles.
func RingMixture() (*core.Molecule, error) {
	return BuildMolecule(titled("cyclohexane.cyclopropane.cyclopropane"), nil,
		Ring("h", "C", 6),
		Ring("t", "C", 3),
		Ring("u", "C", 3),
		Hydrogenate(),
	)
}

// Decalin is bicyclo[4.4.0]decane: ring a0..a5 fused on the bond a0-a5 with
// a second ring closed through b0..b3.
func Decalin() (*core.Molecule, error) {
	return BuildMolecule(titled("decalin"), nil,
		Ring("a", "C", 6),
		Chain("b", "C", 4),
		Link("a0", "b0", core.OrderSingle),
		Link("b3", "a5", core.OrderSingle),
		Hydrogenate(),
	)
}
