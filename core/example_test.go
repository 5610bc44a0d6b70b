package core_test

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

// ExampleMolecule demonstrates basic creation, mutation, and container queries.
func ExampleMolecule() {
	// 1) Acetic acid skeleton with implicit hydrogens.
	m := core.NewMolecule(core.WithTitle("acetic acid"))
	_ = m.AddAtom("c1", "C", core.WithImplicitH(3))
	_ = m.AddAtom("c2", "C")
	_ = m.AddAtom("o1", "O")
	_ = m.AddAtom("o2", "O", core.WithImplicitH(1))
	_, _ = m.AddBond("c1", "c2", core.OrderSingle)
	_, _ = m.AddBond("c2", "o1", core.OrderDouble)
	_, _ = m.AddBond("c2", "o2", core.OrderSingle)

	// 2) Inspect the container view.
	sum, _ := m.BondOrderSum("c2")
	fmt.Println("atoms:", m.AtomCount(), "bonds:", m.BondCount())
	fmt.Println("degree(c2):", m.Degree("c2"), "bond order sum:", sum)

	// 3) Remove the hydroxyl oxygen and its bond.
	_ = m.RemoveAtom("o2")
	fmt.Println("after removal:", m.AtomCount(), m.BondCount())

	// Output:
	// atoms: 4 bonds: 3
	// degree(c2): 3 bond order sum: 4
	// after removal: 3 2
}
