// SPDX-License-Identifier: MIT
// Package core_test verifies core.Molecule method-level contracts.
//
// Purpose:
//   - Lock in atom/bond lifecycle rules and sentinel errors.
//   - Anchor ordering guarantees (dense index = insertion order, Bonds() insertion order).
//   - Validate stereo element admission and Permute/Clone semantics.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/core"
)

// ethanol builds C-C-O with implicit hydrogens.
func ethanol(t *testing.T) *core.Molecule {
	t.Helper()
	m := core.NewMolecule(core.WithTitle("ethanol"))
	require.NoError(t, m.AddAtom("c1", "C", core.WithImplicitH(3)))
	require.NoError(t, m.AddAtom("c2", "C", core.WithImplicitH(2)))
	require.NoError(t, m.AddAtom("o", "O", core.WithImplicitH(1)))
	_, err := m.AddBond("c1", "c2", core.OrderSingle)
	require.NoError(t, err)
	_, err = m.AddBond("c2", "o", core.OrderSingle)
	require.NoError(t, err)

	return m
}

func TestMolecule_AddAtom(t *testing.T) {
	m := core.NewMolecule()

	assert.ErrorIs(t, m.AddAtom("", "C"), core.ErrEmptyAtomID)
	assert.ErrorIs(t, m.AddAtom("x", "Qq"), core.ErrUnknownElement)

	require.NoError(t, m.AddAtom("a", "Cl", core.WithCharge(-1), core.WithMassNumber(37)))
	assert.ErrorIs(t, m.AddAtom("a", "C"), core.ErrDuplicateAtom)
	require.NoError(t, m.AddAtom("r", "R"))

	a := m.Atom(0)
	require.NotNil(t, a)
	assert.Equal(t, 17, a.AtomicNumber)
	assert.Equal(t, 37, a.MassNumber)
	assert.Equal(t, -1, a.FormalCharge)
	assert.Equal(t, 0, m.Atom(1).AtomicNumber, "pseudo atom has Z=0")
	assert.Nil(t, m.Atom(2))
	assert.Equal(t, 1, m.IndexOf("r"))
	assert.Equal(t, -1, m.IndexOf("missing"))
}

func TestMolecule_AddBond(t *testing.T) {
	m := ethanol(t)

	_, err := m.AddBond("c1", "c1", core.OrderSingle)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = m.AddBond("c1", "c2", core.OrderSingle)
	assert.ErrorIs(t, err, core.ErrMultiBondNotAllowed)
	_, err = m.AddBond("c1", "zz", core.OrderSingle)
	assert.ErrorIs(t, err, core.ErrAtomNotFound)

	bonds := m.Bonds()
	require.Len(t, bonds, 2)
	assert.Equal(t, "b1", bonds[0].ID)
	assert.Equal(t, "b2", bonds[1].ID)
	assert.Equal(t, "o", bonds[1].Other("c2"))
	assert.Equal(t, "", bonds[1].Other("c1"))

	assert.Equal(t, 2, m.Degree("c2"))
	sum, ok := m.BondOrderSum("c2")
	assert.True(t, ok)
	assert.Equal(t, 2, sum)

	nbs, err := m.Neighbors("c2")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "o"}, nbs)
}

func TestMolecule_MultiBondsAndUnsetOrder(t *testing.T) {
	m := core.NewMolecule(core.WithMultiBonds())
	require.NoError(t, m.AddAtom("a", "C"))
	require.NoError(t, m.AddAtom("b", "C"))
	_, err := m.AddBond("a", "b", core.OrderSingle)
	require.NoError(t, err)
	id, err := m.AddBond("a", "b", core.OrderUnset, core.WithAromaticBond())
	require.NoError(t, err)

	assert.Equal(t, 2, m.Degree("a"))
	_, ok := m.BondOrderSum("a")
	assert.False(t, ok, "unset order makes the sum undefined")

	require.NoError(t, m.RemoveBond(id))
	assert.True(t, m.HasBond("a", "b"))
	sum, ok := m.BondOrderSum("a")
	assert.True(t, ok)
	assert.Equal(t, 1, sum)
	assert.ErrorIs(t, m.RemoveBond(id), core.ErrBondNotFound)
}

func TestMolecule_RemoveAtom(t *testing.T) {
	m := ethanol(t)

	assert.ErrorIs(t, m.RemoveAtom(""), core.ErrEmptyAtomID)
	assert.ErrorIs(t, m.RemoveAtom("zz"), core.ErrAtomNotFound)

	require.NoError(t, m.RemoveAtom("c2"))
	assert.Equal(t, 2, m.AtomCount())
	assert.Equal(t, 1, m.IndexOf("o"), "later atoms shift down")
	assert.Equal(t, 0, m.BondCount())
	assert.False(t, m.HasBond("c1", "c2"))
	assert.Equal(t, 0, m.Degree("c1"))
}

func TestMolecule_SetImplicitH(t *testing.T) {
	m := ethanol(t)
	before := m.Atom(2)

	require.NoError(t, m.SetImplicitH("o", 0))
	assert.Equal(t, 1, before.ImplicitH, "old pointer keeps the old value")
	assert.Equal(t, 0, m.Atom(2).ImplicitH)
	assert.ErrorIs(t, m.SetImplicitH("zz", 1), core.ErrAtomNotFound)
}

func TestMolecule_Stereo(t *testing.T) {
	m := core.NewMolecule()
	for _, a := range []struct{ id, sym string }{{"c", "C"}, {"f", "F"}, {"cl", "Cl"}, {"br", "Br"}, {"x", "C"}} {
		require.NoError(t, m.AddAtom(a.id, a.sym))
	}
	for _, nb := range []string{"f", "cl", "br"} {
		_, err := m.AddBond("c", nb, core.OrderSingle)
		require.NoError(t, err)
	}

	ok := core.Tetrahedral{Focus: "c", Ligands: [4]string{"f", "cl", "br", "c"}, Winding: core.Clockwise}
	require.NoError(t, m.AddTetrahedral(ok))

	bad := []core.Tetrahedral{
		{Focus: "c", Ligands: [4]string{"f", "cl", "x", "c"}, Winding: core.Clockwise},
		{Focus: "c", Ligands: [4]string{"f", "f", "br", "c"}, Winding: core.Clockwise},
		{Focus: "c", Ligands: [4]string{"f", "cl", "br", "c"}},
	}
	for _, tc := range bad {
		assert.ErrorIs(t, m.AddTetrahedral(tc), core.ErrBadStereo)
	}
	assert.ErrorIs(t, m.AddTetrahedral(core.Tetrahedral{Focus: "zz"}), core.ErrAtomNotFound)

	require.Len(t, m.Tetrahedrals(), 1)
	require.NoError(t, m.RemoveAtom("br"))
	assert.Empty(t, m.Tetrahedrals(), "element dropped with its ligand")
}

func TestMolecule_DoubleBondStereo(t *testing.T) {
	m := core.NewMolecule()
	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		require.NoError(t, m.AddAtom(id, "C"))
	}
	_, _ = m.AddBond("c1", "c2", core.OrderSingle)
	dbl, _ := m.AddBond("c2", "c3", core.OrderDouble)
	_, _ = m.AddBond("c3", "c4", core.OrderSingle)

	require.NoError(t, m.AddDoubleBondStereo(core.DoubleBondStereo{
		Begin: "c2", End: "c3", Ligands: [2]string{"c1", "c4"}, Conformation: core.Opposite,
	}))
	assert.ErrorIs(t, m.AddDoubleBondStereo(core.DoubleBondStereo{
		Begin: "c1", End: "c3", Ligands: [2]string{"c2", "c4"}, Conformation: core.Opposite,
	}), core.ErrBadStereo)
	assert.ErrorIs(t, m.AddDoubleBondStereo(core.DoubleBondStereo{
		Begin: "c2", End: "c3", Ligands: [2]string{"c3", "c4"}, Conformation: core.Together,
	}), core.ErrBadStereo)

	require.NoError(t, m.RemoveBond(dbl))
	assert.Empty(t, m.DoubleBondStereos())
}

func TestMolecule_PermuteAndClone(t *testing.T) {
	m := ethanol(t)

	_, err := m.Permute([]int{0, 1})
	assert.ErrorIs(t, err, core.ErrBadPermutation)
	_, err = m.Permute([]int{0, 0, 1})
	assert.ErrorIs(t, err, core.ErrBadPermutation)

	p, err := m.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "o", p.Atom(0).ID)
	assert.Equal(t, 1, p.IndexOf("c1"))
	assert.Equal(t, m.BondCount(), p.BondCount())
	assert.Equal(t, "ethanol", p.Title())

	c := m.Clone()
	require.NoError(t, c.RemoveAtom("o"))
	assert.Equal(t, 3, m.AtomCount(), "clone is independent")
	id, err := c.AddBond("c1", "c1", core.OrderSingle)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Empty(t, id)
}

func TestElements(t *testing.T) {
	z, ok := core.AtomicNumber("Br")
	assert.True(t, ok)
	assert.Equal(t, 35, z)
	assert.Equal(t, 4, core.DefaultValence("C"))
	assert.True(t, core.IsPseudo("*"))
	assert.Equal(t, "sp3", core.HybridSP3.String())
}

func TestMolecule_SelfBondCountsTwice(t *testing.T) {
	m := core.NewMolecule(core.WithLoops())
	require.NoError(t, m.AddAtom("a", "C"))
	require.NoError(t, m.AddAtom("b", "C"))
	_, err := m.AddBond("a", "a", core.OrderDouble)
	require.NoError(t, err)
	_, err = m.AddBond("a", "b", core.OrderSingle)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Degree("a"))
	sum, ok := m.BondOrderSum("a")
	require.True(t, ok)
	assert.Equal(t, 5, sum, "2+2 for the loop, 1 for a-b")

	sum, ok = m.BondOrderSum("b")
	require.True(t, ok)
	assert.Equal(t, 1, sum)
}
