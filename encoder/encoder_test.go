package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/encoder"
	"github.com/katalvlaran/molhash/mix"
	"github.com/katalvlaran/molhash/suppress"
)

// acetaldehyde: C(H3)-C(H)=O plus a pseudo atom and an aromatic bond to it.
func fixture(t *testing.T) *core.Molecule {
	t.Helper()
	m := core.NewMolecule()
	require.NoError(t, m.AddAtom("c1", "C", core.WithImplicitH(3), core.WithMassNumber(13), core.WithHybridization(core.HybridSP3)))
	require.NoError(t, m.AddAtom("c2", "C", core.WithImplicitH(1), core.WithUnknownCharge()))
	require.NoError(t, m.AddAtom("o", "O", core.WithCharge(-1), core.WithRadicals(1)))
	require.NoError(t, m.AddAtom("r", "*"))
	_, _ = m.AddBond("c1", "c2", core.OrderSingle)
	_, _ = m.AddBond("c2", "o", core.OrderDouble)
	_, _ = m.AddBond("r", "o", core.OrderUnset, core.WithAromaticBond())

	return m
}

func TestBasic_Encode(t *testing.T) {
	m := fixture(t)
	c1, c2, o, r := m.Atom(0), m.Atom(1), m.Atom(2), m.Atom(3)

	tests := []struct {
		enc  encoder.Basic
		atom *core.Atom
		want int32
	}{
		{encoder.AtomicNumber, c1, 6},
		{encoder.AtomicNumber, r, encoder.UnknownAtomicNumber},
		{encoder.MassNumber, c1, 13},
		{encoder.MassNumber, c2, encoder.UnknownMassNumber},
		{encoder.FormalCharge, o, -1},
		{encoder.FormalCharge, c2, encoder.UnknownFormalCharge},
		{encoder.ConnectedAtoms, c1, 4},
		{encoder.ConnectedAtoms, c2, 3},
		{encoder.BondOrderSum, c2, 4},
		{encoder.BondOrderSum, o, encoder.UnknownBondOrderSum},
		{encoder.Hybridization, c1, int32(core.HybridSP3)},
		{encoder.Hybridization, o, encoder.UnknownHybridization},
		{encoder.FreeRadicals, o, 1},
		{encoder.FreeRadicals, c1, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.enc.Encode(tc.atom, m), "%s(%s)", tc.enc, tc.atom.ID)
	}
}

func TestBasic_Names(t *testing.T) {
	for _, b := range encoder.Basics() {
		got, err := encoder.ParseBasic(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := encoder.ParseBasic("colour")
	assert.ErrorIs(t, err, encoder.ErrUnknownEncoder)
	assert.Equal(t, "basic(99)", encoder.Basic(99).String())
}

func TestConjugate(t *testing.T) {
	m := fixture(t)
	c1 := m.Atom(0)

	_, err := encoder.Conjugate(encoder.AtomicNumber, nil)
	assert.ErrorIs(t, err, encoder.ErrNilEncoder)

	empty, err := encoder.Conjugate()
	require.NoError(t, err)
	assert.Equal(t, int32(179426549), empty.Encode(c1, m))
	assert.Equal(t, empty.Encode(c1, m), empty.Encode(m.Atom(2), m), "no encoders ⇒ constant")

	one, err := encoder.Conjugate(encoder.AtomicNumber)
	require.NoError(t, err)
	base := int32(179426549)
	assert.Equal(t, 31*base+6, one.Encode(c1, m))

	ab, _ := encoder.Conjugate(encoder.AtomicNumber, encoder.ConnectedAtoms)
	ba, _ := encoder.Conjugate(encoder.ConnectedAtoms, encoder.AtomicNumber)
	assert.NotEqual(t, ab.Encode(c1, m), ba.Encode(c1, m), "order is part of the result")
	assert.Equal(t, 2, ab.Len())
}

func TestFunc(t *testing.T) {
	f := encoder.Func(func(a *core.Atom, _ core.Container) int32 { return int32(len(a.ID)) })
	m := fixture(t)
	assert.Equal(t, int32(2), f.Encode(m.Atom(0), m))
}

func TestSeedGenerator(t *testing.T) {
	_, err := encoder.NewSeedGenerator(nil)
	assert.ErrorIs(t, err, encoder.ErrNilEncoder)

	m := fixture(t)
	g, err := encoder.NewSeedGenerator(encoder.AtomicNumber)
	require.NoError(t, err)

	// n=4, nothing suppressed: seed = 9803 % 4 = 3.
	seeds := g.Generate(m, suppress.None())
	require.Len(t, seeds, 4)
	assert.Equal(t, mix.Distribute(3*31+6), seeds[0])
	assert.Equal(t, seeds[0], seeds[1], "two carbons")
	assert.Equal(t, mix.Distribute(3*31+8), seeds[2])

	// Suppress the pseudo atom: m = 3, seed = 9803 % 3 = 2.
	sup := g.Generate(m, suppress.Of(4, 3))
	assert.Equal(t, mix.Distribute(2*31+6), sup[0])
	assert.NotZero(t, sup[3], "suppressed atoms still get a seed")

	// A single unsuppressed atom falls back to seed 1.
	one := g.Generate(m, suppress.Of(4, 1, 2, 3))
	assert.Equal(t, mix.Distribute(31+6), one[0])
}
