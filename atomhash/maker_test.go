package atomhash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/builder"
	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/encoder"
)

func TestNewAtomic_Defaults(t *testing.T) {
	g := atomic(t)
	_, ok := g.(*atomhash.BasicGenerator)
	require.True(t, ok, "no perturbation by default")
	assert.Equal(t, 0, g.(*atomhash.BasicGenerator).Depth())

	m := builder.Must(builder.Chloropropane())
	assert.Equal(t, 1, distinct(hashes(t, g, m)), "no encoders: every seed is equal")
}

func TestNewAtomic_OptionViolations(t *testing.T) {
	cases := map[string]atomhash.Option{
		"nil encoder":     atomhash.Encode(encoder.AtomicNumber, nil),
		"nil suppression": atomhash.SuppressWith(nil),
		"nil factory":     atomhash.StereoWith(nil),
		"nil finder":      atomhash.PerturbWith(nil),
		"pass limit":      atomhash.StereoPassLimit(-2),
		"nil mixer":       atomhash.Pseudorandom(nil),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := atomhash.NewAtomic(opt)
			assert.ErrorIs(t, err, atomhash.ErrOptionViolation)
			_, err = atomhash.NewMolecular(opt)
			assert.ErrorIs(t, err, atomhash.ErrOptionViolation)
		})
	}

	_, err := atomhash.NewAtomic(atomhash.Depth(-1))
	assert.ErrorIs(t, err, atomhash.ErrNegativeDepth)
}

func TestNewAtomic_EncoderOrderIsCanonical(t *testing.T) {
	m := builder.Must(builder.Decalin())
	a := atomic(t, atomhash.Depth(2), atomhash.Elemental(), atomhash.Connectivity(), atomhash.BondOrders())
	b := atomic(t, atomhash.Depth(2), atomhash.BondOrders(), atomhash.Connectivity(), atomhash.Elemental(), atomhash.Elemental())
	c := atomic(t, atomhash.Depth(2), atomhash.Use(encoder.BondOrderSum, encoder.AtomicNumber, encoder.ConnectedAtoms))

	assert.Equal(t, hashes(t, a, m), hashes(t, b, m))
	assert.Equal(t, hashes(t, a, m), hashes(t, c, m))
}

func TestNewAtomic_MatchesHandAssembly(t *testing.T) {
	m := builder.Must(builder.Chloropropane())
	g := atomic(t, atomhash.Depth(3), atomhash.Elemental(), atomhash.Connectivity())
	assert.Equal(t, hashes(t, basic(t, 3), m), hashes(t, g, m))
}

func TestNewAtomic_Perturbed(t *testing.T) {
	g := atomic(t, atomhash.Depth(4), atomhash.Elemental(), atomhash.Connectivity(), atomhash.Perturbed())
	_, ok := g.(*atomhash.PerturbedGenerator)
	require.True(t, ok)

	m := builder.Must(builder.RingMixture())
	assert.Equal(t, 2, distinct(hashes(t, g, m)))
}

func TestNewAtomic_CustomEncoder(t *testing.T) {
	m := builder.Must(builder.Propane())
	byPosition := encoder.Func(func(a *core.Atom, _ core.Container) int32 { return int32(len(a.ID)) + int32(a.ID[1]) })

	plain := atomic(t, atomhash.Depth(1), atomhash.Elemental())
	custom := atomic(t, atomhash.Depth(1), atomhash.Elemental(), atomhash.Encode(byPosition))

	assert.Equal(t, 2, distinct(hashes(t, plain, m)))
	assert.Equal(t, 3, distinct(hashes(t, custom, m)))
}

func TestNewAtomic_SuppressPseudoAtoms(t *testing.T) {
	m := builder.Must(builder.BuildMolecule(nil, nil,
		builder.Chain("c", "C", 3),
		builder.Attach("c0", "r", "R", core.OrderSingle),
	))
	g := atomic(t, atomhash.Depth(2), atomhash.Elemental(), atomhash.SuppressPseudoAtoms())
	h := hashes(t, g, m)
	assert.Zero(t, h[m.IndexOf("r")])
	assert.NotZero(t, h[m.IndexOf("c0")])
}

func TestNewAtomic_Pseudorandom(t *testing.T) {
	m := builder.Must(builder.Propane())
	a := atomic(t, atomhash.Depth(2), atomhash.Elemental())
	b := atomic(t, atomhash.Depth(2), atomhash.Elemental(), atomhash.Pseudorandom(offsetPseudorandom{}))
	assert.NotEqual(t, hashes(t, a, m), hashes(t, b, m))
}

func TestNewMolecular(t *testing.T) {
	g, err := atomhash.NewMolecular(atomhash.Depth(3), atomhash.Elemental(), atomhash.Connectivity(), atomhash.Perturbed())
	require.NoError(t, err)

	m := builder.Must(builder.RingMixture())
	a, err := g.Generate(m)
	require.NoError(t, err)

	atoms := atomic(t, atomhash.Depth(3), atomhash.Elemental(), atomhash.Connectivity(), atomhash.Perturbed())
	mg, err := atomhash.NewMoleculeGenerator(atoms)
	require.NoError(t, err)
	b, err := mg.Generate(m)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
