package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/core"
)

func TestMolecule_Hydrogenate(t *testing.T) {
	m := core.NewMolecule()
	require.NoError(t, m.AddAtom("c1", "C"))
	require.NoError(t, m.AddAtom("c2", "C"))
	require.NoError(t, m.AddAtom("o", "O"))
	require.NoError(t, m.AddAtom("n", "N", core.WithCharge(1)))
	require.NoError(t, m.AddAtom("cl", "Cl"))
	require.NoError(t, m.AddAtom("r", "R", core.WithImplicitH(7)))
	require.NoError(t, m.AddAtom("ar", "C", core.WithRadicals(1)))
	_, _ = m.AddBond("c1", "c2", core.OrderDouble)
	_, _ = m.AddBond("c2", "o", core.OrderSingle)
	_, _ = m.AddBond("c1", "n", core.OrderSingle)
	_, _ = m.AddBond("ar", "r", core.OrderUnset)

	m.Hydrogenate()

	want := map[string]int{"c1": 1, "c2": 1, "o": 1, "n": 3, "cl": 1, "r": 7, "ar": 1}
	for id, h := range want {
		a, err := m.AtomByID(id)
		require.NoError(t, err)
		assert.Equal(t, h, a.ImplicitH, id)
	}
}
