// Package core_test verifies thread-safety of core.Molecule under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/core"
)

// TestConcurrentAddBond ensures that concurrent AddAtom/AddBond calls around
// a shared centre are safe and every bond is recorded.
func TestConcurrentAddBond(t *testing.T) {
	m := core.NewMolecule()
	require.NoError(t, m.AddAtom("X", "C"))
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			leaf := fmt.Sprintf("H%d", id)
			require.NoError(t, m.AddAtom(leaf, "H"))
			_, err := m.AddBond("X", leaf, core.OrderSingle)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := m.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, m.Degree("X"))
}

// TestConcurrentReadersDuringSetImplicitH mixes container reads with
// copy-on-write hydrogen updates.
func TestConcurrentReadersDuringSetImplicitH(t *testing.T) {
	m := core.NewMolecule()
	require.NoError(t, m.AddAtom("C", "C"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(h int) {
			defer wg.Done()
			_ = m.SetImplicitH("C", h%5)
		}(i)
		go func() {
			defer wg.Done()
			a := m.Atom(0)
			require.NotNil(t, a)
			require.GreaterOrEqual(t, a.ImplicitH, 0)
		}()
	}
	wg.Wait()
}
