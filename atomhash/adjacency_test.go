package atomhash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/builder"
	"github.com/katalvlaran/molhash/core"
)

func TestToAdjList(t *testing.T) {
	m := builder.Must(builder.Chloropropane())

	graph, err := atomhash.ToAdjList(m)
	require.NoError(t, err)
	require.Len(t, graph, m.AtomCount())

	total := 0
	for v, row := range graph {
		total += len(row)
		assert.Equal(t, m.Degree(m.Atom(v).ID), len(row), "row %d", v)
		assert.Equal(t, len(row), cap(row), "row %d is trimmed", v)
	}
	assert.Equal(t, 2*m.BondCount(), total)
	assert.ElementsMatch(t, []int{0, 2, 3}, graph[1])
}

func TestToAdjList_GrowsPastInitialCapacity(t *testing.T) {
	m := builder.Must(builder.BuildMolecule(nil, nil, builder.Star("s", "S", "F", 6)))

	graph, err := atomhash.ToAdjList(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, graph[0])
	for v := 1; v <= 6; v++ {
		assert.Equal(t, []int{0}, graph[v])
	}
}

func TestToAdjList_ParallelBonds(t *testing.T) {
	m := core.NewMolecule(core.WithMultiBonds())
	require.NoError(t, m.AddAtom("a", "C"))
	require.NoError(t, m.AddAtom("b", "C"))
	_, _ = m.AddBond("a", "b", core.OrderSingle)
	_, _ = m.AddBond("a", "b", core.OrderSingle)

	graph, err := atomhash.ToAdjList(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}, {0, 0}}, graph)
}

func TestToAdjList_MissingEndpoint(t *testing.T) {
	m := builder.Must(builder.Propane())

	graph, err := atomhash.ToAdjList(brokenContainer{m})
	assert.ErrorIs(t, err, atomhash.ErrBondEndpoint)
	assert.Nil(t, graph)
}

func TestArrays(t *testing.T) {
	src := []int64{1, 2, 3}
	c := atomhash.Clone(src)
	c[0] = 9
	assert.Equal(t, int64(1), src[0])

	dst := make([]int64, 3)
	atomhash.CopyN(dst, src, 2)
	assert.Equal(t, []int64{1, 2, 0}, dst)

	assert.Panics(t, func() { atomhash.CopyN(dst, src, 4) })
}
