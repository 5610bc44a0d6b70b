package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molhash/builder"
)

func TestWithIDScheme(t *testing.T) {
	hex := func(i int) string { return "_" + strconv.FormatInt(int64(i+10), 16) }
	m, err := builder.BuildMolecule(nil, []builder.BuilderOption{builder.WithIDScheme(hex)}, builder.Ring("r", "C", 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"r_a", "r_b", "r_c"}, []string{m.Atom(0).ID, m.Atom(1).ID, m.Atom(2).ID})

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { builder.Must(builder.BuildMolecule(nil, nil, builder.Ring("r", "C", 1))) })
	assert.NotPanics(t, func() { builder.Must(builder.Propane()) })
}
