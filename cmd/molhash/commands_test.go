package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const library = `ethanol
  molhash

  3  2  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0
    1.0000    0.0000    0.0000 C   0  0
    2.0000    0.0000    0.0000 O   0  0
  1  2  1  0
  2  3  1  0
M  END
$$$$
ethanol (reordered)
  molhash

  3  2  0  0  0  0  0  0  0  0999 V2000
    2.0000    0.0000    0.0000 O   0  0
    0.0000    0.0000    0.0000 C   0  0
    1.0000    0.0000    0.0000 C   0  0
  2  3  1  0
  3  1  1  0
M  END
$$$$
methylamine
  molhash

  2  1  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0
    1.0000    0.0000    0.0000 N   0  0
  1  2  1  0
M  END
$$$$
`

func run(t *testing.T, args ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.sdf")
	require.NoError(t, os.WriteFile(path, []byte(library), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, path))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestDupes(t *testing.T) {
	out := run(t, "dupes")
	assert.Contains(t, out, "\tethanol\tethanol (reordered)\n")
	assert.Contains(t, out, "# 3 molecules, 2 distinct, 1 duplicate groups")
}

func TestMolecule(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(run(t, "molecule")), "\n")
	require.Len(t, lines, 3)

	hash := func(line string) string { return strings.SplitN(line, "\t", 2)[0] }
	assert.Equal(t, hash(lines[0]), hash(lines[1]))
	assert.NotEqual(t, hash(lines[0]), hash(lines[2]))
	assert.True(t, strings.HasSuffix(lines[2], "\tmethylamine"))
}

func TestAtoms(t *testing.T) {
	out := run(t, "atoms")
	assert.Contains(t, out, "# ethanol\n")
	assert.Contains(t, out, "# methylamine\n")
	assert.Equal(t, 8, strings.Count(out, "\na"), "one line per atom")
}

func TestConfigFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "molhash.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("depth: 0\nencoders: []\nperturbation: none\n"), 0o600))

	out := run(t, "--config", cfgPath, "dupes")
	assert.Contains(t, out, "# 3 molecules, 2 distinct, 1 duplicate groups", "methylamine differs in size only")
}

func TestBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "molhash.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("depth: -4\n"), 0o600))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfgPath, "molecule", "-"})
	assert.Error(t, root.Execute())
}
