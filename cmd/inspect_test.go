package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomsh/mesh"
)

const squareMsh = `# unit square, two triangles
MSHID=3;euclidean-mesh
NDIMS=2
POINT=4
0.;0.;0
1.;0.;0
1.;1.;0
0.;1.;0
TRIA3=2
0;1;2;0
0;2;3;0
EDGE2=1
0;1;1
BOUND=1
1;0;10
`

func runInspect(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"inspect"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "square.msh")
	require.NoError(t, os.WriteFile(tmpFile, []byte(squareMsh), 0644))

	out, err := runInspect(t, tmpFile, "--output", "yaml", "--adjacency=false")
	require.NoError(t, err)
	assert.Contains(t, out, "mshID: euclidean-mesh")
	assert.Contains(t, out, "vertices: 4")
	assert.Contains(t, out, "TRIA3: 2")
	assert.NotContains(t, out, "degree")

	out, err = runInspect(t, tmpFile, "--output", "json", "--adjacency")
	require.NoError(t, err)
	var S mesh.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &S))
	assert.Equal(t, 2, S.NDims)
	assert.Equal(t, map[string]int{"TRIA3": 2, "EDGE2": 1}, S.Cells)
	require.NotNil(t, S.Degree)
	assert.Equal(t, 3, S.Degree.Max)
	assert.InDelta(t, 2.5, S.Degree.Mean, 1e-12)
}

func TestInspectErrors(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.msh")
	require.NoError(t, os.WriteFile(tmpFile, []byte("NDIMS=2\nPOINT=1\n0;0\n"), 0644))

	_, err := runInspect(t, tmpFile, "--output", "yaml", "--adjacency=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid POINT")

	_, err = runInspect(t, filepath.Join(t.TempDir(), "missing.msh"))
	assert.Error(t, err)

	good := filepath.Join(t.TempDir(), "square.msh")
	require.NoError(t, os.WriteFile(good, []byte(squareMsh), 0644))
	_, err = runInspect(t, good, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
