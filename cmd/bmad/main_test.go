package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmad/dataset"
)

const blocksCSV = `a,b,c,d,x,y
1,1,0,0,0,0
1,1,0,0,0,1
0,0,1,1,10,10
0,0,1,1,10,11
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	// Table titles, headers and footers render upper-cased.
	return strings.ToUpper(out.String()), err
}

func TestDecomposeCommand(t *testing.T) {
	data := writeFile(t, "blocks.csv", blocksCSV)
	train := filepath.Join(t.TempDir(), "train.csv")

	out, err := run(t, "decompose", "--labels", "4", "--size", "2", "--output", train, data)
	require.NoError(t, err)
	require.Contains(t, out, "UPPER MATRIX")
	require.Contains(t, out, "Z0")
	require.Contains(t, out, "0 CELLS")

	f, err := os.Open(train)
	require.NoError(t, err)
	defer f.Close()
	d, err := dataset.ReadCSV(f, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"z0", "z1", "x", "y"}, d.Names())
	require.Equal(t, 4, d.Rows())
}

func TestEvaluateCommand(t *testing.T) {
	data := writeFile(t, "blocks.csv", blocksCSV)

	out, err := run(t, "evaluate", "-l", "4", "--size", "2", "-k", "1", "--log-level", "debug", data, data)
	require.NoError(t, err)
	require.Contains(t, out, "EVALUATION")
	require.Contains(t, out, "100.00%")
}

func TestCommandErrors(t *testing.T) {
	data := writeFile(t, "blocks.csv", blocksCSV)

	_, err := run(t, "decompose", data)
	require.Error(t, err, "--labels is required")

	// The default size (5) does not fit four labels.
	_, err = run(t, "decompose", "-l", "4", data)
	require.Error(t, err)

	_, err = run(t, "decompose", "-l", "4", "--log-level", "loud", data)
	require.Error(t, err)
}
