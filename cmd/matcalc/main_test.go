// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// invoke runs the command with stdin text and returns stdout and stderr.
func invoke(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_DeterminantFromStdin(t *testing.T) {
	t.Parallel()

	out, _, err := invoke(t, "[1, 2]\n[3, 4]\n", "-op", "det")
	require.NoError(t, err)
	require.Equal(t, "-2\n", out)

	out, _, err = invoke(t, "[[1,2],[3,4]]", "-op", "trace", "-a", "-")
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestRun_MatrixOutputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"transpose", []string{"-op", "transpose"}, "[1, 3]\n[2, 4]\n"},
		{"adj", []string{"-op", "adj"}, "[4, -2]\n[-3, 1]\n"},
		{"cof", []string{"-op", "cof"}, "[4, -3]\n[-2, 1]\n"},
		{"neg", []string{"-op", "neg"}, "[-1, -2]\n[-3, -4]\n"},
		{"pow", []string{"-op", "pow", "-n", "3"}, "[37, 54]\n[81, 118]\n"},
		{"scale", []string{"-op", "scale", "-s", "2"}, "[2, 4]\n[6, 8]\n"},
		{"divs", []string{"-op", "divs", "-s", "2"}, "[0.5, 1]\n[1.5, 2]\n"},
		{"minor", []string{"-op", "minor", "-x", "1", "-y", "0"}, "[3]\n"},
		{"json", []string{"-op", "transpose", "-format", "json"}, "[[1,3],[2,4]]\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := invoke(t, "[[1,2],[3,4]]", tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestRun_BinaryOpsFromFiles(t *testing.T) {
	t.Parallel()

	a := writeFile(t, "a.json", "[[1,2,3],[4,5,6]]")
	b := writeFile(t, "b.txt", "[7, 8]\n[9, 10]\n[11, 12]\n")

	out, _, err := invoke(t, "", "-op", "mul", "-a", a, "-b", b, "-format", "json")
	require.NoError(t, err)
	var rows [][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, rows)

	// A from stdin, B from a file.
	out, _, err = invoke(t, "[[1,1],[1,1]]", "-op", "add", "-b", writeFile(t, "i.json", "[[1,0],[0,1]]"))
	require.NoError(t, err)
	require.Equal(t, "[2, 1]\n[1, 2]\n", out)

	out, _, err = invoke(t, "[[5,5]]", "-op", "sub", "-b", writeFile(t, "o.json", "[[1,2]]"))
	require.NoError(t, err)
	require.Equal(t, "[4, 3]\n", out)
}

func TestRun_DivideAndInverse(t *testing.T) {
	t.Parallel()

	out, _, err := invoke(t, "[[2,4],[6,8]]", "-op", "div", "-b", writeFile(t, "b.json", "[[2,0],[0,2]]"))
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", out)

	out, errOut, err := invoke(t, "[[4,7],[2,6]]", "-op", "inv", "-check", "-format", "json")
	require.NoError(t, err)
	require.NotContains(t, errOut, "level=WARN")
	var inv matrix.Matrix
	require.NoError(t, json.Unmarshal([]byte(out), &inv))
	require.True(t, inv.AllClose(matrix.MustNew([][]float64{{0.6, -0.7}, {-0.2, 0.4}})))
}

func TestRun_CheckAgreesAndLogsAtDebug(t *testing.T) {
	t.Parallel()

	out, errOut, err := invoke(t, "[[6,1,1],[4,-2,5],[2,8,7]]", "-op", "det", "-check", "-v")
	require.NoError(t, err)
	require.Equal(t, "-306\n", out)
	require.Contains(t, errOut, "determinant agrees with gonum")
	require.NotContains(t, errOut, "level=WARN")
}

func TestRun_Props(t *testing.T) {
	t.Parallel()

	out, _, err := invoke(t, "[[2,0],[0,2]]", "-op", "props")
	require.NoError(t, err)
	require.Contains(t, out, "shape: 2x2\n")
	require.Contains(t, out, "diagonal: true\n")
	require.Contains(t, out, "skew_symmetric: false\n")
	require.Contains(t, out, "invertible: true\n")

	out, _, err = invoke(t, "[[1,2,3]]", "-op", "props", "-format", "json")
	require.NoError(t, err)
	var p properties
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	require.Equal(t, properties{Width: 3, Height: 1}, p)
}

func TestRun_OperationErrors(t *testing.T) {
	t.Parallel()

	_, errOut, err := invoke(t, "[[1,2],[2,4]]", "-op", "inv")
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
	require.NotErrorIs(t, err, errUsage)
	require.Contains(t, errOut, "operation failed")

	_, _, err = invoke(t, "[[1,2,3]]", "-op", "det")
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	_, _, err = invoke(t, "[[1,2]]", "-op", "divs", "-s", "0")
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	_, _, err = invoke(t, "[[1,2],[3]]", "-op", "det")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = invoke(t, "", "-op", "det", "-a", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"no op":          {},
		"unknown op":     {"-op", "frobnicate"},
		"bad format":     {"-op", "det", "-format", "xml"},
		"missing b":      {"-op", "mul"},
		"both stdin":     {"-op", "add", "-a", "-", "-b", "-"},
		"bad flag":       {"-op", "det", "-nope"},
		"extra argument": {"-op", "det", "stray"},
	}
	for name, args := range cases {
		name, args := name, args
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, errOut, err := invoke(t, "[[1]]", args...)
			require.ErrorIs(t, err, errUsage)
			require.Contains(t, errOut, "invalid invocation")
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	_, errOut, err := invoke(t, "", "-h")
	require.NoError(t, err)
	require.Contains(t, errOut, "usage: matcalc")
	require.Contains(t, errOut, "det")
}
