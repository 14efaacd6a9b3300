// SPDX-License-Identifier: MIT

// Command matcalc evaluates one matrix operation over matrices read from files
// or stdin and prints the result.
//
//	matcalc -op det -a m.json
//	matcalc -op mul -a a.txt -b b.json -format json
//	echo '[[1,2],[3,4]]' | matcalc -op inv -check
//
// Matrices are JSON nested arrays or the text row form ("[1, 2]" per line).
// Exit status is 1 when the operation fails and 2 on a usage error.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/pkg/profile"
	"gonum.org/v1/gonum/mat"
)

const (
	formatText = "text"
	formatJSON = "json"

	// checkTol bounds the disagreement tolerated by -check, relative and absolute.
	checkTol = 1e-6
)

// errUsage marks bad invocations; main maps it to exit status 2.
var errUsage = errors.New("usage")

// config holds the parsed command line.
type config struct {
	op         string
	aPath      string
	bPath      string
	format     string
	cpuprofile string
	n          int
	x, y       int
	scalar     float64
	check      bool
	verbose    bool
}

// operation describes one -op value.
type operation struct {
	needsB bool
	eval   func(c *config, a, b *matrix.Matrix) (any, error)
}

func scalar(v float64, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

func result(m *matrix.Matrix, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

var operations = map[string]operation{
	"det": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return scalar(a.Determinant())
	}},
	"trace": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return scalar(a.Trace())
	}},
	"inv": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.Inverse())
	}},
	"adj": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.Adjugate())
	}},
	"cof": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.Cofactors())
	}},
	"transpose": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return a.Transposed(), nil
	}},
	"neg": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.Negative())
	}},
	"pow": {eval: func(c *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.Exponentiated(c.n))
	}},
	"minor": {eval: func(c *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.Minor(c.x, c.y))
	}},
	"scale": {eval: func(c *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.MultipliedScalar(c.scalar))
	}},
	"divs": {eval: func(c *config, a, _ *matrix.Matrix) (any, error) {
		return result(a.DividedScalar(c.scalar))
	}},
	"props": {eval: func(_ *config, a, _ *matrix.Matrix) (any, error) {
		return describe(a), nil
	}},
	"add": {needsB: true, eval: func(_ *config, a, b *matrix.Matrix) (any, error) {
		return result(a.Added(b))
	}},
	"sub": {needsB: true, eval: func(_ *config, a, b *matrix.Matrix) (any, error) {
		return result(a.Subtracted(b))
	}},
	"mul": {needsB: true, eval: func(_ *config, a, b *matrix.Matrix) (any, error) {
		return result(a.Multiplied(b))
	}},
	"div": {needsB: true, eval: func(_ *config, a, b *matrix.Matrix) (any, error) {
		return result(a.Divided(b))
	}},
}

// opNames lists the supported operations for the usage text.
func opNames() string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// properties is the "props" report.
type properties struct {
	Width           int  `json:"width"`
	Height          int  `json:"height"`
	Square          bool `json:"square"`
	UpperTriangular bool `json:"upper_triangular"`
	LowerTriangular bool `json:"lower_triangular"`
	Diagonal        bool `json:"diagonal"`
	Triangular      bool `json:"triangular"`
	Symmetric       bool `json:"symmetric"`
	SkewSymmetric   bool `json:"skew_symmetric"`
	Invertible      bool `json:"invertible"`
}

func describe(m *matrix.Matrix) properties {
	return properties{
		Width:           m.Width(),
		Height:          m.Height(),
		Square:          m.IsSquare(),
		UpperTriangular: m.IsUpperTriangular(),
		LowerTriangular: m.IsLowerTriangular(),
		Diagonal:        m.IsDiagonal(),
		Triangular:      m.IsTriangular(),
		Symmetric:       m.IsSymmetric(),
		SkewSymmetric:   m.IsSkewSymmetric(),
		Invertible:      m.IsInvertible(),
	}
}

// String renders the report one "name: value" line at a time.
func (p properties) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "shape: %dx%d\n", p.Height, p.Width)
	for _, kv := range []struct {
		name string
		ok   bool
	}{
		{"square", p.Square},
		{"upper_triangular", p.UpperTriangular},
		{"lower_triangular", p.LowerTriangular},
		{"diagonal", p.Diagonal},
		{"triangular", p.Triangular},
		{"symmetric", p.Symmetric},
		{"skew_symmetric", p.SkewSymmetric},
		{"invertible", p.Invertible},
	} {
		fmt.Fprintf(&b, "%s: %t\n", kv.name, kv.ok)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run is the whole command behind main. Failures are logged to stderr and
// returned so main can pick the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return nil
		}
		logger.Error("invalid invocation", "error", err)
		return err
	}
	if cfg.verbose {
		level.Set(slog.LevelDebug)
	}
	if cfg.cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.cpuprofile), profile.Quiet).Stop()
	}

	if err = execute(cfg, logger, stdin, stdout); err != nil {
		logger.Error("operation failed", "op", cfg.op, "error", err)
		return err
	}

	return nil
}

func execute(cfg *config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	op := operations[cfg.op]

	a, err := load(cfg.aPath, stdin)
	if err != nil {
		return fmt.Errorf("reading -a: %w", err)
	}
	logger.Debug("loaded operand", "name", "a", "height", a.Height(), "width", a.Width())

	var b *matrix.Matrix
	if op.needsB {
		if b, err = load(cfg.bPath, stdin); err != nil {
			return fmt.Errorf("reading -b: %w", err)
		}
		logger.Debug("loaded operand", "name", "b", "height", b.Height(), "width", b.Width())
	}

	out, err := op.eval(cfg, a, b)
	if err != nil {
		return err
	}
	if cfg.check {
		crossCheck(logger, cfg.op, a, out)
	}

	return write(stdout, cfg.format, out)
}

// load reads a matrix from path, or from stdin for "" and "-".
func load(path string, stdin io.Reader) (*matrix.Matrix, error) {
	if isStdin(path) {
		return matrix.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return matrix.Read(f)
}

// write prints out in the requested format.
func write(w io.Writer, format string, out any) error {
	if format == formatJSON {
		data, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	var err error
	switch v := out.(type) {
	case float64:
		_, err = fmt.Fprintf(w, "%g\n", v)
	default:
		_, err = fmt.Fprintf(w, "%v\n", v)
	}

	return err
}

// crossCheck recomputes det and inv with gonum and warns on disagreement.
// Other operations and empty matrices are not checked.
func crossCheck(logger *slog.Logger, op string, a *matrix.Matrix, out any) {
	if op != "det" && op != "inv" {
		return
	}
	dense, err := a.ToDense()
	if err != nil {
		logger.Debug("cross-check skipped", "op", op, "reason", err)
		return
	}

	switch op {
	case "det":
		got := out.(float64)
		want := mat.Det(dense)
		if math.Abs(got-want) > checkTol*(1+math.Abs(want)) {
			logger.Warn("determinant disagrees with gonum", "laplace", got, "lu", want)
			return
		}
		logger.Debug("determinant agrees with gonum", "lu", want)
	case "inv":
		var inv mat.Dense
		if err = inv.Inverse(dense); err != nil {
			logger.Warn("gonum could not invert", "error", err)
			return
		}
		want, err := matrix.FromGonum(&inv, matrix.WithNoValidateNaNInf())
		if err != nil {
			logger.Warn("gonum inverse unusable", "error", err)
			return
		}
		if !out.(*matrix.Matrix).AllClose(want, matrix.WithEpsilon(checkTol), matrix.WithRelTol(checkTol)) {
			logger.Warn("inverse disagrees with gonum")
			return
		}
		logger.Debug("inverse agrees with gonum")
	}
}
