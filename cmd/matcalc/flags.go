// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
)

// errHelp is returned by parseFlags for -h; it is not a failure.
var errHelp = flag.ErrHelp

// parseFlags turns args into a validated config. Every problem with the
// invocation wraps errUsage.
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: matcalc -op OP [-a FILE] [-b FILE] [flags]\n\noperations: %s\n\n", opNames())
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.op, "op", "", "operation to evaluate")
	fs.StringVar(&cfg.aPath, "a", "", "matrix A file (JSON or text rows); empty or - reads stdin")
	fs.StringVar(&cfg.bPath, "b", "", "matrix B file for add, sub, mul and div")
	fs.StringVar(&cfg.format, "format", formatText, "output format: text or json")
	fs.StringVar(&cfg.cpuprofile, "cpuprofile", "", "write a CPU profile into this directory")
	fs.IntVar(&cfg.n, "n", 2, "exponent for pow")
	fs.IntVar(&cfg.x, "x", 0, "column removed by minor")
	fs.IntVar(&cfg.y, "y", 0, "row removed by minor")
	fs.Float64Var(&cfg.scalar, "s", 1, "scalar for scale and divs")
	fs.BoolVar(&cfg.check, "check", false, "cross-check det and inv against gonum")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, errHelp
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	op, ok := operations[cfg.op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown -op %q (want one of %s)", errUsage, cfg.op, opNames())
	}
	if cfg.format != formatText && cfg.format != formatJSON {
		return nil, fmt.Errorf("%w: unknown -format %q", errUsage, cfg.format)
	}
	if op.needsB && cfg.bPath == "" {
		return nil, fmt.Errorf("%w: -op %s needs -b", errUsage, cfg.op)
	}
	if op.needsB && isStdin(cfg.aPath) && isStdin(cfg.bPath) {
		return nil, fmt.Errorf("%w: -a and -b cannot both read stdin", errUsage)
	}

	return cfg, nil
}

func isStdin(path string) bool { return path == "" || path == "-" }
