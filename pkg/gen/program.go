package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/atsuko/constlist/pkg/prog"
	"github.com/mattn/go-isatty"
)

// Program is the constlistgen program.
type Program struct{}

// Run reads a table file, or stdin when no argument is given, and writes the
// evaluated values as Go source or JSON. With -check it only compares the
// output with the -o file.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	var src []byte
	var err error
	switch len(args) {
	case 0:
		if isatty.IsTerminal(fds[0].Fd()) || isatty.IsCygwinTerminal(fds[0].Fd()) {
			return prog.BadUsage("no table file given and stdin is a terminal")
		}
		src, err = io.ReadAll(fds[0])
	case 1:
		src, err = os.ReadFile(args[0])
	default:
		return prog.BadUsage("at most one table file can be given")
	}
	if err != nil {
		return err
	}

	out, err := Generate(src, f.JSON)
	if err != nil {
		return err
	}
	if f.Check {
		if f.Output == "" {
			return prog.BadUsage("-check requires -o")
		}
		old, err := os.ReadFile(f.Output)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if !bytes.Equal(old, out) {
			fmt.Fprintf(fds[2], "%s is out of date\n", f.Output)
			return prog.Exit(1)
		}
		return nil
	}
	if f.Output == "" {
		_, err = fds[1].Write(out)
		return err
	}
	logger.Printf("writing %s", f.Output)
	return os.WriteFile(f.Output, out, 0644)
}

// Generate parses and evaluates a table file, and renders the result as Go
// source, or as JSON if asJSON is true.
func Generate(src []byte, asJSON bool) ([]byte, error) {
	file, err := Parse(src)
	if err != nil {
		return nil, err
	}
	result, err := Eval(file)
	if err != nil {
		return nil, err
	}
	if asJSON {
		return result.JSON()
	}
	out, err := result.GoSource()
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", file.Package, err)
	}
	return out, nil
}
