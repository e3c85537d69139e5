// Command constlistgen evaluates list expressions from a table file and
// writes the results as Go source, so that sorted and otherwise transformed
// constant tables cost nothing at run time.
//
// It is meant to be invoked by go generate:
//
//	//go:generate constlistgen -o tables.go tables.yaml
//
// See [github.com/atsuko/constlist/pkg/gen] for the table file format.
package main

import (
	"os"

	"github.com/atsuko/constlist/pkg/gen"
	"github.com/atsuko/constlist/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, gen.Program{}))
}
