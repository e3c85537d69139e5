// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/atsuko/constlist/pkg/must"
	"github.com/atsuko/constlist/pkg/prog"
)

// Case is a test case for Test, created by That.
type Case struct {
	args  []string
	stdin string

	wantExit   int
	wantStdout output
	wantStderr output
}

type output struct {
	content   string
	partial   bool
	unchecked bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

func (o output) matches(s string) bool {
	if o.unchecked {
		return true
	}
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

// That returns a new Case that runs the program with the given arguments. The
// name of the program is prepended to args automatically. By default, the
// Case expects the program to exit with 0 and write nothing to stdout and
// stderr.
func That(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that feeds the given content to stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself; it is useful to mark that a case expects the
// default behavior.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given status.
func (c Case) ExitsWith(exit int) Case {
	c.wantExit = exit
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.wantStdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the argument.
func (c Case) WritesStdoutContaining(s string) Case {
	c.wantStdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.wantStderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the argument.
func (c Case) WritesStderrContaining(s string) Case {
	c.wantStderr = output{content: s, partial: true}
	return c
}

// IgnoresStderr returns an altered Case that does not check stderr.
func (c Case) IgnoresStderr() Case {
	c.wantStderr = output{unchecked: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		exit, stdout, stderr := Run(p, c.stdin, c.args...)
		if exit != c.wantExit {
			t.Errorf("%v: got exit %v, want %v", c.args, exit, c.wantExit)
		}
		if !c.wantStdout.matches(stdout) {
			t.Errorf("%v: got stdout %q, want %v", c.args, stdout, c.wantStdout)
		}
		if !c.wantStderr.matches(stderr) {
			t.Errorf("%v: got stderr %q, want %v", c.args, stderr, c.wantStderr)
		}
	}
}

// Run runs a Program with the given stdin content and arguments, and returns
// its exit status and the content written to stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	outCh := readAllAsync(r1)
	errCh := readAllAsync(r2)

	args = append([]string{"constlistgen"}, args...)
	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b := must.OK1(io.ReadAll(r))
		r.Close()
		ch <- string(b)
	}()
	return ch
}
