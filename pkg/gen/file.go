// Package gen evaluates list expressions from a table file ahead of
// compilation and renders the results as Go source.
//
// A table file is a YAML document:
//
//	package: tables
//	type: int
//	lists:
//	  a: [5, 3, 1, 4, 2]
//	outputs:
//	  - {name: Sorted, op: sort, args: [a]}
//	  - {names: [Evens, Odds], op: split, args: [a]}
//	  - {name: Second, op: index, args: [a], at: 1}
//
// Outputs are evaluated in order with the operations of the list package, and
// each output can be used as an argument of the following ones. List-valued
// outputs become array variables, element-valued outputs become typed
// constants.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File is a decoded table file.
type File struct {
	// Package is the package clause of the generated source.
	Package string `yaml:"package"`

	// Type is the element type: "int", "float64" or "string". Defaults to
	// "int".
	Type string `yaml:"type"`

	// Lists maps names to literal lists. It is decoded once the element type
	// is known.
	Lists yaml.Node `yaml:"lists"`

	// Outputs is evaluated in order.
	Outputs []Output `yaml:"outputs"`
}

// Output describes one operation whose result is exported.
type Output struct {
	// Name is the name of the result. Split has two results and uses Names
	// instead.
	Name  string   `yaml:"name"`
	Names []string `yaml:"names"`
	Op    string   `yaml:"op"`

	// Args are names of lists or earlier list-valued outputs.
	Args []string `yaml:"args"`

	// At is the position used by index.
	At *int `yaml:"at"`

	// Value is the element used by cons.
	Value yaml.Node `yaml:"value"`
}

var errNoPackage = errors.New("missing package name")

// Parse decodes and checks the shape of a table file. Checks that depend on
// the values of lists happen in Eval.
func Parse(src []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse table file: %w", err)
	}
	if f.Package == "" {
		return nil, errNoPackage
	}
	if !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("package name %q is not an identifier", f.Package)
	}
	if f.Type == "" {
		f.Type = "int"
	}
	return &f, nil
}

// resultNames returns the names an output defines.
func (o *Output) resultNames() []string {
	if o.Op == "split" {
		return o.Names
	}
	return []string{o.Name}
}

// String returns the output's expression, for example "index(a, 1)".
func (o *Output) String() string {
	value := ""
	if o.Value.Kind == yaml.ScalarNode {
		value = o.Value.Value
		if o.Value.Tag == "!!str" {
			value = strconv.Quote(value)
		}
	}
	return o.expr(value)
}

// expr returns the output's expression with value as the element of cons.
func (o *Output) expr(value string) string {
	var buf bytes.Buffer
	buf.WriteString(o.Op)
	buf.WriteByte('(')
	if o.Op == "cons" && value != "" {
		buf.WriteString(value)
		buf.WriteString(", ")
	}
	for i, arg := range o.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(arg)
	}
	if o.Op == "index" && o.At != nil {
		fmt.Fprintf(&buf, ", %d", *o.At)
	}
	buf.WriteByte(')')
	return buf.String()
}
