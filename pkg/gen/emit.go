package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"strings"
)

// Header is the first line of generated Go source.
const Header = "// Code generated by constlistgen. DO NOT EDIT."

// GoSource renders r as gofmt-formatted Go source.
func (r *Result) GoSource() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n", Header, r.Package)
	for _, v := range r.Values {
		fmt.Fprintf(&buf, "\n// %s is %s.\n", v.Name, v.Expr)
		if v.IsList {
			fmt.Fprintf(&buf, "var %s = [...]%s{%s}\n",
				v.Name, r.Type, strings.Join(v.Literals, ", "))
		} else {
			fmt.Fprintf(&buf, "const %s %s = %s\n", v.Name, r.Type, v.Literals[0])
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

type jsonValue struct {
	Name  string `json:"name"`
	Expr  string `json:"expr"`
	Value any    `json:"value"`
}

// JSON renders the values of r as an indented JSON array of objects with
// name, expr and value fields, in evaluation order.
func (r *Result) JSON() ([]byte, error) {
	values := make([]jsonValue, len(r.Values))
	for i, v := range r.Values {
		values[i] = jsonValue{v.Name, v.Expr, v.data}
	}
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
