// Package list implements an algebra over immutable lists of constant values.
//
// A List is a persistent singly linked list: every operation returns a new
// List and never modifies its arguments, so results freely share structure
// with their inputs. All functions are pure; they are meant to be evaluated
// once, typically while initializing package-level variables:
//
//	var primes = list.Sort(list.Of(7, 2, 5, 3))
//
// Where even initialization-time work is undesirable, the constlistgen
// command evaluates the same operations ahead of compilation and emits Go
// literals.
//
// Operations that require a non-empty list or an in-range index panic with a
// value from the [github.com/atsuko/constlist/pkg/errs] package when their
// precondition does not hold, the same way indexing a Go slice out of range
// does.
package list

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// List is an immutable list. The zero value is a valid empty list.
type List[T comparable] struct {
	c *cell[T]
}

type cell[T comparable] struct {
	first T
	rest  *cell[T]
	count int
}

// Of returns a List containing the given values in order.
func Of[T comparable](xs ...T) List[T] {
	return FromSlice(xs)
}

// FromSlice returns a List containing the elements of s in order. The slice
// is not retained.
func FromSlice[T comparable](s []T) List[T] {
	return prependAll(s, List[T]{})
}

// prependAll returns a List with the values of xs in front of l.
func prependAll[T comparable](xs []T, l List[T]) List[T] {
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// Len returns the number of values in the list.
func (l List[T]) Len() int {
	if l.c == nil {
		return 0
	}
	return l.c.count
}

// Slice returns the values of the list in a newly allocated slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for c := l.c; c != nil; c = c.rest {
		s = append(s, c.first)
	}
	return s
}

// Equal reports whether two lists have the same length and equal values at
// each position.
func (l List[T]) Equal(other List[T]) bool {
	if l.Len() != other.Len() {
		return false
	}
	for a, b := l.c, other.c; a != nil; a, b = a.rest, b.rest {
		if a == b {
			// Shared tail.
			return true
		}
		if a.first != b.first {
			return false
		}
	}
	return true
}

// String returns the values formatted like a Go slice, for example "[1 2 3]".
func (l List[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for c := l.c; c != nil; c = c.rest {
		if c != l.c {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, c.first)
	}
	buf.WriteByte(']')
	return buf.String()
}

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for c := l.c; c != nil; c = c.rest {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(c.first)
		if err != nil {
			return nil, &marshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

type marshalError struct {
	index int
	cause error
}

func (err *marshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.index, err.cause)
}

func (err *marshalError) Unwrap() error { return err.cause }
