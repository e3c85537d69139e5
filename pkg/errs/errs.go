// Package errs declares error types used as contract violations by the list
// algebra and reported by the generator.
package errs

import (
	"fmt"
	"strconv"
)

// OutOfRange encodes an error where a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %v has no valid value, but is %v", e.What, e.Actual)
	}
	return fmt.Sprintf(
		"out of range: %s must be from %v to %v, but is %v",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// IndexOutOfRange returns an OutOfRange for index i into a list of length n.
func IndexOutOfRange(i, n int) OutOfRange {
	return OutOfRange{What: "index", ValidLow: 0, ValidHigh: n - 1, Actual: strconv.Itoa(i)}
}

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range. A negative ValidHigh means there is no upper bound.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

// Error implements the error interface.
func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %s, but is %s",
			e.What, nValues(e.ValidLow), nValues(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %d or more values, but is %s",
			e.What, e.ValidLow, nValues(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %d to %s, but is %s",
			e.What, e.ValidLow, nValues(e.ValidHigh), nValues(e.Actual))
	}
}

// EmptyList encodes an error where an operation that needs at least one
// element is applied to the empty list.
type EmptyList struct {
	What string
}

// Error implements the error interface.
func (e EmptyList) Error() string {
	return fmt.Sprintf("empty list: %v requires a non-empty list", e.What)
}

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}
