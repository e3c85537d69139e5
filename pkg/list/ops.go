package list

import "github.com/atsuko/constlist/pkg/errs"

// Index returns the i-th value of l, counting from 0. It panics with an
// errs.OutOfRange if i is not in [0, l.Len()).
func Index[T comparable](l List[T], i int) T {
	if i < 0 || i >= l.Len() {
		panic(errs.IndexOutOfRange(i, l.Len()))
	}
	c := l.c
	for ; i > 0; i-- {
		c = c.rest
	}
	return c.first
}

// Cons returns a list with x in front of the values of l.
func Cons[T comparable](x T, l List[T]) List[T] {
	return List[T]{&cell[T]{x, l.c, l.Len() + 1}}
}

// Append returns a list with the values of a followed by the values of b. The
// result shares b.
func Append[T comparable](a, b List[T]) List[T] {
	if a.Len() == 0 {
		return b
	}
	return prependAll(a.Slice(), b)
}

// Head returns the first value of l. It panics with an errs.EmptyList if l is
// empty.
func Head[T comparable](l List[T]) T {
	mustNotBeEmpty(l, "head")
	return l.c.first
}

// Tail returns l without its first value. It panics with an errs.EmptyList if
// l is empty.
func Tail[T comparable](l List[T]) List[T] {
	mustNotBeEmpty(l, "tail")
	return List[T]{l.c.rest}
}

// Last returns the last value of l. It panics with an errs.EmptyList if l is
// empty.
func Last[T comparable](l List[T]) T {
	mustNotBeEmpty(l, "last")
	c := l.c
	for c.rest != nil {
		c = c.rest
	}
	return c.first
}

// Init returns l without its last value. It panics with an errs.EmptyList if
// l is empty.
func Init[T comparable](l List[T]) List[T] {
	mustNotBeEmpty(l, "init")
	s := l.Slice()
	return FromSlice(s[:len(s)-1])
}

func mustNotBeEmpty[T comparable](l List[T], what string) {
	if l.c == nil {
		panic(errs.EmptyList{What: what})
	}
}
