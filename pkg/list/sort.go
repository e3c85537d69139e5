package list

import "golang.org/x/exp/constraints"

// Split partitions l by alternating positions: values at even positions (0,
// 2, 4, ...) go to the first result and values at odd positions go to the
// second. For a list of length n, the results have lengths ceil(n/2) and
// floor(n/2).
func Split[T comparable](l List[T]) (List[T], List[T]) {
	n := l.Len()
	evens := make([]T, 0, (n+1)/2)
	odds := make([]T, 0, n/2)
	i := 0
	for c := l.c; c != nil; c = c.rest {
		if i%2 == 0 {
			evens = append(evens, c.first)
		} else {
			odds = append(odds, c.first)
		}
		i++
	}
	return FromSlice(evens), FromSlice(odds)
}

// Merge combines two lists sorted in ascending order into one list sorted in
// ascending order. The inputs are not checked. When two values compare equal,
// the one from a comes first.
func Merge[T constraints.Ordered](a, b List[T]) List[T] {
	return MergeFunc(a, b, lessEq[T])
}

// MergeFunc is like Merge, but orders values with leq, which must report
// whether its first argument sorts before or equal to its second.
func MergeFunc[T comparable](a, b List[T], leq func(T, T) bool) List[T] {
	var emitted []T
	x, y := a.c, b.c
	for x != nil && y != nil {
		if leq(x.first, y.first) {
			emitted = append(emitted, x.first)
			x = x.rest
		} else {
			emitted = append(emitted, y.first)
			y = y.rest
		}
	}
	// One side is exhausted; the other one is the rest of the result as is.
	rest := List[T]{x}
	if x == nil {
		rest = List[T]{y}
	}
	return prependAll(emitted, rest)
}

// Sort returns the values of l in ascending order, using merge sort on top of
// Split and Merge. Because Split interleaves, the sort is not stable with
// respect to the original positions of equal values.
func Sort[T constraints.Ordered](l List[T]) List[T] {
	return SortFunc(l, lessEq[T])
}

// SortFunc is like Sort, but orders values with leq. See MergeFunc for the
// requirements on leq.
func SortFunc[T comparable](l List[T], leq func(T, T) bool) List[T] {
	if l.Len() < 2 {
		return l
	}
	a, b := Split(l)
	return MergeFunc(SortFunc(a, leq), SortFunc(b, leq), leq)
}

// IsSorted reports whether the values of l are in ascending order.
func IsSorted[T constraints.Ordered](l List[T]) bool {
	return IsSortedFunc(l, lessEq[T])
}

// IsSortedFunc is like IsSorted, but orders values with leq.
func IsSortedFunc[T comparable](l List[T], leq func(T, T) bool) bool {
	for c := l.c; c != nil && c.rest != nil; c = c.rest {
		if !leq(c.first, c.rest.first) {
			return false
		}
	}
	return true
}

func lessEq[T constraints.Ordered](a, b T) bool { return a <= b }
