package list

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/atsuko/constlist/pkg/tt"
)

func TestSplit(t *testing.T) {
	tt.Test(t, Fn("Split", Split[int]).RetsFmt("(%v, %v)"), Table{
		Args(empty).Rets(empty, empty),
		Args(Of(1)).Rets(Of(1), empty),
		Args(Of(1, 2)).Rets(Of(1), Of(2)),
		Args(Of(1, 2, 3, 4, 5)).Rets(Of(1, 3, 5), Of(2, 4)),
		Args(Of(1, 2, 3, 4, 5, 6)).Rets(Of(1, 3, 5), Of(2, 4, 6)),
	})
}

func TestSplitProperties(t *testing.T) {
	for _, l := range randomLists(200, 50, 1000) {
		p, q := Split(l)
		n := l.Len()
		if p.Len() != (n+1)/2 || q.Len() != n/2 {
			t.Fatalf("Split(%v) has lengths (%d, %d)", l, p.Len(), q.Len())
		}
		for i := 0; i < n; i++ {
			half := p
			if i%2 == 1 {
				half = q
			}
			if Index(l, i) != Index(half, i/2) {
				t.Fatalf("Split(%v) = (%v, %v), element %d misplaced", l, p, q, i)
			}
		}
	}
}

func TestMerge(t *testing.T) {
	tt.Test(t, Fn("Merge", Merge[int]).RetsFmt("%v"), Table{
		Args(empty, empty).Rets(empty),
		Args(Of(1, 2), empty).Rets(Of(1, 2)),
		Args(empty, Of(1, 2)).Rets(Of(1, 2)),
		Args(Of(1, 3, 5), Of(2, 4, 6)).Rets(Of(1, 2, 3, 4, 5, 6)),
		Args(Of(1, 1, 2), Of(1, 3)).Rets(Of(1, 1, 1, 2, 3)),
		Args(Of(4, 5), Of(1, 2)).Rets(Of(1, 2, 4, 5)),
	})
}

func TestMerge_SharesRemainder(t *testing.T) {
	a, b := Of(1, 2), Of(3, 4, 5)
	m := Merge(a, b)
	if m.c.rest.rest != b.c {
		t.Errorf("Merge copied the remainder of its second argument")
	}
}

type tagged struct {
	key int
	tag string
}

func keyLessEq(a, b tagged) bool { return a.key <= b.key }

func TestMergeFunc_TiesFavorLeft(t *testing.T) {
	a := Of(tagged{1, "a"}, tagged{2, "a"})
	b := Of(tagged{1, "b"}, tagged{2, "b"})
	got := MergeFunc(a, b, keyLessEq)
	want := Of(tagged{1, "a"}, tagged{1, "b"}, tagged{2, "a"}, tagged{2, "b"})
	if !got.Equal(want) {
		t.Errorf("MergeFunc -> %v, want %v", got, want)
	}
}

func TestMergeProperties(t *testing.T) {
	for _, a := range randomLists(50, 30, 20) {
		for _, b := range randomLists(10, 30, 20) {
			a, b := Sort(a), Sort(b)
			m := Merge(a, b)
			if m.Len() != a.Len()+b.Len() {
				t.Fatalf("Merge(%v, %v) has length %d", a, b, m.Len())
			}
			if !IsSorted(m) {
				t.Fatalf("Merge(%v, %v) = %v, not sorted", a, b, m)
			}
		}
	}
}

func TestSort(t *testing.T) {
	tt.Test(t, Fn("Sort", Sort[int]).RetsFmt("%v"), Table{
		Args(empty).Rets(empty),
		Args(Of(7)).Rets(Of(7)),
		Args(Of(2, 1)).Rets(Of(1, 2)),
		Args(Of(5, 3, 1, 4, 2)).Rets(Of(1, 2, 3, 4, 5)),
		Args(Of(3, 1, 3, 1)).Rets(Of(1, 1, 3, 3)),
		Args(Of(-1, 10, 0)).Rets(Of(-1, 0, 10)),
	})
	tt.Test(t, Fn("Sort", Sort[string]).RetsFmt("%v"), Table{
		Args(Of("pear", "apple", "fig")).Rets(Of("apple", "fig", "pear")),
	})
	tt.Test(t, Fn("Sort", Sort[float64]).RetsFmt("%v"), Table{
		Args(Of(2.5, -1.0, 0.5)).Rets(Of(-1.0, 0.5, 2.5)),
	})
}

func TestSort_BaseCasesReturnInput(t *testing.T) {
	one := Of(1)
	if Sort(one).c != one.c {
		t.Errorf("Sort of a singleton allocated a new list")
	}
}

func TestSortFunc(t *testing.T) {
	desc := func(a, b int) bool { return a >= b }
	got := SortFunc(Of(5, 3, 1, 4, 2), desc)
	if want := Of(5, 4, 3, 2, 1); !got.Equal(want) {
		t.Errorf("SortFunc -> %v, want %v", got, want)
	}
}

func TestSortProperties(t *testing.T) {
	for _, l := range randomLists(300, 64, 50) {
		sorted := Sort(l)
		want := l.Slice()
		sort.Ints(want)
		if !sorted.Equal(FromSlice(want)) {
			t.Fatalf("Sort(%v) = %v, want %v", l, sorted, want)
		}
		if again := Sort(sorted); !again.Equal(sorted) {
			t.Fatalf("Sort(Sort(%v)) = %v, want %v", l, again, sorted)
		}
	}
}

func TestIsSorted(t *testing.T) {
	tt.Test(t, Fn("IsSorted", IsSorted[int]), Table{
		Args(empty).Rets(true),
		Args(Of(1)).Rets(true),
		Args(Of(1, 1, 2)).Rets(true),
		Args(Of(2, 1)).Rets(false),
	})
}

func BenchmarkSort(b *testing.B) {
	l := randomList(rand.New(rand.NewSource(0)), 0x1000, 0x10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sort(l)
	}
}

// randomLists returns n pseudo-random lists with lengths in [0, maxLen] and
// values in [0, maxVal). The results are the same for every call with the
// same arguments.
func randomLists(n, maxLen, maxVal int) []List[int] {
	r := rand.New(rand.NewSource(int64(n*maxLen + maxVal)))
	ls := make([]List[int], n)
	for i := range ls {
		ls[i] = randomList(r, r.Intn(maxLen+1), maxVal)
	}
	return ls
}

func randomList(r *rand.Rand, n, maxVal int) List[int] {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(maxVal)
	}
	return FromSlice(s)
}
