package treeset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func collect[T any](s *Set[T]) []T {
	out := []T{}
	s.ForEach(func(v T) { out = append(out, v) })
	return out
}

func fromValues(values ...int) *Set[int] {
	s := New[int]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Scenario from the design notes.
func TestInsertTraverseEraseScenario(t *testing.T) {
	s := fromValues(5, 3, 8, 1, 4)

	require.Equal(t, []int{1, 3, 4, 5, 8}, collect(s))
	require.Equal(t, 1, *s.Least())
	require.Equal(t, 8, *s.Greatest())

	require.True(t, s.Erase(3))
	require.False(t, s.Contains(3))
	require.Equal(t, 4, s.Len())
	require.Equal(t, []int{1, 4, 5, 8}, collect(s))
}

func TestInsertContains(t *testing.T) {
	s := New[string]()
	require.False(t, s.Insert("m"))
	require.True(t, s.Contains("m"))
	require.False(t, s.Contains("q"))
	require.Nil(t, s.Find("q"))
}

func TestInsertEqualReplacesInPlace(t *testing.T) {
	type entry struct {
		key  int
		note string
	}
	released := []entry{}
	s := NewFunc(
		func(a, b entry) bool { return a.key > b.key },
		func(a, b entry) bool { return a.key == b.key },
		func(e *entry) { released = append(released, *e) },
	)
	require.False(t, s.Insert(entry{1, "first"}))
	require.True(t, s.Insert(entry{1, "second"}), "equal key must report replacement")
	require.Equal(t, 1, s.Len())
	require.Equal(t, "second", s.Find(entry{key: 1}).note)
	require.Equal(t, []entry{{1, "first"}}, released)
}

func TestEraseShapes(t *testing.T) {
	cases := []struct {
		name   string
		build  []int
		erase  int
		expect []int
	}{
		{"leaf", []int{5, 3, 8}, 3, []int{5, 8}},
		{"node with only right child", []int{5, 3, 8, 9}, 8, []int{3, 5, 9}},
		{"node with only left child", []int{5, 3, 8, 7}, 8, []int{3, 5, 7}},
		{"node with both children", []int{5, 3, 8, 7, 9}, 8, []int{3, 5, 7, 9}},
		{"root with both subtrees", []int{5, 3, 8, 1, 4, 7, 9}, 5, []int{1, 3, 4, 7, 8, 9}},
		{"predecessor has left child", []int{5, 2, 8, 1, 4, 3}, 5, []int{1, 2, 3, 4, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := fromValues(tc.build...)
			require.True(t, s.Erase(tc.erase))
			require.Equal(t, tc.expect, collect(s))
			require.Equal(t, len(tc.expect), s.Len())
		})
	}
}

func TestEraseAbsent(t *testing.T) {
	s := fromValues(5, 3, 8)
	require.False(t, s.Erase(6))
	require.Equal(t, 3, s.Len())
	require.False(t, New[int]().Erase(1))
}

func TestInOrderAlwaysAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	s := New[int]()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rng.Intn(200)
		s.Insert(v)
		seen[v] = true
		if i%3 == 0 {
			d := rng.Intn(200)
			if s.Erase(d) {
				delete(seen, d)
			}
		}
		got := collect(s)
		require.True(t, sort.IntsAreSorted(got), "in-order walk out of order at step %d", i)
		require.Len(t, got, len(seen))
		require.Equal(t, s.Len(), len(got), "count must match traversal visits")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := fromValues(2, 1, 3)
	c := s.Copy()
	c.Insert(4)
	c.Erase(1)

	if diff := cmp.Diff([]int{1, 2, 3}, collect(s)); diff != "" {
		t.Fatalf("original changed by copy mutation (-want +got):\n%s", diff)
	}
	require.Equal(t, []int{2, 3, 4}, collect(c))
}

func TestUnion(t *testing.T) {
	a := fromValues(1, 2, 3)
	b := fromValues(3, 4, 5)
	a.Union(b)
	require.Equal(t, []int{1, 2, 3, 4, 5}, collect(a))
	// Argument untouched.
	require.Equal(t, []int{3, 4, 5}, collect(b))
	b.ForEach(func(v int) { require.True(t, a.Contains(v)) })
}

func TestIntersect(t *testing.T) {
	a := fromValues(1, 2, 3, 4, 5)
	b := fromValues(2, 4, 6)
	a.Intersect(b)
	require.Equal(t, []int{2, 4}, collect(a))
	require.Equal(t, 2, a.Len())
}

func TestIntersectErasesRootMidWalk(t *testing.T) {
	// Root 5 is absent from the argument set and is erased while its own
	// frame is the deepest live one; both subtrees survive intact.
	a := fromValues(5, 3, 8, 1, 4, 7, 9)
	b := fromValues(1, 3, 4, 7, 8, 9)
	a.Intersect(b)
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, collect(a))
}

func TestIntersectDisjointWipes(t *testing.T) {
	a := fromValues(10, 5, 15, 2, 7)
	a.Intersect(fromValues(100))
	require.Equal(t, 0, a.Len())
	require.True(t, a.Empty())
}

func TestDifference(t *testing.T) {
	a := fromValues(1, 2, 3, 4, 5)
	b := fromValues(2, 4, 9)
	a.Difference(b)
	require.Equal(t, []int{1, 3, 5}, collect(a))
}

func TestSubset(t *testing.T) {
	a := fromValues(2, 3)
	b := fromValues(1, 2, 3, 4)
	require.True(t, a.Subset(b, false))
	require.True(t, a.Subset(b, true))
	require.False(t, b.Subset(a, true))

	// Equal sets: subset only when orEqual.
	c := fromValues(2, 3)
	require.True(t, a.Subset(c, true))
	require.False(t, a.Subset(c, false))

	// Empty set is a subset of anything.
	require.True(t, New[int]().Subset(a, false))
}

func TestSetAlgebraAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 50; round++ {
		av := map[int]bool{}
		bv := map[int]bool{}
		a := New[int]()
		b := New[int]()
		for i := 0; i < 30; i++ {
			x := rng.Intn(40)
			a.Insert(x)
			av[x] = true
			y := rng.Intn(40)
			b.Insert(y)
			bv[y] = true
		}

		inter := a.Copy().Intersect(b)
		want := []int{}
		for v := range av {
			if bv[v] {
				want = append(want, v)
			}
		}
		sort.Ints(want)
		require.Equal(t, want, collect(inter), "round %d intersect", round)

		diffSet := a.Copy().Difference(b)
		want = want[:0]
		for v := range av {
			if !bv[v] {
				want = append(want, v)
			}
		}
		sort.Ints(want)
		require.Equal(t, want, collect(diffSet), "round %d difference", round)
	}
}

func TestClearReleases(t *testing.T) {
	released := 0
	s := NewFunc(
		func(a, b int) bool { return a > b },
		func(a, b int) bool { return a == b },
		func(*int) { released++ },
	)
	for _, v := range []int{4, 2, 6, 1, 3} {
		s.Insert(v)
	}
	s.Clear()
	require.Equal(t, 5, released)
	require.True(t, s.Empty())
	require.False(t, s.Contains(4))
}

func TestCollateOrdering(t *testing.T) {
	gt, eq := Collate(language.English)
	s := NewFunc(gt, eq, nil)
	for _, w := range []string{"cote", "côté", "coté", "côte", "apple"} {
		s.Insert(w)
	}
	got := collect(s)
	require.Equal(t, "apple", got[0])
	require.Equal(t, 5, s.Len())
	require.True(t, s.Contains("côté"))
	require.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return !gt(got[i], got[j]) }))
}
