package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[T any](l *List[T]) []T {
	out := []T{}
	l.ForEach(func(v T) { out = append(out, v) })
	return out
}

func TestPushPopEnds(t *testing.T) {
	l := New[int]()
	require.True(t, l.Empty())

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	require.Equal(t, []int{1, 2, 3}, collect(l))
	require.Equal(t, 1, l.Head().Value)
	require.Equal(t, 3, l.Tail().Value)

	l.PopFront()
	l.PopBack()
	require.Equal(t, []int{2}, collect(l))
	require.Equal(t, l.Head(), l.Tail())
}

func TestInsertAroundNode(t *testing.T) {
	l := New[string]()
	mid := l.PushBack("b")
	l.InsertBefore(mid, "a")
	l.InsertAfter(mid, "c")
	require.Equal(t, []string{"a", "b", "c"}, collect(l))
	require.Equal(t, "a", l.Head().Value)
	require.Equal(t, "c", l.Tail().Value)
}

func TestGetWalksFromNearerEnd(t *testing.T) {
	l := New[int]()
	for i := 0; i < 7; i++ {
		l.PushBack(i)
	}
	for i := 0; i < 7; i++ {
		require.Equal(t, i, l.Get(i).Value)
	}
}

func TestRemoveRelinksAndReleases(t *testing.T) {
	released := []int{}
	l := NewWithRelease(func(p *int) { released = append(released, *p) })
	l.PushBack(1)
	n := l.PushBack(2)
	l.PushBack(3)

	l.Remove(n)
	require.Equal(t, []int{2}, released)
	require.Equal(t, []int{1, 3}, collect(l))
	require.Equal(t, 3, l.Head().Next().Value)
	require.Equal(t, 1, l.Tail().Prev().Value)
}

func TestRemoveOnlyNode(t *testing.T) {
	l := New[int]()
	n := l.PushBack(1)
	l.Remove(n)
	require.True(t, l.Empty())
	l.PushBack(2) // list still usable
	require.Equal(t, []int{2}, collect(l))
}

func TestCopyIndependence(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	c := l.Copy()
	c.PushBack(3)
	c.PopFront()
	require.Equal(t, []int{1, 2}, collect(l))
	require.Equal(t, []int{2, 3}, collect(c))
}

func TestClearReleasesAll(t *testing.T) {
	count := 0
	l := NewWithRelease(func(*int) { count++ })
	for i := 0; i < 4; i++ {
		l.PushBack(i)
	}
	l.Clear()
	require.Equal(t, 4, count)
	require.True(t, l.Empty())
}
