package ref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueLifecycle(t *testing.T) {
	released := []int{}
	u := NewUnique(7, func(v *int) { released = append(released, *v) })
	require.True(t, u.Valid())
	require.Equal(t, 7, *u.Get())

	u.Reset(8)
	require.Equal(t, []int{7}, released)
	require.Equal(t, 8, *u.Get())

	u.Destroy()
	require.Equal(t, []int{7, 8}, released)
	require.False(t, u.Valid())
}

func TestSharedCountsAndRelease(t *testing.T) {
	releases := 0
	a := NewShared("v", func(*string) { releases++ })
	require.Equal(t, 1, a.SharedCount())

	b := a.Clone()
	require.Equal(t, 2, a.SharedCount())
	require.Same(t, a.Get(), b.Get())

	a.Destroy()
	require.Equal(t, 0, releases)
	require.Equal(t, 1, b.SharedCount())

	b.Destroy()
	require.Equal(t, 1, releases)
}

func TestSharedResetDetaches(t *testing.T) {
	releases := []int{}
	a := NewShared(1, func(v *int) { releases = append(releases, *v) })
	b := a.Clone()

	// a moves to a fresh value; b still owns the old one.
	a.Reset(2)
	require.Empty(t, releases)
	require.Equal(t, 2, *a.Get())
	require.Equal(t, 1, *b.Get())
	require.Equal(t, 1, a.SharedCount())
	require.Equal(t, 1, b.SharedCount())

	b.Destroy()
	require.Equal(t, []int{1}, releases)
	a.Destroy()
	require.Equal(t, []int{1, 2}, releases)
}

func TestWeakDoesNotExtendLife(t *testing.T) {
	releases := 0
	s := NewShared(42, func(*int) { releases++ })
	w := s.Downgrade()
	require.Equal(t, 1, s.WeakCount())
	require.True(t, w.Valid())

	s.Destroy()
	require.Equal(t, 1, releases)
	require.False(t, w.Valid())
	require.Nil(t, w.Upgrade())
	w.Destroy()
}

func TestWeakUpgradeWhileAlive(t *testing.T) {
	releases := 0
	s := NewShared(9, func(*int) { releases++ })
	w := s.Downgrade()

	again := w.Upgrade()
	require.NotNil(t, again)
	require.Equal(t, 2, s.SharedCount())
	require.Equal(t, 9, *again.Get())

	s.Destroy()
	require.Equal(t, 0, releases)
	require.True(t, w.Valid())

	again.Destroy()
	require.Equal(t, 1, releases)
	w.Destroy()
}

func TestWeakCloneCounts(t *testing.T) {
	s := NewShared("x", nil)
	w1 := s.Downgrade()
	w2 := w1.Clone()
	require.Equal(t, 2, s.WeakCount())

	w1.Destroy()
	require.Equal(t, 1, s.WeakCount())
	w2.Destroy()
	s.Destroy()
}
