// Package atomlist_test verifies the traversal helpers: sequential
// visiting order, bounded parallel fan-out, argument validation, and
// error propagation.
package atomlist_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomlist"
)

// errVisit is a local sentinel used to assert visitor error propagation.
var errVisit = errors.New("visit failed")

// TestForEach visits sequentially in index order; a nil visitor is a
// no-op.
func TestForEach(t *testing.T) {
	l := mustNew(t, 1, 2, 3)

	got := make([]int, 0, 3)
	l.ForEach(func(v int) { got = append(got, v) })
	require.Equal(t, []int{1, 2, 3}, got)

	l.ForEach(nil) // must not panic
}

// TestForEachParallel_VisitsAll ensures every element of the snapshot
// is visited exactly once regardless of worker count.
func TestForEachParallel_VisitsAll(t *testing.T) {
	l := mustNew(t)
	const num = 100
	want := int64(0)
	for i := 1; i <= num; i++ {
		require.True(t, l.Append(i))
		want += int64(i)
	}

	var sum atomic.Int64
	err := l.ForEachParallel(4, func(v int) error {
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, want, sum.Load())
}

// TestForEachParallel_SingleWorker degenerates to sequential execution
// and still visits everything.
func TestForEachParallel_SingleWorker(t *testing.T) {
	l := mustNew(t, 1, 2, 3)

	var count atomic.Int32
	require.NoError(t, l.ForEachParallel(1, func(int) error {
		count.Add(1)
		return nil
	}))
	require.Equal(t, int32(3), count.Load())
}

// TestForEachParallel_PropagatesError ensures a failing visitor's error
// reaches the caller after the traversal drains.
func TestForEachParallel_PropagatesError(t *testing.T) {
	l := mustNew(t, 1, 2, 3, 4)

	err := l.ForEachParallel(2, func(v int) error {
		if v == 3 {
			return errVisit
		}
		return nil
	})
	require.ErrorIs(t, err, errVisit)
}

// TestForEachParallel_Validation covers the argument sentinels.
func TestForEachParallel_Validation(t *testing.T) {
	l := mustNew(t, 1)

	err := l.ForEachParallel(0, func(int) error { return nil })
	require.ErrorIs(t, err, atomlist.ErrBadParallelism)

	err = l.ForEachParallel(2, nil)
	require.ErrorIs(t, err, atomlist.ErrNilVisitor)
}

// TestForEachParallel_SnapshotBound ensures the traversal covers the
// snapshot taken at the call, not elements committed mid-flight.
func TestForEachParallel_SnapshotBound(t *testing.T) {
	l := mustNew(t, 1, 2, 3)

	var visited atomic.Int32
	require.NoError(t, l.ForEachParallel(2, func(int) error {
		l.Append(99) // grows later snapshots, never this traversal
		visited.Add(1)
		return nil
	}))

	require.Equal(t, int32(3), visited.Load())
	require.Equal(t, 6, l.Len()) // the three appends did commit
}
