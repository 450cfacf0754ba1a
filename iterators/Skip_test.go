package iterators_test

import (
	"testing"

	"github.com/nyxkrage/iter-skak"
	"github.com/nyxkrage/iter-skak/iterators"
	"github.com/stretchr/testify/require"
)

var _ iterskak.Iterator[int] = iterators.Skip[int](iterators.Empty[int](), 0)
var _ iterators.Hinter = iterators.Skip[int](iterators.Empty[int](), 0)

func TestSkip_DropsTheFirstNValues(t *testing.T) {
	t.Parallel()

	vs, err := iterators.Collect[int](iterators.Skip[int](iterators.Slice([]int{1, 2, 3, 4, 5}), 2))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, vs)
}

func TestSkip_ZeroLeavesTheSourceAsIs(t *testing.T) {
	t.Parallel()

	vs, err := iterators.Collect[int](iterators.Skip[int](iterators.Slice([]int{1, 2, 3}), 0))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, vs)
}

func TestSkip_MoreThanTheSourceHolds_NothingLeft(t *testing.T) {
	t.Parallel()

	i := iterators.Skip[int](iterators.Slice([]int{1, 2, 3}), 42)

	require.False(t, i.Next())
	require.Nil(t, i.Err())
	require.Equal(t, iterators.SizeHint{HasUpper: true}, i.SizeHint())
}

func TestSkip_TheDropIsLazy(t *testing.T) {
	t.Parallel()

	src := &countingIter{Iterator: iterators.Slice([]int{1, 2, 3, 4})}
	i := iterators.Skip[int](src, 2)

	require.Equal(t, 0, src.pulls)

	require.True(t, i.Next())
	require.Equal(t, 3, i.Value())
	require.Equal(t, 3, src.pulls)
}

func TestSkip_SizeHint_DiscountsThePendingDrop(t *testing.T) {
	t.Parallel()

	i := iterators.Skip[int](iterators.Slice([]int{1, 2, 3, 4, 5}), 2)

	require.Equal(t, iterators.SizeHint{Lower: 3, Upper: 3, HasUpper: true}, i.SizeHint())

	require.True(t, i.Next())
	require.Equal(t, iterators.SizeHint{Lower: 2, Upper: 2, HasUpper: true}, i.SizeHint())
}

func TestSkip_UnknownLengthSource_HintStaysUnknown(t *testing.T) {
	t.Parallel()

	src := hintlessIter{Iterator: iterators.Slice([]int{1, 2, 3})}
	require.Equal(t, iterators.SizeHint{}, iterators.Skip[int](src, 2).SizeHint())
}
