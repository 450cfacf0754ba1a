package iterators_test

import (
	"testing"

	"github.com/nyxkrage/iter-skak/iterators"
	"github.com/stretchr/testify/require"
)

func TestCount_AllElementCounted(t *testing.T) {
	t.Parallel()

	total, err := iterators.Count[int](iterators.Slice([]int{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, 3, total)
}

func TestCount_EmptySource_ZeroCounted(t *testing.T) {
	t.Parallel()

	total, err := iterators.Count[int](iterators.Empty[int]())
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestCount_ClosesTheIterator(t *testing.T) {
	t.Parallel()

	src := &spyIter{Iterator: iterators.Slice([]int{1, 2, 3})}

	_, err := iterators.Count[int](src)
	require.NoError(t, err)
	require.True(t, src.closed)
}
