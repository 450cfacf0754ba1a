package iterators

func Slice[T any](slice []T) *SliceIter[T] {
	return &SliceIter[T]{Slice: slice}
}

type SliceIter[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *SliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceIter[T]) Err() error {
	return nil
}

func (i *SliceIter[T]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceIter[T]) Value() T {
	return i.value
}

// SizeHint always pins the remaining length exactly, a slice can't surprise us.
func (i *SliceIter[T]) SizeHint() SizeHint {
	if i.closed {
		return SizeHint{HasUpper: true}
	}

	remaining := len(i.Slice) - i.index
	return SizeHint{Lower: remaining, Upper: remaining, HasUpper: true}
}
