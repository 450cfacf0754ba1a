package iterators

import (
	"github.com/nyxkrage/iter-skak"
)

// Chunk takes up to n values from the front of the iterator as a snapshot slice,
// and returns a continuation handle that owns whatever remains of the source.
// Receiving fewer than n values means the source ran out,
// that is a normal partial result and not an error.
// After the call the source must only be used through the returned handle.
func Chunk[V any](i iterskak.Iterator[V], n int) ([]V, *ChunkIter[V]) {
	c := &ChunkIter[V]{src: i}
	return c.take(n), c
}

// ChunkIter is the continuation handle over the not yet consumed part of a source.
// It iterates the remaining values, estimates how many are left through SizeHint,
// and re-enters chunking through its Chunk method.
type ChunkIter[V any] struct {
	src iterskak.Iterator[V]

	exhausted bool
	spent     bool
	err       error
}

// Chunk takes the next up to n values the same way the package level Chunk does,
// and spends the receiver: the returned handle replaces it for any further use.
// A spent handle yields nothing and reports ErrSpentHandle.
func (c *ChunkIter[V]) Chunk(n int) ([]V, *ChunkIter[V]) {
	if c.spent {
		c.err = ErrSpentHandle
		return nil, c
	}

	c.spent = true
	next := &ChunkIter[V]{src: c.src, exhausted: c.exhausted}
	return next.take(n), next
}

func (c *ChunkIter[V]) take(n int) []V {
	var taken []V
	for len(taken) < n && c.src.Next() {
		taken = append(taken, c.src.Value())
	}

	if len(taken) < n {
		c.exhausted = true
	}

	return taken
}

func (c *ChunkIter[V]) Close() error {
	return c.src.Close()
}

func (c *ChunkIter[V]) Err() error {
	if c.err != nil {
		return c.err
	}

	return c.src.Err()
}

func (c *ChunkIter[V]) Next() bool {
	if c.spent {
		c.err = ErrSpentHandle
		return false
	}

	if c.src.Next() {
		return true
	}

	c.exhausted = true
	return false
}

func (c *ChunkIter[V]) Value() V {
	return c.src.Value()
}

// SizeHint reports the remaining-length estimate of the owned remainder.
// Once the source was observed to run dry the estimate is exactly zero,
// otherwise it is whatever the source itself can promise.
// A spent handle holds nothing.
func (c *ChunkIter[V]) SizeHint() SizeHint {
	if c.spent || c.exhausted {
		return SizeHint{HasUpper: true}
	}

	return HintOf[V](c.src)
}
