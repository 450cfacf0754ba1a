package iterators

import (
	"github.com/nyxkrage/iter-skak"
)

// Skip drops the first n values of the source iterator.
// The drop is lazy: nothing is pulled from the source until the first Next call.
func Skip[V any](i iterskak.Iterator[V], n int) *SkipIter[V] {
	return &SkipIter[V]{src: i, n: n}
}

type SkipIter[V any] struct {
	src iterskak.Iterator[V]
	n   int
}

func (si *SkipIter[V]) Close() error {
	return si.src.Close()
}

func (si *SkipIter[V]) Err() error {
	return si.src.Err()
}

func (si *SkipIter[V]) Next() bool {
	for 0 < si.n {
		si.n--

		if !si.src.Next() {
			si.n = 0
			return false
		}
	}

	return si.src.Next()
}

func (si *SkipIter[V]) Value() V {
	return si.src.Value()
}

// SizeHint discounts the still pending drop from the source's own estimate.
func (si *SkipIter[V]) SizeHint() SizeHint {
	return HintOf[V](si.src).Sub(si.n)
}
