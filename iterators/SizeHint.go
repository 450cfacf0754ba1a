package iterators

import (
	"github.com/nyxkrage/iter-skak"
)

// SizeHint describes how many values an iterator is known or believed to still hold.
// Lower is always a valid lower bound.
// Upper only carries meaning while HasUpper is true.
// The zero value reads as "at least zero, upper bound unknown",
// which is the honest answer for externally driven sources.
type SizeHint struct {
	Lower    int
	Upper    int
	HasUpper bool
}

// Exact returns the remaining length when the bounds pin it to a single value.
func (h SizeHint) Exact() (int, bool) {
	if h.HasUpper && h.Lower == h.Upper {
		return h.Lower, true
	}
	return 0, false
}

// Sub discounts n values from both bounds, saturating at zero.
func (h SizeHint) Sub(n int) SizeHint {
	h.Lower = max(0, h.Lower-n)
	if h.HasUpper {
		h.Upper = max(0, h.Upper-n)
	}
	return h
}

// Hinter is implemented by iterators that can estimate how many values they still hold.
type Hinter interface {
	SizeHint() SizeHint
}

// HintOf returns the iterator's own size hint,
// or the unknown hint for iterators that can't tell.
func HintOf[V any](i iterskak.Iterator[V]) SizeHint {
	if h, ok := i.(Hinter); ok {
		return h.SizeHint()
	}
	return SizeHint{}
}
