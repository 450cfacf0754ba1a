package iterators

import (
	"github.com/nyxkrage/iter-skak"
)

const (
	// ErrSpentHandle is the value returned from a continuation handle
	// that is used again after it already produced its successor.
	ErrSpentHandle iterskak.Error = "SpentHandle"
)
