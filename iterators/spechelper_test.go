package iterators_test

import (
	"github.com/nyxkrage/iter-skak"
)

type Entity struct {
	Text string
}

// hintlessIter hides the wrapped iterator's size hint,
// it stands in for sources that can't tell their remaining length.
type hintlessIter struct {
	iterskak.Iterator[int]
}

// countingIter records how many times the wrapped iterator was pulled.
type countingIter struct {
	iterskak.Iterator[int]

	pulls int
}

func (c *countingIter) Next() bool {
	c.pulls++
	return c.Iterator.Next()
}

// spyIter records whether the wrapped iterator got closed.
type spyIter struct {
	iterskak.Iterator[int]

	closed bool
}

func (s *spyIter) Close() error {
	s.closed = true
	return s.Iterator.Close()
}
