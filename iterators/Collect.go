package iterators

import (
	"github.com/nyxkrage/iter-skak"
)

// Collect drains the iterator into a slice and closes it.
func Collect[V any](i iterskak.Iterator[V]) (vs []V, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
