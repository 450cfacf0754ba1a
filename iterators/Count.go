package iterators

import (
	"github.com/nyxkrage/iter-skak"
)

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[V any](i iterskak.Iterator[V]) (total int, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for i.Next() {
		total++
	}

	return total, i.Err()
}
