/*	Package iterators provide iterator implementations for paging through sequences in chunks.

	Summary

	An iterator goal is to decouple the facts about the origin of the data,
	to the consumer who use the data.
	An Iterator represent multiple data that can be 0 and infinite.
	This package supplies sources (Slice, Empty, Pipe), the lazy Skip adapter,
	and the Chunk adapter which extracts the next N values of a source as a snapshot
	while handing back a continuation over whatever remains.

	Iterators that can tell how many values they still hold implement the Hinter interface,
	and report it as a SizeHint, a lower bound paired with an optional upper bound.
	Sources fed from the outside world (Pipe) simply report the unknown hint.

	Chunking

	Chunk and ChunkIter.Chunk split consumption into fixed-size pages:

		taken, rest := iterators.Chunk(src, n)
		for {
			// work with taken
			taken, rest = rest.Chunk(n)
		}

	Ownership of the source moves along the continuation handles,
	the handle that produced a successor must not be used again.
*/
package iterators
