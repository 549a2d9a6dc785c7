/*
Package sequence implements run-length grouping and run-length encoding of
ordered sequences of comparable values.

GroupRunLengths is the entry point for one-shot analysis. It scans a slice
once and returns, for every distinct value, the lengths of its maximal runs
in the order they appear:

	sequence.GroupRunLengths([]int{1, 1, 1, 2, 2, 1, 1})
	// map[1:[3 2] 2:[2]]

The type Sequence stores values as runs. It follows an append-only pattern,
has a maximum length and supports discarding of oldest values when its
capacity is reached (Roll). A Sequence can be exported as a Record, easing
integration with storage systems.

A Store is essentially a wrapper around a map of sequences that provides
convenience methods safe to use from multiple goroutines.

Values are compared with ==. Floating point NaN never equals itself, so
every NaN forms its own run and its own map key.
*/
package sequence
