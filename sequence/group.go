package sequence

import (
	"cmp"
	"maps"
	"slices"
)

// A Run is a maximal block of consecutive equal values.
type Run[T comparable] struct {
	Value  T   `json:"value"`
	Length int `json:"length"`
}

// GroupRunLengths returns, for each distinct value of values, the lengths of
// its maximal runs in the order they appear. The sum of the lengths recorded
// for a value equals the number of occurrences of that value. The returned
// map is never nil.
func GroupRunLengths[T comparable](values []T) map[T][]int {
	m := make(map[T][]int)
	n := len(values)
	if n == 0 {
		return m
	}
	count := 1
	x := values[0]
	for i := 1; i < n; i++ {
		if values[i] != x {
			m[x] = append(m[x], count)
			count = 0
			x = values[i]
		}
		count++
	}
	// The last run has no following value to close it.
	m[x] = append(m[x], count)
	return m
}

// Encode returns the maximal runs of values in order.
func Encode[T comparable](values []T) []Run[T] {
	n := len(values)
	if n == 0 {
		return nil
	}
	var runs []Run[T]
	count := 1
	x := values[0]
	for i := 1; i < n; i++ {
		if values[i] != x {
			runs = append(runs, Run[T]{Value: x, Length: count})
			count = 0
			x = values[i]
		}
		count++
	}
	return append(runs, Run[T]{Value: x, Length: count})
}

// Decode expands runs back into a slice of values. Runs with a length lower
// than 1 are skipped.
func Decode[T comparable](runs []Run[T]) []T {
	n := 0
	for _, r := range runs {
		if r.Length > 0 {
			n += r.Length
		}
	}
	values := make([]T, 0, n)
	for _, r := range runs {
		for i := 0; i < r.Length; i++ {
			values = append(values, r.Value)
		}
	}
	return values
}

// Group returns the run lengths by value of an encoded sequence. Adjacent
// runs holding the same value are merged, so Group(Encode(x)) and
// GroupRunLengths(x) are equal for any x.
func Group[T comparable](runs []Run[T]) map[T][]int {
	m := make(map[T][]int)
	var last T
	merge := false
	for _, r := range runs {
		if r.Length <= 0 {
			continue
		}
		if merge && r.Value == last {
			l := m[last]
			l[len(l)-1] += r.Length
			continue
		}
		m[r.Value] = append(m[r.Value], r.Length)
		last, merge = r.Value, true
	}
	return m
}

// Flatten concatenates the lists held by m in ascending key order.
func Flatten[K cmp.Ordered, V any](m map[K][]V) []V {
	n := 0
	for _, v := range m {
		n += len(v)
	}
	out := make([]V, 0, n)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[k]...)
	}
	return out
}

// A Summary describes the runs of a single value.
type Summary[T comparable] struct {
	Value   T
	Runs    []int
	Count   int
	Longest int
}

// Mean returns the mean run length, or 0 if the summary holds no run.
func (s Summary[T]) Mean() float64 {
	if len(s.Runs) == 0 {
		return 0
	}
	return float64(s.Count) / float64(len(s.Runs))
}

// Summarize returns a Summary for each distinct value of values, in order of
// first appearance. Like GroupRunLengths, every NaN run gets its own Summary.
func Summarize[T comparable](values []T) []Summary[T] {
	index := make(map[T]int)
	var summaries []Summary[T]
	for _, r := range Encode(values) {
		i, ok := index[r.Value]
		if !ok {
			i = len(summaries)
			summaries = append(summaries, Summary[T]{Value: r.Value})
			if r.Value == r.Value { // false for NaN
				index[r.Value] = i
			}
		}
		s := &summaries[i]
		s.Runs = append(s.Runs, r.Length)
		s.Count += r.Length
		s.Longest = max(s.Longest, r.Length)
	}
	if summaries == nil {
		summaries = []Summary[T]{}
	}
	return summaries
}
