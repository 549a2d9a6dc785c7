package sequence

// Values returns the values stored in the sequence using start and end as
// closed index interval filter. The second return value is the index of the
// first element of the slice. The method returns an error if the interval
// filter and the sequence don't overlap.
func (s *Sequence[T]) Values(start, end int) ([]T, int, error) {
	if start > end {
		return nil, 0, ErrInvalidArguments
	}
	r, ok := s.interval().intersect(interval{start: start, end: end})
	if !ok {
		return nil, 0, ErrOutOfBounds
	}
	data := make([]T, 0, r.end-r.start+1)
	offset := 0
	for _, run := range s.runs {
		lo, hi := offset, offset+run.Length-1
		offset += run.Length
		if hi < r.start {
			continue
		}
		if lo > r.end {
			break
		}
		lo, hi = max(lo, r.start), min(hi, r.end)
		for i := lo; i <= hi; i++ {
			data = append(data, run.Value)
		}
	}
	return data, r.start, nil
}

// RunLengthsIn returns the run lengths by value of the values selected by
// the closed index interval [start, end]. Runs crossing the interval
// boundaries are truncated.
func (s *Sequence[T]) RunLengthsIn(start, end int) (map[T][]int, error) {
	values, _, err := s.Values(start, end)
	if err != nil {
		return nil, err
	}
	return GroupRunLengths(values), nil
}
