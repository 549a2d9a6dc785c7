package sequence

import (
	"errors"
	"fmt"
)

// MaxSequenceLength is the maximum number of values that can be stored
// in a sequence.
const MaxSequenceLength = 1<<31 - 1

var (
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrFull             = errors.New("sequence is full")
)

// A Sequence represents an ordered series of values stored as runs. The
// maximum length of a sequence is MaxSequenceLength.
type Sequence[T comparable] struct {
	length int
	count  int
	runs   []Run[T]
}

// A Record is the exported form of a Sequence.
type Record[T comparable] struct {
	Length int      `json:"length"`
	Runs   []Run[T] `json:"runs"`
}

// New creates and initializes a new Sequence holding at most length values.
// The length defaults to MaxSequenceLength if not in the range
// [1, MaxSequenceLength].
func New[T comparable](length int) *Sequence[T] {
	if length <= 0 || length > MaxSequenceLength {
		length = MaxSequenceLength
	}
	return &Sequence[T]{length: length}
}

// NewWithValues creates a new Sequence using length as its maximum length and
// values as its initial content. If the number of values is greater than the
// maximum length of the sequence the trailing elements will be silently
// ignored.
func NewWithValues[T comparable](length int, values []T) *Sequence[T] {
	s := New[T](length)
	n := len(values)
	if n == 0 {
		return s
	}
	if n > s.length {
		n = s.length
	}
	s.runs = Encode(values[:n])
	s.count = n
	return s
}

// NewFromRecord creates a new Sequence using r as its initial content.
func NewFromRecord[T comparable](r Record[T]) (*Sequence[T], error) {
	s := New[T](r.Length)
	for i, run := range r.Runs {
		if run.Length < 1 {
			return nil, fmt.Errorf("cannot decode the sequence: run %d has length %d", i, run.Length)
		}
		if run.Length > s.length-s.count {
			return nil, fmt.Errorf("cannot decode the sequence: %w", ErrFull)
		}
		s.addMany(run.Length, run.Value)
	}
	return s, nil
}

// Add appends a value to the sequence, returning ErrFull if the sequence
// has reached its maximum length.
func (s *Sequence[T]) Add(x T) error {
	return s.AddMany(1, x)
}

// AddMany appends count times the value x to the sequence. It returns
// ErrFull, leaving the sequence untouched, if there is not enough room left.
func (s *Sequence[T]) AddMany(count int, x T) error {
	if count < 1 {
		return ErrInvalidArguments
	}
	if count > s.length-s.count {
		return ErrFull
	}
	s.addMany(count, x)
	return nil
}

// Roll appends a value to the sequence, discarding the oldest value if the
// sequence has reached its maximum length.
func (s *Sequence[T]) Roll(x T) {
	s.rollMany(1, x)
}

// RollMany appends count times the value x to the sequence, discarding the
// oldest values as needed to stay within the maximum length.
func (s *Sequence[T]) RollMany(count int, x T) error {
	if count < 1 {
		return ErrInvalidArguments
	}
	s.rollMany(count, x)
	return nil
}

func (s *Sequence[T]) rollMany(count int, x T) {
	if count >= s.length {
		s.runs = []Run[T]{{Value: x, Length: s.length}}
		s.count = s.length
		return
	}
	if overflow := s.count + count - s.length; overflow > 0 {
		s.discard(overflow)
	}
	s.addMany(count, x)
}

// addMany appends a series of values to the sequence, extending the last
// run when it holds the same value.
func (s *Sequence[T]) addMany(count int, x T) {
	if n := len(s.runs); n > 0 && s.runs[n-1].Value == x {
		s.runs[n-1].Length += count
	} else {
		s.runs = append(s.runs, Run[T]{Value: x, Length: count})
	}
	s.count += count
}

// discard removes the n oldest values of the sequence.
func (s *Sequence[T]) discard(n int) {
	i := 0
	for i < len(s.runs) && n > 0 {
		if l := s.runs[i].Length; l > n {
			s.runs[i].Length -= n
			s.count -= n
			break
		} else {
			n -= l
			s.count -= l
		}
		i++
	}
	s.runs = append(s.runs[:0], s.runs[i:]...)
}

// All returns the values stored in the sequence.
func (s *Sequence[T]) All() []T {
	return Decode(s.runs)
}

// Runs returns a copy of the runs stored in the sequence.
func (s *Sequence[T]) Runs() []Run[T] {
	runs := make([]Run[T], len(s.runs))
	copy(runs, s.runs)
	return runs
}

// RunLengths returns the run lengths by value of the sequence. It is
// equivalent to GroupRunLengths(s.All()).
func (s *Sequence[T]) RunLengths() map[T][]int {
	return Group(s.runs)
}

// Record returns the exported form of the sequence.
func (s *Sequence[T]) Record() Record[T] {
	return Record[T]{Length: s.length, Runs: s.Runs()}
}

// Len returns the number of values stored in the sequence.
func (s *Sequence[T]) Len() int {
	return s.count
}

// Length returns the maximum length of the sequence.
func (s *Sequence[T]) Length() int {
	return s.length
}

// interval returns the closed index interval holding values.
func (s *Sequence[T]) interval() interval {
	return interval{start: 0, end: s.count - 1}
}

// clone returns a copy of s.
func (s *Sequence[T]) clone() *Sequence[T] {
	return &Sequence[T]{
		length: s.length,
		count:  s.count,
		runs:   s.Runs(),
	}
}
