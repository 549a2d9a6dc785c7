package sequence

import (
	"errors"
	"reflect"
	"testing"
)

var testValues = []uint8{1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 0}

func TestNew(t *testing.T) {
	tests := []struct {
		id     int
		length int
		want   int
	}{
		{1, 10, 10},
		{2, 0, MaxSequenceLength},
		{3, -3, MaxSequenceLength},
	}
	for _, tt := range tests {
		s := New[int](tt.length)
		if s.Length() != tt.want {
			t.Fatalf("test %d: got %d, want %d", tt.id, s.Length(), tt.want)
		}
		if s.Len() != 0 {
			t.Fatalf("test %d: got %d values, want 0", tt.id, s.Len())
		}
	}
}

func TestNewWithValues(t *testing.T) {
	want := &Sequence[uint8]{
		length: MaxSequenceLength,
		count:  20,
		runs:   []Run[uint8]{{1, 5}, {0, 5}, {1, 5}, {2, 4}, {0, 1}},
	}
	got := NewWithValues(0, testValues)
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}

	got = NewWithValues(7, testValues)
	want = &Sequence[uint8]{length: 7, count: 7, runs: []Run[uint8]{{1, 5}, {0, 2}}}
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
}

func TestNewFromRecord(t *testing.T) {
	got, err := NewFromRecord(Record[uint8]{Length: 12, Runs: []Run[uint8]{{1, 2}, {1, 3}, {0, 4}}})
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	want := &Sequence[uint8]{length: 12, count: 9, runs: []Run[uint8]{{1, 5}, {0, 4}}}
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
	if _, err := NewFromRecord(Record[uint8]{Length: 12, Runs: []Run[uint8]{{1, 0}}}); err == nil {
		t.Fatal("got error nil, want non nil error")
	}
	_, err = NewFromRecord(Record[uint8]{Length: 3, Runs: []Run[uint8]{{1, 2}, {0, 2}}})
	if !errors.Is(err, ErrFull) {
		t.Fatalf("got error %v, want %v", err, ErrFull)
	}
}

func TestAdd(t *testing.T) {
	s := New[uint8](4)
	tests := []struct {
		id    int
		value uint8
		want  []Run[uint8]
	}{
		{1, 0, []Run[uint8]{{0, 1}}},
		{2, 1, []Run[uint8]{{0, 1}, {1, 1}}},
		{3, 1, []Run[uint8]{{0, 1}, {1, 2}}},
		{4, 2, []Run[uint8]{{0, 1}, {1, 2}, {2, 1}}},
	}
	for i, tt := range tests {
		if err := s.Add(tt.value); err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		if s.Len() != i+1 {
			t.Fatalf("test %d: got %d, want %d", tt.id, s.Len(), i+1)
		}
		if !reflect.DeepEqual(s.runs, tt.want) {
			t.Fatalf("test %d:\ngot  %v\nwant %v", tt.id, s.runs, tt.want)
		}
	}
	if err := s.Add(2); !errors.Is(err, ErrFull) {
		t.Fatalf("got error %v, want %v", err, ErrFull)
	}
}

func TestAddMany(t *testing.T) {
	s := New[uint8](100)
	tests := []struct {
		id    int
		count int
		value uint8
		want  []Run[uint8]
		err   error
	}{
		{1, 40, 0, []Run[uint8]{{0, 40}}, nil},
		{2, 20, 0, []Run[uint8]{{0, 60}}, nil},
		{3, 30, 1, []Run[uint8]{{0, 60}, {1, 30}}, nil},
		{4, 11, 1, []Run[uint8]{{0, 60}, {1, 30}}, ErrFull},
		{5, 0, 1, []Run[uint8]{{0, 60}, {1, 30}}, ErrInvalidArguments},
		{6, 10, 1, []Run[uint8]{{0, 60}, {1, 40}}, nil},
	}
	for _, tt := range tests {
		err := s.AddMany(tt.count, tt.value)
		if !errors.Is(err, tt.err) {
			t.Fatalf("test %d: got error %v, want %v", tt.id, err, tt.err)
		}
		if !reflect.DeepEqual(s.runs, tt.want) {
			t.Fatalf("test %d:\ngot  %v\nwant %v", tt.id, s.runs, tt.want)
		}
	}
	if s.Len() != 100 {
		t.Fatalf("got %d, want 100", s.Len())
	}
}

func TestRoll(t *testing.T) {
	s := NewWithValues(5, []uint8{1, 1, 0, 0, 2})
	tests := []struct {
		id    int
		count int
		value uint8
		want  []Run[uint8]
	}{
		{1, 1, 2, []Run[uint8]{{1, 1}, {0, 2}, {2, 2}}},
		{2, 2, 3, []Run[uint8]{{0, 1}, {2, 2}, {3, 2}}},
		{3, 1, 3, []Run[uint8]{{2, 2}, {3, 3}}},
		{4, 7, 4, []Run[uint8]{{4, 5}}},
		{5, 4, 4, []Run[uint8]{{4, 5}}},
	}
	for _, tt := range tests {
		if err := s.RollMany(tt.count, tt.value); err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		if s.Len() != 5 {
			t.Fatalf("test %d: got %d values, want 5", tt.id, s.Len())
		}
		if !reflect.DeepEqual(s.runs, tt.want) {
			t.Fatalf("test %d:\ngot  %v\nwant %v", tt.id, s.runs, tt.want)
		}
	}
	s.Roll(5)
	if got, want := s.All(), []uint8{4, 4, 4, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if err := s.RollMany(0, 1); !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidArguments)
	}
}

func TestSequenceRunLengths(t *testing.T) {
	s := NewWithValues(0, testValues)
	got := s.RunLengths()
	want := GroupRunLengths(testValues)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !reflect.DeepEqual(s.All(), testValues) {
		t.Fatalf("got %v, want %v", s.All(), testValues)
	}
}

func TestSequenceRecord(t *testing.T) {
	s := NewWithValues(30, testValues)
	r := s.Record()
	r.Runs[0].Length = 100
	if s.runs[0].Length != 5 {
		t.Fatal("record should not share runs with the sequence")
	}
	got, err := NewFromRecord(s.Record())
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if !assertSequencesEqual(got, s) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, s)
	}
}

func assertSequencesEqual[T comparable](x, y *Sequence[T]) bool {
	if x.length != y.length || x.count != y.count {
		return false
	}
	if len(x.runs) != len(y.runs) {
		return false
	}
	for i := range x.runs {
		if x.runs[i] != y.runs[i] {
			return false
		}
	}
	return true
}
