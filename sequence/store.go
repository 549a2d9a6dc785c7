package sequence

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Statement types.
const (
	StatementAdd uint8 = iota
	StatementRoll
	statementUnknown
)

// ErrKeyNotFound is returned when a statement targets a missing key and is
// not allowed to create it.
var ErrKeyNotFound = errors.New("key does not exist")

// A Statement represents an operation to perform on a store. A Count lower
// than 1 is treated as 1.
type Statement[T comparable] struct {
	Key               string
	Value             T
	Count             int
	Type              uint8
	CreateIfNotExists bool
	CreateWithLength  int
}

// A Store represents a collection of Sequences. A Store can be used simultaneously
// from multiple goroutines.
type Store[T comparable] struct {
	m  map[string]*Sequence[T]
	mu sync.RWMutex
}

// NewStore creates and intializes a new Store.
func NewStore[T comparable]() *Store[T] {
	return &Store[T]{m: make(map[string]*Sequence[T])}
}

// New creates and adds a new Sequence to the store using key as its identifier. If a
// Sequence already exists for the identifier it is silently replaced with the new
// Sequence.
func (s *Store[T]) New(key string, length int) {
	s.mu.Lock()
	s.m[key] = New[T](length)
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier.
// If a Sequence already exists for the identifier it is silently replaced with the new
// Sequence.
func (s *Store[T]) Add(key string, x *Sequence[T]) {
	s.mu.Lock()
	s.m[key] = x.clone()
	s.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return value is
// true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (*Sequence[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.clone(), true
}

// Delete removes the Sequence associated to key, if any.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed or if the underlying operation returned an error.
func (s *Store[T]) Execute(statement Statement[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store. Individual errors are
// non blocking, they are reported in the returned BatchResult.
func (s *Store[T]) Batch(statements []Statement[T]) BatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := BatchResult{n: len(statements)}
	for i, v := range statements {
		if err := s.executeUnsafe(v); err != nil {
			if r.errors == nil {
				r.errors = make(map[int]error)
			}
			r.errors[i] = err
		}
	}
	return r
}

// Keys returns the identifiers known in the store in ascending order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Records returns the exported form of every sequence of the store.
func (s *Store[T]) Records() map[string]Record[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := make(map[string]Record[T], len(s.m))
	for k, v := range s.m {
		m[k] = v.Record()
	}
	return m
}

// Dump allows to export the store as a slice of bytes.
func (s *Store[T]) Dump() ([]byte, error) {
	return json.Marshal(s.Records())
}

// Load loads the content of a store previously exported using the Dump
// method, replacing the current content of the store. The store is left
// untouched if data cannot be decoded.
func (s *Store[T]) Load(data []byte) error {
	var records map[string]Record[T]
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("cannot decode the store: %w", err)
	}
	return s.Restore(records)
}

// Restore replaces the content of the store with sequences built from
// records. The store is left untouched if a record is invalid.
func (s *Store[T]) Restore(records map[string]Record[T]) error {
	m := make(map[string]*Sequence[T], len(records))
	for k, r := range records {
		x, err := NewFromRecord(r)
		if err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		m[k] = x
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	return nil
}

// executeUnsafe executes a statement against the store, returning an error if the
// statement cannot be executed or if the underlying operation returned an error.
// This method is not goroutine-safe. The caller is responsible for properly
// acquiring / releasing the lock on the store.
func (s *Store[T]) executeUnsafe(statement Statement[T]) error {
	if statement.Type >= statementUnknown {
		return errors.New("unknown statement type")
	}
	x, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return ErrKeyNotFound
		}
		x = New[T](statement.CreateWithLength)
		s.m[statement.Key] = x
	}
	count := max(statement.Count, 1)
	switch statement.Type {
	case StatementAdd:
		return x.AddMany(count, statement.Value)
	case StatementRoll:
		return x.RollMany(count, statement.Value)
	}
	return nil
}

// A BatchResult holds the outcome of a call to Store.Batch.
type BatchResult struct {
	errors map[int]error
	n      int
}

// ErrorVars returns one error per statement of the batch, nil for the
// statements that were executed successfully.
func (b BatchResult) ErrorVars() []error {
	errs := make([]error, b.n)
	for i, err := range b.errors {
		errs[i] = err
	}
	return errs
}

// Failed returns the number of statements that could not be completed.
func (b BatchResult) Failed() int {
	return len(b.errors)
}

// Err returns nil if every statement succeeded, or an error joining the
// individual errors otherwise.
func (b BatchResult) Err() error {
	if len(b.errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(b.errors))
	for i, err := range b.ErrorVars() {
		if err != nil {
			errs = append(errs, fmt.Errorf("%w, at index %d", err, i))
		}
	}
	return errors.Join(errs...)
}
