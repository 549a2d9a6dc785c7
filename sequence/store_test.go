package sequence

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestStoreNew(t *testing.T) {
	store := NewStore[uint8]()
	store.New("s1", 10)
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	want := New[uint8](10)
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore[uint8]()
	want := NewWithValues(0, testValues)
	store.Add("s1", want)
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	if got == want {
		t.Fatalf("pointer values should not be equal")
	}
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore[uint8]()
	store.New("s1", 0)
	store.Delete("s1")
	if _, ok := store.m["s1"]; ok {
		t.Fatalf("key should not exist in store")
	}
}

func TestStoreGet(t *testing.T) {
	store := NewStore[uint8]()
	want := NewWithValues(0, testValues)
	store.Add("s1", want)
	got, ok := store.Get("s1")
	if !ok {
		t.Fatalf("got %t, want true", ok)
	}
	if got == want {
		t.Fatalf("pointer values should not be equal")
	}
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
	if _, ok = store.Get("s2"); ok {
		t.Fatalf("got %t, want false", ok)
	}
}

func TestStoreDumpLoad(t *testing.T) {
	src := NewStore[uint8]()
	src.Add("k1", NewWithValues(12, []uint8{0, 0, 0, 1}))
	src.Add("k11", NewWithValues(0, testValues))
	dump, err := src.Dump()
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	dst := NewStore[uint8]()
	dst.New("stale", 3)
	if err := dst.Load(dump); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if n, m := len(src.m), len(dst.m); n != m {
		t.Fatalf("got %d, want %d", m, n)
	}
	for k := range src.m {
		v, ok := dst.m[k]
		if !ok {
			t.Fatalf("key %s should exist in store", k)
		}
		if !assertSequencesEqual(src.m[k], v) {
			t.Fatalf("\ngot  %+v\nwant %+v", v, src.m[k])
		}
	}
	if err := dst.Load([]byte("{")); err == nil {
		t.Fatal("got error nil, want non nil error")
	}
	if len(dst.m) != 2 {
		t.Fatalf("store should be left untouched, got %d keys", len(dst.m))
	}
}

func TestStoreKeys(t *testing.T) {
	store := NewStore[uint8]()
	store.New("k2", 0)
	store.New("k1", 0)
	want := []string{"k1", "k2"}
	if got := store.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStoreExecuteUnknownStatement(t *testing.T) {
	statement := Statement[uint8]{Key: "k1", Type: statementUnknown, CreateIfNotExists: true}
	if err := NewStore[uint8]().Execute(statement); err == nil {
		t.Fatal("got error nil, want non nil error")
	}
}

func TestStoreExecute(t *testing.T) {
	tests := []struct {
		id        string
		statement Statement[uint8]
		want      []Run[uint8]
		err       error
	}{
		{"Add1", Statement[uint8]{"k1", 1, 0, StatementAdd, true, 0}, []Run[uint8]{{1, 1}}, nil},
		{"Add2", Statement[uint8]{"k1", 1, 4, StatementAdd, true, 4}, []Run[uint8]{{1, 4}}, nil},
		{"Add3", Statement[uint8]{"k1", 1, 5, StatementAdd, true, 4}, nil, ErrFull},
		{"Add4", Statement[uint8]{"k1", 1, 1, StatementAdd, false, 0}, nil, ErrKeyNotFound},
		{"Roll1", Statement[uint8]{"k1", 2, 5, StatementRoll, true, 4}, []Run[uint8]{{2, 4}}, nil},
		{"Roll2", Statement[uint8]{"k1", 2, 1, StatementRoll, false, 0}, nil, ErrKeyNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			store := NewStore[uint8]()
			err := store.Execute(tt.statement)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got error %v, want %v", err, tt.err)
			}
			if err != nil {
				return
			}
			got, ok := store.Get(tt.statement.Key)
			if !ok {
				t.Fatal("key should exist in store")
			}
			if !reflect.DeepEqual(got.runs, tt.want) {
				t.Fatalf("\ngot  %v\nwant %v", got.runs, tt.want)
			}
		})
	}
}

func TestStoreBatch(t *testing.T) {
	statements := []Statement[uint8]{
		{"k1", 1, 2, StatementAdd, true, 3},
		{"k1", 0, 2, StatementAdd, false, 0},
		{"k1", 0, 2, StatementRoll, false, 0},
		{"k2", 0, 1, StatementAdd, false, 0},
		{"k3", 5, 1, StatementAdd, true, 0},
	}
	store := NewStore[uint8]()
	r := store.Batch(statements)
	errs := r.ErrorVars()
	if len(errs) != len(statements) {
		t.Fatalf("got %d errors, want %d", len(errs), len(statements))
	}
	want := []error{nil, ErrFull, nil, ErrKeyNotFound, nil}
	for i := range want {
		if !errors.Is(errs[i], want[i]) {
			t.Fatalf("statement %d: got error %v, want %v", i, errs[i], want[i])
		}
	}
	if r.Failed() != 2 {
		t.Fatalf("got %d failures, want 2", r.Failed())
	}
	err := r.Err()
	if !errors.Is(err, ErrFull) || !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("got error %v, want joined errors", err)
	}
	got, _ := store.Get("k1")
	if want := []uint8{1, 0, 0}; !reflect.DeepEqual(got.All(), want) {
		t.Fatalf("got %v, want %v", got.All(), want)
	}
	if r := store.Batch(statements[4:]); r.Err() != nil {
		t.Fatalf("got error %s, want error nil", r.Err())
	}
}

func TestStoreConcurrentExecute(t *testing.T) {
	store := NewStore[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Execute(Statement[int]{Key: "k", Value: i % 2, Type: StatementAdd, CreateIfNotExists: true})
		}(i)
	}
	wg.Wait()
	got, ok := store.Get("k")
	if !ok {
		t.Fatal("key should exist in store")
	}
	if got.Len() != 50 {
		t.Fatalf("got %d values, want 50", got.Len())
	}
}

func TestStoreRestore(t *testing.T) {
	store := NewStore[string]()
	store.New("stale", 0)
	err := store.Restore(map[string]Record[string]{
		"k1": {Length: 4, Runs: []Run[string]{{"a", 2}, {"b", 1}}},
	})
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if got := store.Keys(); !reflect.DeepEqual(got, []string{"k1"}) {
		t.Fatalf("got %v, want [k1]", got)
	}
	err = store.Restore(map[string]Record[string]{
		"bad": {Length: 1, Runs: []Run[string]{{"a", 2}}},
	})
	if !errors.Is(err, ErrFull) {
		t.Fatalf("got error %v, want %v", err, ErrFull)
	}
	if got := store.Keys(); !reflect.DeepEqual(got, []string{"k1"}) {
		t.Fatalf("store should be left untouched, got %v", got)
	}
}
