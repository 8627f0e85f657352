package jsonldb

import (
	"iter"
	"sync"
)

// Cloner is implemented by types that can clone themselves.
type Cloner[T any] interface {
	Clone() T
}

// Row is a clonable value identified by a comparable key.
type Row[K comparable, T any] interface {
	Cloner[T]
	GetID() K
}

// Table is an ordered in-memory collection of rows.
//
// Rows are cloned on the way in and on the way out; callers never hold a
// reference to a stored row. Lookups are linear scans.
type Table[K comparable, T Row[K, T]] struct {
	mu   sync.RWMutex
	rows []T
}

// NewTable creates an empty Table.
func NewTable[K comparable, T Row[K, T]]() *Table[K, T] {
	return &Table[K, T]{rows: []T{}}
}

// Len returns the number of rows.
func (t *Table[K, T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// All returns an iterator over clones of all rows.
//
// The read lock is held while iterating; do not call mutating methods from
// within the loop.
func (t *Table[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		for _, row := range t.rows {
			if !yield(row.Clone()) {
				return
			}
		}
	}
}

// Rows returns a new slice holding clones of all rows, in order.
func (t *Table[K, T]) Rows() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Clone()
	}
	return out
}

// Get returns a clone of the row with the given id.
//
// It reports true only when exactly one row matches.
func (t *Table[K, T]) Get(id K) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, n := t.find(id)
	if n != 1 {
		var zero T
		return zero, false
	}
	return t.rows[i].Clone(), true
}

// Replace replaces all rows with clones of the provided slice.
func (t *Table[K, T]) Replace(rows []T) {
	cloned := make([]T, len(rows))
	for i, row := range rows {
		cloned[i] = row.Clone()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = cloned
}

// Insert appends a clone of row unless exactly one row already has its id.
//
// The check and the append happen under the same lock. It returns false if
// the row was not inserted.
func (t *Table[K, T]) Insert(row T) bool {
	c := row.Clone()
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, n := t.find(c.GetID()); n == 1 {
		return false
	}
	t.rows = append(t.rows, c)
	return true
}

// Update replaces, in place, the row sharing row's id with a clone of row.
//
// Nothing changes unless exactly one row has the id; it returns false in
// that case.
func (t *Table[K, T]) Update(row T) bool {
	c := row.Clone()
	t.mu.Lock()
	defer t.mu.Unlock()
	i, n := t.find(c.GetID())
	if n != 1 {
		return false
	}
	t.rows[i] = c
	return true
}

// find returns the index of the first row with id and the number of matches.
// Must be called with the lock held.
func (t *Table[K, T]) find(id K) (int, int) {
	first, n := -1, 0
	for i, row := range t.rows {
		if row.GetID() == id {
			if n == 0 {
				first = i
			}
			n++
		}
	}
	return first, n
}
