// Package memory implements the repository interfaces on process memory.
// Records live for the lifetime of the process only.
package memory

import (
	"sync"
	"time"
)

// table stores the rows of one entity type. Identities come from a
// per-table counter starting at 1; rows never move, so id-1 is the index.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   []*T
	clone  func(*T) *T
	now    func() time.Time
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{
		nextID: 1,
		clone:  clone,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// insert stamps row through assign and stores a private copy of it.
func (t *table[T]) insert(row *T, assign func(row *T, id int64, createdAt time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.insertLocked(row, assign)
}

func (t *table[T]) insertLocked(row *T, assign func(row *T, id int64, createdAt time.Time)) {
	assign(row, t.nextID, t.now())
	t.nextID++
	t.rows = append(t.rows, t.clone(row))
}

func (t *table[T]) get(id int64) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.getLocked(id)
	if !ok {
		return nil, false
	}

	return t.clone(row), true
}

func (t *table[T]) getLocked(id int64) (*T, bool) {
	if id < 1 || id > int64(len(t.rows)) {
		return nil, false
	}

	return t.rows[id-1], true
}

// list returns copies of the rows accepted by match, in insertion order.
// A nil match accepts every row.
func (t *table[T]) list(match func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*T, 0, len(t.rows))
	for _, row := range t.rows {
		if match == nil || match(row) {
			out = append(out, t.clone(row))
		}
	}

	return out
}

// find returns a copy of the first row accepted by match.
func (t *table[T]) find(match func(*T) bool) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if match(row) {
			return t.clone(row), true
		}
	}

	return nil, false
}

// update applies mutate to the stored row and returns a copy of the result.
func (t *table[T]) update(id int64, mutate func(*T)) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.getLocked(id)
	if !ok {
		return nil, false
	}
	mutate(row)

	return t.clone(row), true
}

func clonePtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
