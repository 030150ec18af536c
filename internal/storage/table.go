package storage

import (
	"fmt"
	"mindcare/internal/models"
	"sort"
	"sync"
)

// Record is the pointer side of a stored value.
type Record[T any] interface {
	*T
	RecordID() string
	OwnerID() string
}

// Table is an in-memory keyed table with a secondary index on the owner.
// Values are stored by copy, so callers never share memory with the table.
type Table[T any, P Record[T]] struct {
	name    string
	mu      sync.RWMutex
	rows    map[string]T
	byOwner map[string]map[string]struct{}
}

func NewTable[T any, P Record[T]](name string) *Table[T, P] {
	return &Table[T, P]{
		name:    name,
		rows:    make(map[string]T),
		byOwner: make(map[string]map[string]struct{}),
	}
}

func (t *Table[T, P]) Name() string {
	return t.name
}

// Put inserts or replaces the row with the same id.
func (t *Table[T, P]) Put(v P) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.putLocked(v)
}

// Insert stores v unless its id is taken or conflicts reports a clash with
// an existing row. The check and the write happen under one lock.
func (t *Table[T, P]) Insert(v P, conflicts func(existing P) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := v.RecordID()
	if _, ok := t.rows[id]; ok {
		return fmt.Errorf("%s %s exists: %w", t.name, id, models.ErrConflict)
	}
	if conflicts != nil {
		for _, row := range t.rows {
			existing := row
			if conflicts(&existing) {
				return fmt.Errorf("%s clashes with %s: %w", t.name, P(&existing).RecordID(), models.ErrConflict)
			}
		}
	}
	t.putLocked(v)
	return nil
}

// Update runs fn on a copy of the row while holding the write lock and
// stores the copy when fn returns nil. fn must not change the id.
func (t *Table[T, P]) Update(id string, fn func(P) error) (P, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, models.NotFound(t.name, id)
	}
	row := P(&v)
	if err := fn(row); err != nil {
		return nil, err
	}
	t.putLocked(row)
	return row, nil
}

func (t *Table[T, P]) putLocked(v P) {
	id := v.RecordID()
	if old, ok := t.rows[id]; ok {
		t.unindex(P(&old).OwnerID(), id)
	}
	t.rows[id] = *v
	owner := v.OwnerID()
	if t.byOwner[owner] == nil {
		t.byOwner[owner] = make(map[string]struct{})
	}
	t.byOwner[owner][id] = struct{}{}
}

func (t *Table[T, P]) unindex(owner, id string) {
	ids := t.byOwner[owner]
	delete(ids, id)
	if len(ids) == 0 {
		delete(t.byOwner, owner)
	}
}

// Get returns a copy of the row, or ErrNotFound.
func (t *Table[T, P]) Get(id string) (P, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, models.NotFound(t.name, id)
	}
	return &v, nil
}

// GetOwned is Get restricted to rows of owner. Rows of other owners are
// reported as missing.
func (t *Table[T, P]) GetOwned(owner, id string) (P, error) {
	v, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	if v.OwnerID() != owner {
		return nil, models.NotFound(t.name, id)
	}
	return v, nil
}

// Delete removes an owned row.
func (t *Table[T, P]) Delete(owner, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok || P(&v).OwnerID() != owner {
		return models.NotFound(t.name, id)
	}
	delete(t.rows, id)
	t.unindex(owner, id)
	return nil
}

// QueryByOwner returns copies of all rows of owner ordered by id.
func (t *Table[T, P]) QueryByOwner(owner string) []P {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := t.byOwner[owner]
	out := make([]P, 0, len(ids))
	for id := range ids {
		v := t.rows[id]
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID() < out[j].RecordID() })
	return out
}

// Find scans the table and returns the rows matching pred.
func (t *Table[T, P]) Find(pred func(P) bool) []P {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]P, 0)
	for _, row := range t.rows {
		v := row
		if pred(&v) {
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID() < out[j].RecordID() })
	return out
}

func (t *Table[T, P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// All returns copies of every row, for snapshots.
func (t *Table[T, P]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return P(&out[i]).RecordID() < P(&out[j]).RecordID() })
	return out
}

// Replace swaps the table contents for rows.
func (t *Table[T, P]) Replace(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[string]T, len(rows))
	t.byOwner = make(map[string]map[string]struct{})
	for i := range rows {
		t.putLocked(P(&rows[i]))
	}
}
