// Package memdb keeps every entity collection in process memory. All
// collections share one state; a transaction works on a clone of it and the
// clone replaces the live state only when the transaction succeeds.
package memdb

import (
	"context"
	"sync"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo/repo_errors"
)

type state struct {
	clients       *table[entity.Client]
	contracts     *table[entity.Contract]
	consultants   *table[entity.Consultant]
	services      *table[entity.Service]
	logEntries    *table[entity.LogEntry]
	announcements *table[entity.Announcement]
}

func newState() *state {
	return &state{
		clients:       newTable(cloneClient),
		contracts:     newTable(cloneContract),
		consultants:   newTable(cloneConsultant),
		services:      newTable(cloneService),
		logEntries:    newTable(cloneLogEntry),
		announcements: newTable(cloneAnnouncement),
	}
}

func (s *state) clone() *state {
	return &state{
		clients:       s.clients.clone(),
		contracts:     s.contracts.clone(),
		consultants:   s.consultants.clone(),
		services:      s.services.clone(),
		logEntries:    s.logEntries.clone(),
		announcements: s.announcements.clone(),
	}
}

type DB struct {
	mu    sync.RWMutex
	state *state
}

func New() *DB {
	return &DB{state: newState()}
}

type txKey struct{}

type tx struct {
	state    *state
	readOnly bool
	done     bool
}

func txFrom(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txKey{}).(*tx)

	return t, ok
}

// WithinTx runs fn with exclusive access to a working copy of the state.
// The copy is committed when fn returns nil and dropped otherwise. Calls made
// with a context that already carries a transaction join it.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if t, ok := txFrom(ctx); ok && !t.done {
		if t.readOnly {
			return repo_errors.ErrReadOnly
		}

		return fn(ctx)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	t := &tx{state: db.state.clone()}
	defer func() { t.done = true }()

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}

	db.state = t.state

	return nil
}

// View runs fn against one consistent snapshot; writes inside fn fail.
func (db *DB) View(ctx context.Context, fn func(ctx context.Context) error) error {
	if t, ok := txFrom(ctx); ok && !t.done {
		return fn(ctx)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	t := &tx{state: db.state, readOnly: true}
	defer func() { t.done = true }()

	return fn(context.WithValue(ctx, txKey{}, t))
}

func (db *DB) read(ctx context.Context, fn func(s *state) error) error {
	if t, ok := txFrom(ctx); ok {
		if t.done {
			return repo_errors.ErrTxDone
		}

		return fn(t.state)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	return fn(db.state)
}

func (db *DB) write(ctx context.Context, fn func(s *state) error) error {
	if t, ok := txFrom(ctx); ok && t.done {
		return repo_errors.ErrTxDone
	}

	return db.WithinTx(ctx, func(ctx context.Context) error {
		t, _ := txFrom(ctx)

		return fn(t.state)
	})
}

// table is an insertion-ordered collection keyed by id. Values go in and come
// out through copy so callers never share slices with the stored rows.
type table[T any] struct {
	rows  map[string]T
	order []string
	copy  func(T) T
}

func newTable[T any](copyFn func(T) T) *table[T] {
	return &table[T]{rows: make(map[string]T), copy: copyFn}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{
		rows:  make(map[string]T, len(t.rows)),
		order: make([]string, len(t.order)),
		copy:  t.copy,
	}
	copy(c.order, t.order)
	for id, row := range t.rows {
		c.rows[id] = t.copy(row)
	}

	return c
}

func (t *table[T]) get(id string) (T, error) {
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, repo_errors.ErrNotFound
	}

	return t.copy(row), nil
}

func (t *table[T]) insert(id string, row T) error {
	if _, ok := t.rows[id]; ok {
		return repo_errors.ErrAlreadyExists
	}

	t.rows[id] = t.copy(row)
	t.order = append(t.order, id)

	return nil
}

func (t *table[T]) replace(id string, row T) error {
	if _, ok := t.rows[id]; !ok {
		return repo_errors.ErrNotFound
	}

	t.rows[id] = t.copy(row)

	return nil
}

func (t *table[T]) remove(id string) error {
	if _, ok := t.rows[id]; !ok {
		return repo_errors.ErrNotFound
	}

	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}

	return nil
}

func (t *table[T]) list(keep func(T) bool) []T {
	s := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			s = append(s, t.copy(row))
		}
	}

	return s
}

func (t *table[T]) len() int {
	return len(t.order)
}
