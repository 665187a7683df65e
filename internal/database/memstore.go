package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used by tests. A single mutex serializes
// transactions, which gives the same effective isolation as the row locks
// in GormStore for whole-collection documents.
type MemStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage

	// FailWrites makes every write report ErrStoreUnavailable.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]json.RawMessage)}
}

func (s *MemStore) Read(ctx context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(key, out)
}

func (s *MemStore) Write(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(key, value)
}

func (s *MemStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Run against a copy so a failed transaction leaves nothing behind.
	tx := &memTx{parent: s, staged: make(map[string]json.RawMessage, len(s.data))}
	for k, v := range s.data {
		tx.staged[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.data = tx.staged
	return nil
}

func (s *MemStore) read(key string, out any) (bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode collection %q: %w", key, err)
	}
	return true, nil
}

func (s *MemStore) write(key string, value any) error {
	if s.FailWrites {
		return fmt.Errorf("%w: write %q", ErrStoreUnavailable, key)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	s.data[key] = raw
	return nil
}

type memTx struct {
	parent *MemStore
	staged map[string]json.RawMessage
}

func (t *memTx) Read(ctx context.Context, key string, out any) (bool, error) {
	raw, ok := t.staged[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode collection %q: %w", key, err)
	}
	return true, nil
}

func (t *memTx) Write(ctx context.Context, key string, value any) error {
	if t.parent.FailWrites {
		return fmt.Errorf("%w: write %q", ErrStoreUnavailable, key)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	t.staged[key] = raw
	return nil
}

func (t *memTx) Transact(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}
