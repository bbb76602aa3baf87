// Package store: the default map-backed backend.

package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is the default backend: a RWMutex-guarded map. Values are copied
// on the way in and on the way out, so no caller ever aliases store-owned
// bytes.
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// Compile-time contract check.
var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Put stores a copy of val under key, replacing any previous value.
func (s *Memory) Put(ctx context.Context, key string, val []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	cp := make([]byte, len(val))
	copy(cp, val)
	s.data[key] = cp

	return nil
}

// Get returns a copy of the value under key, or ErrNotFound.
func (s *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	val, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	cp := make([]byte, len(val))
	copy(cp, val)

	return cp, nil
}

// Delete removes key; deleting a missing key is a no-op.
func (s *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.data, key)

	return nil
}

// Close drops all state. Subsequent operations return ErrClosed; repeated
// Close is a no-op.
func (s *Memory) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.data = nil

	return nil
}

// Len reports the stored key count, for diagnostics and tests.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
