// Package store: the backend contract.

package store

import "context"

// Store is the payload store contract the session layer builds on.
//
// Semantics shared by all backends:
//   - Put replaces wholesale; there is no append or merge.
//   - Get returns a copy the caller may mutate freely; a missing key is
//     ErrNotFound.
//   - Delete of a missing key is a no-op (idempotent).
//   - After Close every operation returns ErrClosed; Close itself is
//     idempotent.
//   - A canceled context aborts the operation with the context's error.
type Store interface {
	Put(ctx context.Context, key string, val []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
