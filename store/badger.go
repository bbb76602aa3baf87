// Package store: the embedded BadgerDB backend.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	badger "github.com/dgraph-io/badger/v4"
)

// Badger is the embedded-KV backend. It defaults to Badger's in-memory
// mode, matching the session-scoped lifetime of the payloads it holds;
// WithDir opts into an on-disk database for explicit scratch space.
type Badger struct {
	db     *badger.DB
	closed atomic.Bool
}

var _ Store = (*Badger)(nil)

// NewBadger opens the backend. In-memory unless WithDir was given.
func NewBadger(opts ...Option) (*Badger, error) {
	o := gatherOptions(opts...)

	var bo badger.Options
	if o.dir == "" {
		bo = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bo = badger.DefaultOptions(o.dir)
	}
	bo = bo.WithSyncWrites(o.syncWrites)
	if o.logger != nil {
		bo = bo.WithLogger(&slogAdapter{l: o.logger})
	} else {
		// Badger logs eagerly by default; a library embedding stays quiet.
		bo = bo.WithLogger(nil)
	}

	db, err := badger.Open(bo)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Badger{db: db}, nil
}

// Put stores a copy of val under key, replacing any previous value.
func (s *Badger) Put(ctx context.Context, key string, val []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	cp := make([]byte, len(val))
	copy(cp, val)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), cp)
	})
}

// Get returns a copy of the value under key, or ErrNotFound.
func (s *Badger) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("store: badger get: %w", err)
	}

	return out, nil
}

// Delete removes key; deleting a missing key is a no-op.
func (s *Badger) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close shuts the database down. Idempotent; in-memory data is gone after
// the first call.
func (s *Badger) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	return s.db.Close()
}

// slogAdapter bridges Badger's printf-style logger onto slog.
type slogAdapter struct {
	l *slog.Logger
}

func (a *slogAdapter) Errorf(format string, args ...interface{}) {
	a.l.Error(fmt.Sprintf(format, args...))
}

func (a *slogAdapter) Warningf(format string, args ...interface{}) {
	a.l.Warn(fmt.Sprintf(format, args...))
}

func (a *slogAdapter) Infof(format string, args ...interface{}) {
	a.l.Info(fmt.Sprintf(format, args...))
}

func (a *slogAdapter) Debugf(format string, args ...interface{}) {
	a.l.Debug(fmt.Sprintf(format, args...))
}
