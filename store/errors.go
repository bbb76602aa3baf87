// Package store: sentinel error set.

package store

import "errors"

var (
	// ErrNotFound is returned by Get for a key that holds no value. It is
	// wrapped with the missing key; match with errors.Is.
	ErrNotFound = errors.New("store: key not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store: closed")
)
