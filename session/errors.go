// Package session: sentinel error set.

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by operations that need a loaded upload
	// (Restore, Payload) when the slot is empty.
	ErrEmpty = errors.New("session: no upload loaded")

	// ErrRestore classifies restore failures; every *RestoreError matches
	// it via errors.Is.
	ErrRestore = errors.New("session: restore failed")
)

// RestoreError reports that the persisted payload could not be turned back
// into a network. By the time the caller sees it the session has already
// been cleared: a payload that cannot be decoded today will not decode
// tomorrow either.
type RestoreError struct {
	Digest Digest // digest of the upload the payload belonged to
	Err    error  // the codec, store or build failure underneath
}

// Error renders "session: restore failed for <short digest>: cause".
func (e *RestoreError) Error() string {
	return fmt.Sprintf("session: restore failed for %s: %v", e.Digest.Short(), e.Err)
}

// Unwrap exposes the underlying cause so errors.Is reaches the codec and
// store sentinels.
func (e *RestoreError) Unwrap() error { return e.Err }

// Is matches the ErrRestore sentinel.
func (e *RestoreError) Is(target error) bool { return target == ErrRestore }
