// Package session: content addressing.

package session

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is the hex SHA-256 of an upload's raw bytes: 64 lowercase hex
// characters. Two uploads with the same Digest are the same file as far
// as the session is concerned.
type Digest string

// Hash digests raw. Deterministic: the change-detection fast path depends
// on it.
func Hash(raw []byte) Digest {
	sum := sha256.Sum256(raw)

	return Digest(hex.EncodeToString(sum[:]))
}

// Short returns the first 12 characters, the form log lines use. Short
// digests are display-only; comparisons always use the full value.
func (d Digest) Short() string {
	if len(d) <= 12 {
		return string(d)
	}

	return string(d[:12])
}
