// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.
// Encode failures report what made the matrix unencodable; Decode failures
// split into "no strategy recognizes this" (ErrUndecodable) and "a strategy
// recognized it and found it broken" (ErrCorrupt). Tests match via errors.Is.

package codec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "codec: ..." so failures grep cleanly
// across logs. ErrCorrupt is always wrapped with the concrete defect
// (version, truncation, range) via fmt.Errorf("%w: ...", ErrCorrupt).

var (
	// ErrNilMatrix is returned by the encoders when given a nil matrix.
	ErrNilMatrix = errors.New("codec: nil matrix")

	// ErrBadShape is returned when a matrix cannot be represented by the
	// requested format: dimensions that do not fit the frame's uint32
	// fields, or a 0-dimension matrix handed to the dense encoder.
	ErrBadShape = errors.New("codec: shape not representable")

	// ErrCorrupt signals a payload whose magic matched a strategy but whose
	// contents are unusable: wrong version, truncated or trailing bytes,
	// indices outside the declared dimensions, non-finite cells.
	ErrCorrupt = errors.New("codec: corrupt payload")

	// ErrUndecodable signals a payload no strategy recognizes. Restoring
	// from it is hopeless; callers discard the stored state.
	ErrUndecodable = errors.New("codec: payload not recognized by any strategy")
)
