// SPDX-License-Identifier: MIT
// Package mtx: sentinel error set.
// This file defines ONLY package-level sentinel errors plus the ParseError
// carrier. All parse failures MUST surface as *ParseError wrapping exactly one
// sentinel below, and tests MUST match them via errors.Is. Panics are reserved
// for programmer errors in option constructors.

package mtx

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mtx: ..." so failures grep cleanly across
// logs. Sentinels classify the failure; the *ParseError wrapper carries the
// 1-based line number and the concrete reason. Callers branch on the class
// (errors.Is), render the message (Error()).
//
// ERROR PRIORITY (documented, enforced in tests):
// banner -> size line -> per-entry (index range, value) -> truncation ->
// trailing garbage. The first violated stage wins; later stages never run.

var (
	// ErrHeader is returned when a MatrixMarket banner is present but does not
	// declare a supported layout (object "matrix", format "coordinate", field
	// real/integer/pattern, symmetry general/symmetric), or when the banner is
	// required via WithStrictBanner and missing.
	ErrHeader = errors.New("mtx: unsupported or missing header")

	// ErrSize indicates a malformed size line: not exactly three fields, a
	// field that is not a non-negative integer, or no size line at all.
	ErrSize = errors.New("mtx: invalid size line")

	// ErrIndexRange indicates a data entry whose 1-based coordinates fall
	// outside [1, rows] x [1, cols].
	ErrIndexRange = errors.New("mtx: entry index out of range")

	// ErrValue indicates a malformed data line: wrong field count, an index
	// that is not an integer, a value that does not parse as a float, or a
	// non-finite value (NaN, ±Inf).
	ErrValue = errors.New("mtx: invalid entry value")

	// ErrTruncated signals fewer data lines than the size line declared.
	// No partial matrix is returned.
	ErrTruncated = errors.New("mtx: truncated file")

	// ErrTrailing signals extra non-blank, non-comment lines after the
	// declared number of entries was already consumed.
	ErrTrailing = errors.New("mtx: trailing data after last entry")

	// ErrTooManyEntries guards allocation: the declared nnz exceeds the
	// configured WithMaxEntries limit.
	ErrTooManyEntries = errors.New("mtx: declared entry count exceeds limit")

	// ErrBadShape is returned by generators and SparseMatrix.Check when
	// dimensions are nonsensical (negative, or zero with entries present).
	ErrBadShape = errors.New("mtx: invalid shape")
)

// ParseError reports a failure at an exact input line. It always wraps one of
// the sentinels above, so both of these hold for a failed Parse:
//
//	errors.Is(err, mtx.ErrTruncated)
//	errors.As(err, &pe) && pe.Line == 4
type ParseError struct {
	// Line is the 1-based line number of the offending input line. For
	// truncation it points at the last line of the input.
	Line int

	// Reason is the concrete human-readable cause, without the line prefix.
	Reason string

	// Err is the sentinel class (ErrHeader, ErrSize, ...).
	Err error
}

// Error renders "mtx: parse error at line N: reason".
func (e *ParseError) Error() string {
	return fmt.Sprintf("mtx: parse error at line %d: %s", e.Line, e.Reason)
}

// Unwrap exposes the sentinel class to errors.Is / errors.As chains.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrorf builds the one ParseError shape the whole parser uses.
func parseErrorf(line int, class error, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...), Err: class}
}
