// SPDX-License-Identifier: MIT

// Package mtx: functional configuration for Parse. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package mtx

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxEntries caps the nnz a size line may declare before any entry
	// allocation happens. Generous for session uploads, small enough that a
	// hostile header cannot balloon memory.
	DefaultMaxEntries = 5_000_000

	// DefaultStrictBanner controls whether the %%MatrixMarket banner line is
	// mandatory. false ⇒ bare "rows cols nnz" files are accepted, matching
	// the loose files this tool sees in the wild.
	DefaultStrictBanner = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxEntriesInvalid = "mtx: WithMaxEntries: limit must be > 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	maxEntries   int  // > 0; DefaultMaxEntries
	strictBanner bool // DefaultStrictBanner
}

// ---------- Constructors (WithX) ----------

// WithMaxEntries overrides the declared-nnz guard.
// Implementation:
//   - Stage 1: validate limit > 0.
//   - Stage 2: return a setter that writes the limit into Options.
//
// Behavior highlights:
//   - A size line declaring more entries than the limit fails with
//     ErrTooManyEntries before anything is allocated.
//
// Errors:
//   - Panics with a stable message when limit is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxEntries(limit int) Option {
	if limit <= 0 {
		panic(panicMaxEntriesInvalid)
	}

	return func(o *Options) { o.maxEntries = limit }
}

// WithStrictBanner requires the %%MatrixMarket banner line.
// Implementation:
//   - Stage 1: set strictBanner=true.
//
// Behavior highlights:
//   - Inputs whose first line is not a valid banner fail with ErrHeader at
//     line 1 instead of being read as bare coordinate text.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithStrictBanner() Option {
	return func(o *Options) { o.strictBanner = true }
}

// WithLooseBanner restores the default: a banner is honored when present,
// optional otherwise.
func WithLooseBanner() Option {
	return func(o *Options) { o.strictBanner = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins. The canonical internal entry point for Parse.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxEntries:   DefaultMaxEntries,
		strictBanner: DefaultStrictBanner,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
