// Package store provides the session-scoped payload store: a tiny
// key-value contract with two backends.
//
//   - Memory: a mutex-guarded map that copies values both ways. The default.
//   - Badger: embedded BadgerDB, in-memory mode unless a directory is
//     given. Same contract, sturdier for large payloads.
//
// Both backends are safe for concurrent use. Keys are opaque strings;
// values are opaque byte slices owned by the store (callers get copies).
// State lives only as long as the store: in-memory backends forget
// everything on Close, which is the intended session lifetime.
package store
