// Package session owns the single cached-upload slot: the digest of the
// current file, its parsed network, the validation verdict, the stats
// block, and the derived-result registry downstream collaborators park
// artifacts in.
//
// Lifecycle, mirroring the upload page it backs:
//
//	Load     digest the raw bytes; same digest is a fast path that
//	         re-parses nothing. New content runs parse → build →
//	         validate, persists the encoded payload, then replaces the
//	         slot wholesale and drops every derived result. A failed
//	         load leaves the previous network current.
//	Restore  rebuild graph, report and stats from the persisted payload.
//	         An unusable payload wraps into RestoreError, clears the
//	         whole session, and surfaces; the caller starts fresh.
//	Clear    forget everything and bump the widget epoch so an upload
//	         widget owned by a UI collaborator is remade empty.
//
// One session serves one user; the mutex exists so accessors stay safe
// under the host's concurrent readers, not to support parallel loads.
package session
