// Package session: exported value types.

package session

import (
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/network"
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/validate"
)

// Upload is the display metadata of the slot's current file.
type Upload struct {
	Name   string // file name as uploaded; display only
	Digest Digest // content address of the raw bytes
	Size   int    // raw byte count
}

// LoadResult is what Load and Restore hand back: the summary block the
// host renders. Reused marks the same-digest fast path, where nothing was
// re-parsed.
type LoadResult struct {
	Upload Upload
	Report *validate.Report
	Stats  validate.Stats
	Reused bool
}

// state is the replace-wholesale unit: everything derived from one upload
// lives and dies together.
type state struct {
	up     Upload
	matrix *mtx.SparseMatrix
	graph  *network.Graph
	report *validate.Report
	stats  validate.Stats
}

// memoEntry caches the content-derived diagnosis per digest. Safe across
// clears: the same bytes always validate the same way under one session's
// fixed options.
type memoEntry struct {
	report *validate.Report
	stats  validate.Stats
}
