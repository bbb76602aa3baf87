// SPDX-License-Identifier: MIT

// Package mtx: Matrix Market coordinate parser.
// One pass, line oriented, no partial results. The parser is a small staged
// walker: banner → size line → data lines → completeness checks. Every
// failure is a *ParseError pinned to the 1-based input line.

package mtx

import (
	"strconv"
	"strings"
)

// Format vocabulary (lower-cased before comparison; the banner is
// case-insensitive in the wild).
const (
	bannerPrefix     = "%%matrixmarket"
	objectMatrix     = "matrix"
	formatCoordinate = "coordinate"
	fieldReal        = "real"
	fieldInteger     = "integer"
	fieldPattern     = "pattern"
	symGeneral       = "general"
	symSymmetric     = "symmetric"
	commentPrefix    = "%"
)

// bannerFieldCount is the exact token count of a MatrixMarket banner:
// "%%MatrixMarket object format field symmetry".
const bannerFieldCount = 5

// sizeFieldCount is the exact token count of the size line: "rows cols nnz".
const sizeFieldCount = 3

// entryPrealloc caps the initial entry allocation; growth beyond it is
// amortized append, so a lying header cannot force a huge up-front block.
const entryPrealloc = 1 << 16

// Parse reads Matrix Market coordinate text into a SparseMatrix.
//
// Implementation:
//   - Stage 1: split input into lines (CRLF tolerated), 1-based numbering.
//   - Stage 2: banner. A leading %%MatrixMarket line is validated and
//     consumed; under WithStrictBanner its absence is ErrHeader. Supported:
//     object "matrix", format "coordinate", field real|integer|pattern,
//     symmetry general|symmetric.
//   - Stage 3: size line. Skip blank/comment lines, then demand exactly
//     three non-negative integers "rows cols nnz"; guard nnz against
//     WithMaxEntries before allocating.
//   - Stage 4: data lines. Each substantive line is "row col [value]" with
//     1-based indices, normalized to 0-based; a missing value means 1.0
//     (mandatory absent for pattern files, mandatory present for
//     real/integer files with a banner). Values must be finite.
//   - Stage 5: completeness. Fewer data lines than nnz ⇒ ErrTruncated;
//     extra substantive lines ⇒ ErrTrailing.
//
// Behavior highlights:
//   - Pure function: same bytes, Equal result; errors never leak a partial
//     matrix.
//   - A "symmetric" banner only sets SparseMatrix.Symmetric; the implied
//     mirror entries are NOT materialized here.
//   - Duplicate triplets are preserved verbatim; merge policy is the
//     builder's contract, not the parser's.
//
// Inputs:
//   - data: raw file bytes (ASCII; UTF-8 whitespace treated as garbage).
//   - opts: WithMaxEntries, WithStrictBanner / WithLooseBanner.
//
// Returns:
//   - *SparseMatrix on success.
//   - *ParseError wrapping ErrHeader / ErrSize / ErrIndexRange / ErrValue /
//     ErrTruncated / ErrTrailing / ErrTooManyEntries otherwise.
//
// Determinism:
//   - Stable for given (data, opts); no global state.
//
// Complexity:
//   - Time O(L) over input lines, Space O(nnz).
//
// AI-Hints:
//   - Match failure classes with errors.Is and surface pe.Line to users;
//     the line number is the whole point of the error shape.
func Parse(data []byte, opts ...Option) (*SparseMatrix, error) {
	p := &parser{opts: gatherOptions(opts...)}
	m, err := p.run(data)
	if err != nil {
		// Typed nil guard: callers compare against plain error.
		return nil, err
	}

	return m, nil
}

// parser carries the walk state between stages.
type parser struct {
	opts  Options
	lines []string
	pos   int    // index of the next unread line
	field string // banner field; "" when no banner was present
	sym   bool   // banner declared "symmetric"
}

// run executes the staged walk. Only Parse calls it.
func (p *parser) run(data []byte) (*SparseMatrix, *ParseError) {
	// Stage 1: line split. The empty tail a trailing newline produces is
	// dropped so EOF-anchored errors (truncation, missing size line) point
	// at the last real line.
	p.lines = strings.Split(string(data), "\n")
	if n := len(p.lines); n > 0 && p.lines[n-1] == "" {
		p.lines = p.lines[:n-1]
	}

	// Stage 2: banner.
	if perr := p.banner(); perr != nil {
		return nil, perr
	}

	// Stage 3: size line.
	rows, cols, nnz, perr := p.size()
	if perr != nil {
		return nil, perr
	}

	m := &SparseMatrix{Rows: rows, Cols: cols, Symmetric: p.sym}
	prealloc := nnz
	if prealloc > entryPrealloc {
		prealloc = entryPrealloc
	}
	m.Entries = make([]Entry, 0, prealloc)

	// Stage 4: data lines.
	for p.pos < len(p.lines) {
		ln := p.pos + 1
		raw := strings.TrimSpace(trimCR(p.lines[p.pos]))
		p.pos++
		if raw == "" || strings.HasPrefix(raw, commentPrefix) {
			continue
		}
		if len(m.Entries) == nnz {
			return nil, parseErrorf(ln, ErrTrailing,
				"unexpected data after %d declared entries", nnz)
		}
		e, eerr := p.entry(ln, raw, rows, cols)
		if eerr != nil {
			return nil, eerr
		}
		m.Entries = append(m.Entries, e)
	}

	// Stage 5: completeness.
	if len(m.Entries) < nnz {
		return nil, parseErrorf(len(p.lines), ErrTruncated,
			"size line declared %d entries, found %d", nnz, len(m.Entries))
	}

	return m, nil
}

// banner validates and consumes a leading %%MatrixMarket line, if any.
func (p *parser) banner() *ParseError {
	if len(p.lines) == 0 {
		return nil // stage 3 reports the missing size line
	}
	first := strings.ToLower(strings.TrimSpace(trimCR(p.lines[0])))
	if !strings.HasPrefix(first, bannerPrefix) {
		if p.opts.strictBanner {
			return parseErrorf(1, ErrHeader, "missing %%%%MatrixMarket banner")
		}

		return nil // bare coordinate text; first line re-read as size/comment
	}

	tokens := strings.Fields(first)
	if len(tokens) != bannerFieldCount {
		return parseErrorf(1, ErrHeader,
			"banner wants %d fields, got %d", bannerFieldCount, len(tokens))
	}
	if tokens[0] != bannerPrefix {
		return parseErrorf(1, ErrHeader, "malformed banner tag %q", tokens[0])
	}
	if tokens[1] != objectMatrix {
		return parseErrorf(1, ErrHeader, "unsupported object %q", tokens[1])
	}
	if tokens[2] != formatCoordinate {
		return parseErrorf(1, ErrHeader,
			"unsupported format %q (only coordinate/sparse input is accepted)", tokens[2])
	}
	switch tokens[3] {
	case fieldReal, fieldInteger, fieldPattern:
		p.field = tokens[3]
	default:
		return parseErrorf(1, ErrHeader, "unsupported field %q", tokens[3])
	}
	switch tokens[4] {
	case symGeneral:
	case symSymmetric:
		p.sym = true
	default:
		return parseErrorf(1, ErrHeader, "unsupported symmetry %q", tokens[4])
	}

	p.pos = 1 // banner consumed

	return nil
}

// size locates and parses the "rows cols nnz" line.
func (p *parser) size() (rows, cols, nnz int, perr *ParseError) {
	for p.pos < len(p.lines) {
		ln := p.pos + 1
		raw := strings.TrimSpace(trimCR(p.lines[p.pos]))
		p.pos++
		if raw == "" || strings.HasPrefix(raw, commentPrefix) {
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) != sizeFieldCount {
			return 0, 0, 0, parseErrorf(ln, ErrSize,
				"size line wants %d fields, got %d", sizeFieldCount, len(fields))
		}
		dims := make([]int, sizeFieldCount)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return 0, 0, 0, parseErrorf(ln, ErrSize,
					"size field %q is not a non-negative integer", f)
			}
			dims[i] = v
		}
		if dims[2] > p.opts.maxEntries {
			return 0, 0, 0, parseErrorf(ln, ErrTooManyEntries,
				"declared %d entries, limit is %d", dims[2], p.opts.maxEntries)
		}

		return dims[0], dims[1], dims[2], nil
	}

	line := len(p.lines)
	if line == 0 {
		line = 1
	}

	return 0, 0, 0, parseErrorf(line, ErrSize, "missing size line")
}

// entry parses one substantive data line into a 0-based Entry.
func (p *parser) entry(ln int, raw string, rows, cols int) (Entry, *ParseError) {
	fields := strings.Fields(raw)

	// Field-count contract depends on the banner:
	// pattern ⇒ exactly 2, real/integer ⇒ exactly 3, bannerless ⇒ 2 or 3.
	switch {
	case p.field == fieldPattern && len(fields) != 2:
		return Entry{}, parseErrorf(ln, ErrValue,
			"pattern entry wants 2 fields, got %d", len(fields))
	case (p.field == fieldReal || p.field == fieldInteger) && len(fields) != 3:
		return Entry{}, parseErrorf(ln, ErrValue,
			"%s entry wants 3 fields, got %d", p.field, len(fields))
	case p.field == "" && len(fields) != 2 && len(fields) != 3:
		return Entry{}, parseErrorf(ln, ErrValue,
			"entry wants 2 or 3 fields, got %d", len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, parseErrorf(ln, ErrValue, "row index %q is not an integer", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, parseErrorf(ln, ErrValue, "column index %q is not an integer", fields[1])
	}
	if row < 1 || row > rows {
		return Entry{}, parseErrorf(ln, ErrIndexRange,
			"row index %d outside [1, %d]", row, rows)
	}
	if col < 1 || col > cols {
		return Entry{}, parseErrorf(ln, ErrIndexRange,
			"column index %d outside [1, %d]", col, cols)
	}

	val := 1.0 // pattern / omitted-value default
	if len(fields) == 3 {
		val, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Entry{}, parseErrorf(ln, ErrValue, "value %q is not numeric", fields[2])
		}
		if isNonFinite(val) {
			return Entry{}, parseErrorf(ln, ErrValue, "value %q is not finite", fields[2])
		}
	}

	return Entry{Row: row - 1, Col: col - 1, Val: val}, nil
}

// trimCR drops a trailing carriage return so CRLF files parse cleanly.
func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
