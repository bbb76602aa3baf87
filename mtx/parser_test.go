// Package mtx_test contains unit tests for the Matrix Market coordinate
// parser: happy paths, every error class with exact line numbers, and the
// parse-idempotence guarantee.
package mtx_test

import (
	"errors"
	"testing"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
	"github.com/stretchr/testify/require"
)

// mustParse parses src and fails the test on any error.
func mustParse(t *testing.T, src string) *mtx.SparseMatrix {
	t.Helper()
	m, err := mtx.Parse([]byte(src))
	require.NoError(t, err) // well-formed inputs must parse

	return m
}

// requireParseError asserts the error class and the 1-based offending line.
func requireParseError(t *testing.T, src string, class error, line int) {
	t.Helper()
	m, err := mtx.Parse([]byte(src))
	require.Nil(t, m)               // no partial matrix on failure
	require.ErrorIs(t, err, class)  // sentinel class must match
	var pe *mtx.ParseError          // concrete carrier
	require.ErrorAs(t, err, &pe)    // every failure is a *ParseError
	require.Equal(t, line, pe.Line) // pinned to the offending line
}

func TestParseFullBanner(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real general\n" +
		"% author: upload fixture\n" +
		"3 3 2\n" +
		"1 2 1.5\n" +
		"2 1 1.5\n"
	m := mustParse(t, src)

	require.Equal(t, 3, m.Rows)     // declared rows
	require.Equal(t, 3, m.Cols)     // declared cols
	require.Equal(t, 2, m.NNZ())    // both entries kept
	require.False(t, m.Symmetric)   // general banner
	require.Equal(t, mtx.Entry{Row: 0, Col: 1, Val: 1.5}, m.Entries[0]) // 1-based → 0-based
	require.Equal(t, mtx.Entry{Row: 1, Col: 0, Val: 1.5}, m.Entries[1]) // order preserved
}

func TestParseBareCoordinateText(t *testing.T) {
	// No banner at all: first substantive line is the size line.
	m := mustParse(t, "2 2 1\n1 2 3.25\n")

	require.Equal(t, 2, m.Rows)
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 3.25, m.Entries[0].Val)
}

func TestParseOmittedValueDefaultsToOne(t *testing.T) {
	m := mustParse(t, "2 2 2\n1 2\n2 1\n") // bannerless two-field entries

	require.Equal(t, 1.0, m.Entries[0].Val) // default weight
	require.Equal(t, 1.0, m.Entries[1].Val)
}

func TestParsePatternBanner(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate pattern general\n2 2 1\n1 2\n"
	m := mustParse(t, src)

	require.Equal(t, 1.0, m.Entries[0].Val) // pattern entries weigh 1.0
}

func TestParsePatternRejectsValueField(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate pattern general\n2 2 1\n1 2 9.0\n"
	requireParseError(t, src, mtx.ErrValue, 3) // 3 fields on a pattern entry
}

func TestParseRealBannerRequiresValueField(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 2\n"
	requireParseError(t, src, mtx.ErrValue, 3) // 2 fields on a real entry
}

func TestParseSymmetricBannerSetsFlag(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real symmetric\n3 3 2\n2 1 1\n3 1 1\n"
	m := mustParse(t, src)

	require.True(t, m.Symmetric) // storage convention recorded
	require.Equal(t, 2, m.NNZ()) // mirror entries NOT materialized
}

func TestParseCRLFAndComments(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real general\r\n" +
		"% comment line\r\n" +
		"\r\n" +
		"2 2 1\r\n" +
		"2 2 0.5\r\n"
	m := mustParse(t, src)

	require.Equal(t, mtx.Entry{Row: 1, Col: 1, Val: 0.5}, m.Entries[0])
}

func TestParseDuplicatesPreserved(t *testing.T) {
	m := mustParse(t, "2 2 3\n1 2 2.0\n2 1 2.0\n1 2 5.0\n")

	require.Equal(t, 3, m.NNZ()) // duplicates survive the parse untouched
}

func TestParseIdempotent(t *testing.T) {
	src := []byte("%%MatrixMarket matrix coordinate real general\n3 3 3\n1 2 1\n2 3 0.5\n3 3 2\n")

	first, err := mtx.Parse(src)
	require.NoError(t, err)
	second, err := mtx.Parse(src)
	require.NoError(t, err)

	require.True(t, first.Equal(second)) // same bytes ⇒ Equal matrices
}

func TestParseHeaderErrors(t *testing.T) {
	requireParseError(t, "%%MatrixMarket matrix array real general\n2 2 0\n", mtx.ErrHeader, 1)      // dense array layout
	requireParseError(t, "%%MatrixMarket matrix coordinate complex general\n2 2 0\n", mtx.ErrHeader, 1) // complex field
	requireParseError(t, "%%MatrixMarket matrix coordinate real hermitian\n2 2 0\n", mtx.ErrHeader, 1)  // unsupported symmetry
	requireParseError(t, "%%MatrixMarket vector coordinate real general\n2 2 0\n", mtx.ErrHeader, 1)    // non-matrix object
	requireParseError(t, "%%MatrixMarket matrix coordinate real\n2 2 0\n", mtx.ErrHeader, 1)            // token count
}

func TestParseStrictBannerDemandsBanner(t *testing.T) {
	_, err := mtx.Parse([]byte("2 2 0\n"), mtx.WithStrictBanner())
	require.ErrorIs(t, err, mtx.ErrHeader) // bare text rejected under strict mode

	m, err := mtx.Parse([]byte("%%MatrixMarket matrix coordinate real general\n2 2 0\n"), mtx.WithStrictBanner())
	require.NoError(t, err) // bannered text still fine
	require.Equal(t, 0, m.NNZ())
}

func TestParseSizeLineErrors(t *testing.T) {
	requireParseError(t, "2 2\n", mtx.ErrSize, 1)        // two fields
	requireParseError(t, "2 2 1 7\n", mtx.ErrSize, 1)    // four fields
	requireParseError(t, "2 x 1\n1 2 1\n", mtx.ErrSize, 1) // non-integer dimension
	requireParseError(t, "2 -2 1\n1 2 1\n", mtx.ErrSize, 1) // negative dimension
	requireParseError(t, "% only comments here\n", mtx.ErrSize, 1) // no size line at all
	requireParseError(t, "", mtx.ErrSize, 1)                       // empty input
}

func TestParseIndexRange(t *testing.T) {
	requireParseError(t, "2 2 1\n0 1 1.0\n", mtx.ErrIndexRange, 2) // rows are 1-based
	requireParseError(t, "2 2 1\n1 3 1.0\n", mtx.ErrIndexRange, 2) // column above bound
	requireParseError(t, "2 2 2\n1 2 1.0\n3 1 1.0\n", mtx.ErrIndexRange, 3) // second entry offends
}

func TestParseValueErrors(t *testing.T) {
	requireParseError(t, "2 2 1\n1 2 abc\n", mtx.ErrValue, 2)   // non-numeric value
	requireParseError(t, "2 2 1\nx 2 1.0\n", mtx.ErrValue, 2)   // non-integer row
	requireParseError(t, "2 2 1\n1 2 NaN\n", mtx.ErrValue, 2)   // non-finite value
	requireParseError(t, "2 2 1\n1 2 +Inf\n", mtx.ErrValue, 2)  // non-finite value
	requireParseError(t, "2 2 1\n1 2 1.0 9\n", mtx.ErrValue, 2) // four fields
}

func TestParseTruncatedFile(t *testing.T) {
	// Size line declares five entries, only three follow.
	src := "%%MatrixMarket matrix coordinate real general\n" +
		"4 4 5\n" +
		"1 2 1.0\n" +
		"2 3 1.0\n" +
		"3 4 1.0\n"
	m, err := mtx.Parse([]byte(src))

	require.Nil(t, m) // never a partial matrix
	require.ErrorIs(t, err, mtx.ErrTruncated)

	var pe *mtx.ParseError
	require.ErrorAs(t, err, &pe)
	require.Contains(t, pe.Reason, "declared 5 entries, found 3")
}

func TestParseTrailingData(t *testing.T) {
	requireParseError(t, "2 2 1\n1 2 1.0\n2 1 1.0\n", mtx.ErrTrailing, 3) // one entry too many
}

func TestParseTrailingBlankAndCommentLinesAccepted(t *testing.T) {
	m := mustParse(t, "2 2 1\n1 2 1.0\n\n% trailing note\n\n")
	require.Equal(t, 1, m.NNZ()) // blanks and comments after the data are fine
}

func TestParseMaxEntriesGuard(t *testing.T) {
	_, err := mtx.Parse([]byte("10 10 50\n"), mtx.WithMaxEntries(10))
	require.ErrorIs(t, err, mtx.ErrTooManyEntries) // guarded before allocation

	var pe *mtx.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 1, pe.Line)
}

func TestParseErrorMessageCarriesLine(t *testing.T) {
	_, err := mtx.Parse([]byte("2 2 1\n1 2 abc\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2") // the user-facing message names the line
}

func TestWithMaxEntriesPanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { mtx.WithMaxEntries(0) })   // zero limit is programmer error
	require.Panics(t, func() { mtx.WithMaxEntries(-10) }) // negative limit is programmer error
}

// TestParseClassAndCarrierAgree pins the error contract: one sentinel class,
// one carrier type, for every failure mode.
func TestParseClassAndCarrierAgree(t *testing.T) {
	cases := map[string]error{
		"%%MatrixMarket matrix coordinate real weird\n1 1 0\n": mtx.ErrHeader,
		"1 1\n":           mtx.ErrSize,
		"1 1 1\n2 1 1\n":  mtx.ErrIndexRange,
		"1 1 1\n1 1 z\n":  mtx.ErrValue,
		"1 1 2\n1 1 1\n":  mtx.ErrTruncated,
		"1 1 0\n1 1 1\n":  mtx.ErrTrailing,
	}
	for src, class := range cases {
		_, err := mtx.Parse([]byte(src))
		require.ErrorIs(t, err, class, "input %q", src)
		require.False(t, errors.Is(err, mtx.ErrBadShape), "input %q", src) // classes never bleed together
	}
}
