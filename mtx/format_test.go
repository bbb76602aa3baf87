// Package mtx_test: canonical text emission and the Format/Parse round trip.
package mtx_test

import (
	"strings"
	"testing"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/mtx"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real general\n" +
		"3 3 3\n" +
		"1 2 0.30000000000000004\n" + // full float64 precision must survive
		"2 1 0.30000000000000004\n" +
		"3 3 -2.5\n"
	m := mustParse(t, src)

	back, err := mtx.Parse(mtx.Format(m))
	require.NoError(t, err)
	require.True(t, m.Equal(back)) // Parse ∘ Format is the identity
}

func TestFormatSymmetricBanner(t *testing.T) {
	m := mustParse(t, "%%MatrixMarket matrix coordinate real symmetric\n2 2 1\n2 1 1.0\n")
	out := string(mtx.Format(m))

	require.True(t, strings.HasPrefix(out, "%%MatrixMarket matrix coordinate real symmetric\n"))

	back, err := mtx.Parse([]byte(out))
	require.NoError(t, err)
	require.True(t, back.Symmetric) // flag survives the trip
}

func TestFormatPromotesPatternToReal(t *testing.T) {
	m := mustParse(t, "%%MatrixMarket matrix coordinate pattern general\n2 2 1\n1 2\n")
	out := string(mtx.Format(m))

	require.Contains(t, out, "coordinate real general") // canonical emission writes values
	require.Contains(t, out, "1 2 1\n")                 // pattern weight materialized as 1
}

func TestFormatNil(t *testing.T) {
	require.Nil(t, mtx.Format(nil))
}
