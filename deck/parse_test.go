package deck_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/bracelet/bitseq"
	"github.com/mhr3/bracelet/deck"
	"github.com/mhr3/bracelet/search"
)

func seq(t *testing.T, text string) bitseq.Seq {
	t.Helper()
	s, err := bitseq.Parse(text)
	require.NoError(t, err)
	return s
}

func sampleBlock() string {
	ones := func(n int) string { return strings.Repeat("10", n) + strings.Repeat("0", 52-2*n) }
	return "Found suit sequences.\n" +
		"Found odd sequence candidate.\n" +
		" 7K sequence:  " + ones(14) + "\n" +
		" 8K sequence:  " + ones(12) + "\n" +
		" 4T sequence:  " + ones(14) + "\n" +
		"ODD sequence:  " + ones(14) + "\n" +
		"RED sequence:  " + ones(13) + "\n" +
		" CD sequence:  " + ones(13) + "\n" +
		" HC sequence:  " + ones(13) + "\n" +
		"\n"
}

func TestReaderParsesBlock(t *testing.T) {
	r := deck.NewReader(strings.NewReader(sampleBlock()), nil)

	rec, err := r.Next()
	require.NoError(t, err)

	ones := func(n int) string { return strings.Repeat("10", n) + strings.Repeat("0", 52-2*n) }
	assert.Equal(t, seq(t, ones(13)), rec.Red)
	assert.Equal(t, seq(t, ones(13)), rec.CD)
	assert.Equal(t, seq(t, ones(13)), rec.HC)
	assert.Equal(t, seq(t, ones(14)), rec.Odd)
	assert.Equal(t, seq(t, ones(14)), rec.X)
	assert.Equal(t, seq(t, ones(12)), rec.Y)
	assert.Equal(t, seq(t, ones(14)), rec.Z)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMultipleBlocks(t *testing.T) {
	input := sampleBlock() + sampleBlock() + sampleBlock()
	r := deck.NewReader(strings.NewReader(input), nil)

	for i := 0; i < 3; i++ {
		_, err := r.Next()
		require.NoError(t, err, "block %d", i)
	}
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMissingAxis(t *testing.T) {
	block := strings.Replace(sampleBlock(), " 8K sequence", " XX sequence", 1)
	r := deck.NewReader(strings.NewReader(block), nil)

	_, err := r.Next()
	assert.ErrorIs(t, err, deck.ErrMalformedRecord)
}

func TestReaderNonBinaryDigits(t *testing.T) {
	block := strings.Replace(sampleBlock(), "10", "12", 1)
	r := deck.NewReader(strings.NewReader(block), nil)

	_, err := r.Next()
	assert.ErrorIs(t, err, deck.ErrMalformedRecord)
}

func TestReaderSkipsBadRecordThenRecovers(t *testing.T) {
	bad := strings.Replace(sampleBlock(), " 7K sequence:  ", " 7K sequence:  x", 1)
	r := deck.NewReader(strings.NewReader(bad+sampleBlock()), nil)

	_, err := r.Next()
	require.ErrorIs(t, err, deck.ErrMalformedRecord)

	_, err = r.Next()
	assert.NoError(t, err, "reader stays usable after a bad record")
}

func TestTextSinkRoundTrip(t *testing.T) {
	b := search.Bundle{
		HD:    seq(t, strings.Repeat("10", 26)),
		CD:    seq(t, strings.Repeat("01", 26)),
		HC:    seq(t, strings.Repeat("1", 26)+strings.Repeat("0", 26)),
		Odd:   seq(t, strings.Repeat("0", 24)+strings.Repeat("1", 28)),
		C7K:   seq(t, strings.Repeat("1", 28)+strings.Repeat("0", 24)),
		C8K:   seq(t, strings.Repeat("1", 24)+strings.Repeat("0", 28)),
		Has8K: true,
		C4T:   seq(t, strings.Repeat("0", 24)+strings.Repeat("1", 28)),
		Has4T: true,
	}

	var buf bytes.Buffer
	sink := search.NewTextSink(&buf)
	require.NoError(t, sink.SuitPair(b.HD, b.CD, b.HC))
	require.NoError(t, sink.OddCandidate(b.Odd))
	require.NoError(t, sink.Bundle(b))

	r := deck.NewReader(&buf, nil)
	rec, err := r.Next()
	require.NoError(t, err)

	assert.Equal(t, b.HD, rec.Red)
	assert.Equal(t, b.CD, rec.CD)
	assert.Equal(t, b.HC, rec.HC)
	assert.Equal(t, b.Odd, rec.Odd)
	assert.Equal(t, b.C7K, rec.X)
	assert.Equal(t, b.C8K, rec.Y)
	assert.Equal(t, b.C4T, rec.Z)
}
