package dbngen_test

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/bracelet/bitseq"
	"github.com/mhr3/bracelet/dbngen"
)

// refValid is a naive reference: all cyclic windows of the word distinct,
// window j holding bits j..j+w-1 with bit j least significant.
func refValid(v uint64, length, windowLen int, strict bool) bool {
	seen := make(map[uint64]bool)
	for j := 0; j < length; j++ {
		var code uint64
		for k := 0; k < windowLen; k++ {
			if v&(1<<((j+k)%length)) != 0 {
				code |= 1 << k
			}
		}
		if seen[code] {
			return false
		}
		if strict && (code == 0 || code == 1<<windowLen-1) {
			return false
		}
		seen[code] = true
	}
	return true
}

// drain collects the full enumeration, failing the test if it does not
// terminate within limit values.
func drain(t *testing.T, g *dbngen.Generator, limit int) []uint64 {
	t.Helper()
	var out []uint64
	for {
		v := g.Next()
		if v == 0 {
			return out
		}
		out = append(out, v)
		require.Less(t, len(out), limit, "enumeration did not terminate")
	}
}

func TestExhaustiveLength6(t *testing.T) {
	// For length 6 the window length is 3; brute force over all 64 words
	// with population 3 must agree with the enumeration.
	g, err := dbngen.New(6, 3, false)
	require.NoError(t, err)

	got := drain(t, g, 100)
	gotSet := make(map[uint64]bool)
	for _, v := range got {
		gotSet[v] = true
	}
	assert.Len(t, gotSet, len(got), "duplicate emission")

	want := make(map[uint64]bool)
	for v := uint64(0); v < 64; v++ {
		if bits.OnesCount64(v) == 3 && refValid(v, 6, 3, false) {
			want[v] = true
		}
	}
	assert.Equal(t, want, gotSet)

	// 000111 and its rotations are the canonical members.
	assert.True(t, gotSet[0b000111])
	assert.True(t, gotSet[0b111000])
}

func TestDeBruijnLength8(t *testing.T) {
	// Length 8 with window 3 uses all 8 window codes, so every valid word
	// is a linear de Bruijn B(2,3) word: two cyclic classes, 16 words.
	g, err := dbngen.New(8, 4, false)
	require.NoError(t, err)

	got := drain(t, g, 1000)
	assert.Len(t, got, 16)
	for _, v := range got {
		assert.Equal(t, 4, bits.OnesCount64(v))
		assert.True(t, refValid(v, 8, 3, false), "word %08b", v)
	}
}

func TestStrictLength8IsEmpty(t *testing.T) {
	// All 8 codes are needed at length 8, including 000 and 111, so the
	// strict variant has no solutions.
	g, err := dbngen.New(8, 4, true)
	require.NoError(t, err)
	assert.Zero(t, g.Next())
}

func TestDeckLengthStream(t *testing.T) {
	g, err := dbngen.New(bitseq.Length, 26, false)
	require.NoError(t, err)

	var prev []uint64
	for i := 0; i < 200; i++ {
		v := g.Next()
		require.NotZero(t, v)
		assert.Equal(t, 26, bits.OnesCount64(v))
		assert.True(t, bitseq.Valid(bitseq.Seq(v)))
		prev = append(prev, v)
	}

	// The traversal order is deterministic and restartable.
	g2, err := dbngen.New(bitseq.Length, 26, false)
	require.NoError(t, err)
	for i, want := range prev {
		assert.Equal(t, want, g2.Next(), "index %d", i)
	}

	g2.Reset()
	assert.Equal(t, prev[0], g2.Next())
}

func TestStrictDeckStream(t *testing.T) {
	g, err := dbngen.New(bitseq.Length, 28, true)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		v := g.Next()
		require.NotZero(t, v)
		s := bitseq.Seq(v)
		assert.True(t, bitseq.Valid(s))
		assert.False(t, bitseq.HasLongRun(s))
		assert.Equal(t, 28, bitseq.PopCount(s))
	}
}

func TestUnconstrainedPopulation(t *testing.T) {
	g, err := dbngen.New(10, 0, false)
	require.NoError(t, err)

	got := drain(t, g, 10000)
	require.NotEmpty(t, got)

	counts := make(map[int]bool)
	for _, v := range got {
		assert.True(t, refValid(v, 10, 4, false), "word %010b", v)
		counts[bits.OnesCount64(v)] = true
	}
	assert.Greater(t, len(counts), 1, "population should vary with ones = 0")
}

func TestNewRejectsBadArguments(t *testing.T) {
	_, err := dbngen.New(65, 3, false)
	assert.Error(t, err)
	_, err = dbngen.New(1, 0, false)
	assert.Error(t, err)
	_, err = dbngen.New(8, 9, false)
	assert.Error(t, err)
}

func TestWriteAll(t *testing.T) {
	g, err := dbngen.New(6, 3, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := dbngen.WriteAll(&buf, g)
	require.NoError(t, err)
	require.Equal(t, (n+1)*8, buf.Len(), "terminator word included")

	g2, err := dbngen.New(6, 3, false)
	require.NoError(t, err)
	data := buf.Bytes()
	for i := 0; i < n; i++ {
		assert.Equal(t, g2.Next(), binary.LittleEndian.Uint64(data[i*8:]))
	}
	assert.Zero(t, binary.LittleEndian.Uint64(data[n*8:]))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "dbn_52_26.bin", dbngen.FileName(52, 26, false))
	assert.Equal(t, "dbn_52_28_short.bin", dbngen.FileName(52, 28, true))
}
