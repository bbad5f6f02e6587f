// Package dbngen enumerates de Bruijn-like binary sequences: cyclic words
// of a given length whose sliding windows are all distinct. Sequences are
// produced lazily by a restartable depth-first search so that the full
// enumeration can be streamed to a cache file without materializing it.
package dbngen

import (
	"fmt"
	"math/bits"
)

// move is one pending branch of the depth-first search: the partial word
// built so far plus the bit to append when the move is popped.
type move struct {
	seen   uint64 // presence vector of window codes already used
	value  uint64
	length int
	ones   int
	bit    uint64
}

// Generator enumerates all valid sequences of a fixed length and, when
// ones > 0, a fixed population. The traversal order is deterministic and
// must not change: cached artifact files replay it, and resumable searches
// skip a prefix of it by count.
type Generator struct {
	stack      []move
	length     int
	ones       int
	windowLen  int
	windowMask uint64
	zerosBit   uint64 // window code 00...0
	onesBit    uint64 // window code 11...1
	strict     bool
}

// New returns a generator for sequences of length bits with exactly ones
// set bits. A ones count of zero lifts the population constraint. With
// strict set, windows that are all-zero or all-one are rejected as well.
func New(length, ones int, strict bool) (*Generator, error) {
	if length < 2 || length > 64 {
		return nil, fmt.Errorf("dbngen: sequence length %d out of range [2,64]", length)
	}
	if ones < 0 || ones > length {
		return nil, fmt.Errorf("dbngen: population %d out of range [0,%d]", ones, length)
	}

	windowLen := bits.Len(uint(length - 1))
	g := &Generator{
		stack:      make([]move, 0, 4*length),
		length:     length,
		ones:       ones,
		windowLen:  windowLen,
		windowMask: 1<<windowLen - 1,
		zerosBit:   1,
		strict:     strict,
	}
	g.onesBit = 1 << g.windowMask
	g.Reset()
	return g, nil
}

// Reset rewinds the generator to the start of the enumeration.
func (g *Generator) Reset() {
	g.stack = g.stack[:0]
	// The zero branch is pushed last so it is explored first.
	g.stack = append(g.stack, move{bit: 1}, move{bit: 0})
}

// Next returns the next valid sequence, or 0 when the enumeration is
// exhausted. The zero return doubles as the cache-file terminator.
func (g *Generator) Next() uint64 {
	for len(g.stack) > 0 {
		m := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		ones := m.ones + int(m.bit)
		if g.ones != 0 && ones > g.ones {
			continue
		}

		value := m.value<<1 | m.bit
		length := m.length + 1
		seen := m.seen

		// Once the word is long enough the newly completed window must
		// be unseen; under strict also not uniform.
		if length >= g.windowLen {
			bit := uint64(1) << (value & g.windowMask)
			if seen&bit != 0 {
				continue
			}
			if g.strict && (bit == g.zerosBit || bit == g.onesBit) {
				continue
			}
			seen |= bit
		}

		if length == g.length && (g.ones == 0 || ones == g.ones) {
			if g.wrapValid(value, seen) {
				return value
			}
			continue
		}

		// Expand. The first branch pushed is explored last: below the
		// window length the zero branch runs first, afterwards the one
		// branch. This fixes the canonical enumeration order that the
		// cached files replay. Branches that overshot the target length
		// die on window reuse.
		bit := uint64(0)
		if length < g.windowLen {
			bit = 1
		}
		g.stack = append(g.stack,
			move{seen, value, length, ones, bit},
			move{seen, value, length, ones, 1 - bit},
		)
	}
	return 0
}

// wrapValid checks the windowLen-1 windows that straddle the cyclic
// boundary of a completed word.
func (g *Generator) wrapValid(value, seen uint64) bool {
	w := g.windowLen - 1
	temp := value<<w | value>>(g.length-w)
	for i := 0; i < w; i++ {
		bit := uint64(1) << (temp & g.windowMask)
		if seen&bit != 0 {
			return false
		}
		if g.strict && (bit == g.zerosBit || bit == g.onesBit) {
			return false
		}
		seen |= bit
		temp >>= 1
	}
	return true
}

// Length returns the sequence length in bits.
func (g *Generator) Length() int { return g.length }

// Ones returns the target population, 0 meaning unconstrained.
func (g *Generator) Ones() int { return g.ones }
