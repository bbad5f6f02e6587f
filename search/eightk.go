package search

import (
	"math/bits"

	"github.com/mhr3/bracelet/bitseq"
)

// solve8K derives an 8K axis (population 24) from an accepted bundle by
// clearing one odd high-card bit per suit from the 7K axis. Candidate bits
// are the positions that are both odd and 7K-set within each suit; the
// spade x heart x club x diamond choices are tried in order and the first
// bracelet-valid result wins. With sevensApart, the four cleared bits must
// additionally be at least a window length apart cyclically; they encode
// the four sevens downstream.
func (st *state) solve8K(sevensApart bool) bool {
	var candidates [4][]bitseq.Seq // spade, heart, club, diamond
	pool := st.c7k & st.odd
	for bit := bitseq.Seq(1); bit != 0 && bit <= 1<<(bitseq.Length-1); bit <<= 1 {
		if pool&bit == 0 {
			continue
		}
		switch {
		case st.red&bit == 0 && st.cd&bit == 0:
			candidates[0] = append(candidates[0], bit)
		case st.red&bit == 0:
			candidates[2] = append(candidates[2], bit)
		case st.cd&bit == 0:
			candidates[1] = append(candidates[1], bit)
		default:
			candidates[3] = append(candidates[3], bit)
		}
	}

	for _, sb := range candidates[0] {
		for _, hb := range candidates[1] {
			for _, cb := range candidates[2] {
				for _, db := range candidates[3] {
					c8k := st.c7k &^ (sb | hb | cb | db)
					if !bitseq.Valid(c8k) {
						continue
					}
					if sevensApart && !spacedApart(st.c7k^c8k) {
						continue
					}
					st.c8k = c8k
					st.diff = st.c7k ^ c8k
					return true
				}
			}
		}
	}
	return false
}

// spacedApart reports whether the set bits of diff are pairwise at least
// WindowLen positions apart on the cycle: no 6-bit window may see two of
// them, and the gap closing the cycle counts too.
func spacedApart(diff bitseq.Seq) bool {
	var positions []int
	v := uint64(diff)
	for v != 0 {
		p := bits.TrailingZeros64(v)
		positions = append(positions, p)
		v &= v - 1
	}
	if len(positions) < 2 {
		return true
	}

	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] < bitseq.WindowLen {
			return false
		}
	}
	wrap := bitseq.Length + positions[0] - positions[len(positions)-1]
	return wrap >= bitseq.WindowLen
}
