package search

import "github.com/mhr3/bracelet/bitseq"

// Bin roles for the 4T rebalancing, per suit. Low/high refers to the 7K
// axis, odd/even to the odd axis.
const (
	roleOddLow = iota
	roleEvenLow
	roleOddHigh
	roleEvenHigh
	roleCount
)

// fourTBins partitions the positions of the bundle into suit x role index
// sets, leaving out the bits pinned by the 7K/8K difference (the four
// sevens keep their places).
func (st *state) fourTBins() [4][roleCount][]bitseq.Seq {
	var bins [4][roleCount][]bitseq.Seq
	for i := 0; i < bitseq.Length; i++ {
		bit := bitseq.Seq(1) << i
		if st.diff&bit != 0 {
			continue
		}
		suit := 0
		if st.red&bit != 0 {
			suit |= 2
		}
		if st.cd&bit != 0 {
			suit |= 1
		}
		role := roleEvenLow
		switch {
		case st.c7k&bit != 0 && st.odd&bit != 0:
			role = roleOddHigh
		case st.c7k&bit != 0:
			role = roleEvenHigh
		case st.odd&bit != 0:
			role = roleOddLow
		}
		bins[suit][role] = append(bins[suit][role], bit)
	}
	return bins
}

// solve4T derives a 4T axis from the 7K axis by rebalancing each suit:
// two odd high bits are cleared and two even low bits set (the pairs are
// cyclically adjacent picks from their bins), one even high bit is cleared
// and one odd low bit set. Suits are searched depth-first in the fixed
// spade, heart, club, diamond order and the first bracelet-valid result is
// kept.
func (st *state) solve4T() bool {
	bins := st.fourTBins()

	// Suit codes in search order.
	order := [4]int{0, 2, 1, 3}

	var rec func(depth int, cur bitseq.Seq) bool
	rec = func(depth int, cur bitseq.Seq) bool {
		if depth == 4 {
			if !bitseq.Valid(cur) {
				return false
			}
			st.c4t = cur
			return true
		}

		b := &bins[order[depth]]
		el := b[roleEvenLow]
		eh := b[roleEvenHigh]
		ol := b[roleOddLow]
		oh := b[roleOddHigh]
		if len(el) == 0 || len(eh) == 0 || len(ol) == 0 || len(oh) == 0 {
			return false
		}

		for i := range el {
			elPair := el[i] | el[(i+1)%len(el)]
			for _, ehBit := range eh {
				for _, olBit := range ol {
					for j := range oh {
						ohPair := oh[j] | oh[(j+1)%len(oh)]
						next := cur&^ohPair | elPair
						next = next&^ehBit | olBit
						if rec(depth+1, next) {
							return true
						}
					}
				}
			}
		}
		return false
	}

	return rec(0, st.c7k)
}
