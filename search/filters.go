package search

import (
	"math/bits"

	"github.com/mhr3/bracelet/bitseq"
)

const cardsPerSuit = 13

// state carries one candidate tuple through the filter chain and the
// secondary solvers. The four suit masks are derived once per accepted
// (HD, CD) pair and reused by every inner filter.
type state struct {
	red bitseq.Seq
	cd  bitseq.Seq
	hc  bitseq.Seq
	odd bitseq.Seq
	c7k bitseq.Seq

	spade   bitseq.Seq
	club    bitseq.Seq
	heart   bitseq.Seq
	diamond bitseq.Seq

	c8k  bitseq.Seq
	c4t  bitseq.Seq
	diff bitseq.Seq
}

func count(s bitseq.Seq) int {
	return bits.OnesCount64(uint64(s))
}

// splitSuits decomposes an (HD, CD) pair into the four suit masks. The
// pair is accepted only when each of the four bit combinations covers
// exactly 13 positions: the suit of position i is (HD_i << 1) | CD_i, so
// equal counts are exactly the condition for four full 13-card suits.
func (st *state) splitSuits(cd bitseq.Seq) bool {
	red := st.red
	if red == cd {
		return false
	}

	invRed := ^red & bitseq.Mask
	invCD := ^cd & bitseq.Mask

	diamond := red & cd
	if count(diamond) != cardsPerSuit {
		return false
	}
	spade := invRed & invCD
	if count(spade) != cardsPerSuit {
		return false
	}
	club := invRed & cd
	if count(club) != cardsPerSuit {
		return false
	}
	heart := red & invCD
	if count(heart) != cardsPerSuit {
		return false
	}

	st.cd = cd
	st.spade, st.club, st.heart, st.diamond = spade, club, heart, diamond
	st.hc = heart | club
	return true
}

// oddPartitions requires every suit to split into 7 odd and 6 even cards
// under the candidate odd axis.
func (st *state) oddPartitions(odd bitseq.Seq) bool {
	even := ^odd & bitseq.Mask
	for _, suit := range [4]bitseq.Seq{st.spade, st.heart, st.club, st.diamond} {
		if count(suit&odd) != 7 || count(suit&even) != 6 {
			return false
		}
	}
	return true
}

// sevenKOverlaps requires the 00 overlap of c7k with each established axis
// to be exactly 12: of the 52 positions, 40 must carry at least one of the
// pair's bits.
func (st *state) sevenKOverlaps(c7k bitseq.Seq) bool {
	inv := ^c7k & bitseq.Mask
	for _, axis := range [4]bitseq.Seq{st.odd, st.red, st.cd, st.hc} {
		if count(^axis&bitseq.Mask&inv) != 12 {
			return false
		}
	}
	return true
}

// deckHistogram checks the joint distribution of (HD, CD, ODD, 7K) bits
// over the 52 positions. A decodable deck requires the bins to hold
// 3,3,3,4 in each group of four: the 4-bit code with both ODD and 7K set
// covers four card values per suit block (7, 9, J, K), the others three.
func (st *state) deckHistogram() bool {
	var hist [16]int
	red, cd, odd, c7k := uint64(st.red), uint64(st.cd), uint64(st.odd), uint64(st.c7k)
	for i := 0; i < bitseq.Length; i++ {
		idx := (red&1)<<3 | (cd&1)<<2 | (odd&1)<<1 | c7k&1
		hist[idx]++
		red >>= 1
		cd >>= 1
		odd >>= 1
		c7k >>= 1
	}

	for i, n := range hist {
		want := 3
		if i&3 == 3 {
			want = 4
		}
		if n != want {
			return false
		}
	}
	return true
}
