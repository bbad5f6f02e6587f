package deck

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mhr3/bracelet/bitseq"
)

var (
	// ErrCorruptSequence marks an input axis that fails bracelet
	// validation; the candidate file is considered corrupt.
	ErrCorruptSequence = errors.New("deck: invalid sequence in candidate record")

	// ErrIllegalCode marks a bundle whose axes decode to an unused value
	// code at some position.
	ErrIllegalCode = errors.New("deck: illegal value code")

	// ErrAmbiguityLayout marks a bundle whose ambiguous value pairs do
	// not occur exactly twice per suit.
	ErrAmbiguityLayout = errors.New("deck: ambiguous value does not occur twice per suit")
)

// Result is the best realization of one candidate record.
type Result struct {
	Deck  Deck
	Bits  PredicateBits
	Score int
}

// MajorCount returns the number of supported predicates, the high half of
// the score.
func (r *Result) MajorCount() int { return r.Score >> 16 }

// SpreadScore returns 65535 minus the duplicate-value penalty, the low
// half of the score.
func (r *Result) SpreadScore() int { return r.Score & 0xffff }

// suitSearchOrder fixes the enumeration bit assignment: four pair choices
// per suit, suits in spade, heart, club, diamond order.
var suitSearchOrder = [4]Suit{Spade, Heart, Club, Diamond}

// realizer holds the per-record scratch state for the 2^16 enumeration.
type realizer struct {
	layout *Layout
	all    bool
	log    *zap.Logger

	suits  [Size]Suit
	values [Size]valueCode

	// pairAt[s][p] holds the two positions where pair p of suit s occurs.
	pairAt [4][4][2]int

	temp Deck
}

// FindBest decodes rec under the layout, enumerates all 65536 settlements
// of the ambiguous pairs and returns the realization with the highest
// score: supported-predicate count first, value spread second. With all
// set, the special predicate subsets are tested too.
func FindBest(rec Record, layout *Layout, all bool, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &realizer{layout: layout, all: all, log: log}

	if err := r.validate(rec); err != nil {
		return nil, err
	}
	if err := r.decode(rec); err != nil {
		return nil, err
	}
	if err := r.indexPairs(); err != nil {
		return nil, err
	}
	return r.enumerate(), nil
}

// validate rejects corrupt axes. The HC sequence is derived and is not
// re-checked here; the search asserts it on emission.
func (r *realizer) validate(rec Record) error {
	for _, s := range []struct {
		name string
		seq  bitseq.Seq
	}{
		{"RED", rec.Red}, {"CD", rec.CD}, {"ODD", rec.Odd},
		{r.layout.AxisNames[0], rec.X}, {r.layout.AxisNames[1], rec.Y}, {r.layout.AxisNames[2], rec.Z},
	} {
		if !bitseq.Valid(s.seq) {
			return fmt.Errorf("%w: %s", ErrCorruptSequence, s.name)
		}
	}
	return nil
}

// decode computes each position's suit and value code. Position 0 of the
// deck is the most significant sequence bit.
func (r *realizer) decode(rec Record) error {
	for pos := 0; pos < Size; pos++ {
		bit := bitseq.Seq(1) << (bitseq.Length - 1 - pos)

		suit := Suit(0)
		if rec.Red&bit != 0 {
			suit |= 2
		}
		if rec.CD&bit != 0 {
			suit |= 1
		}

		code := 0
		if rec.Odd&bit != 0 {
			code |= 8
		}
		if rec.X&bit != 0 {
			code |= 4
		}
		if rec.Y&bit != 0 {
			code |= 2
		}
		if rec.Z&bit != 0 {
			code |= 1
		}

		vc := r.layout.codes[code]
		if vc.value == 0 && vc.pair < 0 {
			return fmt.Errorf("%w: code %04b at position %d", ErrIllegalCode, code, pos)
		}
		r.suits[pos] = suit
		r.values[pos] = vc
	}
	return nil
}

// indexPairs records where each (pair, suit) ambiguity occurs and fills
// the resolved cells of the scratch deck. Every pair must occur exactly
// twice per suit: 32 ambiguous cells, 20 resolved.
func (r *realizer) indexPairs() error {
	var counts [4][4]int
	for pos := 0; pos < Size; pos++ {
		vc := r.values[pos]
		if vc.pair < 0 {
			r.temp[pos] = MakeCard(r.suits[pos], vc.value)
			continue
		}
		s, p := r.suits[pos], vc.pair
		if counts[s][p] < 2 {
			r.pairAt[s][p][counts[s][p]] = pos
		}
		counts[s][p]++
	}

	for s := range counts {
		for p, n := range counts[s] {
			if n != 2 {
				pc := r.layout.pairs[p]
				return fmt.Errorf("%w: %s/%s of %s occurs %d times",
					ErrAmbiguityLayout, valueNames[pc.Lo], valueNames[pc.Hi], Suit(s), n)
			}
		}
	}
	return nil
}

// enumerate tries all 2^16 pair settlements and keeps the best score.
// Ties keep the earlier realization.
func (r *realizer) enumerate() *Result {
	best := &Result{Score: -1}
	guaranteed := r.layout.guaranteed

	for i := 0; i < 1<<16; i++ {
		for k := 0; k < 16; k++ {
			suit := suitSearchOrder[k/4]
			pair := pairID(k % 4)
			choice := i >> k & 1

			at := &r.pairAt[suit][pair]
			pc := r.layout.pairs[pair]
			r.temp[at[choice]] = MakeCard(suit, pc.Lo)
			r.temp[at[1-choice]] = MakeCard(suit, pc.Hi)
		}

		bits := r.evaluate()
		score := bits.Count()<<16 | spreadScore(&r.temp)
		if score > best.Score {
			best.Score = score
			best.Bits = bits
			best.Deck = r.temp
		}
	}

	if best.Bits == guaranteed {
		r.log.Debug("no realization supports a predicate beyond the input axes")
	}
	return best
}

// evaluate tests the catalog on the scratch deck. The guaranteed bits are
// set unconditionally: the suit axes, the parity axis, the complements of
// the X and Y value axes and the Z value axis itself hold by construction
// on any deck decoded from them.
func (r *realizer) evaluate() PredicateBits {
	// Indicator sequence per card value, one deck walk.
	var byValue [14]bitseq.Seq
	for pos := 0; pos < Size; pos++ {
		byValue[r.temp[pos].Value()] |= 1 << (bitseq.Length - 1 - pos)
	}

	bits := r.layout.guaranteed
	for i := range Catalog {
		p := &Catalog[i]
		if p.Bit&bits != 0 || len(p.Values) == 0 {
			continue
		}
		if p.Special && !r.all {
			continue
		}
		var seq bitseq.Seq
		for _, v := range p.Values {
			seq |= byValue[v]
		}
		if bitseq.Valid(seq) {
			bits |= p.Bit
		}
	}
	return bits
}
