package deck

import (
	"fmt"
	"strings"

	"github.com/mhr3/bracelet/bitseq"
)

// ParseStack parses a deck listing of the form produced by the realizer:
// card names like "QH, 7C, 10S" separated by commas or whitespace, in any
// line arrangement. "10" and "T" both name the ten. Exactly 52 cards must
// be present.
func ParseStack(text string) (Deck, error) {
	var d Deck
	n := 0
	for _, line := range strings.Split(text, "\n") {
		for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		}) {
			card, err := parseCard(strings.ToUpper(tok))
			if err != nil {
				return Deck{}, err
			}
			if n >= Size {
				return Deck{}, fmt.Errorf("deck: more than %d cards", Size)
			}
			d[n] = card
			n++
		}
	}
	if n != Size {
		return Deck{}, fmt.Errorf("deck: stack contains %d cards, want %d", n, Size)
	}
	return d, nil
}

func parseCard(tok string) (Card, error) {
	if len(tok) < 2 {
		return 0, fmt.Errorf("deck: bad card %q", tok)
	}

	var suit Suit
	switch tok[len(tok)-1] {
	case 'S':
		suit = Spade
	case 'C':
		suit = Club
	case 'H':
		suit = Heart
	case 'D':
		suit = Diamond
	default:
		return 0, fmt.Errorf("deck: bad suit in card %q", tok)
	}

	value := 0
	switch name := tok[:len(tok)-1]; name {
	case "A":
		value = 1
	case "T", "10":
		value = 10
	case "J":
		value = 11
	case "Q":
		value = 12
	case "K":
		value = 13
	default:
		if len(name) == 1 && name[0] >= '2' && name[0] <= '9' {
			value = int(name[0] - '0')
		}
	}
	if value == 0 {
		return 0, fmt.Errorf("deck: bad value in card %q", tok)
	}
	return MakeCard(suit, value), nil
}

// TestBracelets reports which catalog predicates hold on an arbitrary
// complete deck. Unlike the realizer, nothing is taken on faith: the suit
// axes are tested from the actual card suits like any other indicator
// sequence. Special predicates are included when all is set.
func TestBracelets(d *Deck, all bool) PredicateBits {
	var byValue [14]bitseq.Seq
	var red, cd, hc bitseq.Seq
	for pos := 0; pos < Size; pos++ {
		bit := bitseq.Seq(1) << (bitseq.Length - 1 - pos)
		byValue[d[pos].Value()] |= bit
		switch d[pos].Suit() {
		case Club:
			cd |= bit
			hc |= bit
		case Heart:
			red |= bit
			hc |= bit
		case Diamond:
			red |= bit
			cd |= bit
		}
	}

	var bits PredicateBits
	for i := range Catalog {
		p := &Catalog[i]
		if p.Special && !all {
			continue
		}
		var seq bitseq.Seq
		switch p.Bit {
		case BitHD:
			seq = red
		case BitCD:
			seq = cd
		case BitHC:
			seq = hc
		default:
			for _, v := range p.Values {
				seq |= byValue[v]
			}
		}
		if bitseq.Valid(seq) {
			bits |= p.Bit
		}
	}
	return bits
}

// Suitable reports whether the 52 windows of three consecutive card suits
// are pairwise distinct. Three suits carry six bits, so this is the base-4
// counterpart of the binary bracelet codes.
func Suitable(d *Deck) bool {
	var seen [64]bool
	for i := 0; i < Size; i++ {
		code := 0
		for j := 0; j < 3; j++ {
			code = code<<2 | int(d[(i+j)%Size].Suit())
		}
		if seen[code] {
			return false
		}
		seen[code] = true
	}
	return true
}
