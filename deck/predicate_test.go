package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Catalog, 26)

	seen := PredicateBits(0)
	for _, p := range Catalog {
		assert.Zero(t, seen&p.Bit, "duplicate bit for %s", p.Name)
		seen |= p.Bit

		for _, v := range p.Values {
			assert.GreaterOrEqual(t, v, 1, p.Name)
			assert.LessOrEqual(t, v, 13, p.Name)
		}
	}

	// Suit-axis entries carry no value set; they hold by construction.
	for _, name := range []string{"HD", "CD", "HC"} {
		for _, p := range Catalog {
			if p.Name == name {
				assert.Empty(t, p.Values)
			}
		}
	}
}

func TestPredicateComplements(t *testing.T) {
	byName := make(map[string]Predicate)
	for _, p := range Catalog {
		byName[p.Name] = p
	}

	// A6 is the complement of 7..K, A7 of 8..K, EV of the odd values, 38
	// of 9..2 and 39 of 10..2: each guaranteed bit pairs with an input
	// axis.
	complement := func(values []int) []int {
		in := make(map[int]bool)
		for _, v := range values {
			in[v] = true
		}
		var out []int
		for v := 1; v <= 13; v++ {
			if !in[v] {
				out = append(out, v)
			}
		}
		return out
	}

	assert.ElementsMatch(t, byName["A6"].Values, complement([]int{7, 8, 9, 10, 11, 12, 13}))
	assert.ElementsMatch(t, byName["A7"].Values, complement([]int{8, 9, 10, 11, 12, 13}))
	assert.ElementsMatch(t, byName["EV"].Values, complement([]int{1, 3, 5, 7, 9, 11, 13}))
	assert.ElementsMatch(t, byName["38"].Values, complement([]int{9, 10, 11, 12, 13, 1, 2}))
	assert.ElementsMatch(t, byName["39"].Values, complement([]int{10, 11, 12, 13, 1, 2}))
}

func TestGuaranteedBits(t *testing.T) {
	assert.Equal(t, 7, Umake.Guaranteed().Count())
	assert.Equal(t, 7, Uplus2.Guaranteed().Count())

	assert.Equal(t, []string{"A6", "A7", "4T", "EV", "HD", "CD", "HC"}, Umake.Guaranteed().Names())
	assert.Equal(t, []string{"38", "39", "6Q", "EV", "HD", "CD", "HC"}, Uplus2.Guaranteed().Names())
}

func TestLayoutTables(t *testing.T) {
	for _, l := range []*Layout{Umake, Uplus2} {
		legal := 0
		ambiguousCodes := 0
		for _, c := range l.codes {
			switch {
			case c.pair >= 0:
				ambiguousCodes++
			case c.value != 0:
				legal++
			}
		}
		assert.Equal(t, 5, legal, l.Name)
		assert.Equal(t, 4, ambiguousCodes, l.Name)

		// Five concrete values plus four pairs cover all 13 values once.
		var covered [14]int
		for _, c := range l.codes {
			if c.value != 0 {
				covered[c.value]++
			}
		}
		for _, p := range l.pairs {
			assert.Less(t, p.Lo, p.Hi, l.Name)
			covered[p.Lo]++
			covered[p.Hi]++
		}
		for v := 1; v <= 13; v++ {
			assert.Equal(t, 1, covered[v], "%s value %d", l.Name, v)
		}
	}
}
