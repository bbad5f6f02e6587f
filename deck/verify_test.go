package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStackRoundTrip(t *testing.T) {
	d := blockDeck()
	got, err := ParseStack(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestParseStackForms(t *testing.T) {
	d := blockDeck()

	// "T" for ten, lower case, whitespace-only separation.
	text := d.String()
	text = strings.ReplaceAll(text, "10", "T")
	text = strings.ReplaceAll(text, ",", " ")
	text = strings.ToLower(text)

	got, err := ParseStack(text)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestParseStackErrors(t *testing.T) {
	d := blockDeck()

	_, err := ParseStack("AS, 2S")
	assert.Error(t, err, "too few cards")

	_, err = ParseStack(d.String() + ", AS")
	assert.Error(t, err, "too many cards")

	_, err = ParseStack(strings.Replace(d.String(), "AS", "1S", 1))
	assert.Error(t, err, "bad value")

	_, err = ParseStack(strings.Replace(d.String(), "AS", "AX", 1))
	assert.Error(t, err, "bad suit")
}

func TestTestBraceletsOnBlockDeck(t *testing.T) {
	// The periodic block order supports nothing: every indicator sequence
	// repeats its windows.
	d := blockDeck()
	assert.Zero(t, TestBracelets(&d, true))
	assert.False(t, Suitable(&d), "suit pattern repeats every four cards")
}

func TestSuitable(t *testing.T) {
	// Cross-check the checker against a naive map of three-suit windows,
	// first on the periodic block deck.
	naive := func(d *Deck) bool {
		seen := make(map[string]bool)
		for i := 0; i < Size; i++ {
			var b strings.Builder
			for j := 0; j < 3; j++ {
				b.WriteString(d[(i+j)%Size].Suit().String())
			}
			if seen[b.String()] {
				return false
			}
			seen[b.String()] = true
		}
		return true
	}

	d := blockDeck()
	assert.Equal(t, naive(&d), Suitable(&d))

	// Then on a deterministic rearrangement of the block deck's cards.
	var e Deck
	perm := 0
	for i := range e {
		perm = (perm*5 + 3) % Size
		e[i] = d[perm]
	}
	assert.Equal(t, naive(&e), Suitable(&e))
}
