package internal

import (
	"testing"

	"github.com/minaorangina/makao/deck"
)

// AssertHandSize checks the number of cards held
func AssertHandSize(t *testing.T, hand deck.Deck, want int) {
	t.Helper()

	if hand.Len() != want {
		t.Errorf("hand %s: got %d cards, want %d", hand, hand.Len(), want)
	}
}

// MustCard parses a card in short notation ("10H", "KS"), failing the test on error.
func MustCard(t *testing.T, short string) deck.Card {
	t.Helper()

	c, err := deck.ParseCard(short)
	if err != nil {
		t.Fatalf("bad card fixture %q: %s", short, err)
	}
	return c
}

// MustCards builds a Deck from short notation, in the given order.
func MustCards(t *testing.T, shorts ...string) deck.Deck {
	t.Helper()

	d := deck.Deck{}
	for _, s := range shorts {
		d.Add(MustCard(t, s))
	}
	return d
}

// ReverseShuffler is a deterministic stand-in for a random shuffle.
type ReverseShuffler struct {
	Calls int
}

func (s *ReverseShuffler) Shuffle(cards []deck.Card) []deck.Card {
	s.Calls++
	out := make([]deck.Card, len(cards))
	for i, c := range cards {
		out[len(cards)-1-i] = c
	}
	return out
}

// IdentityShuffler keeps the order it is given.
type IdentityShuffler struct{}

func (IdentityShuffler) Shuffle(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}
