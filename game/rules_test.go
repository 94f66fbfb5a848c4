package game

import (
	"testing"

	"github.com/minaorangina/makao/deck"
	utils "github.com/minaorangina/makao/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLegalPlay(t *testing.T) {
	tt := []struct {
		name      string
		active    string
		candidate string
		suit      deck.Suit
		want      bool
	}{
		{"same suit", "7H", "5H", deck.Hearts, true},
		{"same rank", "7H", "7C", deck.Hearts, true},
		{"queen on anything", "7H", "QS", deck.Hearts, true},
		{"anything on a queen", "QS", "7D", deck.Spades, true},
		{"no match", "7H", "8C", deck.Hearts, false},
		{"requested suit after ace", "AH", "5C", deck.Clubs, true},
		{"ace's own suit after request", "AH", "5H", deck.Hearts, true},
		{"old suit after request", "AH", "5H", deck.Clubs, false},
		{"queen does not beat a request", "AH", "QH", deck.Clubs, false},
		{"same rank does not beat a request", "AH", "AD", deck.Clubs, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsLegalPlay(utils.MustCard(t, tc.active), utils.MustCard(t, tc.candidate), tc.suit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("a card cannot be played on itself", func(t *testing.T) {
		card := utils.MustCard(t, "9D")
		_, err := IsLegalPlay(card, card, deck.Diamonds)
		assert.ErrorIs(t, err, ErrDuplicateCard)
	})

	t.Run("rank and suit matches work both ways", func(t *testing.T) {
		for _, pair := range [][2]string{{"7H", "7C"}, {"7H", "9H"}, {"10S", "10D"}} {
			a, b := utils.MustCard(t, pair[0]), utils.MustCard(t, pair[1])

			ab, err := IsLegalPlay(a, b, a.Suit)
			require.NoError(t, err)
			ba, err := IsLegalPlay(b, a, b.Suit)
			require.NoError(t, err)

			assert.True(t, ab, "%s on %s", b, a)
			assert.True(t, ba, "%s on %s", a, b)
		}
	})
}

func TestClassifiers(t *testing.T) {
	for _, r := range deck.Ranks() {
		switch r {
		case deck.Two, deck.Three, deck.Four, deck.Jack, deck.Queen, deck.King, deck.Ace:
			assert.True(t, IsAction(r), r.String())
		default:
			assert.False(t, IsAction(r), r.String())
		}

		assert.Equal(t, r == deck.Jack || r == deck.Ace, RequestNeeded(r), r.String())
		assert.Equal(t, r == deck.Queen, IsWild(r), r.String())
	}
}
