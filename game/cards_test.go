package game

import (
	"testing"

	"github.com/minaorangina/makao/deck"
	utils "github.com/minaorangina/makao/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardServiceDeck(t *testing.T) {
	t.Run("creates a full deck", func(t *testing.T) {
		s := NewCardService(utils.IdentityShuffler{})
		d := s.CreateDeck()

		assert.Equal(t, 52, d.Len())
		seen := map[deck.Card]bool{}
		for _, c := range d {
			assert.False(t, seen[c], "duplicate %s", c)
			seen[c] = true
		}
	})

	t.Run("shuffle returns a new permutation and leaves the input alone", func(t *testing.T) {
		shuffler := &utils.ReverseShuffler{}
		s := NewCardService(shuffler)
		in := utils.MustCards(t, "2C", "3D", "4H")

		out := s.Shuffle(in)

		assert.Equal(t, utils.MustCards(t, "4H", "3D", "2C"), out)
		assert.Equal(t, utils.MustCards(t, "2C", "3D", "4H"), in)
		assert.Equal(t, 1, shuffler.Calls)
	})

	t.Run("random shuffle keeps every card", func(t *testing.T) {
		s := NewCardService(NewRandShuffler(42))
		in := deck.New()

		out := s.Shuffle(in)

		assert.Len(t, out, in.Len())
		assert.ElementsMatch(t, in, out)
	})

	t.Run("seeded shuffles repeat", func(t *testing.T) {
		a := NewCardService(NewRandShuffler(7)).Shuffle(deck.New())
		b := NewCardService(NewRandShuffler(7)).Shuffle(deck.New())
		assert.Equal(t, a, b)
	})
}

func TestPickFirstNoActionCard(t *testing.T) {
	s := NewCardService(utils.IdentityShuffler{})

	t.Run("action cards go to the back", func(t *testing.T) {
		pile := utils.MustCards(t, "2C", "3C", "4C", "5C", "JC", "QC", "KC", "AC")

		card, err := s.PickFirstNoActionCard(&pile)

		require.NoError(t, err)
		assert.Equal(t, utils.MustCard(t, "5C"), card)
		assert.Equal(t, utils.MustCards(t, "JC", "QC", "KC", "AC", "2C", "3C", "4C"), pile)
	})

	t.Run("regular card at the front", func(t *testing.T) {
		pile := utils.MustCards(t, "9D", "2C")

		card, err := s.PickFirstNoActionCard(&pile)

		require.NoError(t, err)
		assert.Equal(t, utils.MustCard(t, "9D"), card)
		assert.Equal(t, utils.MustCards(t, "2C"), pile)
	})

	t.Run("only action cards", func(t *testing.T) {
		pile := utils.MustCards(t, "2C", "QH", "AS")

		_, err := s.PickFirstNoActionCard(&pile)

		assert.ErrorIs(t, err, ErrNoPlayableCard)
		assert.ElementsMatch(t, utils.MustCards(t, "2C", "QH", "AS"), pile)
	})

	t.Run("empty pile", func(t *testing.T) {
		pile := deck.Deck{}
		_, err := s.PickFirstNoActionCard(&pile)
		assert.ErrorIs(t, err, deck.ErrEmptyDeck)
	})
}

func TestRebuildDeckFromPlayedCards(t *testing.T) {
	t.Run("one played card is not enough", func(t *testing.T) {
		s := NewCardService(utils.IdentityShuffler{})
		draw, played := deck.Deck{}, utils.MustCards(t, "5H")

		err := s.RebuildDeckFromPlayedCards(&draw, &played)

		assert.ErrorIs(t, err, ErrEmptyDiscard)
		assert.Equal(t, 0, draw.Len())
		assert.Equal(t, 1, played.Len())
	})

	t.Run("two played cards leave the top one", func(t *testing.T) {
		s := NewCardService(utils.IdentityShuffler{})
		draw, played := deck.Deck{}, utils.MustCards(t, "5H", "6H")

		err := s.RebuildDeckFromPlayedCards(&draw, &played)

		require.NoError(t, err)
		assert.Equal(t, utils.MustCards(t, "5H"), draw)
		assert.Equal(t, utils.MustCards(t, "6H"), played)
	})

	t.Run("played cards are shuffled onto the back of the draw pile", func(t *testing.T) {
		shuffler := &utils.ReverseShuffler{}
		s := NewCardService(shuffler)
		draw := utils.MustCards(t, "KS")
		played := utils.MustCards(t, "2H", "3H", "4H", "5H")

		err := s.RebuildDeckFromPlayedCards(&draw, &played)

		require.NoError(t, err)
		assert.Equal(t, utils.MustCards(t, "KS", "4H", "3H", "2H"), draw)
		assert.Equal(t, utils.MustCards(t, "5H"), played)
		assert.Equal(t, 1, shuffler.Calls)
	})
}

func TestMostOccurring(t *testing.T) {
	s := NewCardService(utils.IdentityShuffler{})

	t.Run("regular rank", func(t *testing.T) {
		rank, err := s.MostOccurringNoActionRank(utils.MustCards(t, "KH", "6C", "KS", "6D", "KD", "9S"))
		require.NoError(t, err)
		assert.Equal(t, deck.Six, rank)
	})

	t.Run("rank ties go to the first in hand", func(t *testing.T) {
		rank, err := s.MostOccurringNoActionRank(utils.MustCards(t, "5H", "6C", "6D", "5S"))
		require.NoError(t, err)
		assert.Equal(t, deck.Five, rank)
	})

	t.Run("only action cards", func(t *testing.T) {
		_, err := s.MostOccurringNoActionRank(utils.MustCards(t, "2H", "QS"))
		assert.ErrorIs(t, err, deck.ErrNoSuchCard)
	})

	t.Run("suit", func(t *testing.T) {
		suit, err := s.MostOccurringSuit(utils.MustCards(t, "5H", "6C", "7C", "AC"))
		require.NoError(t, err)
		assert.Equal(t, deck.Clubs, suit)
	})

	t.Run("suit ties go to the first in hand", func(t *testing.T) {
		suit, err := s.MostOccurringSuit(utils.MustCards(t, "5H", "6C", "7C", "8H"))
		require.NoError(t, err)
		assert.Equal(t, deck.Hearts, suit)
	})

	t.Run("empty hand", func(t *testing.T) {
		_, err := s.MostOccurringSuit(deck.Deck{})
		assert.ErrorIs(t, err, deck.ErrNoSuchCard)
	})
}
