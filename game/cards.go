package game

import (
	"math/rand"
	"time"

	"github.com/minaorangina/makao/deck"
	"github.com/pkg/errors"
)

// Shuffler permutes cards. It must return every card it was given.
type Shuffler interface {
	Shuffle(cards []deck.Card) []deck.Card
}

// RandShuffler shuffles with a seeded math/rand source
type RandShuffler struct {
	rnd *rand.Rand
}

// NewRandShuffler constructs a shuffler. A zero seed is replaced with the current time.
func NewRandShuffler(seed int64) *RandShuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandShuffler{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandShuffler) Shuffle(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// CardService builds, shuffles and recycles decks
type CardService struct {
	shuffler Shuffler
}

func NewCardService(shuffler Shuffler) *CardService {
	return &CardService{shuffler: shuffler}
}

// CreateDeck returns a full deck in its unshuffled order
func (s *CardService) CreateDeck() deck.Deck {
	return deck.New()
}

// Shuffle returns a shuffled copy of cards; the input is left alone.
func (s *CardService) Shuffle(cards deck.Deck) deck.Deck {
	return deck.Deck(s.shuffler.Shuffle(cards.Clone()))
}

// PickFirstNoActionCard removes the first non-action card from the front
// of the pile. Action cards met on the way go to the back. Meeting the
// first of them again means the pile has no regular card.
func (s *CardService) PickFirstNoActionCard(pile *deck.Deck) (deck.Card, error) {
	card, err := pile.PickFirst()
	if err != nil {
		return deck.Card{}, err
	}

	var first *deck.Card
	for IsAction(card.Rank) {
		if first != nil && *first == card {
			pile.Add(card)
			return deck.Card{}, ErrNoPlayableCard
		}

		pile.Add(card)
		if first == nil {
			c := card
			first = &c
		}

		card, err = pile.PickFirst()
		if err != nil {
			return deck.Card{}, err
		}
	}

	return card, nil
}

// RebuildDeckFromPlayedCards moves every played card but the top one,
// shuffled, to the back of the draw pile.
func (s *CardService) RebuildDeckFromPlayedCards(drawPile, played *deck.Deck) error {
	if played.Len() <= 1 {
		return ErrEmptyDiscard
	}

	top, _ := played.Last()
	rest := played.Deal(played.Len() - 1)
	shuffled := s.Shuffle(rest)

	drawPile.AddDeck(&shuffled)
	*played = deck.Deck{top}
	return nil
}

// MostOccurringNoActionRank returns the non-action rank held most often.
// Ties go to the rank that comes first in the hand.
func (s *CardService) MostOccurringNoActionRank(hand deck.Deck) (deck.Rank, error) {
	counts := map[deck.Rank]int{}
	for _, c := range hand {
		if !IsAction(c.Rank) {
			counts[c.Rank]++
		}
	}

	best := deck.NullRank
	for _, c := range hand {
		if counts[c.Rank] > counts[best] {
			best = c.Rank
		}
	}

	if best == deck.NullRank {
		return deck.NullRank, errors.Wrap(deck.ErrNoSuchCard, "no regular cards in hand")
	}
	return best, nil
}

// MostOccurringSuit returns the suit held most often. Ties go to the suit
// that comes first in the hand.
func (s *CardService) MostOccurringSuit(hand deck.Deck) (deck.Suit, error) {
	counts := map[deck.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}

	best := deck.NullSuit
	for _, c := range hand {
		if counts[c.Suit] > counts[best] {
			best = c.Suit
		}
	}

	if best == deck.NullSuit {
		return deck.NullSuit, errors.Wrap(deck.ErrNoSuchCard, "empty hand")
	}
	return best, nil
}
