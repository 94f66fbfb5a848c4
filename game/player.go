package game

import (
	"github.com/minaorangina/makao/deck"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Makao is what a player says with one card left.
const Makao = "Makao"

// NewID constructs a player or game ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is a seat's owner: a name, a hand and a count of rounds to sit out.
type Player struct {
	id           string
	name         string
	hand         deck.Deck
	roundsToSkip int
}

// NewPlayer constructs a player holding the given cards
func NewPlayer(name string, cards ...deck.Card) *Player {
	hand := deck.Deck{}
	hand.Add(cards...)
	return &Player{id: NewID(), name: name, hand: hand}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) String() string {
	return p.name
}

// Cards returns the player's hand. The slice is the player's own;
// callers must not modify it.
func (p *Player) Cards() deck.Deck {
	return p.hand
}

func (p *Player) HandSize() int {
	return p.hand.Len()
}

// AddCards puts cards in the player's hand
func (p *Player) AddCards(cards ...deck.Card) {
	p.hand.Add(cards...)
}

// TakeCards moves count cards from the front of from into the hand.
// It stops early, returning deck.ErrEmptyDeck, if from runs out.
func (p *Player) TakeCards(from *deck.Deck, count int) (int, error) {
	for i := 0; i < count; i++ {
		card, err := from.PickFirst()
		if err != nil {
			return i, err
		}
		p.hand.Add(card)
	}
	return count, nil
}

// PickCard removes the card at index i from the hand
func (p *Player) PickCard(i int) (deck.Card, error) {
	return p.hand.Pick(i)
}

// PickCardByRank removes the first card of the given rank
func (p *Player) PickCardByRank(rank deck.Rank) (deck.Card, error) {
	return p.pickFirst(func(c deck.Card) bool { return c.Rank == rank })
}

// PickCardByRankAndSuit removes the given card if the player holds it
func (p *Player) PickCardByRankAndSuit(rank deck.Rank, suit deck.Suit) (deck.Card, error) {
	return p.pickFirst(func(c deck.Card) bool { return c.Rank == rank && c.Suit == suit })
}

// PickCardsByRank removes every card of the given rank, in hand order
func (p *Player) PickCardsByRank(rank deck.Rank) (deck.Deck, error) {
	picked := deck.Deck{}
	for {
		card, err := p.PickCardByRank(rank)
		if err != nil {
			break
		}
		picked.Add(card)
	}

	if picked.IsEmpty() {
		return nil, errors.Wrapf(deck.ErrNoSuchCard, "%s holds no %s", p.name, rank)
	}
	return picked, nil
}

// find the index first, then remove by index
func (p *Player) pickFirst(match func(deck.Card) bool) (deck.Card, error) {
	i := p.hand.IndexFunc(match)
	if i < 0 {
		return deck.Card{}, errors.Wrapf(deck.ErrNoSuchCard, "not in %s's hand", p.name)
	}
	return p.hand.Pick(i)
}

func (p *Player) CanPlayRound() bool {
	return p.roundsToSkip == 0
}

func (p *Player) RoundsToSkip() int {
	return p.roundsToSkip
}

// AddRoundsToSkip charges the player n rounds to sit out. Negative n is ignored.
func (p *Player) AddRoundsToSkip(n int) {
	if n > 0 {
		p.roundsToSkip += n
	}
}

// SkipRound consumes one owed round
func (p *Player) SkipRound() {
	if p.roundsToSkip > 0 {
		p.roundsToSkip--
	}
}

func (p *Player) SayMakao() string {
	return Makao
}
