package deck

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	ErrEmptyDeck  = errors.New("cannot pick a card from an empty deck")
	ErrNoSuchCard = errors.New("no such card")
)

// Deck is an ordered pile of cards. Index 0 is the front: the next card
// dealt from a draw pile. The last index is the top of a discard pile.
// Draw piles, discard piles and hands are all Decks.
type Deck []Card

// New creates a full, unshuffled deck: every suit of Two, then every
// suit of Three, and so on up to Ace.
func New() Deck {
	cards := make(Deck, 0, len(Ranks())*len(Suits()))
	for _, rank := range Ranks() {
		for _, suit := range Suits() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

func (d Deck) Len() int {
	return len(d)
}

func (d Deck) IsEmpty() bool {
	return len(d) == 0
}

// Add appends cards to the back of the deck
func (d *Deck) Add(cards ...Card) {
	*d = append(*d, cards...)
}

// AddDeck drains other into d, preserving order.
func (d *Deck) AddDeck(other *Deck) {
	*d = append(*d, (*other)...)
	*other = Deck{}
}

// Pick removes and returns the card at index i.
func (d *Deck) Pick(i int) (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmptyDeck
	}
	if i < 0 || i >= len(*d) {
		return Card{}, errors.Wrapf(ErrNoSuchCard, "index %d out of range [0, %d)", i, len(*d))
	}

	card := (*d)[i]
	*d = slices.Delete(*d, i, i+1)
	return card, nil
}

// PickFirst removes and returns the front card.
func (d *Deck) PickFirst() (Card, error) {
	return d.Pick(0)
}

// Last returns the top (highest index) card without removing it.
func (d Deck) Last() (Card, error) {
	if len(d) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return d[len(d)-1], nil
}

// Deal removes up to n cards from the front of the deck.
func (d *Deck) Deal(n int) Deck {
	if n <= 0 {
		return Deck{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := slices.Clone((*d)[:n])
	*d = slices.Delete(*d, 0, n)
	return dealt
}

// IndexFunc returns the index of the first card satisfying f, or -1.
func (d Deck) IndexFunc(f func(Card) bool) int {
	return slices.IndexFunc(d, f)
}

func (d Deck) Contains(c Card) bool {
	return slices.Contains(d, c)
}

func (d Deck) Clone() Deck {
	return slices.Clone(d)
}

func (d Deck) String() string {
	if len(d) == 0 {
		return "[]"
	}

	short := make([]string, 0, len(d))
	for _, c := range d {
		short = append(short, c.Short())
	}
	return "[" + strings.Join(short, " ") + "]"
}
