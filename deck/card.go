package deck

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidCard = errors.New("invalid card")
)

// Rank represents a rank in a deck of cards
type Rank int

const (
	NullRank Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

var rankSymbols = []string{"", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Ranks returns every playable rank, Two to Ace.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

func (r Rank) String() string {
	if r < NullRank || int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	if r == NullRank {
		return "NullRank"
	}
	return rankNames[r]
}

// Symbol is the short notation of the rank, e.g. "10" or "K".
func (r Rank) Symbol() string {
	if r <= NullRank || int(r) >= len(rankSymbols) {
		return "?"
	}
	return rankSymbols[r]
}

// Valid reports whether r is one of the thirteen playable ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	NullSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"", "Clubs", "Diamonds", "Hearts", "Spades"}

// Suits returns the four suits in deck order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	if s < NullSuit || int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	if s == NullSuit {
		return "NullSuit"
	}
	return suitNames[s]
}

// Symbol is the single letter notation of the suit.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitNames[s][:1]
}

func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Card is a playing card. Cards are values: a full deck holds every
// rank/suit pair exactly once, so two equal cards are the same card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card, panicking on out of range arguments
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() || !suit.Valid() {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact notation accepted by ParseCard, e.g. "10H".
func (c Card) Short() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// ParseRank accepts a symbol ("7", "10", "J") or a name ("Seven", "jack").
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	for _, r := range Ranks() {
		if strings.EqualFold(s, r.Symbol()) || strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return NullRank, errors.Wrapf(ErrInvalidRank, "%q", s)
}

// ParseSuit accepts a letter ("H") or a name ("hearts").
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	for _, suit := range Suits() {
		if strings.EqualFold(s, suit.Symbol()) || strings.EqualFold(s, suit.String()) {
			return suit, nil
		}
	}
	return NullSuit, errors.Wrapf(ErrInvalidSuit, "%q", s)
}

// ParseCard parses the short notation produced by Card.Short.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, errors.Wrapf(ErrInvalidCard, "%q", s)
	}

	rank, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, errors.Wrapf(ErrInvalidCard, "%q: %s", s, err)
	}
	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, errors.Wrapf(ErrInvalidCard, "%q: %s", s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}
