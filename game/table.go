package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/makao/deck"
)

// Table seats the players and holds the draw and discard piles.
// Turn order runs through the seats; reversing is moving the pointer back.
type Table struct {
	players     []*Player
	current     int
	drawPile    deck.Deck
	discardPile deck.Deck
	activeSuit  deck.Suit
}

// NewTable constructs a table over existing piles. When the discard pile
// has cards, its top card sets the active suit.
func NewTable(drawPile, discardPile deck.Deck) *Table {
	if drawPile == nil {
		drawPile = deck.Deck{}
	}
	if discardPile == nil {
		discardPile = deck.Deck{}
	}

	t := &Table{drawPile: drawPile, discardPile: discardPile}
	if top, err := discardPile.Last(); err == nil {
		t.activeSuit = top.Suit
	}
	return t
}

// AddPlayer seats a player after the existing ones
func (t *Table) AddPlayer(p *Player) error {
	if len(t.players) == maxPlayers {
		return ErrTableFull
	}
	t.players = append(t.players, p)
	return nil
}

func (t *Table) Players() []*Player {
	return t.players
}

func (t *Table) PlayerCount() int {
	return len(t.players)
}

func (t *Table) CurrentPlayer() *Player {
	t.mustHavePlayers()
	return t.players[t.current]
}

func (t *Table) NextPlayer() *Player {
	t.mustHavePlayers()
	return t.players[(t.current+1)%len(t.players)]
}

func (t *Table) PreviousPlayer() *Player {
	t.mustHavePlayers()
	return t.players[(t.current-1+len(t.players))%len(t.players)]
}

// FinishRound passes the turn forward
func (t *Table) FinishRound() {
	t.mustHavePlayers()
	t.current = (t.current + 1) % len(t.players)
}

// BackRound passes the turn backward
func (t *Table) BackRound() {
	t.mustHavePlayers()
	t.current = (t.current - 1 + len(t.players)) % len(t.players)
}

func (t *Table) mustHavePlayers() {
	if len(t.players) == 0 {
		panic("makao: table has no players")
	}
}

// ActiveSuit is the suit the next card must follow
func (t *Table) ActiveSuit() (deck.Suit, error) {
	if t.activeSuit == deck.NullSuit {
		return deck.NullSuit, ErrNoActiveSuit
	}
	return t.activeSuit, nil
}

// SetActiveSuit overrides the suit in force without touching the discard pile
func (t *Table) SetActiveSuit(s deck.Suit) {
	t.activeSuit = s
}

// PlaceCard puts a card on the discard pile; its suit becomes active.
func (t *Table) PlaceCard(c deck.Card) {
	t.discardPile.Add(c)
	t.activeSuit = c.Suit
}

// PlaceCards places cards one by one, in order
func (t *Table) PlaceCards(cards deck.Deck) {
	for _, c := range cards {
		t.PlaceCard(c)
	}
}

// TopCard returns the last card placed
func (t *Table) TopCard() (deck.Card, error) {
	return t.discardPile.Last()
}

func (t *Table) DrawPile() *deck.Deck {
	return &t.drawPile
}

func (t *Table) DiscardPile() *deck.Deck {
	return &t.discardPile
}

// AddToDrawPile drains cards onto the back of the draw pile
func (t *Table) AddToDrawPile(cards *deck.Deck) {
	t.drawPile.AddDeck(cards)
}

// Summary describes the table, one line per seat
func (t *Table) Summary() string {
	var b strings.Builder

	top := "none"
	if c, err := t.TopCard(); err == nil {
		top = c.String()
	}
	fmt.Fprintf(&b, "Top card: %s, active suit: %s, draw pile: %d, discard pile: %d\n",
		top, t.activeSuit, t.drawPile.Len(), t.discardPile.Len())

	for i, p := range t.players {
		marker := " "
		if i == t.current {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %s: %d cards %s", marker, p.Name(), p.HandSize(), p.Cards())
		if p.RoundsToSkip() > 0 {
			fmt.Fprintf(&b, " (skips %d)", p.RoundsToSkip())
		}
		b.WriteString("\n")
	}

	return b.String()
}
