package game

import "github.com/minaorangina/makao/deck"

const (
	minPlayers       = 2
	maxPlayers       = 4
	startingHandSize = 5
)

var actionRanks = map[deck.Rank]bool{
	deck.Two:   true,
	deck.Three: true,
	deck.Four:  true,
	deck.Jack:  true,
	deck.Queen: true,
	deck.King:  true,
	deck.Ace:   true,
}

// IsAction reports whether playing the rank has an effect beyond the play itself.
// Queen counts as an action rank even though it only acts as a wild card.
func IsAction(r deck.Rank) bool {
	return actionRanks[r]
}

// IsWild reports whether the rank matches, and is matched by, anything.
func IsWild(r deck.Rank) bool {
	return r == deck.Queen
}

// RequestNeeded reports whether the rank comes with a request:
// a rank for a Jack, a suit for an Ace.
func RequestNeeded(r deck.Rank) bool {
	return r == deck.Jack || r == deck.Ace
}

// IsLegalPlay reports whether candidate may be played on active while
// activeSuit is the suit in force.
func IsLegalPlay(active, candidate deck.Card, activeSuit deck.Suit) (bool, error) {
	if active == candidate {
		return false, ErrDuplicateCard
	}

	// an Ace changed the suit
	if active.Suit != activeSuit {
		return candidate.Suit == activeSuit, nil
	}

	return active.Suit == candidate.Suit ||
		active.Rank == candidate.Rank ||
		IsWild(candidate.Rank) ||
		IsWild(active.Rank), nil
}
