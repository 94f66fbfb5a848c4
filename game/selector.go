package game

import (
	"github.com/minaorangina/makao/deck"
	"github.com/pkg/errors"
)

// SelectedCard is a card taken from a player's hand to be played,
// with the request it makes.
type SelectedCard struct {
	Card    deck.Card
	Request Request
}

// CardSelector chooses the card a player plays. The chosen card is removed
// from the player's hand. ErrNoLegalCard means the player has to draw.
type CardSelector interface {
	ChooseCard(p *Player, active deck.Card, activeSuit deck.Suit) (SelectedCard, error)
}

// AutoCardSelector plays the first legal card in the hand
type AutoCardSelector struct {
	cards *CardService
}

func NewAutoCardSelector(cards *CardService) *AutoCardSelector {
	return &AutoCardSelector{cards: cards}
}

func (s *AutoCardSelector) ChooseCard(p *Player, active deck.Card, activeSuit deck.Suit) (SelectedCard, error) {
	for i, card := range p.Cards() {
		legal, err := IsLegalPlay(active, card, activeSuit)
		if err != nil {
			return SelectedCard{}, err
		}
		if !legal {
			continue
		}

		var req Request
		if RequestNeeded(card.Rank) {
			req, err = s.ChooseRequest(p, card)
			if err != nil {
				// a Jack is pointless without a regular card to ask for
				continue
			}
		}

		picked, err := p.PickCard(i)
		if err != nil {
			return SelectedCard{}, err
		}
		return SelectedCard{Card: picked, Request: req}, nil
	}

	return SelectedCard{}, ErrNoLegalCard
}

// ChooseRequest decides what card asks for, based on the rest of the hand.
func (s *AutoCardSelector) ChooseRequest(p *Player, card deck.Card) (Request, error) {
	switch card.Rank {
	case deck.Jack:
		rank, err := s.cards.MostOccurringNoActionRank(p.Cards())
		if err != nil {
			return Request{}, err
		}
		return Request{Rank: rank}, nil

	case deck.Ace:
		suit, err := s.cards.MostOccurringSuit(p.Cards())
		if err != nil {
			return Request{}, err
		}
		return Request{Suit: suit}, nil
	}

	return Request{}, errors.Wrapf(ErrNoRequestNeeded, "%s", card)
}

// SelectorRouter gives each player their own selector, by name,
// and falls back to Default.
type SelectorRouter struct {
	Default  CardSelector
	ByPlayer map[string]CardSelector
}

func (r *SelectorRouter) ChooseCard(p *Player, active deck.Card, activeSuit deck.Suit) (SelectedCard, error) {
	if s, ok := r.ByPlayer[p.Name()]; ok {
		return s.ChooseCard(p, active, activeSuit)
	}
	return r.Default.ChooseCard(p, active, activeSuit)
}
