package game

import (
	"github.com/minaorangina/makao/deck"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	kingPenalty = 5
	jackPenalty = 1
)

// Request is what a Jack or an Ace demands from the following players:
// a rank for a Jack, a suit for an Ace. The zero value requests nothing.
type Request struct {
	Rank deck.Rank
	Suit deck.Suit
}

func (r Request) IsZero() bool {
	return r == Request{}
}

func (r Request) String() string {
	switch {
	case r.Rank != deck.NullRank:
		return r.Rank.String()
	case r.Suit != deck.NullSuit:
		return r.Suit.String()
	}
	return "none"
}

// CardActionResolver applies the effect of a card that has just been placed.
// Stacked attacks are resolved in a loop that carries the pending penalty.
type CardActionResolver struct {
	table   *Table
	cards   *CardService
	logger  logrus.FieldLogger
	emptied []*Player
}

// NewCardActionResolver constructs a resolver for the table. cards is used
// to recycle the discard pile when a penalty empties the draw pile; it may be nil.
func NewCardActionResolver(table *Table, cards *CardService) *CardActionResolver {
	return &CardActionResolver{table: table, cards: cards}
}

// SetLogger attaches a logger. A nil logger silences the resolver.
func (r *CardActionResolver) SetLogger(l logrus.FieldLogger) {
	r.logger = l
}

// AfterCard passes the turn on from the player who placed card, then
// applies its effect until no player is left to defend.
func (r *CardActionResolver) AfterCard(card deck.Card, req Request) error {
	switch {
	case card.Rank == deck.Jack && !req.Rank.Valid():
		return errors.Wrapf(ErrMissingRequest, "%s requests a rank", card)
	case card.Rank == deck.Ace && !req.Suit.Valid():
		return errors.Wrapf(ErrMissingRequest, "%s requests a suit", card)
	}

	r.emptied = nil
	r.table.FinishRound()

	switch card.Rank {
	case deck.Two:
		r.takingCards(deck.Two, 2)
	case deck.Three:
		r.takingCards(deck.Three, 3)
	case deck.Four:
		r.skippingRounds()
	case deck.Jack:
		r.requestingRank(req.Rank)
	case deck.King:
		r.afterKing(card.Suit)
	case deck.Ace:
		r.log(nil).Infof("Suit changed to %s", req.Suit)
		r.table.SetActiveSuit(req.Suit)
	}

	return nil
}

// Emptied lists the players whose last card went during the last
// AfterCard, in the order they ran out.
func (r *CardActionResolver) Emptied() []*Player {
	return r.emptied
}

func (r *CardActionResolver) place(p *Player, cards ...deck.Card) {
	r.table.PlaceCards(cards)
	if p.HandSize() == 0 {
		r.emptied = append(r.emptied, p)
	}
}

// takingCards lets each player in turn defend with a card of the same rank.
// The first player who cannot takes all the cards stacked so far.
func (r *CardActionResolver) takingCards(rank deck.Rank, penalty int) {
	pending := 0
	for {
		pending += penalty
		p := r.table.CurrentPlayer()

		card, err := p.PickCardByRank(rank)
		if err != nil {
			r.penalise(p, pending)
			r.table.FinishRound()
			return
		}

		r.log(p).Infof("Defends with %s", card)
		r.place(p, card)
		r.table.FinishRound()
	}
}

// skippingRounds works like takingCards with Fours. The player who cannot
// defend loses one round less than stacked, as passing them over is the first.
func (r *CardActionResolver) skippingRounds() {
	pending := 0
	for {
		pending++
		p := r.table.CurrentPlayer()

		card, err := p.PickCardByRank(deck.Four)
		if err != nil {
			p.AddRoundsToSkip(pending - 1)
			r.log(p).Infof("Will skip %d rounds", pending-1)
			r.table.FinishRound()
			return
		}

		r.log(p).Infof("Defends with %s", card)
		r.place(p, card)
		r.table.FinishRound()
	}
}

// requestingRank visits every seat once, starting after the Jack player.
func (r *CardActionResolver) requestingRank(rank deck.Rank) {
	r.log(nil).Infof("Requested rank: %s", rank)

	for i := 0; i < r.table.PlayerCount(); i++ {
		p := r.table.CurrentPlayer()

		cards, err := p.PickCardsByRank(rank)
		if err != nil {
			r.penalise(p, jackPenalty)
		} else {
			r.log(p).Infof("Gives up %s", cards)
			r.place(p, cards...)
		}

		r.table.FinishRound()
	}
}

// afterKing handles the King of Hearts, which attacks the next player, and
// the King of Spades, which attacks the previous one. Each is defended with
// the other and the penalty grows by five per King.
func (r *CardActionResolver) afterKing(suit deck.Suit) {
	pending := 0
	for {
		pending += kingPenalty

		switch suit {
		case deck.Hearts:
			p := r.table.CurrentPlayer()
			card, err := p.PickCardByRankAndSuit(deck.King, deck.Spades)
			if err != nil {
				r.penalise(p, pending)
				r.table.FinishRound()
				return
			}

			r.log(p).Infof("Defends with %s", card)
			r.place(p, card)
			r.table.FinishRound()
			suit = deck.Spades

		case deck.Spades:
			r.table.BackRound()
			p := r.table.PreviousPlayer()
			card, err := p.PickCardByRankAndSuit(deck.King, deck.Hearts)
			if err != nil {
				r.table.BackRound()
				r.penalise(r.table.CurrentPlayer(), pending)
				r.table.FinishRound()
				return
			}

			r.log(p).Infof("Defends with %s", card)
			r.place(p, card)
			suit = deck.Hearts

		default:
			return
		}
	}
}

func (r *CardActionResolver) penalise(p *Player, count int) {
	taken, err := takeCards(r.table, r.cards, p, count)
	if err != nil {
		r.log(p).WithError(err).Warnf("Takes only %d of %d cards", taken, count)
		return
	}
	r.log(p).Infof("Takes %d cards, now holds %s", taken, p.Cards())
}

func (r *CardActionResolver) log(p *Player) logrus.FieldLogger {
	return playerLogger(r.logger, p)
}

// takeCards deals count cards to p from the draw pile, rebuilding the
// pile from the played cards when it runs out. When both piles are spent
// p receives fewer cards and the rebuild error is returned.
func takeCards(t *Table, cards *CardService, p *Player, count int) (int, error) {
	taken := 0
	for taken < count {
		n, err := p.TakeCards(t.DrawPile(), count-taken)
		taken += n
		if err == nil {
			break
		}

		if cards == nil {
			return taken, err
		}
		if err := cards.RebuildDeckFromPlayedCards(t.DrawPile(), t.DiscardPile()); err != nil {
			return taken, err
		}
	}
	return taken, nil
}

// playerLogger never returns nil; without a logger output is discarded.
func playerLogger(l logrus.FieldLogger, p *Player) logrus.FieldLogger {
	if l == nil {
		return discard
	}
	if p == nil {
		return l
	}
	return l.WithField("player", p.Name())
}
