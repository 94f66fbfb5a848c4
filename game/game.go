package game

import (
	"io"

	"github.com/minaorangina/makao/deck"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const errNeedsHelp = "the game needs help"

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Game runs a game of Makao: it deals, then plays one turn per PlayTurn
// call until a player has no cards left.
type Game struct {
	id       string
	table    *Table
	cards    *CardService
	selector CardSelector
	resolver *CardActionResolver
	logger   logrus.FieldLogger
	state    GamePlayState
	winner   *Player
}

// GameOpts configures a Game. Unset fields get defaults: a new ID, an
// empty table, a randomly shuffled deck and automatic players.
type GameOpts struct {
	ID       string
	Table    *Table
	Cards    *CardService
	Selector CardSelector
	Resolver *CardActionResolver
}

// NewGame constructs a game that has not started yet
func NewGame(opts GameOpts) *Game {
	g := &Game{
		id:       opts.ID,
		table:    opts.Table,
		cards:    opts.Cards,
		selector: opts.Selector,
		resolver: opts.Resolver,
	}

	if g.id == "" {
		g.id = NewID()
	}
	if g.table == nil {
		g.table = NewTable(nil, nil)
	}
	if g.cards == nil {
		g.cards = NewCardService(NewRandShuffler(0))
	}
	if g.selector == nil {
		g.selector = NewAutoCardSelector(g.cards)
	}
	if g.resolver == nil {
		g.resolver = NewCardActionResolver(g.table, g.cards)
	}

	return g
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Table() *Table {
	return g.table
}

func (g *Game) IsStarted() bool {
	return g.state != gameNotStarted
}

func (g *Game) GameOver() bool {
	return g.state == gameOver
}

// Winner is the first player to run out of cards, or nil
func (g *Game) Winner() *Player {
	return g.winner
}

// SetLogger attaches a logger to the game and its resolver.
// A nil logger silences both.
func (g *Game) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		g.logger = nil
		g.resolver.SetLogger(nil)
		return
	}

	g.logger = l.WithField("game_id", g.id)
	g.resolver.SetLogger(g.logger)
}

func (g *Game) log(p *Player) logrus.FieldLogger {
	return playerLogger(g.logger, p)
}

// AddPlayers seats players in the given order
func (g *Game) AddPlayers(players ...*Player) error {
	if g.IsStarted() {
		return ErrGameAlreadyStarted
	}

	for _, p := range players {
		if err := g.table.AddPlayer(p); err != nil {
			return errors.Wrapf(err, "cannot seat %s", p)
		}
		g.log(p).Info("Joins the game")
	}
	return nil
}

// PrepareDeck shuffles a full deck onto the draw pile
func (g *Game) PrepareDeck() error {
	if g.IsStarted() {
		return ErrGameAlreadyStarted
	}

	g.log(nil).Debug("Shuffling a new deck")
	shuffled := g.cards.Shuffle(g.cards.CreateDeck())
	g.table.AddToDrawPile(&shuffled)
	return nil
}

// Start places the opening card and deals to every player
func (g *Game) Start() error {
	if g.IsStarted() {
		return ErrGameAlreadyStarted
	}
	if g.table.DrawPile().IsEmpty() {
		return ErrDeckNotPrepared
	}
	if g.table.PlayerCount() < minPlayers {
		return ErrTooFewPlayers
	}

	card, err := g.cards.PickFirstNoActionCard(g.table.DrawPile())
	if err != nil {
		return errors.Wrap(err, errNeedsHelp)
	}
	g.log(nil).Infof("Opening card is %s", card)
	g.table.PlaceCard(card)

	for _, p := range g.table.Players() {
		if _, err := p.TakeCards(g.table.DrawPile(), startingHandSize); err != nil {
			return errors.Wrap(err, errNeedsHelp)
		}
		g.log(p).Debugf("Dealt %s", p.Cards())
	}

	g.state = gameStarted
	return nil
}

// PlayTurn plays the current player's turn
func (g *Game) PlayTurn() error {
	switch g.state {
	case gameNotStarted:
		return ErrGameNotStarted
	case gameOver:
		return ErrGameOver
	}

	if g.table.DrawPile().IsEmpty() {
		g.log(nil).Debug("Rebuilding the deck from played cards")
		if err := g.cards.RebuildDeckFromPlayedCards(g.table.DrawPile(), g.table.DiscardPile()); err != nil {
			return errors.Wrap(err, errNeedsHelp)
		}
	}

	p := g.table.CurrentPlayer()
	sizes := g.handSizes()
	if !p.CanPlayRound() {
		p.SkipRound()
		g.log(p).Info("Skips a round")
		g.table.FinishRound()
		return nil
	}

	if err := g.playCard(p); err != nil {
		return err
	}

	for i, seat := range g.table.Players() {
		if seat.HandSize() == 1 && sizes[i] != 1 {
			g.log(seat).Info(seat.SayMakao())
		}
	}
	g.checkWinner(p)

	return nil
}

func (g *Game) playCard(p *Player) error {
	top, err := g.table.TopCard()
	if err != nil {
		return errors.Wrap(err, errNeedsHelp)
	}
	suit, err := g.table.ActiveSuit()
	if err != nil {
		return errors.Wrap(err, errNeedsHelp)
	}

	selected, err := g.selector.ChooseCard(p, top, suit)
	if errors.Is(err, ErrNoLegalCard) {
		if _, err := takeCards(g.table, g.cards, p, 1); err != nil {
			g.log(p).WithError(err).Warn("No card left to take")
		} else {
			g.log(p).Info("Takes a card")
		}
		g.table.FinishRound()
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "%s could not choose a card", p)
	}

	if err := g.checkSelection(top, suit, selected); err != nil {
		p.AddCards(selected.Card)
		return err
	}

	if selected.Request.IsZero() {
		g.log(p).Infof("Plays %s", selected.Card)
	} else {
		g.log(p).Infof("Plays %s, requests %s", selected.Card, selected.Request)
	}
	g.table.PlaceCard(selected.Card)
	return g.resolver.AfterCard(selected.Card, selected.Request)
}

func (g *Game) checkSelection(top deck.Card, suit deck.Suit, selected SelectedCard) error {
	legal, err := IsLegalPlay(top, selected.Card, suit)
	if err != nil {
		return err
	}
	if !legal {
		return errors.Wrapf(ErrIllegalPlay, "%s on %s with %s active", selected.Card, top, suit)
	}

	switch selected.Card.Rank {
	case deck.Jack:
		if !selected.Request.Rank.Valid() {
			return errors.Wrapf(ErrMissingRequest, "%s requests a rank", selected.Card)
		}
	case deck.Ace:
		if !selected.Request.Suit.Valid() {
			return errors.Wrapf(ErrMissingRequest, "%s requests a suit", selected.Card)
		}
	}
	return nil
}

func (g *Game) handSizes() []int {
	sizes := make([]int, 0, g.table.PlayerCount())
	for _, p := range g.table.Players() {
		sizes = append(sizes, p.HandSize())
	}
	return sizes
}

// checkWinner finds the first player to run out of cards this turn: the
// one who played, then whoever the resolver emptied first, then by seat.
func (g *Game) checkWinner(played *Player) {
	candidates := []*Player{played}
	candidates = append(candidates, g.resolver.Emptied()...)
	candidates = append(candidates, g.table.Players()...)

	for _, p := range candidates {
		if p.HandSize() == 0 {
			g.winner = p
			g.state = gameOver
			g.log(p).Info("Wins the game")
			return
		}
	}
}
