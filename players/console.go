package players

import (
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/minaorangina/makao/deck"
	"github.com/minaorangina/makao/game"
	"github.com/pkg/errors"
)

const retries = 3

// LineReader reads one line of input after showing a prompt.
// *readline.Instance is one.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// ConsoleSelector lets a person at the terminal choose the cards for a seat
type ConsoleSelector struct {
	in   LineReader
	out  io.Writer
	auto *game.AutoCardSelector
}

func NewConsoleSelector(in LineReader, out io.Writer, cards *game.CardService) *ConsoleSelector {
	return &ConsoleSelector{in: in, out: out, auto: game.NewAutoCardSelector(cards)}
}

// NewReadlineSelector reads from the terminal. Close the returned
// closer when the game is over.
func NewReadlineSelector(cards *game.CardService) (*ConsoleSelector, io.Closer, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot open the terminal")
	}
	return NewConsoleSelector(rl, rl.Stdout(), cards), rl, nil
}

func (c *ConsoleSelector) ChooseCard(p *game.Player, active deck.Card, activeSuit deck.Suit) (game.SelectedCard, error) {
	SendText(c.out, buildTableDisplayText(p.Name(), active, activeSuit))
	SendText(c.out, buildHandDisplayText(p.Cards()))

	for i := 0; i < retries; i++ {
		line, err := c.readLine(choosePromptText)
		if err != nil {
			return game.SelectedCard{}, err
		}
		if line == "" {
			SendText(c.out, takeCardText)
			return game.SelectedCard{}, game.ErrNoLegalCard
		}

		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > p.HandSize() {
			SendText(c.out, retryCardText, line)
			continue
		}

		card := p.Cards()[idx-1]
		legal, err := game.IsLegalPlay(active, card, activeSuit)
		if err != nil {
			return game.SelectedCard{}, err
		}
		if !legal {
			SendText(c.out, retryCardText, line)
			continue
		}

		req, err := c.chooseRequest(p, card)
		if err != nil {
			return game.SelectedCard{}, err
		}

		picked, err := p.PickCard(idx - 1)
		if err != nil {
			return game.SelectedCard{}, err
		}
		return game.SelectedCard{Card: picked, Request: req}, nil
	}

	SendText(c.out, giveUpText)
	return game.SelectedCard{}, game.ErrNoLegalCard
}

func (c *ConsoleSelector) chooseRequest(p *game.Player, card deck.Card) (game.Request, error) {
	switch card.Rank {
	case deck.Jack:
		for i := 0; i < retries; i++ {
			line, err := c.readLine(rankPromptText)
			if err != nil {
				return game.Request{}, err
			}
			rank, err := deck.ParseRank(line)
			if err == nil && !game.IsAction(rank) {
				return game.Request{Rank: rank}, nil
			}
			SendText(c.out, retryRankText, line)
		}

	case deck.Ace:
		for i := 0; i < retries; i++ {
			line, err := c.readLine(suitPromptText)
			if err != nil {
				return game.Request{}, err
			}
			suit, err := deck.ParseSuit(line)
			if err == nil {
				return game.Request{Suit: suit}, nil
			}
			SendText(c.out, retrySuitText, line)
		}

	default:
		return game.Request{}, nil
	}

	// out of tries: ask for what the hand holds most of
	req, err := c.auto.ChooseRequest(p, card)
	if err != nil {
		SendText(c.out, noRequestText)
		return game.Request{}, game.ErrNoLegalCard
	}
	return req, nil
}

func (c *ConsoleSelector) readLine(prompt string) (string, error) {
	c.in.SetPrompt(prompt)
	line, err := c.in.Readline()
	if err != nil {
		return "", errors.Wrap(err, "cannot read from the console")
	}
	return strings.TrimSpace(line), nil
}
