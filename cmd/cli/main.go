package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minaorangina/makao/config"
	"github.com/minaorangina/makao/game"
	"github.com/minaorangina/makao/players"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(cfg.Level())

	cards := game.NewCardService(game.NewRandShuffler(cfg.Seed))
	table := game.NewTable(nil, nil)
	router := &game.SelectorRouter{
		Default:  game.NewAutoCardSelector(cards),
		ByPlayer: map[string]game.CardSelector{},
	}

	if cfg.HumanPlayer != "" {
		console, closer, err := players.NewReadlineSelector(cards)
		if err != nil {
			return err
		}
		defer closer.Close()
		router.ByPlayer[cfg.HumanPlayer] = console
	}

	g := game.NewGame(game.GameOpts{
		Table:    table,
		Cards:    cards,
		Selector: router,
		Resolver: game.NewCardActionResolver(table, cards),
	})
	g.SetLogger(logger)

	for _, name := range cfg.Players {
		if err := g.AddPlayers(game.NewPlayer(name)); err != nil {
			return err
		}
	}
	if err := g.PrepareDeck(); err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}

	for turn := 0; turn < cfg.MaxTurns && !g.GameOver(); turn++ {
		if err := g.PlayTurn(); err != nil {
			return err
		}
		time.Sleep(cfg.TurnDelay)
	}

	return report(os.Stdout, g)
}

func report(w io.Writer, g *game.Game) error {
	winner := g.Winner()
	if winner == nil {
		fmt.Fprintf(w, "\nNo winner yet, the game was stopped.\n")
	} else {
		fmt.Fprintf(w, "\nWinner is %s\n", winner)
	}

	_, err := fmt.Fprintf(w, "\n%s", g.Table().Summary())
	return err
}
