package game

import "github.com/pkg/errors"

var (
	ErrNoLegalCard        = errors.New("player has no card to play")
	ErrNoPlayableCard     = errors.New("no regular cards in the deck")
	ErrDuplicateCard      = errors.New("card validated against itself")
	ErrTableFull          = errors.New("maximum of 4 players allowed")
	ErrInvalidSetup       = errors.New("invalid game setup")
	ErrDeckNotPrepared    = errors.Wrap(ErrInvalidSetup, "prepare the card deck before the game starts")
	ErrTooFewPlayers      = errors.Wrap(ErrInvalidSetup, "minimum of 2 players required")
	ErrEmptyDiscard       = errors.New("played cards pile is empty, cannot rebuild the deck")
	ErrNoActiveSuit       = errors.New("no played cards on the table yet")
	ErrNoRequestNeeded    = errors.New("card does not take a request")
	ErrMissingRequest     = errors.New("card needs a request")
	ErrIllegalPlay        = errors.New("illegal card")
	ErrGameNotStarted     = errors.New("game has not started")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameOver           = errors.New("game is already over")
)
