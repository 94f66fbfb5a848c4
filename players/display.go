package players

import (
	"fmt"
	"io"

	"github.com/minaorangina/makao/deck"
)

var (
	choosePromptText = "Enter the number of the card to play, or press Enter to take a card: "
	rankPromptText   = "Which rank do you request? (5 to 10): "
	suitPromptText   = "Which suit do you request? (C, D, H or S): "
	retryCardText    = "%q is not a card you can play. Try again.\n"
	retryRankText    = "%q is not a rank you can request. Try again.\n"
	retrySuitText    = "%q is not a suit. Try again.\n"
	giveUpText       = "Out of tries, you take a card.\n"
	takeCardText     = "You take a card.\n"
	noRequestText    = "You have nothing to ask for, so the Jack stays in your hand.\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func buildTableDisplayText(name string, active deck.Card, activeSuit deck.Suit) string {
	text := fmt.Sprintf("\n%s, it's your turn 🃏\nOn the table: %s", name, active)
	if activeSuit != active.Suit {
		text += fmt.Sprintf(" (%s requested)", activeSuit)
	}
	return text + "\n"
}

func buildHandDisplayText(hand deck.Deck) string {
	text := "In your hand:\n"
	for i, card := range hand {
		text += fmt.Sprintf("%d - %s\n", i+1, card)
	}
	return text
}
