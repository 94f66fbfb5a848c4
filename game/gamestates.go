package game

// GamePlayState is where a game is in its life
type GamePlayState int

const (
	gameNotStarted GamePlayState = iota
	gameStarted
	gameOver
)

func (s GamePlayState) String() string {
	switch s {
	case gameNotStarted:
		return "not started"
	case gameStarted:
		return "started"
	case gameOver:
		return "over"
	}
	return "unknown"
}
