package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the state of a single match held by the game loop. The engine never
// keeps a reference to it; it only receives copies of Board.
type Game struct {
	ID       string
	Board    Board
	Turn     Mark
	Winner   Mark
	Status   string
	Computer Mark
	Player   Mark
	Moves    int
}

// NewGame - creates an empty game with the player to move. The game loop
// hands the first turn to the computer by setting Turn.
func NewGame(id string, computer, player Mark) (*Game, error) {
	if !computer.IsPlayer() || !player.IsPlayer() || computer == player {
		return nil, fmt.Errorf("%w: computer %s, player %s", apperror.ErrInvalidMark, computer, player)
	}

	return &Game{
		ID:       id,
		Turn:     player,
		Status:   StatusOngoing,
		Computer: computer,
		Player:   player,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsTie reports a finished game without a winner.
func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == Empty
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.Turn == that.Computer
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
