package engine

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	WinScore  = 100
	LossScore = -100
	DrawScore = 0
)

// Evaluate - static score of a position from the computer's side. A computer
// win earns a bonus per empty cell so that faster wins score higher; every
// loss scores the same.
func Evaluate(pos tictactoe.Position, computer entity.Mark) int {
	winner, ok := tictactoe.Winner(pos.Board())
	switch {
	case !ok:
		return DrawScore
	case winner == computer:
		return WinScore + pos.Board().EmptyCount()
	default:
		return LossScore
	}
}
