package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn - applies a move to a running game and updates its status.
func MakeTurn(gameInstance *entity.Game, player entity.Mark, cell int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	board, err := Apply(gameInstance.Board, cell, player)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = board
	gameInstance.Moves++
	updateGameStatus(gameInstance, player)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Mark) {
	switch status := GetStatus(gameInstance.Board); status.Outcome {
	case Win:
		gameInstance.Winner = status.Winner
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.Empty
	case Tie:
		gameInstance.Winner = entity.Empty
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = entity.Empty
	default:
		gameInstance.Turn = ToggleMark(player)
	}
}
