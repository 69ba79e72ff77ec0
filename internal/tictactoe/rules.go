package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// WinCombos - rows, columns and diagonals, in the order they are scanned.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// LegalMoves - indices of all empty cells in ascending order.
func LegalMoves(board entity.Board) []int {
	moves := make([]int, 0, entity.BoardSize)
	for i, cell := range board {
		if cell == entity.Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Apply - returns a copy of board with mark placed on move. The input board is
// never modified.
func Apply(board entity.Board, move int, mark entity.Mark) (entity.Board, error) {
	if move < 0 || move >= entity.BoardSize {
		return board, fmt.Errorf("%w: cell %d is out of range", apperror.ErrIllegalMove, move)
	}

	if !mark.IsPlayer() {
		return board, fmt.Errorf("%w: cannot place %s", apperror.ErrIllegalMove, mark)
	}

	if board[move] != entity.Empty {
		return board, fmt.Errorf("%w: cell %d is already occupied", apperror.ErrIllegalMove, move)
	}

	board[move] = mark

	return board, nil
}

// Winner - the mark owning the first complete line, if any.
func Winner(board entity.Board) (entity.Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.Empty && a == b && b == c {
			return a, true
		}
	}

	return entity.Empty, false
}

// IsTie - the board is full and nobody completed a line.
func IsTie(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return false
	}

	return board.EmptyCount() == 0
}

// GetStatus - winner is checked before tie.
func GetStatus(board entity.Board) Status {
	if winner, ok := Winner(board); ok {
		return Status{Outcome: Win, Winner: winner}
	}

	if board.EmptyCount() == 0 {
		return Status{Outcome: Tie}
	}

	return Status{Outcome: Ongoing}
}

// Validate - rejects boards where both marks complete a line, which cannot
// happen under alternating play.
func Validate(board entity.Board) error {
	var seen entity.Mark

	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a == entity.Empty || a != b || b != c {
			continue
		}

		if seen != entity.Empty && seen != a {
			return fmt.Errorf("%w: both X and O complete a line in %s", apperror.ErrInvalidBoard, board)
		}
		seen = a
	}

	return nil
}

func ToggleMark(currentMark entity.Mark) entity.Mark {
	if currentMark == entity.X {
		return entity.O
	}
	return entity.X
}
