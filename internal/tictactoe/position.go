package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Position is a board plus the mark to move. It has no exported fields and
// only value receivers; Play always returns a new Position.
type Position struct {
	board  entity.Board
	toMove entity.Mark
}

func NewPosition(board entity.Board, toMove entity.Mark) Position {
	return Position{board: board, toMove: toMove}
}

func (p Position) Board() entity.Board {
	return p.board
}

func (p Position) ToMove() entity.Mark {
	return p.toMove
}

func (p Position) LegalMoves() []int {
	return LegalMoves(p.board)
}

func (p Position) Status() Status {
	return GetStatus(p.board)
}

// Play - child position after the side to move takes the given cell.
func (p Position) Play(move int) (Position, error) {
	board, err := Apply(p.board, move, p.toMove)
	if err != nil {
		return p, err
	}

	return Position{board: board, toMove: ToggleMark(p.toMove)}, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%s %s", p.board, p.toMove)
}
