package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

var ErrInvalidNotation = errors.New("invalid board notation")

// Board is a fixed 3x3 grid stored row-major. Being an array, it is copied on
// assignment, so positions built from it never share storage.
type Board [BoardSize]Mark

// CellIndex - maps zero-based row and column to a board index.
func CellIndex(row, column int) int {
	return row*BoardSide + column
}

// CellCoordinates - maps a board index back to zero-based row and column.
func CellCoordinates(index int) (int, int) {
	return index / BoardSide, index % BoardSide
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "_"
	}
}

// IsPlayer reports whether the mark belongs to one of the two sides.
func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

// ParseMark - accepts "X" or "O" in any case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
}

// ParseBoard - reads nine cells written as X, O and '_' (or '.'), row by row.
// Whitespace and '/' separators are ignored, so "XX_/OO_/___" is accepted.
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		var mark Mark
		switch r {
		case ' ', '\t', '\n', '/', '|':
			continue
		case 'X', 'x':
			mark = X
		case 'O', 'o':
			mark = O
		case '_', '.', '-':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrInvalidNotation, r)
		}

		if i >= BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidNotation, BoardSize)
		}
		board[i] = mark
		i++
	}

	if i != BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidNotation, i, BoardSize)
	}

	return board, nil
}

// MustParseBoard is ParseBoard for literals known to be valid.
func MustParseBoard(s string) Board {
	board, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return board
}

// String - compact notation accepted by ParseBoard, e.g. "XX_OO____".
func (b Board) String() string {
	var builder strings.Builder
	for _, cell := range b {
		builder.WriteString(cell.String())
	}
	return builder.String()
}

// EmptyCount - number of empty cells.
func (b Board) EmptyCount() int {
	count := 0
	for _, cell := range b {
		if cell == Empty {
			count++
		}
	}
	return count
}

// Count - number of cells holding the given mark.
func (b Board) Count(mark Mark) int {
	count := 0
	for _, cell := range b {
		if cell == mark {
			count++
		}
	}
	return count
}
