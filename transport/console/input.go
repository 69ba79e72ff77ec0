package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const exitCommand = "exit"

var (
	ErrInputFormat      = errors.New("type the column and the row as two numbers separated by a space")
	ErrColumnOutOfRange = errors.New("column must be between 1 and 3")
	ErrRowOutOfRange    = errors.New("row must be between 1 and 3")
	ErrCellOutOfRange   = errors.New("column and row must be between 1 and 3")
	errExitRequested    = errors.New("exit requested")
)

// ParseMove - reads "column row", both 1-based, and returns the board index.
func ParseMove(input string) (int, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, exitCommand) {
		return 0, errExitRequested
	}

	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, ErrInputFormat
	}

	column, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputFormat, fields[0])
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputFormat, fields[1])
	}

	columnOK := column >= 1 && column <= entity.BoardSide
	rowOK := row >= 1 && row <= entity.BoardSide

	switch {
	case !columnOK && !rowOK:
		return 0, ErrCellOutOfRange
	case !columnOK:
		return 0, ErrColumnOutOfRange
	case !rowOK:
		return 0, ErrRowOutOfRange
	}

	return entity.CellIndex(row-1, column-1), nil
}
