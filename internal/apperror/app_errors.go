package apperror

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoLegalMove       = errors.New("no legal move available")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrUnknownGameStatus = errors.New("unknown game status")
)
