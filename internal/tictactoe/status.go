package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Outcome uint8

const (
	Ongoing Outcome = iota
	Win
	Tie
)

// Status of a board. Winner is only meaningful when Outcome is Win.
type Status struct {
	Outcome Outcome
	Winner  entity.Mark
}

func (s Status) IsTerminal() bool {
	return s.Outcome != Ongoing
}

func (s Status) String() string {
	switch s.Outcome {
	case Win:
		return fmt.Sprintf("%s wins", s.Winner)
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}
