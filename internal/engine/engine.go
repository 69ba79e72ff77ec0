package engine

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Engine answers "what does the computer play on this board". It never keeps
// the caller's board and always returns a fresh one.
type Engine struct {
	logger   *slog.Logger
	searcher *Searcher
}

func New(logger *slog.Logger, params SearchParams) *Engine {
	return &Engine{
		logger:   logger.With("component", "engine"),
		searcher: NewSearcher(params),
	}
}

// Analyze - searches the board with the computer to move without playing.
func (that *Engine) Analyze(board entity.Board, computer, player entity.Mark) (SearchResult, error) {
	if !computer.IsPlayer() || !player.IsPlayer() || computer == player {
		return SearchResult{Move: NoMove}, fmt.Errorf("%w: computer %s, player %s", apperror.ErrInvalidMark, computer, player)
	}

	if err := tictactoe.Validate(board); err != nil {
		return SearchResult{Move: NoMove}, err
	}

	root := tictactoe.NewPosition(board, computer)
	if status := root.Status(); status.IsTerminal() {
		return SearchResult{Move: NoMove, Value: Evaluate(root, computer)},
			fmt.Errorf("%w: game is over (%s)", apperror.ErrNoLegalMove, status)
	}

	result := that.searcher.BestMove(root, computer)

	that.logger.Debug("search finished",
		"board", board.String(),
		"move", result.Move,
		"value", result.Value,
		"nodes", result.Nodes,
		"pruning", that.searcher.Params().Pruning,
	)

	return result, nil
}

// ChooseComputerMove - picks the computer's move and returns the board after it.
func (that *Engine) ChooseComputerMove(board entity.Board, computer, player entity.Mark) (entity.Board, int, error) {
	result, err := that.Analyze(board, computer, player)
	if err != nil {
		return board, NoMove, err
	}

	next, err := tictactoe.Apply(board, result.Move, computer)
	if err != nil {
		return board, NoMove, fmt.Errorf("failed to apply computer move: %w", err)
	}

	return next, result.Move, nil
}

func (that *Engine) Params() SearchParams {
	return that.searcher.Params()
}
