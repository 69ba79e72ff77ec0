package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (int, error)
}

type moveEngine interface {
	Analyze(board entity.Board, computer, player entity.Mark) (engine.SearchResult, error)
	Params() engine.SearchParams
}

type solutionRepo interface {
	Save(ctx context.Context, key repository.SolutionKey, result engine.SearchResult) error
	Get(ctx context.Context, key repository.SolutionKey) (engine.SearchResult, error)
}

type botService struct {
	logger *slog.Logger

	engine    moveEngine
	solutions solutionRepo
}

// NewBotService - solutions may be nil, then every turn is searched.
func NewBotService(logger *slog.Logger, moveEngine moveEngine, solutions solutionRepo) BotService {
	return &botService{
		logger:    logger.With("component", "bot"),
		engine:    moveEngine,
		solutions: solutions,
	}
}

// MakeTurn - plays the computer's move on the game and returns the cell.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (int, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return engine.NoMove, err
	}

	if game.Turn != game.Computer {
		return engine.NoMove, apperror.ErrNotYourTurn
	}

	key := repository.SolutionKey{
		Board:    game.Board,
		ToMove:   game.Computer,
		Computer: game.Computer,
		Depth:    that.engine.Params().Depth,
	}

	if result, ok := that.cachedSolution(ctx, log, key); ok {
		if err := tictactoe.MakeTurn(game, game.Computer, result.Move); err == nil {
			log.Debug("bot played cached move", "cell", result.Move, "value", result.Value)
			return result.Move, nil
		}

		log.Warn("cached solution is not playable", "key", key.String(), "cell", result.Move)
	}

	result, err := that.engine.Analyze(game.Board, game.Computer, game.Player)
	if err != nil {
		return engine.NoMove, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.Computer, result.Move); err != nil {
		return engine.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.saveSolution(ctx, log, key, result)

	log.Debug("bot played", "cell", result.Move, "value", result.Value, "nodes", result.Nodes)

	return result.Move, nil
}

func (that *botService) cachedSolution(ctx context.Context, log *slog.Logger, key repository.SolutionKey) (engine.SearchResult, bool) {
	if that.solutions == nil {
		return engine.SearchResult{}, false
	}

	result, err := that.solutions.Get(ctx, key)
	if errors.Is(err, repository.ErrSolutionNotFound) {
		return engine.SearchResult{}, false
	}

	if err != nil {
		log.Error("failed to read cached solution", "error", err)
		return engine.SearchResult{}, false
	}

	return result, true
}

func (that *botService) saveSolution(ctx context.Context, log *slog.Logger, key repository.SolutionKey, result engine.SearchResult) {
	if that.solutions == nil {
		return
	}

	if err := that.solutions.Save(ctx, key, result); err != nil {
		log.Error("failed to cache solution", "error", err)
	}
}
