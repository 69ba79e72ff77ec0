package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (int, error)
}

// GameManager runs the turns of a human against the computer. The caller owns
// the game; GameManager only mutates it through the rules.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	computer entity.Mark
	player   entity.Mark
}

func NewGameManager(logger *slog.Logger, bot botService, computer, player entity.Mark) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		bot:      bot,
		computer: computer,
		player:   player,
	}
}

// NewGame - starts a game. When the computer starts, its first move is already
// on the board and returned; otherwise the returned cell is engine.NoMove.
func (that *GameManager) NewGame(ctx context.Context, computerFirst bool) (*entity.Game, int, error) {
	game, err := entity.NewGame(pkg.GenerateGameID(), that.computer, that.player)
	if err != nil {
		return nil, engine.NoMove, fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("method", "NewGame", "gameID", game.ID)
	log.Info("game created", "computerFirst", computerFirst)

	if !computerFirst {
		return game, engine.NoMove, nil
	}

	game.Turn = that.computer

	cell, err := that.bot.MakeTurn(ctx, game)
	if err != nil {
		return nil, engine.NoMove, fmt.Errorf("bot failed to make first turn: %w", err)
	}

	return game, cell, nil
}

// MakeTurn - plays the human move, then the computer's reply unless the game
// is over. Returns the computer's cell or engine.NoMove.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, cell int) (int, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := tictactoe.MakeTurn(game, game.Player, cell); err != nil {
		return engine.NoMove, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsFinished() {
		that.logResult(log, game)
		return engine.NoMove, nil
	}

	reply, err := that.bot.MakeTurn(ctx, game)
	if err != nil {
		return engine.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.logResult(log, game)
	}

	return reply, nil
}

func (that *GameManager) logResult(log *slog.Logger, game *entity.Game) {
	if game.IsTie() {
		log.Info("game finished", "result", "tie", "moves", game.Moves)
		return
	}

	log.Info("game finished", "winner", game.Winner.String(), "computerWon", game.Winner == game.Computer, "moves", game.Moves)
}
