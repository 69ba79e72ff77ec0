package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	computer, err := entity.ParseMark(conf.Game.ComputerMark)
	if err != nil {
		return fmt.Errorf("invalid computer mark: %w", err)
	}

	player, err := entity.ParseMark(conf.Game.PlayerMark)
	if err != nil {
		return fmt.Errorf("invalid player mark: %w", err)
	}

	var solutions repository.SolutionRepository
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		solutions = repository.NewSolutionRepository(redisStorage, conf.Redis.Expiration)
		log.Info("Solution cache enabled", "addr", redisAddrString)
	}

	moveEngine := engine.New(logger, engine.SearchParams{
		Pruning: conf.Search.Pruning,
		Depth:   conf.Search.Depth,
	})

	bot := service.NewBotService(logger, moveEngine, solutions)
	manager := usecase.NewGameManager(logger, bot, computer, player)

	log.Info("Starting console game", "computer", computer, "player", player, "pruning", conf.Search.Pruning)

	if err = console.New(logger, manager, os.Stdin, os.Stdout, conf.Game.Color).Run(ctx, conf.Game.ComputerFirst); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}
