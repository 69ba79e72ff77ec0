package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const prompt = "\nType the column and the row (1 to 3) separated by a space, or 'exit' to quit: "

type gameManager interface {
	NewGame(ctx context.Context, computerFirst bool) (*entity.Game, int, error)
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (int, error)
}

// Console plays games against the computer over a text stream until the user
// exits, the input ends or the context is canceled.
type Console struct {
	logger   *slog.Logger
	manager  gameManager
	renderer *Renderer

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: NewRenderer(out, color),
		in:       in,
		out:      out,
	}
}

// Run - the first game starts with the computer when computerFirst is set;
// every following game swaps the first mover.
func (that *Console) Run(ctx context.Context, computerFirst bool) error {
	lines := that.readLines(ctx)

	for {
		finished, err := that.playGame(ctx, lines, computerFirst)
		if err != nil {
			return err
		}

		if !finished {
			return nil
		}

		computerFirst = !computerFirst
		that.printf("\nNew game!\n")
	}
}

// playGame - returns false when the user left before the game ended.
func (that *Console) playGame(ctx context.Context, lines <-chan string, computerFirst bool) (bool, error) {
	game, opening, err := that.manager.NewGame(ctx, computerFirst)
	if err != nil {
		return false, fmt.Errorf("failed to start game: %w", err)
	}

	log := that.logger.With("gameID", game.ID)

	if opening != engine.NoMove {
		that.printComputerMove(opening)
	}
	that.printf("%s", that.renderer.Board(game.Board))

	for game.IsOngoing() {
		that.printf("%s", prompt)

		var line string
		select {
		case <-ctx.Done():
			return false, nil
		case l, ok := <-lines:
			if !ok {
				return false, nil
			}
			line = l
		}

		cell, err := ParseMove(line)
		if errors.Is(err, errExitRequested) {
			return false, nil
		}

		if err != nil {
			that.printf("%s\n", that.renderer.Error(err.Error()))
			continue
		}

		reply, err := that.manager.MakeTurn(ctx, game, cell)
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.printf("%s\n", that.renderer.Error("that cell is already occupied, select another"))
			that.printf("%s", that.renderer.Board(game.Board))
			continue
		}

		if err != nil {
			return false, fmt.Errorf("failed to play turn: %w", err)
		}

		log.Debug("turn played", "cell", cell, "reply", reply)

		that.printf("%s", that.renderer.Board(game.Board))
		if reply != engine.NoMove {
			that.printComputerMove(reply)
			that.printf("%s", that.renderer.Board(game.Board))
		}
	}

	that.printResult(game)

	return true, nil
}

func (that *Console) printComputerMove(cell int) {
	row, column := entity.CellCoordinates(cell)
	that.printf("\nComputer move: cell %d (column %d, row %d)\n", cell, column+1, row+1)
}

func (that *Console) printResult(game *entity.Game) {
	switch {
	case game.IsTie():
		that.printf("\nGame over: it's a tie!\n")
	case game.Winner == game.Computer:
		that.printf("\nGame over: the computer wins!\n")
	default:
		that.printf("\nGame over: you win!\n")
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// readLines - feeds input lines to the game loop so that a pending read does
// not block cancellation.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}
