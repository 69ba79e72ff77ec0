package arena

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var marks = []entity.Mark{entity.X, entity.O}

// Report - totals of one arena run.
type Report struct {
	// Positions is the number of (position, computer mark) pairs searched.
	Positions    int
	Mismatches   int
	Games        int
	Losses       int
	PrunedNodes  int
	MinimaxNodes int
}

// OK reports a run where both searches agreed everywhere and no game was lost.
func (r Report) OK() bool {
	return r.Mismatches == 0 && r.Losses == 0
}

func (r *Report) add(other Report) {
	r.Positions += other.Positions
	r.Mismatches += other.Mismatches
	r.Games += other.Games
	r.Losses += other.Losses
	r.PrunedNodes += other.PrunedNodes
	r.MinimaxNodes += other.MinimaxNodes
}

// Arena checks the engine against itself over the whole game tree.
type Arena struct {
	logger      *slog.Logger
	concurrency int

	pruned  *engine.Searcher
	minimax *engine.Searcher
}

func New(logger *slog.Logger, concurrency int) *Arena {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Arena{
		logger:      logger.With("component", "arena"),
		concurrency: concurrency,
		pruned:      engine.NewSearcher(engine.SearchParams{Pruning: true}),
		minimax:     engine.NewSearcher(engine.SearchParams{Pruning: false}),
	}
}

// Run - compares pruned and plain search on every reachable position, one
// opening branch per job, and plays the engine against every reply sequence.
func (that *Arena) Run(ctx context.Context) (Report, error) {
	log := that.logger.With("method", "Run")
	log.Info("arena started", "concurrency", that.concurrency)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(that.concurrency)

	var (
		mu     sync.Mutex
		report Report
	)
	collect := func(part Report) {
		mu.Lock()
		defer mu.Unlock()
		report.add(part)
	}

	for _, first := range marks {
		root := tictactoe.NewPosition(entity.Board{}, first)

		g.Go(func() error {
			collect(that.verifyPosition(root))
			return nil
		})

		for _, move := range root.LegalMoves() {
			branch, err := root.Play(move)
			if err != nil {
				return Report{}, fmt.Errorf("failed to open branch %d: %w", move, err)
			}

			g.Go(func() error {
				part, err := that.verifyBranch(ctx, branch)
				if err != nil {
					return err
				}
				collect(part)
				return nil
			})
		}
	}

	for _, computer := range marks {
		for _, first := range marks {
			computer, first := computer, first
			g.Go(func() error {
				part, err := that.playAll(ctx, tictactoe.NewPosition(entity.Board{}, first), computer)
				if err != nil {
					return err
				}
				collect(part)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("arena interrupted: %w", err)
	}

	log.Info("arena finished",
		"positions", report.Positions,
		"mismatches", report.Mismatches,
		"games", report.Games,
		"losses", report.Losses,
		"prunedNodes", report.PrunedNodes,
		"minimaxNodes", report.MinimaxNodes,
	)

	return report, nil
}

// verifyBranch - every distinct position below root, root included.
func (that *Arena) verifyBranch(ctx context.Context, root tictactoe.Position) (Report, error) {
	var report Report
	seen := make(map[tictactoe.Position]struct{})

	var walk func(pos tictactoe.Position) error
	walk = func(pos tictactoe.Position) error {
		if _, ok := seen[pos]; ok {
			return nil
		}
		seen[pos] = struct{}{}

		if err := ctx.Err(); err != nil {
			return err
		}

		if pos.Status().IsTerminal() {
			return nil
		}

		report.add(that.verifyPosition(pos))

		for _, move := range pos.LegalMoves() {
			child, err := pos.Play(move)
			if err != nil {
				return fmt.Errorf("failed to play %d on %s: %w", move, pos, err)
			}
			if err = walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	return report, walk(root)
}

// verifyPosition - searches pos for both computer marks, with and without pruning.
func (that *Arena) verifyPosition(pos tictactoe.Position) Report {
	var report Report

	for _, computer := range marks {
		pruned := that.pruned.BestMove(pos, computer)
		minimax := that.minimax.BestMove(pos, computer)

		report.Positions++
		report.PrunedNodes += pruned.Nodes
		report.MinimaxNodes += minimax.Nodes

		if pruned.Move != minimax.Move || pruned.Value != minimax.Value {
			report.Mismatches++
			that.logger.Error("search mismatch",
				"position", pos.String(),
				"computer", computer,
				"pruned", pruned,
				"minimax", minimax,
			)
		}
	}

	return report
}

// playAll - the engine answers with its best move, the opponent tries every
// legal reply; each finished line counts as one game.
func (that *Arena) playAll(ctx context.Context, pos tictactoe.Position, computer entity.Mark) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	status := pos.Status()
	if status.IsTerminal() {
		report := Report{Games: 1}
		if status.Outcome == tictactoe.Win && status.Winner != computer {
			report.Losses = 1
			that.logger.Error("engine lost", "position", pos.String(), "computer", computer)
		}
		return report, nil
	}

	if pos.ToMove() == computer {
		result := that.pruned.BestMove(pos, computer)

		child, err := pos.Play(result.Move)
		if err != nil {
			return Report{}, fmt.Errorf("engine played illegal move %d on %s: %w", result.Move, pos, err)
		}
		return that.playAll(ctx, child, computer)
	}

	var report Report
	for _, move := range pos.LegalMoves() {
		child, err := pos.Play(move)
		if err != nil {
			return Report{}, fmt.Errorf("failed to play %d on %s: %w", move, pos, err)
		}

		part, err := that.playAll(ctx, child, computer)
		if err != nil {
			return Report{}, err
		}
		report.add(part)
	}

	return report, nil
}
