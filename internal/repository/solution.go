package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrSolutionNotFound = errors.New("solution not found")

// SolutionKey identifies a search: the board, the side to move, the side the
// score is computed for and the depth limit.
type SolutionKey struct {
	Board    entity.Board
	ToMove   entity.Mark
	Computer entity.Mark
	Depth    int
}

func (that SolutionKey) String() string {
	return fmt.Sprintf("solution:%s:%s:%s:%d", that.Board, that.ToMove, that.Computer, that.Depth)
}

type SolutionRepository interface {
	Save(ctx context.Context, key SolutionKey, result engine.SearchResult) error
	Get(ctx context.Context, key SolutionKey) (engine.SearchResult, error)
	Delete(ctx context.Context, key SolutionKey) error
}

type dbSolution struct {
	client     *redis.Client
	expiration time.Duration
}

// NewSolutionRepository - expiration 0 keeps solutions forever.
func NewSolutionRepository(client *redis.Client, expiration time.Duration) SolutionRepository {
	return &dbSolution{
		client:     client,
		expiration: expiration,
	}
}

func (that *dbSolution) Save(ctx context.Context, key SolutionKey, result engine.SearchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	err = that.client.Set(ctx, key.String(), resultJSON, that.expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) Get(ctx context.Context, key SolutionKey) (engine.SearchResult, error) {
	response, err := that.client.Get(ctx, key.String()).Result()

	if errors.Is(err, redis.Nil) {
		return engine.SearchResult{Move: engine.NoMove}, ErrSolutionNotFound
	}

	if err != nil {
		return engine.SearchResult{Move: engine.NoMove}, fmt.Errorf("failed to get solution: %w", err)
	}

	var result engine.SearchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return engine.SearchResult{Move: engine.NoMove}, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return result, nil
}

func (that *dbSolution) Delete(ctx context.Context, key SolutionKey) error {
	deleted, err := that.client.Del(ctx, key.String()).Result()
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	if deleted == 0 {
		return ErrSolutionNotFound
	}

	return nil
}
