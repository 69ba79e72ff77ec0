package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = SolutionKey{
	Board:    entity.MustParseBoard("XX__O____"),
	ToMove:   entity.O,
	Computer: entity.O,
}

func TestSolutionKey_String(t *testing.T) {
	key := SolutionKey{Board: entity.MustParseBoard("XX__O____"), ToMove: entity.O, Computer: entity.X, Depth: 3}

	assert.Equal(t, "solution:XX__O____:O:X:3", key.String())
}

func TestSolutionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	solutionRepo := NewSolutionRepository(st.Storage, 0)

	// When: Save is called
	err := solutionRepo.Save(ctx, testKey, engine.SearchResult{Move: 2, Value: 0, Nodes: 42})

	// Then: no error should be returned, and the solution is stored
	require.NoError(t, err)

	exists, err := st.Storage.Exists(ctx, testKey.String()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestSolutionRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Storage, time.Minute)

		// Given: a stored solution
		stored := engine.SearchResult{Move: 2, Value: 0, Nodes: 42}
		require.NoError(t, solutionRepo.Save(ctx, testKey, stored))

		// When: Get is called with the same key
		result, err := solutionRepo.Get(ctx, testKey)

		// Then: the stored result comes back
		require.NoError(t, err)
		assert.Equal(t, stored, result)

		// Then: the expiration was applied
		ttl, err := st.Storage.TTL(ctx, testKey.String()).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Storage, 0)

		// When: Get is called for an unknown key
		result, err := solutionRepo.Get(ctx, testKey)

		// Then: ErrSolutionNotFound is returned
		require.ErrorIs(t, err, ErrSolutionNotFound)
		assert.Equal(t, engine.NoMove, result.Move)
	})

	t.Run("Get_DepthIsPartOfTheKey", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Storage, 0)
		require.NoError(t, solutionRepo.Save(ctx, testKey, engine.SearchResult{Move: 2}))

		// When: the same board is requested with a depth limit
		limited := testKey
		limited.Depth = 2
		_, err := solutionRepo.Get(ctx, limited)

		// Then: it is a different entry
		require.ErrorIs(t, err, ErrSolutionNotFound)
	})
}

func TestSolutionRepository_Delete(t *testing.T) {
	t.Run("Delete_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Storage, 0)
		require.NoError(t, solutionRepo.Save(ctx, testKey, engine.SearchResult{Move: 2}))

		// When: Delete is called with an existing key
		err := solutionRepo.Delete(ctx, testKey)
		require.NoError(t, err)

		// Then: the solution is gone
		_, err = solutionRepo.Get(ctx, testKey)
		require.ErrorIs(t, err, ErrSolutionNotFound)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		solutionRepo := NewSolutionRepository(st.Storage, 0)

		err := solutionRepo.Delete(ctx, testKey)

		require.ErrorIs(t, err, ErrSolutionNotFound)
	})
}
