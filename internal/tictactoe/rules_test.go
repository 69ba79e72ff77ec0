package tictactoe

import (
	"sort"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableBoards - every board reachable by alternating play from the empty
// board, with either mark moving first.
func reachableBoards() []entity.Board {
	seen := make(map[entity.Board]struct{})

	var walk func(board entity.Board, toMove entity.Mark)
	walk = func(board entity.Board, toMove entity.Mark) {
		seen[board] = struct{}{}
		if GetStatus(board).IsTerminal() {
			return
		}
		for _, move := range LegalMoves(board) {
			next, _ := Apply(board, move, toMove)
			walk(next, ToggleMark(toMove))
		}
	}

	walk(entity.Board{}, entity.X)
	walk(entity.Board{}, entity.O)

	boards := make([]entity.Board, 0, len(seen))
	for board := range seen {
		boards = append(boards, board)
	}
	return boards
}

func TestLegalMoves(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, LegalMoves(entity.Board{}))
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.MustParseBoard("XOXXOOOXX")
		assert.Empty(t, LegalMoves(board))
	})

	t.Run("Every reachable board lists exactly its empty cells ascending", func(t *testing.T) {
		for _, board := range reachableBoards() {
			moves := LegalMoves(board)

			// Then: ascending, unique and empty
			require.True(t, sort.IntsAreSorted(moves), board.String())
			require.Len(t, moves, board.EmptyCount(), board.String())
			for i, move := range moves {
				require.Equal(t, entity.Empty, board[move], board.String())
				if i > 0 {
					require.NotEqual(t, moves[i-1], move, board.String())
				}
			}

			// Then: calling again yields the same result
			require.Equal(t, moves, LegalMoves(board))
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("Places the mark on a copy", func(t *testing.T) {
		// Given: a board with X in the corner
		board := entity.MustParseBoard("X________")
		original := board

		// When: O plays the center
		next, err := Apply(board, 4, entity.O)
		require.NoError(t, err)

		// Then: only the new board has the move
		assert.Equal(t, entity.MustParseBoard("X___O____"), next)
		assert.Equal(t, original, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X in the corner
		board := entity.MustParseBoard("X________")

		// When: O plays the same cell
		_, err := Apply(board, 0, entity.O)

		// Then: ErrIllegalMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Contains(t, err.Error(), "occupied")
		assert.Equal(t, entity.MustParseBoard("X________"), board)
	})

	t.Run("Error on cell out of range", func(t *testing.T) {
		for _, move := range []int{-1, 9, 20} {
			_, err := Apply(entity.Board{}, move, entity.X)
			assert.ErrorIs(t, err, apperror.ErrIllegalMove)
		}
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		_, err := Apply(entity.Board{}, 0, entity.Empty)
		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Never mutates reachable boards", func(t *testing.T) {
		for _, board := range reachableBoards() {
			before := board
			for _, move := range LegalMoves(board) {
				_, err := Apply(board, move, entity.X)
				require.NoError(t, err)
			}
			require.Equal(t, before, board)
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("Every line wins", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where O fills a single line
			var board entity.Board
			for _, i := range combo {
				board[i] = entity.O
			}

			// Then: O is reported
			winner, ok := Winner(board)
			require.True(t, ok)
			assert.Equal(t, entity.O, winner)
		}
	})

	t.Run("Two lines of the same mark are reported once", func(t *testing.T) {
		board := entity.MustParseBoard("XXXXOOXOO")
		winner, ok := Winner(board)
		require.True(t, ok)
		assert.Equal(t, entity.X, winner)
	})

	t.Run("No winner on an ongoing board", func(t *testing.T) {
		board := entity.MustParseBoard("XO__X___O")
		winner, ok := Winner(board)
		assert.False(t, ok)
		assert.Equal(t, entity.Empty, winner)
	})

	t.Run("Matches a line scan on every reachable board", func(t *testing.T) {
		for _, board := range reachableBoards() {
			owners := map[entity.Mark]bool{}
			for _, combo := range WinCombos {
				if board[combo[0]] != entity.Empty && board[combo[0]] == board[combo[1]] && board[combo[1]] == board[combo[2]] {
					owners[board[combo[0]]] = true
				}
			}

			// Then: at most one mark owns lines, and Winner reports it
			require.LessOrEqual(t, len(owners), 1, board.String())
			winner, ok := Winner(board)
			require.Equal(t, len(owners) == 1, ok, board.String())
			if ok {
				require.True(t, owners[winner], board.String())
			}
			require.NoError(t, Validate(board))
		}
	})
}

func TestValidate(t *testing.T) {
	// Given: a board where both marks complete a row
	board := entity.MustParseBoard("XXXOOO___")

	// Then: it is rejected
	assert.ErrorIs(t, Validate(board), apperror.ErrInvalidBoard)
}

func TestGetStatus(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		board := entity.MustParseBoard("XO_XO_X__")
		status := GetStatus(board)
		assert.Equal(t, Status{Outcome: Win, Winner: entity.X}, status)
		assert.True(t, status.IsTerminal())
		assert.Equal(t, "X wins", status.String())
	})

	t.Run("Ongoing game", func(t *testing.T) {
		board := entity.MustParseBoard("XOX_O_X__")
		status := GetStatus(board)
		assert.Equal(t, Status{Outcome: Ongoing}, status)
		assert.False(t, status.IsTerminal())
		assert.False(t, IsTie(board))
	})

	t.Run("Tie", func(t *testing.T) {
		board := entity.MustParseBoard("XOXXOOOXX")
		assert.Equal(t, Status{Outcome: Tie}, GetStatus(board))
		assert.True(t, IsTie(board))
		assert.Equal(t, "tie", GetStatus(board).String())
	})

	t.Run("Win on a full board is not a tie", func(t *testing.T) {
		board := entity.MustParseBoard("XOXOXOOXX")
		assert.Equal(t, Status{Outcome: Win, Winner: entity.X}, GetStatus(board))
		assert.False(t, IsTie(board))
	})

	t.Run("Is stable across calls", func(t *testing.T) {
		for _, board := range reachableBoards() {
			require.Equal(t, GetStatus(board), GetStatus(board))
		}
	})
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, entity.O, ToggleMark(entity.X))
	assert.Equal(t, entity.X, ToggleMark(entity.O))
}
