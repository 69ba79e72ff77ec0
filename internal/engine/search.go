package engine

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// NoMove is returned when the root position has no legal move.
const NoMove = -1

const (
	valueInfinite = 1 << 20
)

// SearchResult - best move for the side to move and its backed-up value.
type SearchResult struct {
	Move  int `json:"move"`
	Value int `json:"value"`
	Nodes int `json:"nodes"`
}

func (r SearchResult) HasMove() bool {
	return r.Move != NoMove
}

// SearchParams - Depth 0 searches to the end of the game.
type SearchParams struct {
	Pruning bool
	Depth   int
}

// Searcher runs minimax over the game tree. It keeps no state between calls
// except its parameters.
type Searcher struct {
	params SearchParams
}

func NewSearcher(params SearchParams) *Searcher {
	return &Searcher{params: params}
}

func (that *Searcher) Params() SearchParams {
	return that.params
}

type searchState struct {
	computer entity.Mark
	pruning  bool
	maxDepth int
	nodes    int
}

// BestMove - the computer maximizes, the other side minimizes. Equal values
// keep the lowest move index.
func (that *Searcher) BestMove(pos tictactoe.Position, computer entity.Mark) SearchResult {
	state := &searchState{
		computer: computer,
		pruning:  that.params.Pruning,
		maxDepth: that.params.Depth,
	}

	move, value := state.search(pos, 0, -valueInfinite, valueInfinite)

	return SearchResult{Move: move, Value: value, Nodes: state.nodes}
}

func (that *searchState) search(pos tictactoe.Position, height, alpha, beta int) (int, int) {
	that.nodes++

	if pos.Status().IsTerminal() {
		return NoMove, Evaluate(pos, that.computer)
	}

	if that.maxDepth > 0 && height >= that.maxDepth {
		return NoMove, DrawScore
	}

	maximizing := pos.ToMove() == that.computer

	bestMove := NoMove
	bestValue := valueInfinite
	if maximizing {
		bestValue = -valueInfinite
	}

	for _, move := range pos.LegalMoves() {
		child, err := pos.Play(move)
		if err != nil {
			// LegalMoves only yields empty cells
			panic(err)
		}

		_, value := that.search(child, height+1, alpha, beta)

		if maximizing {
			if value > bestValue {
				bestMove, bestValue = move, value
			}
			alpha = max(alpha, bestValue)
		} else {
			if value < bestValue {
				bestMove, bestValue = move, value
			}
			beta = min(beta, bestValue)
		}

		if that.pruning && alpha >= beta {
			break
		}
	}

	return bestMove, bestValue
}
