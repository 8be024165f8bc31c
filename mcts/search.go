package mcts

import (
	"math/rand"

	"github.com/deckforge/cardsim/engine"
	"github.com/deckforge/cardsim/genome"
)

// DefaultExploration is the UCB1 exploration constant, sqrt(2).
const DefaultExploration = 1.414

// Search runs iterations of MCTS from state and returns the most visited
// root move, or nil when the position has no moves. The caller's rng drives
// every random choice, including rollouts.
func Search(state *engine.GameState, g *genome.Genome, iterations int, exploration float64, rng *rand.Rand) *engine.LegalMove {
	if exploration == 0 {
		exploration = DefaultExploration
	}

	root := getNode()
	defer putNode(root)

	root.State = state.Clone()
	root.PlayerID = state.CurrentPlayer
	root.UntriedMoves = append(root.UntriedMoves, engine.GenerateLegalMoves(root.State, g)...)

	for i := 0; i < iterations; i++ {
		node := root

		// Selection.
		for !node.terminal() && node.fullyExpanded() {
			next := node.bestChild(exploration)
			if next == nil {
				break
			}
			node = next
		}

		// Expansion.
		if !node.terminal() && len(node.UntriedMoves) > 0 {
			node = expand(node, g, rng)
		}

		// Rollout and backpropagation.
		winner := rollout(node.State, g, rng)
		backpropagate(node, winner)
	}

	best := root.mostVisitedChild()
	if best == nil {
		moves := engine.GenerateLegalMoves(state, g)
		if len(moves) > 0 {
			return &moves[0]
		}
		return nil
	}
	move := best.Move
	return &move
}

func expand(node *Node, g *genome.Genome, rng *rand.Rand) *Node {
	idx := rng.Intn(len(node.UntriedMoves))
	move := node.UntriedMoves[idx]
	node.UntriedMoves[idx] = node.UntriedMoves[len(node.UntriedMoves)-1]
	node.UntriedMoves = node.UntriedMoves[:len(node.UntriedMoves)-1]

	mover := node.State.CurrentPlayer
	childState := node.State.Clone()
	applyForSearch(childState, &move, g, rng)
	childState.WinnerID = engine.CheckWin(childState, g)

	child := getNode()
	child.State = childState
	child.Move = move
	child.Parent = node
	child.PlayerID = mover
	if childState.WinnerID < 0 {
		child.UntriedMoves = append(child.UntriedMoves, engine.GenerateLegalMoves(childState, g)...)
	}

	node.Children = append(node.Children, child)
	return child
}

// applyForSearch applies one move, resolving betting sentinels by running
// the round with uniformly random actions.
func applyForSearch(s *engine.GameState, move *engine.LegalMove, g *genome.Genome, rng *rand.Rand) {
	if move.IsBetting() {
		if phase, ok := g.Phases[move.PhaseIndex].(*genome.BettingPhase); ok {
			engine.RunBettingRound(s, phase, func(_ int, actions []engine.BettingAction) engine.BettingAction {
				return actions[rng.Intn(len(actions))]
			})
			engine.SettleBettingRound(s)
		}
		return
	}
	engine.ApplyMove(s, move, g)
}

// rollout plays random moves to a terminal state, bounded at twice the turn
// limit so degenerate genomes cannot stall the search.
func rollout(state *engine.GameState, g *genome.Genome, rng *rand.Rand) int8 {
	if state == nil {
		return -1
	}
	if state.WinnerID >= 0 {
		return state.WinnerID
	}

	sim := state.Clone()
	defer engine.ReleaseState(sim)

	limit := g.TurnLimit * 2

	for i := 0; i < limit; i++ {
		if winner := engine.CheckWin(sim, g); winner >= 0 {
			return winner
		}
		moves := engine.GenerateLegalMoves(sim, g)
		if len(moves) == 0 {
			return -1 // stalemated line
		}
		move := moves[rng.Intn(len(moves))]
		applyForSearch(sim, &move, g, rng)
	}
	return -1
}

func backpropagate(node *Node, winner int8) {
	for node != nil {
		node.Visits++
		if winner >= 0 && uint8(winner) == node.PlayerID {
			node.Wins++
		}
		node = node.Parent
	}
}
