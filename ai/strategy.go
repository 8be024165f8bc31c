// Package ai provides the closed set of move-selection strategies used by
// the simulation runner: uniform random, a one-ply greedy heuristic, and
// Monte Carlo tree search at three iteration budgets.
package ai

import (
	"math/rand"

	"github.com/deckforge/cardsim/engine"
	"github.com/deckforge/cardsim/genome"
	"github.com/deckforge/cardsim/mcts"
)

// Kind identifies a strategy on the wire.
type Kind uint8

const (
	KindRandom Kind = iota
	KindGreedy
	KindSearchWeak
	KindSearchMedium
	KindSearchStrong
)

// Iteration budgets for the search tiers.
const (
	WeakIterations   = 100
	MediumIterations = 1000
	StrongIterations = 10000
)

// Strategy selects card moves and betting actions for one player. A
// strategy instance is owned by a single goroutine.
type Strategy interface {
	SelectMove(s *engine.GameState, g *genome.Genome, moves []engine.LegalMove) *engine.LegalMove
	SelectBettingAction(s *engine.GameState, playerID int, actions []engine.BettingAction) engine.BettingAction
}

// New builds a strategy of the given kind. All randomness flows through rng
// so simulations stay reproducible. Unknown kinds fall back to random.
func New(kind Kind, rng *rand.Rand) Strategy {
	switch kind {
	case KindGreedy:
		return &Greedy{}
	case KindSearchWeak:
		return &Search{rng: rng, Iterations: WeakIterations}
	case KindSearchMedium:
		return &Search{rng: rng, Iterations: MediumIterations}
	case KindSearchStrong:
		return &Search{rng: rng, Iterations: StrongIterations}
	default:
		return &Random{rng: rng}
	}
}

// Random picks uniformly among legal moves and actions.
type Random struct {
	rng *rand.Rand
}

func (r *Random) SelectMove(_ *engine.GameState, _ *genome.Genome, moves []engine.LegalMove) *engine.LegalMove {
	if len(moves) == 0 {
		return nil
	}
	return &moves[r.rng.Intn(len(moves))]
}

func (r *Random) SelectBettingAction(_ *engine.GameState, _ int, actions []engine.BettingAction) engine.BettingAction {
	if len(actions) == 0 {
		return engine.BettingFold
	}
	return actions[r.rng.Intn(len(actions))]
}

// Greedy scores each move with a one-ply heuristic: captures first, then
// shedding plays, then big cards in rank fights. Ties break toward the
// earliest move, so greedy play is a pure function of the state.
type Greedy struct{}

func (gr *Greedy) SelectMove(s *engine.GameState, g *genome.Genome, moves []engine.LegalMove) *engine.LegalMove {
	if len(moves) == 0 {
		return nil
	}
	best := &moves[0]
	bestScore := scoreMove(s, g, &moves[0])
	for i := 1; i < len(moves); i++ {
		if score := scoreMove(s, g, &moves[i]); score > bestScore {
			bestScore = score
			best = &moves[i]
		}
	}
	return best
}

func scoreMove(s *engine.GameState, g *genome.Genome, m *engine.LegalMove) int {
	if m.IsPass() {
		return -100
	}
	if m.IsBetting() || m.CardIndex < 0 {
		return 0
	}

	hand := s.Players[s.CurrentPlayer].Hand
	if m.CardIndex >= len(hand) {
		return 0
	}
	card := hand[m.CardIndex]

	score := 0
	switch m.Target {
	case genome.LocationTableau:
		score = 10 // shedding a card beats holding it
		pile := m.Pile
		if pile < len(s.Tableau) && len(s.Tableau[pile]) > 0 {
			top := s.Tableau[pile][len(s.Tableau[pile])-1]
			if s.TableauMode == genome.TableauMatchRank && top.Rank == card.Rank {
				score += 50 + len(s.Tableau[pile]) // capture the pile
			}
		}
		if s.TableauMode == genome.TableauWar {
			score += int(card.Rank) // lead with strength
		}
	case genome.LocationDiscard:
		score = 10
	}

	// Prefer plays that score immediately.
	score += int(g.ScoreFor(card.Suit, card.Rank, genome.TriggerPlay)) * 5
	return score
}

func (gr *Greedy) SelectBettingAction(s *engine.GameState, playerID int, actions []engine.BettingAction) engine.BettingAction {
	strength := engine.EvaluateHandStrength(s.Players[playerID].Hand)

	if strength > 0.7 {
		for _, want := range []engine.BettingAction{engine.BettingRaise, engine.BettingBet, engine.BettingAllIn} {
			if containsAction(actions, want) {
				return want
			}
		}
	}
	if strength > 0.3 {
		for _, want := range []engine.BettingAction{engine.BettingCall, engine.BettingCheck} {
			if containsAction(actions, want) {
				return want
			}
		}
	}
	if containsAction(actions, engine.BettingCheck) {
		return engine.BettingCheck
	}
	return engine.BettingFold
}

func containsAction(actions []engine.BettingAction, want engine.BettingAction) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

// Search wraps MCTS behind the strategy interface. Betting decisions reuse
// the greedy heuristic; the tree handles betting rounds as chance nodes.
type Search struct {
	rng        *rand.Rand
	Iterations int
}

func (st *Search) SelectMove(s *engine.GameState, g *genome.Genome, moves []engine.LegalMove) *engine.LegalMove {
	if len(moves) == 0 {
		return nil
	}
	if len(moves) == 1 {
		return &moves[0]
	}
	if move := mcts.Search(s, g, st.Iterations, mcts.DefaultExploration, st.rng); move != nil {
		return move
	}
	return &moves[0]
}

func (st *Search) SelectBettingAction(s *engine.GameState, playerID int, actions []engine.BettingAction) engine.BettingAction {
	greedy := Greedy{}
	return greedy.SelectBettingAction(s, playerID, actions)
}
