// Package simulation plays complete games from decoded genomes and
// aggregates batches of them, serially or across a worker pool, with
// bit-identical results either way.
package simulation

import (
	"fmt"
	"math/rand"

	"github.com/deckforge/cardsim/ai"
	"github.com/deckforge/cardsim/engine"
	"github.com/deckforge/cardsim/genome"
)

// GameMetrics instruments one game for genome fitness evaluation.
type GameMetrics struct {
	Decisions       uint64 // decision points offered to strategies
	TotalChoices    uint64 // sum of legal option counts at those points
	ForcedDecisions uint64 // decision points with exactly one option
	Actions         uint64 // moves and betting actions applied
	Interactions    uint64 // actions that touched shared or opponent state
	Disruptions     uint64 // moves that changed an opponent's position
	Contentions     uint64 // war ties left unresolved on the pile
	TotalBets       uint64
	AllInCount      uint64
	FoldWins        uint64
	ShowdownWins    uint64
}

func (m *GameMetrics) add(other *GameMetrics) {
	m.Decisions += other.Decisions
	m.TotalChoices += other.TotalChoices
	m.ForcedDecisions += other.ForcedDecisions
	m.Actions += other.Actions
	m.Interactions += other.Interactions
	m.Disruptions += other.Disruptions
	m.Contentions += other.Contentions
	m.TotalBets += other.TotalBets
	m.AllInCount += other.AllInCount
	m.FoldWins += other.FoldWins
	m.ShowdownWins += other.ShowdownWins
}

// GameResult is the outcome of a single simulated game. WinnerID -1 with an
// empty Err is a draw; a non-empty Err marks stalemates, panics and other
// per-game failures.
type GameResult struct {
	SimID     int
	WinnerID  int8
	TurnCount uint32
	Err       string
	Metrics   GameMetrics
}

// PlayerKinds resolves the strategy for each seat: one shared default or a
// full per-seat assignment.
func PlayerKinds(defaultKind ai.Kind, overrides []ai.Kind, numPlayers int) []ai.Kind {
	kinds := make([]ai.Kind, numPlayers)
	for i := range kinds {
		if i < len(overrides) {
			kinds[i] = overrides[i]
		} else {
			kinds[i] = defaultKind
		}
	}
	return kinds
}

// RunSingleGame plays one game to completion. searchIterations > 0 overrides
// the iteration budget of search strategies. A panic inside the engine is
// recovered into an error result so one corrupt genome cannot take down a
// batch worker.
func RunSingleGame(g *genome.Genome, kinds []ai.Kind, searchIterations int, seed uint64) (result GameResult) {
	defer func() {
		if r := recover(); r != nil {
			result.WinnerID = -1
			result.Err = fmt.Sprintf("panic: %v", r)
		}
	}()

	numPlayers := g.PlayerCount
	if numPlayers < 2 {
		numPlayers = 2
	}
	if numPlayers > engine.MaxPlayers {
		numPlayers = engine.MaxPlayers
	}

	state := engine.AcquireState(numPlayers)
	defer engine.ReleaseState(state)

	setupGame(state, g, seed)

	rng := rand.New(rand.NewSource(int64(seed)))
	strategies := make([]ai.Strategy, numPlayers)
	for i := 0; i < numPlayers; i++ {
		kind := ai.KindRandom
		if i < len(kinds) {
			kind = kinds[i]
		}
		strategies[i] = ai.New(kind, rng)
		if search, ok := strategies[i].(*ai.Search); ok && searchIterations > 0 {
			search.Iterations = searchIterations
		}
	}

	metrics := &GameMetrics{}
	turnLimit := uint32(g.TurnLimit)

	for state.TurnNumber < turnLimit {
		if winner := engine.CheckWin(state, g); winner >= 0 {
			return GameResult{WinnerID: winner, TurnCount: state.TurnNumber, Metrics: *metrics}
		}

		moves := engine.GenerateLegalMoves(state, g)

		if betting := findBettingMove(moves); betting != nil {
			phase, ok := g.Phases[betting.PhaseIndex].(*genome.BettingPhase)
			if ok {
				driveBettingRound(state, phase, strategies, metrics)
				continue
			}
		}

		if len(moves) == 0 {
			if g.HasMandatoryPhase() {
				return GameResult{
					WinnerID:  -1,
					TurnCount: state.TurnNumber,
					Err:       "stalemate: no legal moves",
					Metrics:   *metrics,
				}
			}
			state.EndTurn() // nothing to do this turn, play passes
			continue
		}

		metrics.Decisions++
		metrics.TotalChoices += uint64(len(moves))
		if len(moves) == 1 {
			metrics.ForcedDecisions++
		}

		var move *engine.LegalMove
		if len(moves) == 1 {
			move = &moves[0]
		} else {
			move = strategies[state.CurrentPlayer].SelectMove(state, g, moves)
		}
		if move == nil {
			return GameResult{
				WinnerID:  -1,
				TurnCount: state.TurnNumber,
				Err:       "strategy returned no move",
				Metrics:   *metrics,
			}
		}

		out := engine.ApplyMove(state, move, g)
		metrics.Actions++
		if out.Disrupted || out.CapturedCards > 0 {
			metrics.Interactions++
		}
		if out.Disrupted {
			metrics.Disruptions++
		}
		if out.Contested {
			metrics.Contentions++
		}
	}

	// The final move may have decided the game right at the limit.
	if winner := engine.CheckWin(state, g); winner >= 0 {
		return GameResult{WinnerID: winner, TurnCount: state.TurnNumber, Metrics: *metrics}
	}

	// Turn limit: resolve by score where the genome supports it, else draw.
	return GameResult{
		WinnerID:  engine.ResolveTurnLimit(state, g),
		TurnCount: state.TurnNumber,
		Metrics:   *metrics,
	}
}

// setupGame shuffles, deals hands, seeds the tableau or discard, and funds
// chip stacks per the genome setup.
func setupGame(state *engine.GameState, g *genome.Genome, seed uint64) {
	state.FillStandardDeck()
	state.ShuffleDeck(seed)

	state.TableauMode = g.Setup.TableauMode
	state.SequenceDirection = g.Setup.SequenceDirection
	state.WarTieRule = g.Setup.WarTieRule

	for i := 0; i < g.Setup.CardsPerPlayer; i++ {
		for p := uint8(0); p < state.NumPlayers; p++ {
			state.DrawCard(p, genome.LocationDeck)
		}
	}

	for i := 0; i < g.Setup.DealToTableau && len(state.Deck) > 0; i++ {
		card := state.Deck[len(state.Deck)-1]
		state.Deck = state.Deck[:len(state.Deck)-1]
		if state.TableauMode != genome.TableauNone {
			if len(state.Tableau) == 0 {
				state.Tableau = append(state.Tableau, make([]engine.Card, 0, g.Setup.DealToTableau))
			}
			state.Tableau[0] = append(state.Tableau[0], card)
		} else {
			state.Discard = append(state.Discard, card)
		}
	}

	if g.Setup.StartingChips > 0 {
		state.InitializeChips(g.Setup.StartingChips)
	}
}

func findBettingMove(moves []engine.LegalMove) *engine.LegalMove {
	for i := range moves {
		if moves[i].IsBetting() {
			return &moves[i]
		}
	}
	return nil
}

// driveBettingRound runs the betting machine with per-seat strategies and
// records betting instrumentation, then settles the pot.
func driveBettingRound(state *engine.GameState, phase *genome.BettingPhase, strategies []ai.Strategy, metrics *GameMetrics) {
	engine.RunBettingRound(state, phase, func(playerID int, actions []engine.BettingAction) engine.BettingAction {
		metrics.Decisions++
		metrics.TotalChoices += uint64(len(actions))
		if len(actions) == 1 {
			metrics.ForcedDecisions++
		}

		action := strategies[playerID].SelectBettingAction(state, playerID, actions)

		metrics.Actions++
		metrics.Interactions++
		switch action {
		case engine.BettingBet, engine.BettingRaise:
			metrics.TotalBets++
		case engine.BettingAllIn:
			metrics.TotalBets++
			metrics.AllInCount++
		}
		return action
	})

	foldWin, showdown := engine.SettleBettingRound(state)
	if foldWin {
		metrics.FoldWins++
	}
	if showdown {
		metrics.ShowdownWins++
	}
}
