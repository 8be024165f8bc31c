package ai

import (
	"math/rand"
	"testing"

	"github.com/deckforge/cardsim/engine"
	"github.com/deckforge/cardsim/genome"
)

func TestNew_KindMapping(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, ok := New(KindRandom, rng).(*Random); !ok {
		t.Error("KindRandom should build Random")
	}
	if _, ok := New(KindGreedy, rng).(*Greedy); !ok {
		t.Error("KindGreedy should build Greedy")
	}
	search, ok := New(KindSearchMedium, rng).(*Search)
	if !ok || search.Iterations != MediumIterations {
		t.Errorf("KindSearchMedium should build Search with %d iterations", MediumIterations)
	}
	if _, ok := New(Kind(99), rng).(*Random); !ok {
		t.Error("unknown kinds fall back to Random")
	}
}

func TestRandom_StaysWithinMoveSet(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := &Random{rng: rng}
	moves := []engine.LegalMove{
		{CardIndex: 0, Target: genome.LocationDiscard},
		{CardIndex: 1, Target: genome.LocationDiscard},
		{CardIndex: 2, Target: genome.LocationDiscard},
	}

	for i := 0; i < 50; i++ {
		m := r.SelectMove(nil, nil, moves)
		if m == nil || m.CardIndex < 0 || m.CardIndex > 2 {
			t.Fatalf("move = %+v, want one of the offered three", m)
		}
	}
	if r.SelectMove(nil, nil, nil) != nil {
		t.Error("no moves should select nil")
	}
}

func TestGreedy_PrefersCaptureOverShed(t *testing.T) {
	// Setup: match-rank pile topped by a seven. Hand holds a matching seven
	// and a dead card; greedy must take the capture.
	g := genome.NewMatchCaptureGenome()
	s := engine.AcquireState(2)
	defer engine.ReleaseState(s)
	s.TableauMode = genome.TableauMatchRank
	s.Tableau = append(s.Tableau, []engine.Card{{Rank: 5, Suit: 0}})
	s.Players[0].Hand = []engine.Card{
		{Rank: 2, Suit: 1},
		{Rank: 5, Suit: 2},
	}

	moves := []engine.LegalMove{
		{CardIndex: 0, Target: genome.LocationTableau},
		{CardIndex: 1, Target: genome.LocationTableau},
	}

	gr := &Greedy{}
	move := gr.SelectMove(s, g, moves)
	if move == nil || move.CardIndex != 1 {
		t.Errorf("move = %+v, want the capturing card", move)
	}
}

func TestGreedy_NeverPassesWhenPlayable(t *testing.T) {
	g := genome.NewShedGenome()
	s := engine.AcquireState(2)
	defer engine.ReleaseState(s)
	s.Players[0].Hand = []engine.Card{{Rank: 3, Suit: 0}}

	moves := []engine.LegalMove{
		{CardIndex: engine.CardPass},
		{CardIndex: 0, Target: genome.LocationDiscard},
	}

	gr := &Greedy{}
	move := gr.SelectMove(s, g, moves)
	if move == nil || move.IsPass() {
		t.Errorf("move = %+v, want the card play", move)
	}
}

func TestGreedy_BettingByHandStrength(t *testing.T) {
	s := engine.AcquireState(2)
	defer engine.ReleaseState(s)
	gr := &Greedy{}

	actions := []engine.BettingAction{
		engine.BettingCheck, engine.BettingBet,
	}

	// Trips of aces: aggressive.
	s.Players[0].Hand = []engine.Card{{Rank: 12, Suit: 0}, {Rank: 12, Suit: 1}, {Rank: 12, Suit: 2}}
	if got := gr.SelectBettingAction(s, 0, actions); got != engine.BettingBet {
		t.Errorf("strong hand chose %v, want bet", got)
	}

	// Junk: check when free.
	s.Players[0].Hand = []engine.Card{{Rank: 0, Suit: 0}, {Rank: 2, Suit: 1}}
	if got := gr.SelectBettingAction(s, 0, actions); got != engine.BettingCheck {
		t.Errorf("weak hand chose %v, want check", got)
	}

	// Facing a bet with junk and no free option: fold.
	facing := []engine.BettingAction{engine.BettingCall, engine.BettingFold}
	if got := gr.SelectBettingAction(s, 0, facing); got != engine.BettingFold {
		t.Errorf("weak hand facing a bet chose %v, want fold", got)
	}
}

func TestSearch_SingleMoveShortcut(t *testing.T) {
	g := genome.NewWarGenome()
	s := engine.AcquireState(2)
	defer engine.ReleaseState(s)
	s.Players[0].Hand = []engine.Card{{Rank: 4, Suit: 0}}

	moves := []engine.LegalMove{{CardIndex: 0, Target: genome.LocationTableau}}
	st := &Search{rng: rand.New(rand.NewSource(1)), Iterations: WeakIterations}
	if move := st.SelectMove(s, g, moves); move != &moves[0] {
		t.Error("single legal move should bypass the search")
	}
}
