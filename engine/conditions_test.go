package engine

import (
	"testing"

	"github.com/deckforge/cardsim/genome"
)

func newTestState(t *testing.T, numPlayers int) *GameState {
	t.Helper()
	s := AcquireState(numPlayers)
	t.Cleanup(func() { ReleaseState(s) })
	return s
}

func TestEvalCondition_NilIsTrue(t *testing.T) {
	s := newTestState(t, 2)
	if !EvalCondition(s, nil, 0, nil) {
		t.Error("nil condition must evaluate true")
	}
}

func TestEvalCondition_HandSizeOperators(t *testing.T) {
	s := newTestState(t, 2)
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}, {Rank: 1, Suit: 1}, {Rank: 2, Suit: 2}}

	tests := []struct {
		op   genome.Operator
		val  int32
		want bool
	}{
		{genome.OpEQ, 3, true},
		{genome.OpEQ, 2, false},
		{genome.OpNE, 2, true},
		{genome.OpLT, 4, true},
		{genome.OpGT, 3, false},
		{genome.OpLE, 3, true},
		{genome.OpGE, 4, false},
	}
	for _, tt := range tests {
		c := &genome.Condition{Kind: genome.CondHandSize, Op: tt.op, Value: tt.val}
		if got := EvalCondition(s, c, 0, nil); got != tt.want {
			t.Errorf("hand size op %d value %d = %v, want %v", tt.op, tt.val, got, tt.want)
		}
	}
}

func TestEvalCondition_MatchesDiscardTop(t *testing.T) {
	s := newTestState(t, 2)
	s.Discard = append(s.Discard, Card{Rank: 5, Suit: 2})

	sameRank := Card{Rank: 5, Suit: 0}
	sameSuit := Card{Rank: 9, Suit: 2}
	neither := Card{Rank: 9, Suit: 0}

	rankCond := &genome.Condition{Kind: genome.CondMatchesRank, Ref: uint8(genome.RefTopDiscard)}
	suitCond := &genome.Condition{Kind: genome.CondMatchesSuit, Ref: uint8(genome.RefTopDiscard)}

	if !EvalCondition(s, rankCond, 0, &sameRank) {
		t.Error("same rank should match discard top")
	}
	if EvalCondition(s, rankCond, 0, &sameSuit) {
		t.Error("different rank should not match")
	}
	if !EvalCondition(s, suitCond, 0, &sameSuit) {
		t.Error("same suit should match discard top")
	}
	if EvalCondition(s, suitCond, 0, &neither) {
		t.Error("different suit should not match")
	}

	// Empty discard: no reference card, matches fail.
	s.Discard = s.Discard[:0]
	if EvalCondition(s, rankCond, 0, &sameRank) {
		t.Error("match against empty discard should be false")
	}
}

func TestEvalCondition_BeatsTop(t *testing.T) {
	s := newTestState(t, 2)
	s.Tableau = append(s.Tableau, []Card{{Rank: 7, Suit: 0}})

	cond := &genome.Condition{Kind: genome.CondBeatsTop, Ref: uint8(genome.RefTopTableau)}
	higher := Card{Rank: 8, Suit: 1}
	lower := Card{Rank: 6, Suit: 1}
	equal := Card{Rank: 7, Suit: 1}

	if !EvalCondition(s, cond, 0, &higher) {
		t.Error("higher rank should beat top")
	}
	if EvalCondition(s, cond, 0, &lower) || EvalCondition(s, cond, 0, &equal) {
		t.Error("lower or equal rank should not beat top")
	}

	// Empty pile: nothing to beat, any card qualifies.
	s.Tableau[0] = s.Tableau[0][:0]
	if !EvalCondition(s, cond, 0, &lower) {
		t.Error("empty pile should accept any card")
	}
}

func TestEvalCondition_Compound(t *testing.T) {
	s := newTestState(t, 2)
	s.Players[0].Hand = []Card{{Rank: 1}, {Rank: 2}}

	size2 := genome.Condition{Kind: genome.CondHandSize, Op: genome.OpEQ, Value: 2}
	size9 := genome.Condition{Kind: genome.CondHandSize, Op: genome.OpEQ, Value: 9}

	and := &genome.Condition{Kind: genome.CondAnd, Children: []genome.Condition{size2, size9}}
	or := &genome.Condition{Kind: genome.CondOr, Children: []genome.Condition{size2, size9}}

	if EvalCondition(s, and, 0, nil) {
		t.Error("AND with one false child must be false")
	}
	if !EvalCondition(s, or, 0, nil) {
		t.Error("OR with one true child must be true")
	}
}

func TestEvalCondition_UnknownKindIsFalse(t *testing.T) {
	s := newTestState(t, 2)
	c := &genome.Condition{Kind: genome.CondKind(200), Op: genome.OpEQ, Value: 0}
	if EvalCondition(s, c, 0, nil) {
		t.Error("unknown predicate kind must evaluate false")
	}
}

func TestEvalCondition_ChipsAndSets(t *testing.T) {
	s := newTestState(t, 2)
	s.Players[0].Chips = 75
	s.Pot = 40

	canAfford := &genome.Condition{Kind: genome.CondCanAfford, Value: 50}
	cannotAfford := &genome.Condition{Kind: genome.CondCanAfford, Value: 100}
	potCheck := &genome.Condition{Kind: genome.CondPotSize, Op: genome.OpGE, Value: 40}

	if !EvalCondition(s, canAfford, 0, nil) {
		t.Error("75 chips can afford 50")
	}
	if EvalCondition(s, cannotAfford, 0, nil) {
		t.Error("75 chips cannot afford 100")
	}
	if !EvalCondition(s, potCheck, 0, nil) {
		t.Error("pot of 40 satisfies >= 40")
	}

	s.Players[0].Hand = []Card{
		{Rank: 4, Suit: 0}, {Rank: 4, Suit: 1}, {Rank: 4, Suit: 2},
		{Rank: 6, Suit: 3}, {Rank: 7, Suit: 3}, {Rank: 8, Suit: 3},
	}
	set3 := &genome.Condition{Kind: genome.CondHasSetOfN, Value: 3}
	set4 := &genome.Condition{Kind: genome.CondHasSetOfN, Value: 4}
	run3 := &genome.Condition{Kind: genome.CondHasRunOfN, Value: 3}
	run4 := &genome.Condition{Kind: genome.CondHasRunOfN, Value: 4}

	if !EvalCondition(s, set3, 0, nil) || EvalCondition(s, set4, 0, nil) {
		t.Error("hand has a set of 3, not 4")
	}
	if !EvalCondition(s, run3, 0, nil) || EvalCondition(s, run4, 0, nil) {
		t.Error("hand has a same-suit run of 3, not 4")
	}
}
