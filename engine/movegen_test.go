package engine

import (
	"testing"

	"github.com/deckforge/cardsim/genome"
)

func TestGenerateLegalMoves_WarOnePerCard(t *testing.T) {
	// Setup: war genome, player 0 holds three cards.
	g := genome.NewWarGenome()
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauWar
	s.Players[0].Hand = []Card{{Rank: 3}, {Rank: 7}, {Rank: 11}}
	s.Players[1].Hand = []Card{{Rank: 1}}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 3 {
		t.Fatalf("moves = %d, want one per card", len(moves))
	}
	for _, m := range moves {
		if m.Target != genome.LocationTableau || m.CardIndex < 0 {
			t.Errorf("move = %+v, want tableau card play", m)
		}
	}
}

func TestGenerateLegalMoves_ShedConditionAndPass(t *testing.T) {
	// Setup: shed rules, discard top is 5 of clubs. Hand has one rank match,
	// one suit match, one dead card. Deck empty so no draw move.
	g := genome.NewShedGenome()
	s := newTestState(t, 2)
	s.Discard = append(s.Discard, Card{Rank: 5, Suit: 2})
	s.Players[0].Hand = []Card{
		{Rank: 5, Suit: 0}, // rank match
		{Rank: 9, Suit: 2}, // suit match
		{Rank: 9, Suit: 0}, // dead
	}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 2 {
		t.Fatalf("moves = %d, want 2 playable cards", len(moves))
	}

	// Nothing playable: mandatory pass-if-unable yields exactly one pass.
	s.Players[0].Hand = []Card{{Rank: 9, Suit: 0}}
	moves = GenerateLegalMoves(s, g)
	if len(moves) != 1 {
		t.Fatalf("moves = %d, want single pass move", len(moves))
	}
	if !moves[0].IsPass() {
		t.Errorf("move = %+v, want pass", moves[0])
	}
}

func TestGenerateLegalMoves_DrawWhenDeckNonEmpty(t *testing.T) {
	g := genome.NewShedGenome()
	s := newTestState(t, 2)
	s.Deck = append(s.Deck, Card{Rank: 0, Suit: 0})
	s.Discard = append(s.Discard, Card{Rank: 5, Suit: 2})
	s.Players[0].Hand = []Card{{Rank: 5, Suit: 1}}

	moves := GenerateLegalMoves(s, g)
	var drawMoves, playMoves int
	for _, m := range moves {
		if m.CardIndex == CardNone {
			drawMoves++
		} else if m.CardIndex >= 0 {
			playMoves++
		}
	}
	if drawMoves != 1 || playMoves != 1 {
		t.Errorf("draw=%d play=%d, want 1 and 1", drawMoves, playMoves)
	}
}

func TestGenerateLegalMoves_SequenceAdjacency(t *testing.T) {
	// Setup: single ascending pile topped by the 6 of hearts.
	g := genome.NewSequenceGenome()
	g.Setup.TableauPiles = 1
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauSequence
	s.SequenceDirection = genome.SeqAscending
	s.Tableau = append(s.Tableau, []Card{{Rank: 6, Suit: 0}})
	s.Players[0].Hand = []Card{
		{Rank: 7, Suit: 0}, // playable: next rank, same suit
		{Rank: 7, Suit: 1}, // wrong suit
		{Rank: 5, Suit: 0}, // wrong direction
		{Rank: 8, Suit: 0}, // gap
	}

	moves := GenerateLegalMoves(s, g)
	cardMoves := make([]LegalMove, 0, len(moves))
	for _, m := range moves {
		if m.CardIndex >= 0 {
			cardMoves = append(cardMoves, m)
		}
	}
	if len(cardMoves) != 1 || cardMoves[0].CardIndex != 0 {
		t.Errorf("card moves = %+v, want only the 7 of hearts", cardMoves)
	}
}

func TestGenerateLegalMoves_SequenceNoWraparound(t *testing.T) {
	g := genome.NewSequenceGenome()
	g.Setup.TableauPiles = 1
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauSequence
	s.SequenceDirection = genome.SeqEither
	s.Tableau = append(s.Tableau, []Card{{Rank: 12, Suit: 0}}) // ace on top
	s.Players[0].Hand = []Card{{Rank: 0, Suit: 0}}             // two of same suit

	for _, m := range GenerateLegalMoves(s, g) {
		if m.CardIndex >= 0 {
			t.Errorf("two must not play on an ace: %+v", m)
		}
	}
}

func TestGenerateLegalMoves_SequenceEmptyPileAcceptsAnything(t *testing.T) {
	g := genome.NewSequenceGenome()
	g.Setup.TableauPiles = 2
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauSequence
	s.SequenceDirection = genome.SeqAscending
	s.Players[0].Hand = []Card{{Rank: 9, Suit: 3}}

	var pilesOffered int
	for _, m := range GenerateLegalMoves(s, g) {
		if m.CardIndex >= 0 {
			pilesOffered++
		}
	}
	if pilesOffered != 2 {
		t.Errorf("empty piles offered = %d, want 2", pilesOffered)
	}
}

func TestGenerateLegalMoves_BettingSentinel(t *testing.T) {
	g := genome.NewBettingWarGenome()
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauWar
	s.InitializeChips(500)
	s.Players[0].Hand = []Card{{Rank: 3}}
	s.Players[1].Hand = []Card{{Rank: 4}}

	moves := GenerateLegalMoves(s, g)
	var betting int
	for _, m := range moves {
		if m.IsBetting() {
			betting++
		}
	}
	if betting != 1 {
		t.Fatalf("betting sentinels = %d, want 1", betting)
	}

	// Once the round resolves, no sentinel until the next turn.
	s.BettingComplete = true
	for _, m := range GenerateLegalMoves(s, g) {
		if m.IsBetting() {
			t.Error("sentinel offered after betting completed")
		}
	}
}

func TestGenerateLegalMoves_MandatoryDrawFromEmptyDeck(t *testing.T) {
	// A mandatory draw still yields a move with an empty source; applying it
	// is a no-op rather than a stalemate.
	g := &genome.Genome{
		Version:     genome.FormatV2,
		PlayerCount: 2,
		TurnLimit:   10,
		Phases: []genome.Phase{
			&genome.DrawPhase{Source: genome.LocationDeck, Count: 1, Mandatory: true},
		},
		WinConditions: []genome.WinCondition{{Type: genome.WinEmptyHand}},
	}
	s := newTestState(t, 2)
	s.Players[0].Hand = []Card{{Rank: 1}}
	s.Players[1].Hand = []Card{{Rank: 2}}

	moves := GenerateLegalMoves(s, g)
	if len(moves) != 1 {
		t.Fatalf("moves = %d, want forced draw attempt", len(moves))
	}
}
