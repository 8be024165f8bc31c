package engine

import (
	"testing"

	"github.com/deckforge/cardsim/genome"
)

func playToTableau(s *GameState, g *genome.Genome, cardIndex int) MoveOutcome {
	move := LegalMove{PhaseIndex: warPlayPhase(g), CardIndex: cardIndex, Target: genome.LocationTableau}
	return ApplyMove(s, &move, g)
}

func warPlayPhase(g *genome.Genome) int {
	for i, p := range g.Phases {
		if p.Kind() == genome.KindPlay {
			return i
		}
	}
	return 0
}

func TestApplyMove_WarHigherRankTakesPile(t *testing.T) {
	// Setup: player 0 leads a 3, player 1 answers with a king.
	g := genome.NewWarGenome()
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauWar
	s.Players[0].Hand = []Card{{Rank: 3, Suit: 0}, {Rank: 5, Suit: 1}}
	s.Players[1].Hand = []Card{{Rank: 11, Suit: 2}, {Rank: 2, Suit: 3}}
	before := s.CardCount()

	playToTableau(s, g, 0) // player 0 leads
	if len(s.Tableau) == 0 || len(s.Tableau[0]) != 1 {
		t.Fatal("first card of the exchange must stay on the pile")
	}
	if s.CurrentPlayer != 1 {
		t.Fatalf("CurrentPlayer = %d, want 1", s.CurrentPlayer)
	}

	out := playToTableau(s, g, 0) // player 1 answers with the king
	if out.CapturedCards != 2 {
		t.Errorf("CapturedCards = %d, want 2", out.CapturedCards)
	}
	if len(s.Tableau[0]) != 0 {
		t.Error("pile should be empty after resolution")
	}
	if len(s.Players[1].Hand) != 3 {
		t.Errorf("winner hand = %d cards, want 3", len(s.Players[1].Hand))
	}
	if s.CardCount() != before {
		t.Errorf("card count changed: %d -> %d", before, s.CardCount())
	}
}

func TestApplyMove_WarTieAccumulates(t *testing.T) {
	g := genome.NewWarGenome()
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauWar
	s.WarTieRule = genome.TieAccumulate
	s.Players[0].Hand = []Card{{Rank: 7, Suit: 0}, {Rank: 9, Suit: 0}}
	s.Players[1].Hand = []Card{{Rank: 7, Suit: 1}, {Rank: 2, Suit: 1}}

	playToTableau(s, g, 0)
	out := playToTableau(s, g, 0)
	if !out.Contested {
		t.Error("tie should mark the pile contested")
	}
	if len(s.Tableau[0]) != 2 {
		t.Fatalf("pile = %d cards, want 2 still in dispute", len(s.Tableau[0]))
	}

	// Next exchange: 9 beats 2, winner takes all four cards.
	playToTableau(s, g, 0)
	out = playToTableau(s, g, 0)
	if out.CapturedCards != 4 {
		t.Errorf("CapturedCards = %d, want the whole pile", out.CapturedCards)
	}
	// Player 0 played the 9 first; player 1's 2 lost the exchange.
	if len(s.Players[0].Hand) != 4 {
		t.Errorf("player 0 hand = %d, want 4", len(s.Players[0].Hand))
	}
}

func TestApplyMove_WarTieActivePlayerRule(t *testing.T) {
	g := genome.NewWarGenome()
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauWar
	s.WarTieRule = genome.TieActivePlayer
	s.Players[0].Hand = []Card{{Rank: 7, Suit: 0}}
	s.Players[1].Hand = []Card{{Rank: 7, Suit: 1}}

	playToTableau(s, g, 0)
	out := playToTableau(s, g, 0)
	if out.CapturedCards != 2 {
		t.Fatalf("CapturedCards = %d, want 2", out.CapturedCards)
	}
	if len(s.Players[1].Hand) != 2 {
		t.Errorf("tie should award the pile to the player who completed the exchange")
	}
}

func TestApplyMove_MatchRankCaptureAndScoring(t *testing.T) {
	// Setup: pile of three topped by an 8; playing an 8 captures all four
	// cards and scores one point each.
	g := genome.NewMatchCaptureGenome()
	s := newTestState(t, 2)
	s.TableauMode = genome.TableauMatchRank
	s.Tableau = append(s.Tableau, []Card{{Rank: 2, Suit: 0}, {Rank: 5, Suit: 1}, {Rank: 8, Suit: 2}})
	s.Players[0].Hand = []Card{{Rank: 8, Suit: 3}, {Rank: 1, Suit: 0}}
	s.Players[1].Hand = []Card{{Rank: 3, Suit: 3}}
	before := s.CardCount()

	out := playToTableau(s, g, 0)
	if out.CapturedCards != 4 {
		t.Errorf("CapturedCards = %d, want 4", out.CapturedCards)
	}
	if s.Players[0].Score != 4 {
		t.Errorf("Score = %d, want 4 capture points", s.Players[0].Score)
	}
	if len(s.Players[0].Hand) != 5 {
		t.Errorf("hand = %d cards, want 5 (1 left + 4 captured)", len(s.Players[0].Hand))
	}
	if s.CardCount() != before {
		t.Errorf("card count changed: %d -> %d", before, s.CardCount())
	}

	// No match: the card just joins the pile.
	out = playToTableau(s, g, 0)
	if out.CapturedCards != 0 {
		t.Errorf("CapturedCards = %d, want 0 for a non-match", out.CapturedCards)
	}
}

func TestApplyMove_EffectsSkipAndReverse(t *testing.T) {
	g := genome.NewShedGenome()
	g.Effects = []genome.Effect{
		{TriggerRank: 6, Type: genome.EffectSkipNext, Target: genome.TargetNextPlayer, Value: 1},
		{TriggerRank: 10, Type: genome.EffectReverse},
	}
	s := newTestState(t, 3)
	s.Players[0].Hand = []Card{{Rank: 6, Suit: 0}, {Rank: 10, Suit: 0}}
	s.Players[1].Hand = []Card{{Rank: 1}}
	s.Players[2].Hand = []Card{{Rank: 1}}
	s.Discard = append(s.Discard, Card{Rank: 6, Suit: 3})

	// Playing the 6 skips player 1: turn passes to player 2.
	move := LegalMove{PhaseIndex: 1, CardIndex: 0, Target: genome.LocationDiscard}
	ApplyMove(s, &move, g)
	if s.CurrentPlayer != 2 {
		t.Errorf("CurrentPlayer = %d, want 2 after skip", s.CurrentPlayer)
	}

	// Reverse flips play direction.
	s.CurrentPlayer = 0
	s.Players[0].Hand = []Card{{Rank: 10, Suit: 0}}
	move = LegalMove{PhaseIndex: 1, CardIndex: 0, Target: genome.LocationDiscard}
	ApplyMove(s, &move, g)
	if s.PlayDirection != -1 {
		t.Errorf("PlayDirection = %d, want -1 after reverse", s.PlayDirection)
	}
	if s.CurrentPlayer != 2 {
		t.Errorf("CurrentPlayer = %d, want 2 moving backwards", s.CurrentPlayer)
	}
}

func TestApplyMove_PassChangesNothingButTurn(t *testing.T) {
	g := genome.NewShedGenome()
	s := newTestState(t, 2)
	s.Players[0].Hand = []Card{{Rank: 9, Suit: 0}}
	s.Players[1].Hand = []Card{{Rank: 2, Suit: 1}}
	s.Discard = append(s.Discard, Card{Rank: 5, Suit: 2})
	before := s.CardCount()

	move := LegalMove{PhaseIndex: 1, CardIndex: CardPass, Target: genome.LocationDiscard}
	ApplyMove(s, &move, g)

	if s.CardCount() != before {
		t.Error("pass must not move cards")
	}
	if s.CurrentPlayer != 1 || s.TurnNumber != 1 {
		t.Errorf("turn did not advance: player=%d turn=%d", s.CurrentPlayer, s.TurnNumber)
	}
}

func TestApplyMove_ClaimRecordsRank(t *testing.T) {
	g := &genome.Genome{
		Version:     genome.FormatV2,
		PlayerCount: 2,
		TurnLimit:   20,
		Phases: []genome.Phase{
			&genome.ClaimPhase{},
		},
		WinConditions: []genome.WinCondition{{Type: genome.WinEmptyHand}},
	}
	s := newTestState(t, 2)
	s.Players[0].Hand = []Card{{Rank: 7, Suit: 2}}
	s.Players[1].Hand = []Card{{Rank: 3, Suit: 0}}

	move := LegalMove{PhaseIndex: 0, CardIndex: 0, Target: genome.LocationDiscard}
	ApplyMove(s, &move, g)

	if s.CurrentClaim == nil {
		t.Fatal("claim play must record a claim")
	}
	if s.CurrentClaim.ClaimerID != 0 || s.CurrentClaim.ClaimedRank != 7 || s.CurrentClaim.ActualRank != 7 {
		t.Errorf("claim = %+v, want player 0 claiming the seven honestly", s.CurrentClaim)
	}
	if len(s.Discard) != 1 || s.Discard[0].Rank != 7 {
		t.Error("claimed card must land on the discard")
	}
}

func TestCheckWin_EmptyHand(t *testing.T) {
	g := genome.NewShedGenome()
	s := newTestState(t, 2)
	s.Players[0].Hand = []Card{}
	s.Players[1].Hand = []Card{{Rank: 1}}

	if w := CheckWin(s, g); w != -1 {
		t.Errorf("winner = %d before any turn, want -1", w)
	}
	s.TurnNumber = 5
	if w := CheckWin(s, g); w != 0 {
		t.Errorf("winner = %d, want 0", w)
	}
}

func TestCheckWin_CaptureAll(t *testing.T) {
	g := genome.NewWarGenome()
	s := newTestState(t, 2)
	s.TurnNumber = 10
	s.Players[0].Hand = []Card{{Rank: 1}, {Rank: 2}}
	s.Players[1].Hand = nil

	if w := CheckWin(s, g); w != 0 {
		t.Errorf("winner = %d, want 0 holding all the cards", w)
	}
}

func TestCheckWin_ActivePlayerWinsScoreTie(t *testing.T) {
	g := &genome.Genome{
		PlayerCount: 2,
		WinConditions: []genome.WinCondition{
			{Type: genome.WinHighScore, Threshold: 10, Direction: genome.HighestWins},
		},
	}
	s := newTestState(t, 2)
	s.TurnNumber = 4
	s.Players[0].Score = 10
	s.Players[1].Score = 10

	s.CurrentPlayer = 1
	if w := CheckWin(s, g); w != 1 {
		t.Errorf("winner = %d, want active player 1 on a tie", w)
	}
	s.CurrentPlayer = 0
	if w := CheckWin(s, g); w != 0 {
		t.Errorf("winner = %d, want active player 0 on a tie", w)
	}
}

func TestResolveTurnLimit(t *testing.T) {
	g := genome.NewMatchCaptureGenome()
	s := newTestState(t, 2)
	s.Players[0].Score = 3
	s.Players[1].Score = 7

	if w := ResolveTurnLimit(s, g); w != 1 {
		t.Errorf("winner = %d, want best scorer 1", w)
	}

	s.Players[0].Score = 7
	if w := ResolveTurnLimit(s, g); w != -1 {
		t.Errorf("winner = %d, want draw on equal scores", w)
	}

	// No score signal at all: draw.
	war := genome.NewWarGenome()
	if w := ResolveTurnLimit(s, war); w != -1 {
		t.Errorf("winner = %d, want draw for scoreless genome", w)
	}
}
