// Seed genomes used by tests and as known-playable baselines.
package genome

// Suit constants.
const (
	SuitHearts   uint8 = 0
	SuitDiamonds uint8 = 1
	SuitClubs    uint8 = 2
	SuitSpades   uint8 = 3
)

// Rank constants (0 = Two ... 12 = Ace; Ace is high).
const (
	RankTwo   uint8 = 0
	RankThree uint8 = 1
	RankFour  uint8 = 2
	RankFive  uint8 = 3
	RankSix   uint8 = 4
	RankSeven uint8 = 5
	RankEight uint8 = 6
	RankNine  uint8 = 7
	RankTen   uint8 = 8
	RankJack  uint8 = 9
	RankQueen uint8 = 10
	RankKing  uint8 = 11
	RankAce   uint8 = 12
)

// NewWarGenome builds the classic two-player War game: each player flips a
// card to the shared pile, higher rank takes everything. Zero decisions,
// pure luck; useful as the playability baseline.
func NewWarGenome() *Genome {
	return &Genome{
		Version:     FormatV2,
		ID:          1,
		PlayerCount: 2,
		TurnLimit:   DefaultTurnLimit,
		Setup: Setup{
			CardsPerPlayer: 26,
			TableauMode:    TableauWar,
		},
		Phases: []Phase{
			&PlayPhase{Target: LocationTableau, Mandatory: true},
		},
		WinConditions: []WinCondition{
			{Type: WinCaptureAll},
		},
	}
}

// NewShedGenome builds a simple shedding game: draw one, then play a card
// matching the discard top's rank or suit; first empty hand wins.
func NewShedGenome() *Genome {
	return &Genome{
		Version:     FormatV2,
		ID:          2,
		PlayerCount: 2,
		TurnLimit:   DefaultTurnLimit,
		Setup: Setup{
			CardsPerPlayer: 7,
			DealToTableau:  1, // seed the discard pile
		},
		Phases: []Phase{
			&DrawPhase{Source: LocationDeck, Count: 1, Mandatory: false},
			&PlayPhase{
				Target:       LocationDiscard,
				Mandatory:    true,
				PassIfUnable: true,
				Condition: &Condition{
					Kind: CondOr,
					Children: []Condition{
						{Kind: CondMatchesRank, Ref: uint8(RefTopDiscard)},
						{Kind: CondMatchesSuit, Ref: uint8(RefTopDiscard)},
					},
				},
			},
		},
		WinConditions: []WinCondition{
			{Type: WinEmptyHand},
		},
	}
}

// NewSequenceGenome builds a sequence-building game: play cards that extend
// per-suit ascending runs on the tableau; first empty hand wins.
func NewSequenceGenome() *Genome {
	return &Genome{
		Version:     FormatV2,
		ID:          3,
		PlayerCount: 2,
		TurnLimit:   DefaultTurnLimit,
		Setup: Setup{
			CardsPerPlayer:    10,
			TableauMode:       TableauSequence,
			SequenceDirection: SeqEither,
			TableauPiles:      4, // one pile per suit
		},
		Phases: []Phase{
			&DrawPhase{Source: LocationDeck, Count: 1, Mandatory: false},
			&PlayPhase{Target: LocationTableau, Mandatory: true, PassIfUnable: true},
		},
		WinConditions: []WinCondition{
			{Type: WinEmptyHand},
		},
	}
}

// NewBettingWarGenome builds War with a betting round before each flip.
func NewBettingWarGenome() *Genome {
	g := NewWarGenome()
	g.ID = 4
	g.Setup.StartingChips = 500
	g.Phases = append([]Phase{
		&BettingPhase{MinBet: 10, MaxRaises: 2},
	}, g.Phases...)
	return g
}

// NewMatchCaptureGenome builds a Scopa-style capture game: play to the
// tableau, rank matches capture the pile and score per captured card.
func NewMatchCaptureGenome() *Genome {
	return &Genome{
		Version:     FormatV2,
		ID:          5,
		PlayerCount: 2,
		TurnLimit:   DefaultTurnLimit,
		Setup: Setup{
			CardsPerPlayer: 10,
			DealToTableau:  4,
			TableauMode:    TableauMatchRank,
		},
		Phases: []Phase{
			&PlayPhase{Target: LocationTableau, Mandatory: true},
		},
		Scoring: []ScoringRule{
			{Suit: WildcardByte, Rank: WildcardByte, Points: 1, Trigger: TriggerCapture},
		},
		WinConditions: []WinCondition{
			{Type: WinFirstToScore, Threshold: 15, Direction: HighestWins},
			{Type: WinAllHandsEmpty, Direction: HighestWins},
		},
	}
}
