// Package genome defines the compiled rule set for one card game and its
// versioned binary encoding. A decoded Genome is immutable and may be shared
// read-only across any number of concurrent simulations.
package genome

// StandardDeckSize is the number of cards in a standard deck.
const StandardDeckSize = 52

// DefaultTurnLimit bounds games whose genome does not set a limit.
const DefaultTurnLimit = 1000

// Location identifies a card source or target.
type Location uint8

const (
	LocationDeck Location = iota
	LocationHand
	LocationDiscard
	LocationTableau
	LocationOpponentHand
)

// PhaseKind tags each turn phase in the binary encoding.
type PhaseKind uint8

const (
	KindDraw    PhaseKind = 1
	KindPlay    PhaseKind = 2
	KindDiscard PhaseKind = 3
	KindBetting PhaseKind = 4
	KindClaim   PhaseKind = 5
)

// Operator is a comparison operator for conditions.
type Operator uint8

const (
	OpEQ Operator = iota
	OpNE
	OpLT
	OpGT
	OpLE
	OpGE
)

// CondKind selects the predicate a condition evaluates.
// Unknown kinds must evaluate to false, never panic: genomes may carry
// predicate kinds from future schema versions.
type CondKind uint8

const (
	CondHandSize     CondKind = 0
	CondLocationSize CondKind = 1
	CondCardRank     CondKind = 2
	CondCardSuit     CondKind = 3
	CondMatchesRank  CondKind = 4
	CondMatchesSuit  CondKind = 5
	CondBeatsTop     CondKind = 6
	CondChipCount    CondKind = 7
	CondPotSize      CondKind = 8
	CondCurrentBet   CondKind = 9
	CondCanAfford    CondKind = 10
	CondHasSetOfN    CondKind = 11
	CondHasRunOfN    CondKind = 12

	CondAnd CondKind = 40
	CondOr  CondKind = 41
)

// CardRef names the card a reference-matching condition compares against.
type CardRef uint8

const (
	RefNone CardRef = iota
	RefTopDiscard
	RefTopTableau
)

// Condition is one encoded predicate, possibly compound.
// A nil *Condition always evaluates true.
type Condition struct {
	Kind     CondKind
	Op       Operator
	Value    int32
	Ref      uint8       // CardRef for card conditions, Location for size checks
	Children []Condition // populated for CondAnd / CondOr
}

// Phase is one step of the turn structure.
type Phase interface {
	Kind() PhaseKind
}

// DrawPhase moves cards from a shared source into the active player's hand.
type DrawPhase struct {
	Source    Location
	Count     int
	Mandatory bool
	Condition *Condition
}

func (p *DrawPhase) Kind() PhaseKind { return KindDraw }

// PlayPhase plays one card from hand to a target location.
type PlayPhase struct {
	Target       Location
	Mandatory    bool
	PassIfUnable bool
	Condition    *Condition // per-card legality condition
}

func (p *PlayPhase) Kind() PhaseKind { return KindPlay }

// DiscardPhase discards cards from hand.
type DiscardPhase struct {
	Target    Location
	Count     int
	Mandatory bool
}

func (p *DiscardPhase) Kind() PhaseKind { return KindDiscard }

// BettingPhase opens a poker-style betting round.
type BettingPhase struct {
	MinBet    int
	MaxRaises int // per-round raise cap, prevents unbounded loops
}

func (p *BettingPhase) Kind() PhaseKind { return KindBetting }

// ClaimPhase covers bluffing mechanics: play a card face down while claiming
// a rank; opponents may challenge the claim.
type ClaimPhase struct{}

func (p *ClaimPhase) Kind() PhaseKind { return KindClaim }

// WinType selects how a win condition triggers.
type WinType uint8

const (
	WinEmptyHand WinType = iota
	WinCaptureAll
	WinFirstToScore
	WinHighScore
	WinAllHandsEmpty
)

// Direction selects the comparison direction for score-based wins.
type Direction uint8

const (
	HighestWins Direction = iota
	LowestWins
)

// WinCondition defines one way the game ends.
type WinCondition struct {
	Type      WinType
	Threshold int32
	Direction Direction
}

// TableauMode defines how played cards interact on the tableau.
type TableauMode uint8

const (
	TableauNone      TableauMode = 0
	TableauWar       TableauMode = 1
	TableauMatchRank TableauMode = 2
	TableauSequence  TableauMode = 3
)

// SequenceDirection for TableauSequence piles.
type SequenceDirection uint8

const (
	SeqAscending  SequenceDirection = 0
	SeqDescending SequenceDirection = 1
	SeqEither     SequenceDirection = 2
)

// WarTieRule selects how equal-rank war exchanges resolve.
type WarTieRule uint8

const (
	// TieAccumulate leaves tied cards on the pile; the next exchange's
	// winner takes everything. Bounded by the turn limit.
	TieAccumulate WarTieRule = 0
	// TieActivePlayer awards the pile to the player who completed the
	// exchange.
	TieActivePlayer WarTieRule = 1
)

// ScoringTrigger defines when a card scoring rule fires.
type ScoringTrigger uint8

const (
	TriggerCapture ScoringTrigger = 0
	TriggerPlay    ScoringTrigger = 1
)

// WildcardByte matches any suit or rank in a scoring rule.
const WildcardByte uint8 = 255

// ScoringRule awards points for specific cards.
type ScoringRule struct {
	Suit    uint8 // 0-3, WildcardByte for any
	Rank    uint8 // 0-12, WildcardByte for any
	Points  int16 // may be negative
	Trigger ScoringTrigger
}

// EffectType for special card effects.
type EffectType uint8

const (
	EffectSkipNext EffectType = iota
	EffectReverse
	EffectDrawCards
	EffectExtraTurn
	EffectForceDiscard
)

// EffectTarget selects whom an effect applies to.
type EffectTarget uint8

const (
	TargetNextPlayer EffectTarget = iota
	TargetPrevPlayer
	TargetAllOpponents
)

// Effect fires when a card of TriggerRank is played.
type Effect struct {
	TriggerRank uint8
	Type        EffectType
	Target      EffectTarget
	Value       uint8
}

// Setup defines initial game state.
type Setup struct {
	CardsPerPlayer    int
	DealToTableau     int
	StartingChips     int // 0 = no betting
	TableauMode       TableauMode
	SequenceDirection SequenceDirection
	TableauPiles      int // pile count for sequence games, 0 = single pile
	WarTieRule        WarTieRule
}

// Genome is a fully decoded game description. Immutable after decode.
type Genome struct {
	Version       uint32
	ID            uint64
	PlayerCount   int
	TurnLimit     int
	Setup         Setup
	Phases        []Phase
	WinConditions []WinCondition
	Scoring       []ScoringRule
	Effects       []Effect
}

// HasBetting reports whether the turn structure contains a betting phase
// and the setup funds it.
func (g *Genome) HasBetting() bool {
	if g.Setup.StartingChips <= 0 {
		return false
	}
	for _, p := range g.Phases {
		if p.Kind() == KindBetting {
			return true
		}
	}
	return false
}

// HasMandatoryPhase reports whether any phase must produce a move.
func (g *Genome) HasMandatoryPhase() bool {
	for _, p := range g.Phases {
		switch ph := p.(type) {
		case *DrawPhase:
			if ph.Mandatory {
				return true
			}
		case *PlayPhase:
			if ph.Mandatory && !ph.PassIfUnable {
				return true
			}
		case *DiscardPhase:
			if ph.Mandatory {
				return true
			}
		}
	}
	return false
}

// EffectFor returns the effect triggered by a rank, or nil.
func (g *Genome) EffectFor(rank uint8) *Effect {
	for i := range g.Effects {
		if g.Effects[i].TriggerRank == rank {
			return &g.Effects[i]
		}
	}
	return nil
}

// ScoreFor sums scoring rule points for one card under a trigger.
func (g *Genome) ScoreFor(suit, rank uint8, trigger ScoringTrigger) int32 {
	var total int32
	for _, r := range g.Scoring {
		if r.Trigger != trigger {
			continue
		}
		if r.Suit != WildcardByte && r.Suit != suit {
			continue
		}
		if r.Rank != WildcardByte && r.Rank != rank {
			continue
		}
		total += int32(r.Points)
	}
	return total
}
