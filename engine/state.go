// Package engine holds the mutable per-game state and the rule interpreter:
// condition evaluation, legal move generation, move application with tableau
// side effects, the betting sub-state machine and win checking.
package engine

import (
	"sync"

	"github.com/deckforge/cardsim/genome"
)

// Card is a value type: rank 0-12 (Two..Ace, Ace high), suit 0-3.
type Card struct {
	Rank uint8
	Suit uint8
}

// MaxPlayers supported by the state model.
const MaxPlayers = 4

// PlayerState is mutated in place for throughput.
type PlayerState struct {
	Hand  []Card
	Score int32

	// Betting fields, zero unless the genome funds chips.
	Chips      int64
	CurrentBet int64
	HasFolded  bool
	IsAllIn    bool
	HasActed   bool // acted since the last raise in the open round
}

// Claim is an outstanding bluff: a card played face down with a claimed rank.
type Claim struct {
	ClaimerID   uint8
	ClaimedRank uint8
	ActualRank  uint8
}

// GameState is one in-progress game. A worker owns its state exclusively;
// tree search operates on deep clones only.
type GameState struct {
	Players []PlayerState
	Deck    []Card
	Discard []Card
	Tableau [][]Card

	NumPlayers    uint8
	CurrentPlayer uint8
	TurnNumber    uint32
	PlayDirection int8
	SkipCount     uint8
	WinnerID      int8 // -1 until decided

	// Betting round state.
	Pot             int64
	CurrentBet      int64
	RaiseCount      int
	BettingComplete bool // this turn's betting round already resolved

	CurrentClaim *Claim

	// Copied from the genome setup at game start for cheap access.
	TableauMode       genome.TableauMode
	SequenceDirection genome.SequenceDirection
	WarTieRule        genome.WarTieRule
}

var statePool = sync.Pool{
	New: func() interface{} {
		return &GameState{
			Players: make([]PlayerState, 0, MaxPlayers),
			Deck:    make([]Card, 0, genome.StandardDeckSize),
			Discard: make([]Card, 0, genome.StandardDeckSize),
			Tableau: make([][]Card, 0, 4),
		}
	},
}

// AcquireState pulls a reset state for numPlayers from the pool.
func AcquireState(numPlayers int) *GameState {
	s := statePool.Get().(*GameState)
	s.reset(numPlayers)
	return s
}

// ReleaseState returns a state to the pool.
func ReleaseState(s *GameState) {
	if s != nil {
		statePool.Put(s)
	}
}

func (s *GameState) reset(numPlayers int) {
	if cap(s.Players) < numPlayers {
		s.Players = make([]PlayerState, numPlayers)
	}
	s.Players = s.Players[:numPlayers]
	for i := range s.Players {
		p := &s.Players[i]
		p.Hand = p.Hand[:0]
		p.Score = 0
		p.Chips = 0
		p.CurrentBet = 0
		p.HasFolded = false
		p.IsAllIn = false
		p.HasActed = false
	}

	s.Deck = s.Deck[:0]
	s.Discard = s.Discard[:0]
	s.Tableau = s.Tableau[:0]

	s.NumPlayers = uint8(numPlayers)
	s.CurrentPlayer = 0
	s.TurnNumber = 0
	s.PlayDirection = 1
	s.SkipCount = 0
	s.WinnerID = -1

	s.Pot = 0
	s.CurrentBet = 0
	s.RaiseCount = 0
	s.BettingComplete = false
	s.CurrentClaim = nil

	s.TableauMode = genome.TableauNone
	s.SequenceDirection = genome.SeqAscending
	s.WarTieRule = genome.TieAccumulate
}

// Clone returns a deep duplicate: hands, piles and claim are independent
// copies, so speculative futures never corrupt the real game.
func (s *GameState) Clone() *GameState {
	c := AcquireState(int(s.NumPlayers))

	for i := range s.Players {
		c.Players[i].Hand = append(c.Players[i].Hand, s.Players[i].Hand...)
		c.Players[i].Score = s.Players[i].Score
		c.Players[i].Chips = s.Players[i].Chips
		c.Players[i].CurrentBet = s.Players[i].CurrentBet
		c.Players[i].HasFolded = s.Players[i].HasFolded
		c.Players[i].IsAllIn = s.Players[i].IsAllIn
		c.Players[i].HasActed = s.Players[i].HasActed
	}

	c.Deck = append(c.Deck, s.Deck...)
	c.Discard = append(c.Discard, s.Discard...)
	for _, pile := range s.Tableau {
		dst := make([]Card, len(pile))
		copy(dst, pile)
		c.Tableau = append(c.Tableau, dst)
	}

	c.CurrentPlayer = s.CurrentPlayer
	c.TurnNumber = s.TurnNumber
	c.PlayDirection = s.PlayDirection
	c.SkipCount = s.SkipCount
	c.WinnerID = s.WinnerID

	c.Pot = s.Pot
	c.CurrentBet = s.CurrentBet
	c.RaiseCount = s.RaiseCount
	c.BettingComplete = s.BettingComplete

	if s.CurrentClaim != nil {
		claim := *s.CurrentClaim
		c.CurrentClaim = &claim
	}

	c.TableauMode = s.TableauMode
	c.SequenceDirection = s.SequenceDirection
	c.WarTieRule = s.WarTieRule
	return c
}

// FillStandardDeck appends a full 52-card deck.
func (s *GameState) FillStandardDeck() {
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			s.Deck = append(s.Deck, Card{Rank: rank, Suit: suit})
		}
	}
}

// ShuffleDeck permutes the deck in place using a seeded LCG, keeping the
// engine free of any global random source.
func (s *GameState) ShuffleDeck(seed uint64) {
	rng := seed
	for i := len(s.Deck) - 1; i > 0; i-- {
		rng = rng*6364136223846793005 + 1442695040888963407
		j := int(rng % uint64(i+1))
		s.Deck[i], s.Deck[j] = s.Deck[j], s.Deck[i]
	}
}

// InitializeChips funds every player with the same starting stack.
func (s *GameState) InitializeChips(chips int) {
	for i := range s.Players {
		s.Players[i].Chips = int64(chips)
	}
}

// CardCount returns the total number of cards across all locations.
// It must stay constant for the whole game (conservation invariant).
func (s *GameState) CardCount() int {
	n := len(s.Deck) + len(s.Discard)
	for i := range s.Players {
		n += len(s.Players[i].Hand)
	}
	for _, pile := range s.Tableau {
		n += len(pile)
	}
	return n
}

// ChipCount returns total chips across players and pot (conserved).
func (s *GameState) ChipCount() int64 {
	n := s.Pot
	for i := range s.Players {
		n += s.Players[i].Chips
	}
	return n
}

// EndTurn advances to the next player's turn, honoring play direction and
// pending skips, and restarts the phase cycle.
func (s *GameState) EndTurn() {
	step := int(s.PlayDirection)
	next := int(s.CurrentPlayer)
	n := int(s.NumPlayers)
	for i := 0; i <= int(s.SkipCount); i++ {
		next = (next + step + n) % n
	}
	s.CurrentPlayer = uint8(next)
	s.SkipCount = 0
	s.BettingComplete = false
	s.TurnNumber++
}
