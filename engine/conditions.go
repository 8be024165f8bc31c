package engine

import "github.com/deckforge/cardsim/genome"

// EvalCondition evaluates a condition for one player, optionally against a
// candidate card (play legality checks pass the card, phase gates pass nil).
// A nil condition is vacuously true. Unknown predicate kinds evaluate false
// so genomes carrying future predicates degrade instead of crashing.
func EvalCondition(s *GameState, c *genome.Condition, player uint8, card *Card) bool {
	if c == nil {
		return true
	}

	switch c.Kind {
	case genome.CondAnd:
		for i := range c.Children {
			if !EvalCondition(s, &c.Children[i], player, card) {
				return false
			}
		}
		return true

	case genome.CondOr:
		for i := range c.Children {
			if EvalCondition(s, &c.Children[i], player, card) {
				return true
			}
		}
		return false

	case genome.CondHandSize:
		return compare(int32(len(s.Players[player].Hand)), c.Op, c.Value)

	case genome.CondLocationSize:
		return compare(int32(s.locationSize(genome.Location(c.Ref), player)), c.Op, c.Value)

	case genome.CondCardRank:
		return card != nil && compare(int32(card.Rank), c.Op, c.Value)

	case genome.CondCardSuit:
		return card != nil && compare(int32(card.Suit), c.Op, c.Value)

	case genome.CondMatchesRank:
		ref := s.refCard(genome.CardRef(c.Ref))
		return card != nil && ref != nil && card.Rank == ref.Rank

	case genome.CondMatchesSuit:
		ref := s.refCard(genome.CardRef(c.Ref))
		return card != nil && ref != nil && card.Suit == ref.Suit

	case genome.CondBeatsTop:
		ref := s.refCard(genome.CardRef(c.Ref))
		if ref == nil {
			return true // nothing to beat
		}
		return card != nil && card.Rank > ref.Rank

	case genome.CondChipCount:
		return compare(int32(s.Players[player].Chips), c.Op, c.Value)

	case genome.CondPotSize:
		return compare(int32(s.Pot), c.Op, c.Value)

	case genome.CondCurrentBet:
		return compare(int32(s.CurrentBet), c.Op, c.Value)

	case genome.CondCanAfford:
		return s.Players[player].Chips >= int64(c.Value)

	case genome.CondHasSetOfN:
		return hasSetOfN(s.Players[player].Hand, int(c.Value))

	case genome.CondHasRunOfN:
		return hasRunOfN(s.Players[player].Hand, int(c.Value))
	}

	return false
}

func compare(lhs int32, op genome.Operator, rhs int32) bool {
	switch op {
	case genome.OpEQ:
		return lhs == rhs
	case genome.OpNE:
		return lhs != rhs
	case genome.OpLT:
		return lhs < rhs
	case genome.OpGT:
		return lhs > rhs
	case genome.OpLE:
		return lhs <= rhs
	case genome.OpGE:
		return lhs >= rhs
	}
	return false
}

func (s *GameState) locationSize(loc genome.Location, player uint8) int {
	switch loc {
	case genome.LocationDeck:
		return len(s.Deck)
	case genome.LocationDiscard:
		return len(s.Discard)
	case genome.LocationHand:
		return len(s.Players[player].Hand)
	case genome.LocationTableau:
		n := 0
		for _, pile := range s.Tableau {
			n += len(pile)
		}
		return n
	case genome.LocationOpponentHand:
		next := (int(player) + 1) % int(s.NumPlayers)
		return len(s.Players[next].Hand)
	}
	return 0
}

// refCard resolves a card reference, or nil if the referenced pile is empty.
func (s *GameState) refCard(ref genome.CardRef) *Card {
	switch ref {
	case genome.RefTopDiscard:
		if n := len(s.Discard); n > 0 {
			return &s.Discard[n-1]
		}
	case genome.RefTopTableau:
		for i := range s.Tableau {
			if n := len(s.Tableau[i]); n > 0 {
				return &s.Tableau[i][n-1]
			}
		}
	}
	return nil
}

func hasSetOfN(hand []Card, n int) bool {
	if n <= 1 {
		return len(hand) > 0
	}
	var counts [13]int
	for _, c := range hand {
		counts[c.Rank]++
		if counts[c.Rank] >= n {
			return true
		}
	}
	return false
}

func hasRunOfN(hand []Card, n int) bool {
	if n <= 1 {
		return len(hand) > 0
	}
	// present[suit][rank]
	var present [4][13]bool
	for _, c := range hand {
		present[c.Suit][c.Rank] = true
	}
	for suit := 0; suit < 4; suit++ {
		run := 0
		for rank := 0; rank < 13; rank++ {
			if present[suit][rank] {
				run++
				if run >= n {
					return true
				}
			} else {
				run = 0
			}
		}
	}
	return false
}
