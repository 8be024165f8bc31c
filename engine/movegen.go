package engine

import "github.com/deckforge/cardsim/genome"

// Sentinel CardIndex values for non-card moves.
const (
	CardNone    = -1 // phase acts without selecting a card (draw)
	CardPass    = -2 // explicit pass on a pass-if-unable play phase
	CardBetting = -3 // betting round pending; driven by the betting machine
)

// LegalMove is one action the active player may take. A move names the phase
// it executes; applying any move ends the turn.
type LegalMove struct {
	PhaseIndex int
	CardIndex  int
	Target     genome.Location
	Pile       int // tableau pile for multi-pile sequence games
}

// IsPass reports whether the move plays no card.
func (m *LegalMove) IsPass() bool { return m.CardIndex == CardPass }

// IsBetting reports whether the move hands control to the betting machine.
func (m *LegalMove) IsBetting() bool { return m.CardIndex == CardBetting }

// GenerateLegalMoves returns every valid move for the current player across
// the genome's turn phases. An empty result on a genome with a mandatory
// phase means the game is stalemated; the caller classifies that, this
// function never panics.
func GenerateLegalMoves(s *GameState, g *genome.Genome) []LegalMove {
	moves := make([]LegalMove, 0, 16)
	player := s.CurrentPlayer

	for phaseIdx, phase := range g.Phases {
		switch p := phase.(type) {
		case *genome.DrawPhase:
			if !EvalCondition(s, p.Condition, player, nil) {
				continue
			}
			if s.canDraw(p.Source, player) || p.Mandatory {
				moves = append(moves, LegalMove{
					PhaseIndex: phaseIdx,
					CardIndex:  CardNone,
					Target:     p.Source,
				})
			}

		case *genome.PlayPhase:
			moves = appendPlayMoves(moves, s, g, p, phaseIdx, player)

		case *genome.DiscardPhase:
			for cardIdx := range s.Players[player].Hand {
				moves = append(moves, LegalMove{
					PhaseIndex: phaseIdx,
					CardIndex:  cardIdx,
					Target:     genome.LocationDiscard,
				})
			}

		case *genome.BettingPhase:
			if g.Setup.StartingChips > 0 && !s.BettingComplete {
				moves = append(moves, LegalMove{
					PhaseIndex: phaseIdx,
					CardIndex:  CardBetting,
				})
			}

		case *genome.ClaimPhase:
			for cardIdx := range s.Players[player].Hand {
				moves = append(moves, LegalMove{
					PhaseIndex: phaseIdx,
					CardIndex:  cardIdx,
					Target:     genome.LocationDiscard,
				})
			}
		}
	}

	return moves
}

func (s *GameState) canDraw(source genome.Location, player uint8) bool {
	switch source {
	case genome.LocationDeck:
		return len(s.Deck) > 0
	case genome.LocationDiscard:
		return len(s.Discard) > 0
	case genome.LocationOpponentHand:
		opponent := (player + 1) % s.NumPlayers
		return len(s.Players[opponent].Hand) > 0
	}
	return false
}

func appendPlayMoves(moves []LegalMove, s *GameState, g *genome.Genome, p *genome.PlayPhase, phaseIdx int, player uint8) []LegalMove {
	hand := s.Players[player].Hand
	found := false

	for cardIdx := range hand {
		card := &hand[cardIdx]
		if !EvalCondition(s, p.Condition, player, card) {
			continue
		}

		if p.Target == genome.LocationTableau && s.TableauMode == genome.TableauSequence {
			for pile := 0; pile < s.pileCount(g); pile++ {
				if s.sequencePlayable(card, pile) {
					moves = append(moves, LegalMove{
						PhaseIndex: phaseIdx,
						CardIndex:  cardIdx,
						Target:     p.Target,
						Pile:       pile,
					})
					found = true
				}
			}
			continue
		}

		moves = append(moves, LegalMove{
			PhaseIndex: phaseIdx,
			CardIndex:  cardIdx,
			Target:     p.Target,
		})
		found = true
	}

	if !found && p.Mandatory && p.PassIfUnable {
		moves = append(moves, LegalMove{
			PhaseIndex: phaseIdx,
			CardIndex:  CardPass,
			Target:     p.Target,
		})
	}
	return moves
}

func (s *GameState) pileCount(g *genome.Genome) int {
	n := g.Setup.TableauPiles
	if n <= 0 {
		n = 1
	}
	return n
}

// sequencePlayable reports whether a card may extend the pile: empty piles
// accept anything, otherwise the suit must match and the rank must be
// adjacent in the allowed direction. Ranks never wrap around.
func (s *GameState) sequencePlayable(card *Card, pile int) bool {
	if pile >= len(s.Tableau) || len(s.Tableau[pile]) == 0 {
		return true
	}
	top := s.Tableau[pile][len(s.Tableau[pile])-1]
	if card.Suit != top.Suit {
		return false
	}

	ascending := top.Rank < 12 && card.Rank == top.Rank+1
	descending := top.Rank > 0 && card.Rank == top.Rank-1

	switch s.SequenceDirection {
	case genome.SeqAscending:
		return ascending
	case genome.SeqDescending:
		return descending
	case genome.SeqEither:
		return ascending || descending
	}
	return false
}
