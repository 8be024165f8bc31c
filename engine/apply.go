package engine

import "github.com/deckforge/cardsim/genome"

// MoveOutcome summarizes the side effects of one applied move for
// instrumentation. Zero value means a quiet move.
type MoveOutcome struct {
	CapturedCards int  // cards taken off the tableau by this move
	Contested     bool // war tie left the pile in dispute
	Disrupted     bool // the move changed an opponent's hand or turn order
}

// ApplyMove executes one legal move for the current player, runs tableau
// resolution and triggered effects, then advances the turn. Betting moves
// must not reach here; the caller routes them to the betting machine.
func ApplyMove(s *GameState, move *LegalMove, g *genome.Genome) MoveOutcome {
	var out MoveOutcome
	if move.PhaseIndex < 0 || move.PhaseIndex >= len(g.Phases) {
		return out
	}

	player := s.CurrentPlayer

	switch p := g.Phases[move.PhaseIndex].(type) {
	case *genome.DrawPhase:
		count := p.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			if !s.DrawCard(player, p.Source) {
				break
			}
		}
		if p.Source == genome.LocationOpponentHand {
			out.Disrupted = true
		}

	case *genome.PlayPhase:
		if move.CardIndex >= 0 {
			out = s.applyCardPlay(move, g, player)
		}

	case *genome.DiscardPhase:
		if move.CardIndex >= 0 {
			s.PlayCard(player, move.CardIndex, genome.LocationDiscard, 0)
		}

	case *genome.ClaimPhase:
		if move.CardIndex >= 0 && move.CardIndex < len(s.Players[player].Hand) {
			rank := s.Players[player].Hand[move.CardIndex].Rank
			s.PlayCard(player, move.CardIndex, genome.LocationDiscard, 0)
			s.CurrentClaim = &Claim{ClaimerID: player, ClaimedRank: rank, ActualRank: rank}
		}
	}

	s.EndTurn()
	return out
}

func (s *GameState) applyCardPlay(move *LegalMove, g *genome.Genome, player uint8) MoveOutcome {
	var out MoveOutcome

	card := s.Players[player].Hand[move.CardIndex]
	if !s.PlayCard(player, move.CardIndex, move.Target, move.Pile) {
		return out
	}

	s.Players[player].Score += g.ScoreFor(card.Suit, card.Rank, genome.TriggerPlay)

	if move.Target == genome.LocationTableau {
		out.Disrupted = true // shared pile state changed under opponents
		switch s.TableauMode {
		case genome.TableauWar:
			out = s.resolveWar(move.Pile, player, out)
		case genome.TableauMatchRank:
			out.CapturedCards = s.resolveMatchRank(move.Pile, player, card, g)
		}
	}

	if effect := g.EffectFor(card.Rank); effect != nil {
		ApplyEffect(s, effect)
		out.Disrupted = true
	}

	return out
}

// resolveWar settles a war exchange once the second card of the exchange
// lands. The higher rank takes the entire pile into hand; ties either
// accumulate (next exchange plays for everything) or go to the player who
// completed the exchange, per the tie rule.
func (s *GameState) resolveWar(pile int, player uint8, out MoveOutcome) MoveOutcome {
	if pile >= len(s.Tableau) {
		return out
	}
	cards := s.Tableau[pile]
	if len(cards) < 2 || len(cards)%2 != 0 {
		return out // exchange still open
	}

	first := cards[len(cards)-2]
	second := cards[len(cards)-1]

	var winner uint8
	switch {
	case second.Rank > first.Rank:
		winner = player
	case first.Rank > second.Rank:
		winner = s.previousPlayer(player)
	default:
		if s.WarTieRule == genome.TieAccumulate {
			out.Contested = true
			return out // pile stays; next exchange plays for it all
		}
		winner = player
	}

	out.CapturedCards = len(cards)
	s.Players[winner].Hand = append(s.Players[winner].Hand, cards...)
	s.Tableau[pile] = s.Tableau[pile][:0]
	return out
}

// resolveMatchRank captures the pile when the played card matches the rank
// of the card beneath it, scoring capture triggers for every taken card.
func (s *GameState) resolveMatchRank(pile int, player uint8, played Card, g *genome.Genome) int {
	if pile >= len(s.Tableau) {
		return 0
	}
	cards := s.Tableau[pile]
	if len(cards) < 2 {
		return 0
	}
	beneath := cards[len(cards)-2]
	if beneath.Rank != played.Rank {
		return 0
	}

	captured := len(cards)
	for _, c := range cards {
		s.Players[player].Score += g.ScoreFor(c.Suit, c.Rank, genome.TriggerCapture)
	}
	s.Players[player].Hand = append(s.Players[player].Hand, cards...)
	s.Tableau[pile] = s.Tableau[pile][:0]
	return captured
}

func (s *GameState) previousPlayer(player uint8) uint8 {
	n := int(s.NumPlayers)
	return uint8((int(player) - int(s.PlayDirection) + n) % n)
}

// CheckWin evaluates win conditions in genome order and returns the winner,
// or -1 when the game continues. Player scans start at the current player so
// simultaneous qualifiers resolve toward the player whose move just landed.
func CheckWin(s *GameState, g *genome.Genome) int8 {
	for _, wc := range g.WinConditions {
		if w := checkOne(s, &wc); w >= 0 {
			return w
		}
	}
	return -1
}

func checkOne(s *GameState, wc *genome.WinCondition) int8 {
	n := int(s.NumPlayers)

	switch wc.Type {
	case genome.WinEmptyHand:
		if s.TurnNumber == 0 {
			return -1 // nothing dealt or played yet
		}
		for i := 0; i < n; i++ {
			p := s.playerFrom(i)
			if len(s.Players[p].Hand) == 0 {
				return int8(p)
			}
		}

	case genome.WinCaptureAll:
		for i := 0; i < n; i++ {
			p := s.playerFrom(i)
			if len(s.Players[p].Hand) == 0 {
				continue
			}
			othersEmpty := true
			for j := 0; j < n; j++ {
				if uint8(j) != p && len(s.Players[j].Hand) > 0 {
					othersEmpty = false
					break
				}
			}
			if othersEmpty {
				return int8(p)
			}
		}

	case genome.WinFirstToScore:
		for i := 0; i < n; i++ {
			p := s.playerFrom(i)
			if reachedThreshold(s.Players[p].Score, wc) {
				return int8(p)
			}
		}

	case genome.WinHighScore:
		triggered := false
		for i := 0; i < n; i++ {
			if reachedThreshold(s.Players[i].Score, wc) {
				triggered = true
				break
			}
		}
		if triggered {
			return s.bestScorer(wc.Direction)
		}

	case genome.WinAllHandsEmpty:
		for i := 0; i < n; i++ {
			if len(s.Players[i].Hand) > 0 {
				return -1
			}
		}
		if s.TurnNumber == 0 {
			return -1
		}
		return s.bestScorer(wc.Direction)
	}

	return -1
}

func reachedThreshold(score int32, wc *genome.WinCondition) bool {
	if wc.Direction == genome.LowestWins {
		return score <= wc.Threshold
	}
	return score >= wc.Threshold
}

// bestScorer returns the best score in the given direction. The scan starts
// at the current player and uses strict comparisons, so ties go to the
// active player.
func (s *GameState) bestScorer(dir genome.Direction) int8 {
	n := int(s.NumPlayers)
	best := s.playerFrom(0)
	for i := 1; i < n; i++ {
		p := s.playerFrom(i)
		if dir == genome.LowestWins {
			if s.Players[p].Score < s.Players[best].Score {
				best = p
			}
		} else if s.Players[p].Score > s.Players[best].Score {
			best = p
		}
	}
	return int8(best)
}

func (s *GameState) playerFrom(offset int) uint8 {
	return uint8((int(s.CurrentPlayer) + offset) % int(s.NumPlayers))
}

// ResolveTurnLimit picks a winner when the turn limit fires. Score-based
// genomes resolve to the best scorer; games with no score signal end in a
// draw (-1).
func ResolveTurnLimit(s *GameState, g *genome.Genome) int8 {
	dir := genome.HighestWins
	scoreBased := len(g.Scoring) > 0
	for _, wc := range g.WinConditions {
		switch wc.Type {
		case genome.WinFirstToScore, genome.WinHighScore, genome.WinAllHandsEmpty:
			scoreBased = true
			dir = wc.Direction
		}
	}
	if !scoreBased {
		return -1
	}

	// A flat scoreboard is still a draw.
	allEqual := true
	for i := 1; i < int(s.NumPlayers); i++ {
		if s.Players[i].Score != s.Players[0].Score {
			allEqual = false
			break
		}
	}
	if allEqual {
		return -1
	}
	return s.bestScorer(dir)
}
