package engine

import "github.com/deckforge/cardsim/genome"

// BettingAction is one poker-style action in a betting round.
type BettingAction int

const (
	BettingCheck BettingAction = iota
	BettingBet
	BettingCall
	BettingRaise
	BettingAllIn
	BettingFold
)

func (a BettingAction) String() string {
	switch a {
	case BettingCheck:
		return "check"
	case BettingBet:
		return "bet"
	case BettingCall:
		return "call"
	case BettingRaise:
		return "raise"
	case BettingAllIn:
		return "all-in"
	case BettingFold:
		return "fold"
	}
	return "unknown"
}

// GenerateBettingActions returns the actions open to a player. A player is
// never offered a bet, call or raise their stack cannot cover; short stacks
// get all-in instead.
func GenerateBettingActions(s *GameState, phase *genome.BettingPhase, playerID int) []BettingAction {
	player := &s.Players[playerID]
	actions := make([]BettingAction, 0, 4)

	if player.HasFolded || player.IsAllIn || player.Chips <= 0 {
		return actions
	}

	toCall := s.CurrentBet - player.CurrentBet

	if toCall == 0 {
		actions = append(actions, BettingCheck)
		if player.Chips >= int64(phase.MinBet) {
			actions = append(actions, BettingBet)
		} else {
			actions = append(actions, BettingAllIn)
		}
		return actions
	}

	if player.Chips >= toCall {
		actions = append(actions, BettingCall)
		if player.Chips >= toCall+int64(phase.MinBet) && s.RaiseCount < phase.MaxRaises {
			actions = append(actions, BettingRaise)
		}
	} else {
		actions = append(actions, BettingAllIn)
	}
	return append(actions, BettingFold)
}

// ApplyBettingAction executes one action, moving chips into the pot and
// updating the round state. A raise re-opens action for everyone else; any
// action that empties the stack leaves the player all-in.
func ApplyBettingAction(s *GameState, phase *genome.BettingPhase, playerID int, action BettingAction) {
	player := &s.Players[playerID]

	switch action {
	case BettingCheck:
		// No chips move.

	case BettingBet:
		amount := int64(phase.MinBet)
		player.Chips -= amount
		player.CurrentBet += amount
		s.Pot += amount
		s.CurrentBet = player.CurrentBet
		if player.Chips == 0 {
			player.IsAllIn = true
		}
		s.reopenAction(playerID)

	case BettingCall:
		toCall := s.CurrentBet - player.CurrentBet
		player.Chips -= toCall
		player.CurrentBet = s.CurrentBet
		s.Pot += toCall
		if player.Chips == 0 {
			player.IsAllIn = true
		}

	case BettingRaise:
		amount := s.CurrentBet - player.CurrentBet + int64(phase.MinBet)
		player.Chips -= amount
		player.CurrentBet += amount
		s.Pot += amount
		s.CurrentBet = player.CurrentBet
		s.RaiseCount++
		if player.Chips == 0 {
			player.IsAllIn = true
		}
		s.reopenAction(playerID)

	case BettingAllIn:
		amount := player.Chips
		player.Chips = 0
		player.CurrentBet += amount
		s.Pot += amount
		player.IsAllIn = true
		if player.CurrentBet > s.CurrentBet {
			s.CurrentBet = player.CurrentBet
			s.reopenAction(playerID)
		}

	case BettingFold:
		player.HasFolded = true
	}

	player.HasActed = true
}

// reopenAction marks everyone but the aggressor as needing to act again.
func (s *GameState) reopenAction(aggressor int) {
	for i := range s.Players {
		if i == aggressor {
			continue
		}
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.Chips > 0 {
			p.HasActed = false
		}
	}
}

// CountActivePlayers returns how many players have not folded.
func CountActivePlayers(s *GameState) int {
	count := 0
	for i := range s.Players {
		if !s.Players[i].HasFolded {
			count++
		}
	}
	return count
}

// CountActingPlayers returns how many players can still act: not folded,
// not all-in, chips behind.
func CountActingPlayers(s *GameState) int {
	count := 0
	for i := range s.Players {
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.Chips > 0 {
			count++
		}
	}
	return count
}

// AllBetsMatched reports whether every player still able to act has matched
// the current bet.
func AllBetsMatched(s *GameState) bool {
	for i := range s.Players {
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.CurrentBet != s.CurrentBet {
			return false
		}
	}
	return true
}

// BettingRoundOver reports whether the round has terminated: one player
// left standing, nobody able to act, or all bets matched with everyone
// having acted since the last raise.
func BettingRoundOver(s *GameState) bool {
	if CountActivePlayers(s) <= 1 {
		return true
	}
	if CountActingPlayers(s) == 0 {
		return true
	}
	if !AllBetsMatched(s) {
		return false
	}
	for i := range s.Players {
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.Chips > 0 && !p.HasActed {
			return false
		}
	}
	return true
}

// ResolveShowdown returns the players still in the hand. A single survivor
// wins outright; multiple survivors go to hand comparison.
func ResolveShowdown(s *GameState) []int {
	active := make([]int, 0, len(s.Players))
	for i := range s.Players {
		if !s.Players[i].HasFolded {
			active = append(active, i)
		}
	}
	return active
}

// ShowdownWinners compares surviving hands and returns all players tied for
// the strongest one, in positional order.
func ShowdownWinners(s *GameState, contenders []int) []int {
	if len(contenders) <= 1 {
		return contenders
	}
	best := -1.0
	winners := contenders[:0:0]
	for _, id := range contenders {
		strength := EvaluateHandStrength(s.Players[id].Hand)
		switch {
		case strength > best:
			best = strength
			winners = append(winners[:0], id)
		case strength == best:
			winners = append(winners, id)
		}
	}
	return winners
}

// AwardPot splits the pot evenly among winners; the remainder goes to the
// first positional winner.
func AwardPot(s *GameState, winnerIDs []int) {
	if len(winnerIDs) == 0 {
		return
	}
	share := s.Pot / int64(len(winnerIDs))
	remainder := s.Pot % int64(len(winnerIDs))
	for i, id := range winnerIDs {
		s.Players[id].Chips += share
		if i == 0 {
			s.Players[id].Chips += remainder
		}
	}
	s.Pot = 0
}

// ResetBettingRound clears per-round flags so the next round starts clean.
// Chips stay where the round left them.
func (s *GameState) ResetBettingRound() {
	for i := range s.Players {
		p := &s.Players[i]
		p.CurrentBet = 0
		p.HasFolded = false
		p.IsAllIn = false
		p.HasActed = false
	}
	s.CurrentBet = 0
	s.RaiseCount = 0
}

// RunBettingRound drives one full round from the current player, asking
// choose for each decision. The action budget bounds the round even if a
// chooser misbehaves.
func RunBettingRound(s *GameState, phase *genome.BettingPhase, choose func(playerID int, actions []BettingAction) BettingAction) {
	for i := range s.Players {
		p := &s.Players[i]
		if !p.HasFolded && !p.IsAllIn && p.Chips > 0 {
			p.HasActed = false
		}
	}

	n := int(s.NumPlayers)
	actor := int(s.CurrentPlayer)
	maxActions := n * (phase.MaxRaises + 2) * 2

	for i := 0; i < maxActions && !BettingRoundOver(s); i++ {
		p := &s.Players[actor]
		if p.HasFolded || p.IsAllIn || p.Chips <= 0 || p.HasActed {
			actor = (actor + 1) % n
			continue
		}

		actions := GenerateBettingActions(s, phase, actor)
		if len(actions) == 0 {
			p.HasActed = true
			actor = (actor + 1) % n
			continue
		}

		ApplyBettingAction(s, phase, actor, choose(actor, actions))
		actor = (actor + 1) % n
	}
}

// SettleBettingRound awards the pot and resets the round. Returns whether
// the pot went uncontested (everyone else folded) and whether a multi-way
// showdown decided it.
func SettleBettingRound(s *GameState) (foldWin, showdown bool) {
	contenders := ResolveShowdown(s)
	if len(contenders) == 1 {
		AwardPot(s, contenders)
		foldWin = true
	} else if len(contenders) > 1 {
		AwardPot(s, ShowdownWinners(s, contenders))
		showdown = true
	}
	s.ResetBettingRound()
	s.BettingComplete = true
	return foldWin, showdown
}

// EvaluateHandStrength scores a hand 0-1 from its best rank group and its
// highest card. Crude, but enough to order hands at a showdown.
func EvaluateHandStrength(hand []Card) float64 {
	if len(hand) == 0 {
		return 0
	}

	var counts [13]int
	maxCount := 0
	highRank := uint8(0)
	for _, c := range hand {
		counts[c.Rank]++
		if counts[c.Rank] > maxCount {
			maxCount = counts[c.Rank]
		}
		if c.Rank > highRank {
			highRank = c.Rank
		}
	}

	groupScore := float64(maxCount-1) * 0.2
	highScore := float64(highRank) / 12.0 * 0.4
	if total := groupScore + highScore; total < 1.0 {
		return total
	}
	return 1.0
}
