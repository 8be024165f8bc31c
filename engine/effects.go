package engine

import "github.com/deckforge/cardsim/genome"

// ApplyEffect executes a rank-triggered special effect. Unknown effect types
// are ignored for forward compatibility.
func ApplyEffect(s *GameState, e *genome.Effect) {
	switch e.Type {
	case genome.EffectSkipNext:
		s.SkipCount += e.Value
		// Cap below a full cycle so turns cannot loop forever.
		if max := s.NumPlayers - 1; s.SkipCount > max {
			s.SkipCount = max
		}

	case genome.EffectReverse:
		s.PlayDirection *= -1

	case genome.EffectDrawCards:
		s.forEachTarget(e.Target, func(target uint8) {
			for i := uint8(0); i < e.Value; i++ {
				if !s.DrawCard(target, genome.LocationDeck) {
					break
				}
			}
		})

	case genome.EffectExtraTurn:
		// Skipping everyone else brings the turn back around.
		s.SkipCount = s.NumPlayers - 1

	case genome.EffectForceDiscard:
		s.forEachTarget(e.Target, func(target uint8) {
			hand := &s.Players[target].Hand
			n := int(e.Value)
			if n > len(*hand) {
				n = len(*hand)
			}
			for i := 0; i < n; i++ {
				card := (*hand)[len(*hand)-1]
				*hand = (*hand)[:len(*hand)-1]
				s.Discard = append(s.Discard, card)
			}
		})
	}
}

func (s *GameState) forEachTarget(target genome.EffectTarget, fn func(uint8)) {
	current := int(s.CurrentPlayer)
	n := int(s.NumPlayers)
	dir := int(s.PlayDirection)

	switch target {
	case genome.TargetNextPlayer:
		fn(uint8((current + dir + n) % n))
	case genome.TargetPrevPlayer:
		fn(uint8((current - dir + n) % n))
	case genome.TargetAllOpponents:
		for i := 0; i < n; i++ {
			if i != current {
				fn(uint8(i))
			}
		}
	}
}
