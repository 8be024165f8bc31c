package engine

import "github.com/deckforge/cardsim/genome"

// DrawCard moves the top card of a shared source into the player's hand.
// Returns false when the source is empty or invalid.
func (s *GameState) DrawCard(playerID uint8, source genome.Location) bool {
	if int(playerID) >= len(s.Players) {
		return false
	}

	var src *[]Card
	switch source {
	case genome.LocationDeck:
		src = &s.Deck
	case genome.LocationDiscard:
		src = &s.Discard
	case genome.LocationOpponentHand:
		opponent := (playerID + 1) % s.NumPlayers
		src = &s.Players[opponent].Hand
	default:
		return false
	}

	if len(*src) == 0 {
		return false
	}

	card := (*src)[len(*src)-1]
	*src = (*src)[:len(*src)-1]
	s.Players[playerID].Hand = append(s.Players[playerID].Hand, card)
	return true
}

// PlayCard moves one card from the player's hand to a target location.
// pile selects the tableau pile for multi-pile games.
func (s *GameState) PlayCard(playerID uint8, cardIndex int, target genome.Location, pile int) bool {
	if int(playerID) >= len(s.Players) {
		return false
	}
	hand := &s.Players[playerID].Hand
	if cardIndex < 0 || cardIndex >= len(*hand) {
		return false
	}

	card := (*hand)[cardIndex]
	*hand = append((*hand)[:cardIndex], (*hand)[cardIndex+1:]...)

	switch target {
	case genome.LocationDiscard:
		s.Discard = append(s.Discard, card)
	case genome.LocationTableau:
		s.ensurePiles(pile + 1)
		s.Tableau[pile] = append(s.Tableau[pile], card)
	default:
		// Put it back rather than lose the card.
		*hand = append(*hand, card)
		return false
	}
	return true
}

func (s *GameState) ensurePiles(n int) {
	for len(s.Tableau) < n {
		s.Tableau = append(s.Tableau, make([]Card, 0, 8))
	}
}
