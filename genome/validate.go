package genome

import "fmt"

// ValidationError describes one genome consistency problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate returns all consistency problems found (empty = valid).
// Validation is advisory: a genome that decodes but fails validation can
// still be simulated, it will just tend to stalemate or draw.
func Validate(g *Genome) []ValidationError {
	var errs []ValidationError

	if g.PlayerCount < 2 || g.PlayerCount > 4 {
		errs = append(errs, ValidationError{
			Field:   "player_count",
			Message: fmt.Sprintf("must be 2-4, got %d", g.PlayerCount),
		})
	}

	players := g.PlayerCount
	if players <= 0 {
		players = 2
	}
	cardsNeeded := g.Setup.CardsPerPlayer*players + g.Setup.DealToTableau
	if cardsNeeded > StandardDeckSize {
		errs = append(errs, ValidationError{
			Field:   "setup.cards_per_player",
			Message: fmt.Sprintf("setup requires %d cards but deck only has %d", cardsNeeded, StandardDeckSize),
		})
	}

	if len(g.Phases) == 0 {
		errs = append(errs, ValidationError{
			Field:   "phases",
			Message: "turn structure has no phases",
		})
	}

	if len(g.WinConditions) == 0 {
		errs = append(errs, ValidationError{
			Field:   "win_conditions",
			Message: "no win condition defined; game can only end at turn limit",
		})
	}

	if g.Setup.TableauMode == TableauWar && players != 2 {
		errs = append(errs, ValidationError{
			Field:   "setup.tableau_mode",
			Message: "war tableau mode requires exactly 2 players",
		})
	}

	for i, p := range g.Phases {
		if bp, ok := p.(*BettingPhase); ok {
			if g.Setup.StartingChips <= 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("phases[%d]", i),
					Message: "betting phase without starting chips",
				})
			}
			if bp.MinBet <= 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("phases[%d].min_bet", i),
					Message: "betting phase needs a positive minimum bet",
				})
			}
		}
	}

	return errs
}
