package game

// MatchOutcome is the result of an arena round.
type MatchOutcome int

const (
	OutcomeInconclusive MatchOutcome = iota
	OutcomeRedVictory
	OutcomeBlueVictory
	OutcomeDraw
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeRedVictory:
		return "red_victory"
	case OutcomeBlueVictory:
		return "blue_victory"
	case OutcomeDraw:
		return "draw"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// Decided reports whether the round has ended.
func (o MatchOutcome) Decided() bool {
	return o == OutcomeRedVictory || o == OutcomeBlueVictory || o == OutcomeDraw
}

// Winner returns the winning side, or false for a draw or an open round.
func (o MatchOutcome) Winner() (Side, bool) {
	switch o {
	case OutcomeRedVictory:
		return SideRed, true
	case OutcomeBlueVictory:
		return SideBlue, true
	default:
		return 0, false
	}
}

// MatchOutcomeReason explains an outcome.
type MatchOutcomeReason struct {
	Outcome     MatchOutcome
	RedHealth   int
	BlueHealth  int
	Description string
}

// DetermineMatchOutcome scores a round from the two actors' health. A round
// with both actors standing is inconclusive; the description says who leads.
func DetermineMatchOutcome(red, blue *Actor) MatchOutcomeReason {
	r := MatchOutcomeReason{
		RedHealth:  red.Health(),
		BlueHealth: blue.Health(),
	}
	switch {
	case r.RedHealth == 0 && r.BlueHealth == 0:
		r.Outcome = OutcomeDraw
		r.Description = "mutual_annihilation"
	case r.BlueHealth == 0:
		r.Outcome = OutcomeRedVictory
		r.Description = "red_victory_blue_eliminated"
	case r.RedHealth == 0:
		r.Outcome = OutcomeBlueVictory
		r.Description = "blue_victory_red_eliminated"
	case r.RedHealth > r.BlueHealth:
		r.Outcome = OutcomeInconclusive
		r.Description = "open_red_leads_on_health"
	case r.BlueHealth > r.RedHealth:
		r.Outcome = OutcomeInconclusive
		r.Description = "open_blue_leads_on_health"
	default:
		r.Outcome = OutcomeInconclusive
		r.Description = "open_level"
	}
	return r
}
