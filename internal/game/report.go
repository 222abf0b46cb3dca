package game

import (
	"fmt"
	"strings"
)

// reportTailLines is how many trailing match log lines a report includes.
const reportTailLines = 40

func sideLabel(s Side) string {
	return strings.ToUpper(s.String())
}

// Report returns a plain-text summary of the round, suitable for pasting
// into a bug report.
func (a *Arena) Report() string {
	outcome := a.outcome
	if !a.Over() {
		outcome = DetermineMatchOutcome(a.red, a.blue)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- square-duel match report ---\n")
	fmt.Fprintf(&b, "match=%s frames=%d arena=%.0fx%.0f\n", a.matchID, a.frame, a.env.bounds.W, a.env.bounds.H)
	fmt.Fprintf(&b, "outcome=%s (%s)\n\n", outcome.Outcome, outcome.Description)

	for _, actor := range []*Actor{a.red, a.blue} {
		side := actor.Side().String()
		fmt.Fprintf(&b, "%-4s health=%3d shots=%d hits_landed=%d pos=(%.0f,%.0f) vel=(%.0f,%.0f)\n",
			side,
			actor.Health(),
			a.log.Count(logShot, side),
			a.log.Count(logHit, side),
			actor.Pos.X, actor.Pos.Y,
			actor.Vel.X, actor.Vel.Y,
		)
	}
	fmt.Fprintf(&b, "live_projectiles=%d actor_bounces=%d\n", len(a.projectiles), a.log.Count(logActorBounce, ""))

	entries := a.log.Entries()
	if len(entries) == 0 {
		return b.String()
	}
	from := max(0, len(entries)-reportTailLines)
	fmt.Fprintf(&b, "\nlog (last %d of %d):\n", len(entries)-from, len(entries))
	for _, e := range entries[from:] {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
