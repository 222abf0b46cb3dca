package main

import (
	"testing"

	"github.com/Garsondee/square-duel/internal/game"
)

func TestAvg(t *testing.T) {
	if got := avg(10, 4); got != 2.5 {
		t.Fatalf("avg(10,4) = %v, want 2.5", got)
	}
	if got := avg(10, 0); got != 0 {
		t.Fatalf("avg with zero runs = %v, want 0", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := accuracy(1, 4); got != "25.0%" {
		t.Fatalf("accuracy(1,4) = %q", got)
	}
	if got := accuracy(0, 0); got != "n/a" {
		t.Fatalf("accuracy with no shots = %q", got)
	}
}

func TestAvgFrameString_EmptyIsNA(t *testing.T) {
	if got := avgFrameString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := avgFrameString([]int{10, 20}); got != "15.0" {
		t.Fatalf("expected 15.0, got %q", got)
	}
}

func TestCollect_TalliesOutcomesAndSides(t *testing.T) {
	all := []runStats{
		{result: game.DuelResult{
			Outcome:  game.MatchOutcomeReason{Outcome: game.OutcomeRedVictory},
			RedShots: 10, BlueShots: 4, RedHits: 3, BlueHits: 1, Bounces: 2,
		}, decidedAt: 100},
		{result: game.DuelResult{
			Outcome:  game.MatchOutcomeReason{Outcome: game.OutcomeInconclusive},
			RedShots: 2, BlueShots: 6, RedHits: 0, BlueHits: 2,
		}, decidedAt: -1},
	}

	ag := collect(all)
	if ag.runs != 2 {
		t.Fatalf("runs = %d, want 2", ag.runs)
	}
	if ag.outcomes[game.OutcomeRedVictory] != 1 || ag.outcomes[game.OutcomeInconclusive] != 1 {
		t.Fatalf("unexpected outcome tally: %v", ag.outcomes)
	}
	if ag.shots[game.SideRed] != 12 || ag.shots[game.SideBlue] != 10 {
		t.Fatalf("unexpected shot totals: %v", ag.shots)
	}
	if ag.hits[game.SideRed] != 3 || ag.hits[game.SideBlue] != 3 {
		t.Fatalf("unexpected hit totals: %v", ag.hits)
	}
	if len(ag.decidedAts) != 1 || ag.decidedAts[0] != 100 {
		t.Fatalf("expected only the decided run to count, got %v", ag.decidedAts)
	}
}

func TestRunDuel_DeterministicForSeed(t *testing.T) {
	a := runDuel(1, 7, 600, 1.0/60, 1280, 720)
	b := runDuel(1, 7, 600, 1.0/60, 1280, 720)

	ra, rb := a.result, b.result
	ra.MatchID, rb.MatchID = "", ""
	if ra != rb {
		t.Fatalf("same seed produced different duels:\n%+v\n%+v", ra, rb)
	}
	if ra.RedShots == 0 || ra.BlueShots == 0 {
		t.Fatalf("bots hold fire, expected shots from both sides: %+v", ra)
	}
}
