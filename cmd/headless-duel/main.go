package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/square-duel/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	result   game.DuelResult
	// decidedAt is the frame the round ended, or -1 if it ran out of frames.
	decidedAt int
}

func main() {
	var runs int
	var frames int
	var dt float64
	var seedBase int64
	var seedStep int64
	var width, height float64

	flag.IntVar(&runs, "runs", 5, "number of headless duels")
	flag.IntVar(&frames, "frames", 3600, "maximum frames per duel")
	flag.Float64Var(&dt, "dt", 1.0/60, "frame time in seconds")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&width, "width", 1280, "arena width")
	flag.Float64Var(&height, "height", 720, "arena height")
	flag.Parse()

	if runs <= 0 {
		fmt.Fprintln(os.Stderr, "error: -runs must be > 0")
		os.Exit(2)
	}
	if frames <= 0 {
		fmt.Fprintln(os.Stderr, "error: -frames must be > 0")
		os.Exit(2)
	}
	if dt <= 0 {
		fmt.Fprintln(os.Stderr, "error: -dt must be > 0")
		os.Exit(2)
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("runs=%d frames=%d dt=%.4f arena=%.0fx%.0f seed_base=%d seed_step=%d\n\n",
		runs, frames, dt, width, height, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runDuel(i+1, seed, frames, dt, width, height)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runDuel(runIndex int, seed int64, frames int, dt, width, height float64) runStats {
	d := game.NewDuel(
		game.WithArenaSize(width, height),
		game.WithSeed(seed),
		game.WithFrameDelta(dt),
		game.WithBots(),
	)
	decidedAt := d.RunUntil(func(d *game.Duel) bool { return d.Arena().Over() }, frames)
	return runStats{
		runIndex:  runIndex,
		seed:      seed,
		result:    d.Result(),
		decidedAt: decidedAt,
	}
}

func printRun(rs runStats) {
	r := rs.result
	fmt.Printf("--- Run %d (seed=%d match=%s) ---\n", rs.runIndex, rs.seed, r.MatchID)
	fmt.Printf("outcome=%s reason=%s decided_at=%d frames=%d\n",
		r.Outcome.Outcome, r.Outcome.Description, rs.decidedAt, r.Frames)
	fmt.Printf("health: red=%d blue=%d\n", r.Outcome.RedHealth, r.Outcome.BlueHealth)
	fmt.Printf("shots: red=%d blue=%d  hits: red=%d blue=%d  accuracy: red=%s blue=%s\n",
		r.RedShots, r.BlueShots, r.RedHits, r.BlueHits,
		accuracy(r.RedHits, r.RedShots), accuracy(r.BlueHits, r.BlueShots))
	fmt.Printf("actor_bounces=%d in_flight=%d\n\n", r.Bounces, r.InFlight)
}

type aggregate struct {
	runs       int
	outcomes   map[game.MatchOutcome]int
	shots      [2]int
	hits       [2]int
	bounces    int
	decidedAts []int
}

func collect(all []runStats) aggregate {
	ag := aggregate{runs: len(all), outcomes: map[game.MatchOutcome]int{}}
	for _, rs := range all {
		r := rs.result
		ag.outcomes[r.Outcome.Outcome]++
		ag.shots[game.SideRed] += r.RedShots
		ag.shots[game.SideBlue] += r.BlueShots
		ag.hits[game.SideRed] += r.RedHits
		ag.hits[game.SideBlue] += r.BlueHits
		ag.bounces += r.Bounces
		if rs.decidedAt >= 0 {
			ag.decidedAts = append(ag.decidedAts, rs.decidedAt)
		}
	}
	return ag
}

func printAggregate(all []runStats) {
	ag := collect(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", ag.runs)
	fmt.Printf("outcomes: red_victory=%d blue_victory=%d draw=%d inconclusive=%d\n",
		ag.outcomes[game.OutcomeRedVictory], ag.outcomes[game.OutcomeBlueVictory],
		ag.outcomes[game.OutcomeDraw], ag.outcomes[game.OutcomeInconclusive])
	fmt.Printf("avg_shots_per_run: red=%.1f blue=%.1f\n",
		avg(ag.shots[game.SideRed], ag.runs), avg(ag.shots[game.SideBlue], ag.runs))
	fmt.Printf("avg_hits_per_run: red=%.1f blue=%.1f\n",
		avg(ag.hits[game.SideRed], ag.runs), avg(ag.hits[game.SideBlue], ag.runs))
	fmt.Printf("avg_actor_bounces_per_run=%.1f avg_decided_at=%s\n",
		avg(ag.bounces, ag.runs), avgFrameString(ag.decidedAts))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func accuracy(hits, shots int) string {
	if shots <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(hits)/float64(shots)*100)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
