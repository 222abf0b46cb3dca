package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/square-duel/internal/audio"
)

// Duel is a headless arena with no window and no sound. Input comes from a
// hand-set key state, optionally driven by scripted bots. It backs the tests
// and the headless-duel command.
type Duel struct {
	Bounds Bounds
	DT     float64

	arena *Arena
	keys  *keyState
	env   *sceneEnv
	rng   *rand.Rand
	bots  []*Bot

	verbose bool
	seed    int64
	audio   Audio
	logger  *zap.Logger

	// last is the transition the arena returned on the latest frame.
	last Transition
}

// duelOptionKind controls the pass in which an option is applied.
type duelOptionKind int

const (
	duelOptInfra duelOptionKind = iota // size, seed, verbose, bots: before the arena exists
	duelOptActor                       // actor placement: after spawn
)

// DuelOption is a builder function applied to a Duel during construction.
type DuelOption struct {
	kind duelOptionKind
	fn   func(*Duel)
}

// WithArenaSize sets the playfield dimensions.
func WithArenaSize(w, h float64) DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.Bounds = Bounds{W: w, H: h}
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.seed = seed
	}}
}

// WithVerbose records culls and wall bounces in the match log.
func WithVerbose(v bool) DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.verbose = v
	}}
}

// WithFrameDelta sets the fixed frame time in seconds.
func WithFrameDelta(dt float64) DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.DT = dt
	}}
}

// WithAudio routes sound cues to au instead of discarding them.
func WithAudio(au Audio) DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.audio = au
	}}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.logger = l
	}}
}

// WithBots lets scripted bots drive both sides.
func WithBots() DuelOption {
	return DuelOption{duelOptInfra, func(d *Duel) {
		d.bots = []*Bot{NewBot(SideRed), NewBot(SideBlue)}
	}}
}

// WithActorAt moves a side's actor after spawn.
func WithActorAt(side Side, x, y float64) DuelOption {
	return DuelOption{duelOptActor, func(d *Duel) {
		d.Actor(side).Pos = Vec2{X: x, Y: y}
	}}
}

// WithActorVelocity sets a side's starting velocity.
func WithActorVelocity(side Side, vx, vy float64) DuelOption {
	return DuelOption{duelOptActor, func(d *Duel) {
		d.Actor(side).Vel = Vec2{X: vx, Y: vy}
	}}
}

// NewDuel builds a Duel in two passes: infrastructure first, then actor
// placement on the freshly spawned arena.
func NewDuel(opts ...DuelOption) *Duel {
	d := &Duel{
		Bounds: Bounds{W: 1280, H: 720},
		DT:     1.0 / 60,
		seed:   1,
		audio:  audio.Silent{},
		logger: zap.NewNop(),
		keys:   newKeyState(),
	}
	for _, o := range opts {
		if o.kind == duelOptInfra {
			o.fn(d)
		}
	}
	d.rng = rand.New(rand.NewSource(d.seed)) // #nosec G404 -- deterministic harness
	d.env = &sceneEnv{
		audio:     d.audio,
		input:     d.keys,
		bounds:    d.Bounds,
		logger:    d.logger,
		rng:       d.rng,
		verbose:   d.verbose,
		clipboard: func(string) error { return nil },
	}
	d.arena = newArena(d.env)
	for _, o := range opts {
		if o.kind == duelOptActor {
			o.fn(d)
		}
	}
	return d
}

func (d *Duel) Arena() *Arena { return d.arena }

// Actor returns the actor on the given side.
func (d *Duel) Actor(side Side) *Actor {
	if side == SideBlue {
		return d.arena.blue
	}
	return d.arena.red
}

// LastTransition returns what the arena asked for on the latest frame.
func (d *Duel) LastTransition() Transition { return d.last }

// Hold keeps a key down until Release.
func (d *Duel) Hold(keys ...ebiten.Key) {
	for _, k := range keys {
		d.keys.down[k] = true
	}
}

// Release lifts held keys.
func (d *Duel) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(d.keys.down, k)
	}
}

// Press marks a key as just pressed for the next frame only.
func (d *Duel) Press(k ebiten.Key) {
	d.keys.pressed[k] = true
}

// Step runs one frame and returns the arena's transition.
func (d *Duel) Step() Transition {
	for _, b := range d.bots {
		b.Drive(d.keys, d.rng, d.arena.frame)
	}
	d.last = d.arena.Update(d.DT)
	d.keys.endFrame()
	return d.last
}

// RunFrames advances n frames, stopping early if the arena asks to leave.
func (d *Duel) RunFrames(n int) {
	for i := 0; i < n; i++ {
		if d.Step() != TransitionNone {
			return
		}
	}
}

// RunUntil advances up to maxFrames, stopping when predicate returns true.
// Returns the frame at which the predicate held, or -1.
func (d *Duel) RunUntil(predicate func(*Duel) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		d.Step()
		if predicate(d) {
			return d.arena.frame
		}
	}
	return -1
}

// DuelResult summarises a finished or abandoned duel.
type DuelResult struct {
	MatchID   string
	Frames    int
	Outcome   MatchOutcomeReason
	RedShots  int
	BlueShots int
	RedHits   int // hits landed by red
	BlueHits  int
	Bounces   int
	InFlight  int
}

// Result scores the duel as it stands.
func (d *Duel) Result() DuelResult {
	a := d.arena
	outcome := a.outcome
	if !a.Over() {
		outcome = DetermineMatchOutcome(a.red, a.blue)
	}
	red, blue := SideRed.String(), SideBlue.String()
	return DuelResult{
		MatchID:   a.matchID,
		Frames:    a.frame,
		Outcome:   outcome,
		RedShots:  a.log.Count(logShot, red),
		BlueShots: a.log.Count(logShot, blue),
		RedHits:   a.log.Count(logHit, red),
		BlueHits:  a.log.Count(logHit, blue),
		Bounces:   a.log.Count(logActorBounce, ""),
		InFlight:  len(a.projectiles),
	}
}

// botRethink is how many frames a bot keeps its current plan.
const botRethink = 20

// Bot drives one side with random movement. It always holds fire.
type Bot struct {
	controls Controls
	held     []ebiten.Key
	planned  bool
}

func NewBot(side Side) *Bot {
	return &Bot{controls: DefaultControls(side)}
}

// Drive updates the keys the bot holds. Plans change every botRethink frames.
func (b *Bot) Drive(ks *keyState, rng *rand.Rand, frame int) {
	ks.down[b.controls.Fire] = true
	if b.planned && frame%botRethink != 0 {
		return
	}
	b.planned = true
	for _, k := range b.held {
		delete(ks.down, k)
	}
	b.held = b.held[:0]
	dirs := []ebiten.Key{b.controls.Up, b.controls.Down, b.controls.Left, b.controls.Right}
	for _, k := range dirs {
		if rng.Intn(3) == 0 {
			b.held = append(b.held, k)
			ks.down[k] = true
		}
	}
}
