package game

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/square-duel/internal/audio"
)

// noticeDuration is how long a HUD notice stays on screen, in seconds.
const noticeDuration = 2.0

// Arena is the play scene: two actors and every live projectile.
type Arena struct {
	escapeToMenu
	env *sceneEnv

	red         *Actor
	blue        *Actor
	projectiles []*Projectile

	matchID   string
	frame     int
	lastTrack int // arena track index last queued, -1 before the first
	log       *MatchLog
	feed      *EventFeed
	outcome   MatchOutcomeReason

	notice    string
	noticeTTL float64
}

func newArena(env *sceneEnv) *Arena {
	a := &Arena{
		escapeToMenu: escapeToMenu{input: env.input},
		env:          env,
		red:          NewActor(SideRed, env.bounds, env.audio, env.input, DefaultControls(SideRed)),
		blue:         NewActor(SideBlue, env.bounds, env.audio, env.input, DefaultControls(SideBlue)),
		matchID:      uuid.NewString(),
		lastTrack:    -1,
		log:          NewMatchLog(env.verbose),
		feed:         NewEventFeed(),
	}
	a.red.onWallBounce = a.logWallBounce
	a.blue.onWallBounce = a.logWallBounce
	env.logger.Info("arena round started",
		zap.String("match_id", a.matchID),
		zap.Float64("width", env.bounds.W),
		zap.Float64("height", env.bounds.H),
	)
	return a
}

func (a *Arena) MatchID() string { return a.matchID }
func (a *Arena) Frame() int { return a.frame }
func (a *Arena) Red() *Actor { return a.red }
func (a *Arena) Blue() *Actor { return a.blue }
func (a *Arena) Log() *MatchLog { return a.log }
func (a *Arena) Feed() *EventFeed { return a.feed }
func (a *Arena) Outcome() MatchOutcomeReason { return a.outcome }

// Projectiles returns the live projectiles in insertion order.
func (a *Arena) Projectiles() []*Projectile { return a.projectiles }

// Over reports whether the round has been decided. A decided round is frozen
// until the player leaves.
func (a *Arena) Over() bool { return a.outcome.Outcome.Decided() }

// Spawn adds a projectile to the arena as if it had just been fired.
func (a *Arena) Spawn(p *Projectile) {
	a.projectiles = append(a.projectiles, p)
}

// Update advances the round by one frame. The order of the steps is fixed;
// later steps observe the results of earlier ones within the same frame.
func (a *Arena) Update(dt float64) Transition {
	// 1. Common input: leaving the arena ends the frame immediately.
	if t := a.HandleCommonInput(); t != TransitionNone {
		return t
	}
	a.frame++
	a.noticeTTL = max(0, a.noticeTTL-dt)
	if a.input.IsKeyJustPressed(ebiten.KeyF9) {
		a.copyReport()
	}
	if a.input.IsKeyJustPressed(ebiten.KeyTab) {
		a.feed.Toggle()
	}

	// 2. Music: keep an arena track playing.
	a.pickTrack()

	if a.Over() {
		return TransitionNone
	}

	// 3. Actors, first then second.
	a.red.Update(dt)
	a.blue.Update(dt)

	// 4. Actor-actor knockback.
	ra, _ := a.red.Collider()
	rb, _ := a.blue.Collider()
	if ra.Overlaps(rb) {
		a.red.OnActorHit(a.blue)
		a.event("--", logActorBounce, "actors collided", a.red.Pos.Sub(a.blue.Pos).Len())
	}

	// 5. Fire while the fire key is held; the cooldown limits the rate.
	a.fire(a.red)
	a.fire(a.blue)

	// 6. Projectile motion.
	for _, p := range a.projectiles {
		p.Update(dt)
	}

	// 7. Cull destroyed and escaped projectiles before hit tests.
	a.cull()

	// 8. Hits. A projectile damages at most one actor and never its owner's side.
	a.resolveHits()

	// 9. Round over once either actor is out of health.
	if !a.red.Alive() || !a.blue.Alive() {
		a.finish()
	}
	return TransitionNone
}

func (a *Arena) fire(actor *Actor) {
	if !a.input.IsKeyDown(actor.Controls().Fire) {
		return
	}
	p, ok := actor.Shoot()
	if !ok {
		return
	}
	a.Spawn(p)
	a.log.Add(a.frame, actor.Side().String(), logShot,
		fmt.Sprintf("from (%.0f,%.0f) vel (%.0f,%.0f)", p.Pos.X, p.Pos.Y, p.Velocity().X, p.Velocity().Y),
		actor.Rotation())
}

func (a *Arena) cull() {
	live := a.projectiles[:0]
	for _, p := range a.projectiles {
		if p.Destroyed || !a.env.bounds.Inside(p.Pos) {
			a.log.AddVerbose(a.frame, p.Side.String(), logCull,
				fmt.Sprintf("at (%.0f,%.0f) destroyed=%t", p.Pos.X, p.Pos.Y, p.Destroyed), 0)
			continue
		}
		live = append(live, p)
	}
	clear(a.projectiles[len(live):])
	a.projectiles = live
}

func (a *Arena) resolveHits() {
	for _, p := range a.projectiles {
		pr, _ := p.Collider()
		for _, actor := range []*Actor{a.red, a.blue} {
			if p.Side == actor.Side() {
				continue
			}
			ar, _ := actor.Collider()
			if !pr.Overlaps(ar) {
				continue
			}
			actor.OnProjectileHit(p)
			p.Destroyed = true
			a.event(p.Side.String(), logHit,
				fmt.Sprintf("%s health %d", actor.Side(), actor.Health()), float64(actor.Health()))
			break
		}
	}
}

// pickTrack queues a random arena track whenever the current one has finished,
// avoiding an immediate repeat.
func (a *Arena) pickTrack() {
	if !a.env.audio.ThemeDone() {
		return
	}
	idx := a.env.rng.Intn(audio.ArenaThemeCount)
	if a.lastTrack >= 0 {
		idx = a.env.rng.Intn(audio.ArenaThemeCount - 1)
		if idx >= a.lastTrack {
			idx++
		}
	}
	a.lastTrack = idx
	a.env.audio.QueueTheme(audio.ArenaTheme(idx))
}

func (a *Arena) finish() {
	a.outcome = DetermineMatchOutcome(a.red, a.blue)
	a.event("--", logRoundOver, a.outcome.Description, 0)
	a.env.logger.Info("round over",
		zap.String("match_id", a.matchID),
		zap.Stringer("outcome", a.outcome.Outcome),
		zap.Int("frames", a.frame),
		zap.Int("red_health", a.outcome.RedHealth),
		zap.Int("blue_health", a.outcome.BlueHealth),
		zap.Int("red_shots", a.log.Count(logShot, SideRed.String())),
		zap.Int("blue_shots", a.log.Count(logShot, SideBlue.String())),
	)
}

// event records a notable entry in both the match log and the on-screen feed.
func (a *Arena) event(side, category, value string, numVal float64) {
	a.log.Add(a.frame, side, category, value, numVal)
	a.feed.Add(a.frame, side, category+" "+value)
}

func (a *Arena) logWallBounce(actor *Actor, edge string) {
	a.log.AddVerbose(a.frame, actor.Side().String(), logWallBounce, edge, actor.Vel.Len())
}

func (a *Arena) copyReport() {
	if err := a.env.clipboard(a.Report()); err != nil {
		a.env.logger.Warn("copy match report", zap.Error(err))
		a.showNotice("clipboard unavailable")
		return
	}
	a.showNotice("report copied")
}

func (a *Arena) showNotice(s string) {
	a.notice = s
	a.noticeTTL = noticeDuration
}

// entities returns everything drawn in the arena, back to front.
func (a *Arena) entities() []Entity {
	out := make([]Entity, 0, 2+len(a.projectiles))
	out = append(out, a.red, a.blue)
	for _, p := range a.projectiles {
		out = append(out, p)
	}
	return out
}

var (
	arenaBackground = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	hudText         = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// Draw clears the frame, then draws both actors, the projectiles, and the HUD.
func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(arenaBackground)
	for _, e := range a.entities() {
		e.Draw(screen)
	}

	w, h := a.env.bounds.W, a.env.bounds.H
	a.feed.Draw(screen, 8, int(h)-8)
	if a.Over() {
		drawCenteredText(screen, a.banner(), w/2, h/2, w*0.6, h*0.15, hudText)
		drawCenteredText(screen, "ESC: menu   F9: copy report", w/2, h/2+h*0.12, w*0.4, h*0.05, hudText)
	}
	if a.noticeTTL > 0 {
		drawCenteredText(screen, a.notice, w/2, h*0.05, w*0.3, h*0.04, hudText)
	}
}

func (a *Arena) banner() string {
	if side, ok := a.outcome.Outcome.Winner(); ok {
		return fmt.Sprintf("%s WINS", sideLabel(side))
	}
	return "DRAW"
}
