package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/square-duel/internal/audio"
)

const (
	actorSide        = 80.0      // px, collider edge length
	actorStartHealth = 100       // hit points at spawn
	rotationRate     = 1.0 / 60  // degrees of tilt per px/s of vertical speed
	actorDrag        = 4.0       // velocity divisor per second
	actorForce       = 1000.0    // px/s^2 at full input
	bounceForce      = 200.0     // px/s impulse on actor-actor contact
	launchSpeed      = 500.0     // px/s projectile speed along the aim direction
	shootCooldown    = 0.1       // seconds between shots
	actorDrawScale   = 1.0 / 1.5 // polygon circumradius relative to the collider edge
)

// Side is an actor's fixed allegiance. It picks the spawn side, the control
// bindings, the rotation sign and which projectiles can hurt the actor.
type Side int

const (
	SideRed Side = iota
	SideBlue
)

func (s Side) String() string {
	switch s {
	case SideRed:
		return "red"
	case SideBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Color returns the side's draw colour.
func (s Side) Color() color.RGBA {
	if s == SideBlue {
		return color.RGBA{R: 30, G: 80, B: 220, A: 255}
	}
	return color.RGBA{R: 220, G: 30, B: 30, A: 255}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideBlue {
		return SideRed
	}
	return SideBlue
}

// sign is +1 for red and -1 for blue; blue faces left.
func (s Side) sign() float64 {
	if s == SideBlue {
		return -1
	}
	return 1
}

// spawnFraction is the horizontal spawn position as a fraction of width.
func (s Side) spawnFraction() float64 {
	if s == SideBlue {
		return 0.75
	}
	return 0.25
}

// Actor is a player-controlled square driven by force and drag.
type Actor struct {
	side   Side
	Pos    Vec2
	Vel    Vec2
	health int
	// cooldown is the time left before the next shot is allowed, in [0, shootCooldown].
	cooldown float64

	bounds   Bounds
	audio    Audio
	input    Input
	controls Controls

	// onWallBounce is called once per edge crossed. Used by the arena log.
	onWallBounce func(a *Actor, edge string)

	sprite *ebiten.Image
}

// NewActor spawns an actor on its side of the playfield, vertically centred,
// at rest and with full health.
func NewActor(side Side, bounds Bounds, au Audio, in Input, controls Controls) *Actor {
	return &Actor{
		side:     side,
		Pos:      Vec2{X: bounds.W * side.spawnFraction(), Y: bounds.H / 2},
		health:   actorStartHealth,
		bounds:   bounds,
		audio:    au,
		input:    in,
		controls: controls,
	}
}

func (a *Actor) Side() Side { return a.side }

func (a *Actor) Health() int { return a.health }

func (a *Actor) Cooldown() float64 { return a.cooldown }

func (a *Actor) Controls() Controls { return a.controls }

// Alive reports whether the actor has health left.
func (a *Actor) Alive() bool { return a.health > 0 }

// acceleration converts held direction keys into a force. Diagonals are
// normalised; no input is exactly zero.
func (a *Actor) acceleration() Vec2 {
	return a.controls.direction(a.input).NormalizeOrZero().Scale(actorForce)
}

// Update integrates one frame of dt seconds.
func (a *Actor) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	a.Vel = a.Vel.Add(a.acceleration().Scale(dt))
	a.Vel = a.Vel.Scale(1 / math.Pow(actorDrag, dt))
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))

	a.collideWalls()

	a.cooldown = max(0, a.cooldown-dt)
}

// collideWalls keeps the actor's square inside the playfield. Each edge is
// resolved independently, so a corner can bounce on both axes in one frame.
func (a *Actor) collideWalls() {
	half := actorSide / 2
	if a.Pos.X-half < 0 {
		a.Pos.X = half
		a.Vel.X = -a.Vel.X
		a.wallBounce("left")
	}
	if a.Pos.X+half > a.bounds.W {
		a.Pos.X = a.bounds.W - half
		a.Vel.X = -a.Vel.X
		a.wallBounce("right")
	}
	if a.Pos.Y-half < 0 {
		a.Pos.Y = half
		a.Vel.Y = -a.Vel.Y
		a.wallBounce("top")
	}
	if a.Pos.Y+half > a.bounds.H {
		a.Pos.Y = a.bounds.H - half
		a.Vel.Y = -a.Vel.Y
		a.wallBounce("bottom")
	}
}

func (a *Actor) wallBounce(edge string) {
	a.audio.PlayEffect(audio.EffectCollision)
	if a.onWallBounce != nil {
		a.onWallBounce(a, edge)
	}
}

// Rotation returns the visual tilt in degrees. It follows vertical speed and
// also sets the aim direction.
func (a *Actor) Rotation() float64 {
	return a.side.sign() * rotationRate * a.Vel.Y
}

// aim returns the unit fire direction. Blue fires mirrored.
func (a *Actor) aim() Vec2 {
	rad := a.Rotation() * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}.Scale(a.side.sign())
}

// Shoot fires a regular projectile from the actor's position. It returns
// false while the cooldown is running. A successful call resets the cooldown.
// The projectile inherits only the actor's horizontal velocity.
func (a *Actor) Shoot() (*Projectile, bool) {
	if a.cooldown > 0 {
		return nil, false
	}
	vel := a.aim().Scale(launchSpeed).Add(Vec2{X: a.Vel.X})
	a.cooldown = shootCooldown
	a.audio.PlayEffect(audio.EffectShoot)
	return NewProjectile(a.side, a.Pos, vel, ProjectileRegular), true
}

// OnProjectileHit applies one point of damage. Health stops at zero.
func (a *Actor) OnProjectileHit(_ *Projectile) {
	a.audio.PlayEffect(audio.EffectHit)
	if a.health > 0 {
		a.health--
	}
}

// OnActorHit knocks both actors apart along the line between their centres.
// Coincident centres separate along +X.
func (a *Actor) OnActorHit(other *Actor) {
	normal, ok := a.Pos.Sub(other.Pos).Normalize()
	if !ok {
		normal = Vec2{X: 1}
	}
	a.Vel = a.Vel.Add(normal.Scale(bounceForce))
	other.Vel = other.Vel.Sub(normal.Scale(bounceForce))
	a.audio.PlayEffect(audio.EffectCollision)
}

func (a *Actor) Collider() (Rect, bool) {
	return rectAround(a.Pos, actorSide/2), true
}

// Draw renders the actor as a tilted square with its health centred on it.
func (a *Actor) Draw(screen *ebiten.Image) {
	edge := actorSide * actorDrawScale * math.Sqrt2
	if a.sprite == nil {
		n := int(math.Ceil(edge))
		a.sprite = ebiten.NewImage(n, n)
		a.sprite.Fill(a.side.Color())
	}
	sw, sh := a.sprite.Bounds().Dx(), a.sprite.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Rotate(a.Rotation() * math.Pi / 180)
	op.GeoM.Translate(a.Pos.X, a.Pos.Y)
	screen.DrawImage(a.sprite, op)

	drawCenteredText(screen, strconv.Itoa(a.health), a.Pos.X, a.Pos.Y, actorSide*0.8, actorSide*0.5,
		color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
