package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const projectileRadius = 5.0 // px, collider half extent and draw radius

// ProjectileKind is the damage class of a projectile.
type ProjectileKind int

const (
	ProjectileRegular ProjectileKind = iota
	ProjectileCharged
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileRegular:
		return "regular"
	case ProjectileCharged:
		return "charged"
	default:
		return "unknown"
	}
}

// Projectile is a straight-line hazard fired by an actor. Actors on the same
// side are immune to it.
type Projectile struct {
	Side Side
	Pos  Vec2
	// Destroyed is set the instant the projectile should be removed. The arena
	// culls it at the start of the next collision pass.
	Destroyed bool

	kind ProjectileKind
	vel  Vec2
}

// NewProjectile creates a live projectile. Velocity is constant for its lifetime.
func NewProjectile(side Side, pos, vel Vec2, kind ProjectileKind) *Projectile {
	return &Projectile{
		Side: side,
		Pos:  pos,
		kind: kind,
		vel:  vel,
	}
}

// Kind returns the damage class.
func (p *Projectile) Kind() ProjectileKind { return p.kind }

// Velocity returns the constant velocity in px/s.
func (p *Projectile) Velocity() Vec2 { return p.vel }

// Damage returns the fixed damage value of the projectile's class.
func (p *Projectile) Damage() int {
	switch p.kind {
	case ProjectileCharged:
		return 3
	default:
		return 1
	}
}

func (p *Projectile) Update(dt float64) {
	p.Pos = p.Pos.Add(p.vel.Scale(dt))
}

func (p *Projectile) Collider() (Rect, bool) {
	return rectAround(p.Pos, projectileRadius), true
}

// Draw renders the projectile as a filled circle in its side's colour.
func (p *Projectile) Draw(screen *ebiten.Image) {
	vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), projectileRadius, p.Side.Color(), true)
	if p.kind == ProjectileCharged {
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), projectileRadius+2, 1.0,
			color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)
	}
}
