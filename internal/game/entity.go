package game

import "github.com/hajimehoshi/ebiten/v2"

// Entity is anything the arena simulates and draws.
//
// Update advances the entity by dt seconds. Draw must not mutate simulation
// state. Collider is recomputed from the current position on every call; the
// bool is false when the entity has no physical footprint.
type Entity interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Collider() (Rect, bool)
}

var (
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Actor)(nil)
)
