package game

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/square-duel/internal/audio"
)

func TestNewActorSpawnsOnItsSide(t *testing.T) {
	red, _, _ := newTestActor(SideRed)
	blue, _, _ := newTestActor(SideBlue)

	assert.Equal(t, Vec2{X: 320, Y: 360}, red.Pos)
	assert.Equal(t, Vec2{X: 960, Y: 360}, blue.Pos)
	for _, a := range []*Actor{red, blue} {
		assert.Equal(t, actorStartHealth, a.Health())
		assert.Equal(t, Vec2{}, a.Vel)
		assert.Zero(t, a.Cooldown())
	}
}

func TestActorDragDecay(t *testing.T) {
	a, _, _ := newTestActor(SideRed)
	a.Vel = Vec2{X: 100}

	a.Update(1)

	assert.InDelta(t, 25, a.Vel.X, 1e-9, "velocity divides by drag^dt")
	assert.InDelta(t, 345, a.Pos.X, 1e-9)
}

func TestActorAcceleratesWithInput(t *testing.T) {
	a, ks, _ := newTestActor(SideRed)
	ks.down[ebiten.KeyD] = true
	ks.down[ebiten.KeyS] = true

	a.Update(0.01)

	// Diagonal input is normalised, so both axes get force/sqrt2.
	want := actorForce / math.Sqrt2 * 0.01 / math.Pow(actorDrag, 0.01)
	assert.InDelta(t, want, a.Vel.X, 1e-9)
	assert.InDelta(t, want, a.Vel.Y, 1e-9)
}

func TestActorOpposingKeysCancel(t *testing.T) {
	a, ks, _ := newTestActor(SideBlue)
	ks.down[ebiten.KeyArrowLeft] = true
	ks.down[ebiten.KeyArrowRight] = true

	a.Update(0.5)

	assert.Equal(t, Vec2{}, a.Vel)
}

func TestActorHealthFloorsAtZero(t *testing.T) {
	a, _, au := newTestActor(SideBlue)
	p := NewProjectile(SideRed, a.Pos, Vec2{}, ProjectileRegular)
	for i := 0; i < actorStartHealth+50; i++ {
		a.OnProjectileHit(p)
	}
	assert.Zero(t, a.Health())
	assert.False(t, a.Alive())
	assert.Equal(t, actorStartHealth+50, au.count(audio.EffectHit), "every hit plays a sound")
}

func TestActorChargedHitStillCostsOnePoint(t *testing.T) {
	a, _, _ := newTestActor(SideBlue)
	a.OnProjectileHit(NewProjectile(SideRed, a.Pos, Vec2{}, ProjectileCharged))
	assert.Equal(t, actorStartHealth-1, a.Health())
}

func TestActorShootRespectsCooldown(t *testing.T) {
	a, _, au := newTestActor(SideRed)

	p, ok := a.Shoot()
	require.True(t, ok)
	require.NotNil(t, p)
	assert.Equal(t, shootCooldown, a.Cooldown())

	_, ok = a.Shoot()
	assert.False(t, ok, "second shot in the same frame is refused")
	assert.Equal(t, 1, au.count(audio.EffectShoot))

	a.Update(shootCooldown / 2)
	_, ok = a.Shoot()
	assert.False(t, ok)

	a.Update(shootCooldown / 2)
	assert.Zero(t, a.Cooldown())
	_, ok = a.Shoot()
	assert.True(t, ok)
}

func TestActorShootDirection(t *testing.T) {
	red, _, _ := newTestActor(SideRed)
	blue, _, _ := newTestActor(SideBlue)

	p, _ := red.Shoot()
	assert.Equal(t, SideRed, p.Side)
	assert.Equal(t, red.Pos, p.Pos)
	assert.InDelta(t, launchSpeed, p.Velocity().X, 1e-9)
	assert.InDelta(t, 0, p.Velocity().Y, 1e-9)

	p, _ = blue.Shoot()
	assert.InDelta(t, -launchSpeed, p.Velocity().X, 1e-9, "blue fires to the left")
}

func TestActorShootInheritsHorizontalVelocityOnly(t *testing.T) {
	a, _, _ := newTestActor(SideRed)
	a.Vel = Vec2{X: 100, Y: 0}
	p, _ := a.Shoot()
	assert.InDelta(t, launchSpeed+100, p.Velocity().X, 1e-9)
	assert.InDelta(t, 0, p.Velocity().Y, 1e-9)
}

func TestActorAimFollowsVerticalSpeed(t *testing.T) {
	for _, side := range []Side{SideRed, SideBlue} {
		a, _, _ := newTestActor(side)
		a.Vel = Vec2{Y: 60}
		assert.InDelta(t, side.sign()*1.0, a.Rotation(), 1e-9)

		p, _ := a.Shoot()
		wantY := launchSpeed * math.Sin(math.Pi/180)
		assert.InDelta(t, wantY, p.Velocity().Y, 1e-9, "%s aims downward while moving down", side)
		assert.InDelta(t, 1.0, p.Velocity().Len()/launchSpeed, 1e-9)
	}
}

func TestActorWallBounce(t *testing.T) {
	a, _, au := newTestActor(SideRed)
	var edges []string
	a.onWallBounce = func(_ *Actor, edge string) { edges = append(edges, edge) }

	a.Pos = Vec2{X: 41, Y: 360}
	a.Vel = Vec2{X: -300}
	a.Update(0.01)

	assert.Equal(t, actorSide/2, a.Pos.X)
	assert.Greater(t, a.Vel.X, 0.0, "horizontal velocity flips")
	assert.Equal(t, []string{"left"}, edges)
	assert.Equal(t, 1, au.count(audio.EffectCollision))

	r, _ := a.Collider()
	assert.True(t, testBounds.ContainsRect(r))
}

func TestActorCornerBouncesBothAxes(t *testing.T) {
	a, _, au := newTestActor(SideBlue)
	a.Pos = Vec2{X: testBounds.W - 41, Y: testBounds.H - 41}
	a.Vel = Vec2{X: 300, Y: 300}
	a.Update(0.01)

	assert.Less(t, a.Vel.X, 0.0)
	assert.Less(t, a.Vel.Y, 0.0)
	assert.Equal(t, 2, au.count(audio.EffectCollision))
	r, _ := a.Collider()
	assert.True(t, testBounds.ContainsRect(r))
}

func TestActorKnockback(t *testing.T) {
	red, _, au := newTestActor(SideRed)
	blue, _, _ := newTestActor(SideBlue)
	red.Pos = Vec2{X: 600, Y: 360}
	blue.Pos = Vec2{X: 620, Y: 360}

	red.OnActorHit(blue)

	assert.InDelta(t, -bounceForce, red.Vel.X, 1e-9)
	assert.InDelta(t, bounceForce, blue.Vel.X, 1e-9)
	assert.InDelta(t, 0, red.Vel.Y, 1e-9)
	assert.Equal(t, 1, au.count(audio.EffectCollision))
}

func TestActorKnockbackCoincidentCentres(t *testing.T) {
	red, _, _ := newTestActor(SideRed)
	blue, _, _ := newTestActor(SideBlue)
	red.Pos = Vec2{X: 640, Y: 360}
	blue.Pos = red.Pos

	red.OnActorHit(blue)

	assert.Equal(t, Vec2{X: bounceForce}, red.Vel)
	assert.Equal(t, Vec2{X: -bounceForce}, blue.Vel)
}

func TestSide(t *testing.T) {
	assert.Equal(t, SideBlue, SideRed.Opponent())
	assert.Equal(t, SideRed, SideBlue.Opponent())
	assert.NotEqual(t, SideRed.Color(), SideBlue.Color())
	assert.Equal(t, "red", SideRed.String())
}

func TestDefaultControlsAreDisjoint(t *testing.T) {
	red, blue := DefaultControls(SideRed), DefaultControls(SideBlue)
	seen := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{red.Up, red.Down, red.Left, red.Right, red.Fire} {
		seen[k] = true
	}
	for _, k := range []ebiten.Key{blue.Up, blue.Down, blue.Left, blue.Right, blue.Fire} {
		assert.False(t, seen[k], "key %v bound for both sides", k)
	}
}
