package game

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_DragDecay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vx := rapid.Float64Range(-1000, 1000).Draw(t, "vx")
		vy := rapid.Float64Range(-1000, 1000).Draw(t, "vy")
		dt := rapid.Float64Range(0.001, 0.5).Draw(t, "dt")

		// Large enough that no wall is reached.
		bounds := Bounds{W: 1e6, H: 1e6}
		a := NewActor(SideRed, bounds, &recordingAudio{}, newKeyState(), DefaultControls(SideRed))
		a.Pos = Vec2{X: bounds.W / 2, Y: bounds.H / 2}
		a.Vel = Vec2{X: vx, Y: vy}
		a.Update(dt)

		k := math.Pow(actorDrag, dt)
		if math.Abs(a.Vel.X-vx/k) > 1e-9 || math.Abs(a.Vel.Y-vy/k) > 1e-9 {
			t.Fatalf("vel = %+v, want (%g,%g)", a.Vel, vx/k, vy/k)
		}
	})
}

func TestProperty_HealthFloor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 3*actorStartHealth).Draw(t, "hits")
		a := NewActor(SideBlue, testBounds, &recordingAudio{}, newKeyState(), DefaultControls(SideBlue))
		p := NewProjectile(SideRed, a.Pos, Vec2{}, ProjectileRegular)
		for i := 0; i < n; i++ {
			a.OnProjectileHit(p)
		}
		if want := max(0, actorStartHealth-n); a.Health() != want {
			t.Fatalf("health after %d hits = %d, want %d", n, a.Health(), want)
		}
	})
}

func TestProperty_WallsContainActor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		half := actorSide / 2
		a := NewActor(SideRed, testBounds, &recordingAudio{}, newKeyState(), DefaultControls(SideRed))
		a.Pos = Vec2{
			X: rapid.Float64Range(half, testBounds.W-half).Draw(t, "x"),
			Y: rapid.Float64Range(half, testBounds.H-half).Draw(t, "y"),
		}
		before := Vec2{
			X: rapid.Float64Range(-5000, 5000).Draw(t, "vx"),
			Y: rapid.Float64Range(-5000, 5000).Draw(t, "vy"),
		}
		a.Vel = before
		dt := rapid.Float64Range(0.001, 0.1).Draw(t, "dt")
		a.Update(dt)

		r, _ := a.Collider()
		if !testBounds.ContainsRect(r) {
			t.Fatalf("collider %+v escaped %+v", r, testBounds)
		}
		// Drag never flips a sign, so any sign change came from a bounce.
		decayed := before.Scale(1 / math.Pow(actorDrag, dt))
		if math.Abs(math.Abs(a.Vel.X)-math.Abs(decayed.X)) > 1e-9 ||
			math.Abs(math.Abs(a.Vel.Y)-math.Abs(decayed.Y)) > 1e-9 {
			t.Fatalf("bounce changed speed: %+v vs %+v", a.Vel, decayed)
		}
	})
}

func TestProperty_CullingIsEventuallyTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := NewDuel()
		n := rapid.IntRange(1, 8).Draw(t, "n")
		for i := 0; i < n; i++ {
			angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "angle")
			speed := rapid.Float64Range(100, 1000).Draw(t, "speed")
			pos := Vec2{
				X: rapid.Float64Range(1, testBounds.W-1).Draw(t, "x"),
				Y: rapid.Float64Range(1, testBounds.H-1).Draw(t, "y"),
			}
			side := Side(rapid.IntRange(0, 1).Draw(t, "side"))
			vel := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed)
			d.Arena().Spawn(NewProjectile(side, pos, vel, ProjectileRegular))
		}

		// Slowest projectile crosses the longest diagonal in under 15s.
		d.RunFrames(15 * 60)
		if left := len(d.Arena().Projectiles()); left != 0 {
			t.Fatalf("%d projectiles still live", left)
		}
	})
}

func TestProperty_SameSideNeverDamages(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := NewDuel()
		side := Side(rapid.IntRange(0, 1).Draw(t, "side"))
		target := d.Actor(side)
		offset := Vec2{
			X: rapid.Float64Range(-actorSide, actorSide).Draw(t, "dx"),
			Y: rapid.Float64Range(-actorSide, actorSide).Draw(t, "dy"),
		}
		d.Arena().Spawn(NewProjectile(side, target.Pos.Add(offset), Vec2{}, ProjectileRegular))
		d.RunFrames(5)
		if target.Health() != actorStartHealth {
			t.Fatalf("%s lost health to its own projectile", side)
		}
	})
}
