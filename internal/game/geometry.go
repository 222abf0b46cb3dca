package game

import "math"

// Vec2 is a 2D vector in screen-space pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector along v. The bool is false when v has
// no direction (zero or non-finite length).
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l < 1e-12 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// NormalizeOrZero returns the unit vector along v, or the zero vector.
func (v Vec2) NormalizeOrZero() Vec2 {
	n, _ := v.Normalize()
	return n
}

// Finite reports whether both components are finite numbers.
func (v Vec2) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Rect is an axis-aligned bounding box. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// rectAround returns a square AABB of the given half extent centred on c.
func rectAround(c Vec2, half float64) Rect {
	return Rect{X: c.X - half, Y: c.Y - half, W: 2 * half, H: 2 * half}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the two boxes intersect. Touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X &&
		r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Contains reports whether the point lies inside r (edges inclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Bounds is the playfield extent, anchored at the origin.
type Bounds struct {
	W, H float64
}

// Inside reports whether p is strictly within the playfield on both axes.
func (b Bounds) Inside(p Vec2) bool {
	return p.X > 0 && p.X < b.W && p.Y > 0 && p.Y < b.H
}

// ContainsRect reports whether r lies entirely within the playfield.
func (b Bounds) ContainsRect(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= b.W && r.Bottom() <= b.H
}
