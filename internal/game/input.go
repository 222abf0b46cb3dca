package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input snapshot the core polls. Implementations hold
// no buffering beyond the current frame.
type Input interface {
	// IsKeyDown reports whether the key is currently held.
	IsKeyDown(k ebiten.Key) bool
	// IsKeyJustPressed reports whether the key went down this frame.
	IsKeyJustPressed(k ebiten.Key) bool
	// IsMouseButtonJustPressed reports whether the button went down this frame.
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	// CursorPosition returns the pointer position in screen pixels.
	CursorPosition() (x, y int)
}

// EbitenInput reads input straight from ebiten's global state.
type EbitenInput struct{}

func (EbitenInput) IsKeyDown(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

func (EbitenInput) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (EbitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (EbitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// Controls is one side's key set. The two sides' sets are disjoint.
type Controls struct {
	Up, Down, Left, Right ebiten.Key
	Fire                  ebiten.Key
}

// DefaultControls returns the key bindings for a side.
func DefaultControls(side Side) Controls {
	if side == SideBlue {
		return Controls{
			Up:    ebiten.KeyArrowUp,
			Down:  ebiten.KeyArrowDown,
			Left:  ebiten.KeyArrowLeft,
			Right: ebiten.KeyArrowRight,
			Fire:  ebiten.KeyControlRight,
		}
	}
	return Controls{
		Up:    ebiten.KeyW,
		Down:  ebiten.KeyS,
		Left:  ebiten.KeyA,
		Right: ebiten.KeyD,
		Fire:  ebiten.KeyE,
	}
}

// direction returns the raw, unnormalised input vector for the key set.
func (c Controls) direction(in Input) Vec2 {
	var d Vec2
	if in.IsKeyDown(c.Up) {
		d.Y--
	}
	if in.IsKeyDown(c.Down) {
		d.Y++
	}
	if in.IsKeyDown(c.Left) {
		d.X--
	}
	if in.IsKeyDown(c.Right) {
		d.X++
	}
	return d
}

// keyState is an Input whose state is set by hand. It backs the headless
// harness and the bot players.
type keyState struct {
	down    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	clicked map[ebiten.MouseButton]bool
	cursorX int
	cursorY int
}

func newKeyState() *keyState {
	return &keyState{
		down:    make(map[ebiten.Key]bool),
		pressed: make(map[ebiten.Key]bool),
		clicked: make(map[ebiten.MouseButton]bool),
	}
}

func (ks *keyState) IsKeyDown(k ebiten.Key) bool { return ks.down[k] }

func (ks *keyState) IsKeyJustPressed(k ebiten.Key) bool { return ks.pressed[k] }

func (ks *keyState) IsMouseButtonJustPressed(b ebiten.MouseButton) bool { return ks.clicked[b] }

func (ks *keyState) CursorPosition() (int, int) { return ks.cursorX, ks.cursorY }

// endFrame clears edge-triggered state; held keys persist.
func (ks *keyState) endFrame() {
	clear(ks.pressed)
	clear(ks.clicked)
}
