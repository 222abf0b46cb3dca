package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonAction is what a menu button does when activated.
type ButtonAction int

const (
	ActionNone ButtonAction = iota
	ActionPlay
	ActionQuit
)

func (a ButtonAction) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

var (
	buttonFill   = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	buttonHover  = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	buttonBorder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Button is a clickable label. Its rectangle is given as fractions of the
// screen size so the menu lays out at any resolution.
type Button struct {
	Label  string
	Action ButtonAction
	// Frac is the button rectangle in screen fractions, each in [0,1].
	Frac Rect

	hovered bool
}

// Rect returns the button rectangle in pixels for a screen of the given size.
func (b *Button) Rect(view Bounds) Rect {
	return Rect{
		X: b.Frac.X * view.W,
		Y: b.Frac.Y * view.H,
		W: b.Frac.W * view.W,
		H: b.Frac.H * view.H,
	}
}

// Hovered reports whether the cursor was over the button at the last Update.
func (b *Button) Hovered() bool { return b.hovered }

// Update tracks hover and returns the button's action on a fresh left click
// inside it.
func (b *Button) Update(in Input, view Bounds) ButtonAction {
	x, y := in.CursorPosition()
	b.hovered = b.Rect(view).Contains(float64(x), float64(y))
	if b.hovered && in.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return b.Action
	}
	return ActionNone
}

func (b *Button) Draw(screen *ebiten.Image, view Bounds) {
	r := b.Rect(view)
	fill := buttonFill
	if b.hovered {
		fill = buttonHover
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, buttonBorder, false)
	drawCenteredText(screen, b.Label, r.X+r.W/2, r.Y+r.H/2, r.W*0.8, r.H*0.6, hudText)
}
