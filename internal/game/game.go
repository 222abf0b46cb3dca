package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures the ebiten host.
type Options struct {
	Width  int
	Height int
	Title  string
	TPS    int
	// MaxFrameDelta caps the simulated time of one frame, so a stalled
	// window does not tunnel actors through walls.
	MaxFrameDelta time.Duration
	// OnFrame runs once per frame before the scene update.
	OnFrame func()
}

// Game adapts a SceneManager to ebiten.Game.
type Game struct {
	scenes   *SceneManager
	title    string
	width    int
	height   int
	tps      int
	maxDelta time.Duration
	onFrame  func()

	now  func() time.Time
	last time.Time
}

func New(scenes *SceneManager, opts Options) *Game {
	tps := opts.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		scenes:   scenes,
		title:    opts.Title,
		width:    opts.Width,
		height:   opts.Height,
		tps:      tps,
		maxDelta: opts.MaxFrameDelta,
		onFrame:  opts.OnFrame,
		now:      time.Now,
	}
}

// frameDelta returns the seconds elapsed since the previous frame. The first
// frame assumes one nominal tick.
func (g *Game) frameDelta() float64 {
	now := g.now()
	d := time.Second / time.Duration(g.tps)
	if !g.last.IsZero() {
		d = now.Sub(g.last)
	}
	g.last = now
	if d < 0 {
		d = 0
	}
	if g.maxDelta > 0 && d > g.maxDelta {
		d = g.maxDelta
	}
	return d.Seconds()
}

func (g *Game) Update() error {
	dt := g.frameDelta()
	if g.onFrame != nil {
		g.onFrame()
	}
	if g.scenes.Update(dt) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(g.tps)
	return ebiten.RunGame(g)
}
