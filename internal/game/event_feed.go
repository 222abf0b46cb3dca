package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 6
	feedLineHeight = 16 // DebugPrint uses a fixed 6x16 monospace font
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Side    string
	Message string
}

// EventFeed is a small ring buffer of notable arena events rendered in a
// corner panel. Tab toggles it.
type EventFeed struct {
	entries [feedMaxEntries]FeedEntry
	head    int
	count   int
	hidden  bool
}

func NewEventFeed() *EventFeed {
	return &EventFeed{}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(frame int, side, msg string) {
	f.entries[f.head] = FeedEntry{Frame: frame, Side: side, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *EventFeed) Recent() []FeedEntry {
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+feedMaxEntries)%feedMaxEntries]
	}
	return out
}

func (f *EventFeed) Toggle() { f.hidden = !f.hidden }

func (f *EventFeed) Visible() bool { return !f.hidden }

var (
	feedBackground = color.RGBA{R: 10, G: 12, B: 10, A: 200}
	feedSeparator  = color.RGBA{R: 50, G: 70, B: 50, A: 255}
	feedNeutral    = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// Draw renders the panel with its bottom-left corner at (x, bottom).
func (f *EventFeed) Draw(screen *ebiten.Image, x, bottom int) {
	if f.hidden || f.count == 0 {
		return
	}
	entries := f.Recent()
	h := len(entries)*feedLineHeight + 6
	top := bottom - h
	vector.FillRect(screen, float32(x), float32(top), feedPanelWidth, float32(h), feedBackground, false)
	vector.StrokeLine(screen, float32(x), float32(top), float32(x+feedPanelWidth), float32(top), 1.0, feedSeparator, false)

	y := top + 3
	for _, e := range entries {
		dot := feedNeutral
		switch e.Side {
		case SideRed.String():
			dot = SideRed.Color()
		case SideBlue.String():
			dot = SideBlue.Color()
		}
		vector.FillRect(screen, float32(x+5), float32(y+5), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Frame, e.Message), x+12, y)
		y += feedLineHeight
	}
}
