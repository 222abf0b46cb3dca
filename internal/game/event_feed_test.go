package game

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEventFeedKeepsNewestEntries(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+3; i++ {
		f.Add(i, "red", fmt.Sprintf("event %d", i))
	}

	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Frame != 3 {
		t.Fatalf("oldest kept entry should be frame 3, got %d", got[0].Frame)
	}
	if last := got[len(got)-1]; last.Frame != feedMaxEntries+2 || last.Message != fmt.Sprintf("event %d", feedMaxEntries+2) {
		t.Fatalf("unexpected newest entry %+v", last)
	}
}

func TestEventFeedToggle(t *testing.T) {
	f := NewEventFeed()
	if !f.Visible() {
		t.Fatal("feed starts visible")
	}
	f.Toggle()
	if f.Visible() {
		t.Fatal("toggle should hide the feed")
	}
}

func TestArenaFeedRecordsHits(t *testing.T) {
	d := NewDuel()
	blue := d.Actor(SideBlue)
	d.Arena().Spawn(NewProjectile(SideRed, blue.Pos, Vec2{}, ProjectileRegular))
	d.Step()

	entries := d.Arena().Feed().Recent()
	if len(entries) != 1 || entries[0].Side != "red" {
		t.Fatalf("expected one red hit in the feed, got %+v", entries)
	}

	d.Press(ebiten.KeyTab)
	d.Step()
	if d.Arena().Feed().Visible() {
		t.Fatal("Tab should hide the feed")
	}
}
