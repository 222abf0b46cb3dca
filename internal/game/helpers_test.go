package game

import (
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/Garsondee/square-duel/internal/audio"
)

// recordingAudio records every cue. ThemeDone reports done.
type recordingAudio struct {
	effects []audio.Effect
	looped  []audio.Theme
	queued  []audio.Theme
	stops   int
	busy    bool
}

func (r *recordingAudio) PlayEffect(e audio.Effect) { r.effects = append(r.effects, e) }
func (r *recordingAudio) LoopTheme(t audio.Theme) { r.looped = append(r.looped, t) }
func (r *recordingAudio) QueueTheme(t audio.Theme) { r.queued = append(r.queued, t) }
func (r *recordingAudio) ThemeDone() bool { return !r.busy }
func (r *recordingAudio) StopTheme() { r.stops++ }

func (r *recordingAudio) count(e audio.Effect) int {
	n := 0
	for _, got := range r.effects {
		if got == e {
			n++
		}
	}
	return n
}

var testBounds = Bounds{W: 1280, H: 720}

// testEnv builds a scene environment over hand-set input.
func testEnv(t *testing.T, au Audio, ks *keyState) *sceneEnv {
	t.Helper()
	return &sceneEnv{
		audio:     au,
		input:     ks,
		bounds:    testBounds,
		logger:    zaptest.NewLogger(t),
		rng:       rand.New(rand.NewSource(1)), // #nosec G404 -- test
		clipboard: func(string) error { return nil },
	}
}

// newTestActor spawns an actor with its own key state and a recording sink.
func newTestActor(side Side) (*Actor, *keyState, *recordingAudio) {
	ks := newKeyState()
	au := &recordingAudio{}
	return NewActor(side, testBounds, au, ks, DefaultControls(side)), ks, au
}
