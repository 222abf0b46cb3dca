package game

import "github.com/Garsondee/square-duel/internal/audio"

//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . Audio

// Audio is the shared sound service. One instance is owned by the
// SceneManager and lent to whichever scene is active. All calls are
// fire-and-forget.
type Audio interface {
	PlayEffect(e audio.Effect)
	// LoopTheme plays t repeatedly until StopTheme.
	LoopTheme(t audio.Theme)
	// QueueTheme plays t once the current track has finished.
	QueueTheme(t audio.Theme)
	// ThemeDone reports whether background playback has run out.
	ThemeDone() bool
	StopTheme()
}

var (
	_ Audio = (*audio.Service)(nil)
	_ Audio = audio.Silent{}
)
