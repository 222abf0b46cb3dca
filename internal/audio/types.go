// Package audio plays the game's sound effects and background themes.
//
// Assets are loaded once at startup into a Registry keyed by Effect and Theme.
// Any asset missing from disk is replaced by a synthesized stand-in, so every
// id is always playable.
package audio

import "fmt"

// Effect identifies a one-shot sound effect.
type Effect int

const (
	EffectButtonClick Effect = iota
	EffectShoot
	EffectHit
	EffectCollision
	effectCount
)

// Effects returns every effect id.
func Effects() []Effect {
	out := make([]Effect, 0, effectCount)
	for e := Effect(0); e < effectCount; e++ {
		out = append(out, e)
	}
	return out
}

func (e Effect) String() string {
	switch e {
	case EffectButtonClick:
		return "button-click"
	case EffectShoot:
		return "shoot"
	case EffectHit:
		return "hit"
	case EffectCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// path is the effect's location inside the asset filesystem.
func (e Effect) path() string {
	return "sfx/" + e.String() + ".wav"
}

// Theme identifies a background music track.
type Theme int

// ArenaThemeCount is the number of interchangeable arena tracks.
const ArenaThemeCount = 4

const (
	ThemeMenu Theme = iota
	themeArenaFirst
)

// ArenaTheme returns the i-th arena track, wrapping out-of-range indices.
func ArenaTheme(i int) Theme {
	i %= ArenaThemeCount
	if i < 0 {
		i += ArenaThemeCount
	}
	return themeArenaFirst + Theme(i)
}

// Themes returns every theme id, menu first.
func Themes() []Theme {
	out := []Theme{ThemeMenu}
	for i := 0; i < ArenaThemeCount; i++ {
		out = append(out, ArenaTheme(i))
	}
	return out
}

// ArenaIndex returns the arena track index, or -1 for non-arena themes.
func (t Theme) ArenaIndex() int {
	if t < themeArenaFirst || t >= themeArenaFirst+ArenaThemeCount {
		return -1
	}
	return int(t - themeArenaFirst)
}

func (t Theme) String() string {
	if t == ThemeMenu {
		return "menu"
	}
	if i := t.ArenaIndex(); i >= 0 {
		return fmt.Sprintf("game-%c", 'a'+i)
	}
	return "unknown"
}

func (t Theme) path() string {
	return "bgm/" + t.String() + ".ogg"
}
