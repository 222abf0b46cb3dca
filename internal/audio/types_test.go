package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectPaths(t *testing.T) {
	assert.Equal(t, "sfx/button-click.wav", EffectButtonClick.path())
	assert.Equal(t, "sfx/collision.wav", EffectCollision.path())
	assert.Len(t, Effects(), 4)
}

func TestThemeIdentities(t *testing.T) {
	assert.Equal(t, "bgm/menu.ogg", ThemeMenu.path())
	assert.Equal(t, "bgm/game-a.ogg", ArenaTheme(0).path())
	assert.Equal(t, "game-d", ArenaTheme(3).String())
	assert.Equal(t, -1, ThemeMenu.ArenaIndex())
	assert.Len(t, Themes(), 1+ArenaThemeCount)
}

func TestArenaThemeWraps(t *testing.T) {
	assert.Equal(t, ArenaTheme(0), ArenaTheme(ArenaThemeCount))
	assert.Equal(t, ArenaTheme(ArenaThemeCount-1), ArenaTheme(-1))
	for i := 0; i < ArenaThemeCount; i++ {
		assert.Equal(t, i, ArenaTheme(i).ArenaIndex())
	}
}
