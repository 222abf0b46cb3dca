package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecodeOverridesOnlyNamedFields(t *testing.T) {
	c, err := Decode(strings.NewReader(`
window:
  width: 800
audio:
  bgm_volume: 0.25
sim:
  quit_delay: 50ms
`))
	require.NoError(t, err)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 720, c.Window.Height)
	assert.Equal(t, 0.25, c.Audio.BGMVolume)
	assert.Equal(t, 0.8, c.Audio.SFXVolume)
	assert.Equal(t, 50*time.Millisecond, c.Sim.QuitDelay)
	assert.Equal(t, 100*time.Millisecond, c.Sim.MaxFrameDelta)
}

func TestDecodeEmptyDocument(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("window:\n  colour: red\n"))
	require.Error(t, err)
}

func TestValidateJoinsAllErrors(t *testing.T) {
	c := Default()
	c.Window.Width = 0
	c.Audio.SFXVolume = 1.5
	c.Sim.QuitDelay = -time.Second
	c.Log.Encoding = "xml"

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"window size", "sfx_volume", "quit_delay", "log.encoding"} {
		assert.Contains(t, msg, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  encoding: json\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Encoding)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
