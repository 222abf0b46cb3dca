// Package config loads the game's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full game configuration. Every field has a default; a file
// only needs to name what it changes.
type Config struct {
	Window Window `yaml:"window"`
	Audio  Audio  `yaml:"audio"`
	Sim    Sim    `yaml:"sim"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Audio struct {
	// AssetDir holds sfx/*.wav and bgm/*.ogg. Empty means synthesize everything.
	AssetDir   string  `yaml:"asset_dir"`
	SampleRate int     `yaml:"sample_rate"`
	SFXVolume  float64 `yaml:"sfx_volume"`
	BGMVolume  float64 `yaml:"bgm_volume"`
}

type Sim struct {
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
	QuitDelay     time.Duration `yaml:"quit_delay"`
	VerboseLog    bool          `yaml:"verbose_log"`
	// Seed drives arena track selection. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type Log struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Square Duel",
			TPS:    60,
		},
		Audio: Audio{
			AssetDir:   "assets",
			SampleRate: 44100,
			SFXVolume:  0.8,
			BGMVolume:  0.5,
		},
		Sim: Sim{
			MaxFrameDelta: 100 * time.Millisecond,
			QuitDelay:     300 * time.Millisecond,
		},
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps %d must be positive", c.Window.TPS))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d must be positive", c.Audio.SampleRate))
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.sfx_volume %g out of [0,1]", c.Audio.SFXVolume))
	}
	if c.Audio.BGMVolume < 0 || c.Audio.BGMVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.bgm_volume %g out of [0,1]", c.Audio.BGMVolume))
	}
	if c.Sim.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("sim.max_frame_delta %s must be positive", c.Sim.MaxFrameDelta))
	}
	if c.Sim.QuitDelay < 0 {
		errs = append(errs, fmt.Errorf("sim.quit_delay %s must not be negative", c.Sim.QuitDelay))
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.encoding %q must be console or json", c.Log.Encoding))
	}
	return errors.Join(errs...)
}
