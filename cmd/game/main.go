package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/Garsondee/square-duel/internal/audio"
	"github.com/Garsondee/square-duel/internal/config"
	"github.com/Garsondee/square-duel/internal/game"
	"github.com/Garsondee/square-duel/internal/logging"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a YAML config file (defaults if empty)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	reg, err := audio.LoadRegistry(context.Background(), assetFS(cfg.Audio.AssetDir), cfg.Audio.SampleRate, logger)
	if err != nil {
		logger.Fatal("load audio", zap.Error(err))
	}
	sound := audio.NewService(reg, audio.EbitenPlayers(ebaudio.NewContext(cfg.Audio.SampleRate)), logger)
	sound.SetSFXVolume(cfg.Audio.SFXVolume)
	sound.SetBGMVolume(cfg.Audio.BGMVolume)
	defer sound.Close()

	scenes := game.NewSceneManager(sound, game.EbitenInput{}, game.SceneConfig{
		Bounds:     game.Bounds{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)},
		QuitDelay:  cfg.Sim.QuitDelay,
		Seed:       cfg.Sim.Seed,
		VerboseLog: cfg.Sim.VerboseLog,
		Logger:     logger,
	})
	g := game.New(scenes, game.Options{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Title:         cfg.Window.Title,
		TPS:           cfg.Window.TPS,
		MaxFrameDelta: cfg.Sim.MaxFrameDelta,
		OnFrame:       sound.Update,
	})

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Info("starting", zap.Int("width", cfg.Window.Width), zap.Int("height", cfg.Window.Height))
	if err := game.Run(g); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

// assetFS returns the asset directory, or nil when there is none so every
// sound is synthesized.
func assetFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}
