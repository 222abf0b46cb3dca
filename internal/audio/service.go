package audio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Player is the subset of *audio.Player the service drives.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// PlayerFactory creates a player for the given PCM. A looping player repeats
// until paused.
type PlayerFactory func(pcm []byte, loop bool) (Player, error)

// EbitenPlayers returns a PlayerFactory backed by an ebiten audio context.
func EbitenPlayers(ctx *audio.Context) PlayerFactory {
	return func(pcm []byte, loop bool) (Player, error) {
		if !loop {
			return ctx.NewPlayerFromBytes(pcm), nil
		}
		src := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(src)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// Service plays one-shot effects and a single background track with a queue
// of follow-up themes. It is used from the game loop only and is not safe
// for concurrent use.
type Service struct {
	reg       *Registry
	newPlayer PlayerFactory
	logger    *zap.Logger

	sfxVolume float64
	bgmVolume float64

	bgm     Player
	current Theme
	queue   []Theme
	effects []Player
}

// NewService creates a service over a loaded registry.
func NewService(reg *Registry, newPlayer PlayerFactory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		reg:       reg,
		newPlayer: newPlayer,
		logger:    logger,
		sfxVolume: 1.0,
		bgmVolume: 1.0,
	}
}

func (s *Service) SetSFXVolume(v float64) { s.sfxVolume = clampVolume(v) }

func (s *Service) SFXVolume() float64 { return s.sfxVolume }

// SetBGMVolume applies immediately to the playing background track.
func (s *Service) SetBGMVolume(v float64) {
	s.bgmVolume = clampVolume(v)
	if s.bgm != nil {
		s.bgm.SetVolume(s.bgmVolume)
	}
}

func (s *Service) BGMVolume() float64 { return s.bgmVolume }

// PlayEffect fires a one-shot effect. Failures are logged, never returned.
func (s *Service) PlayEffect(e Effect) {
	a, ok := s.reg.Effect(e)
	if !ok {
		s.logger.Warn("unknown effect", zap.Stringer("effect", e))
		return
	}
	p, err := s.newPlayer(a.PCM, false)
	if err != nil {
		s.logger.Warn("effect player", zap.Stringer("effect", e), zap.Error(err))
		return
	}
	p.SetVolume(s.sfxVolume)
	p.Play()
	s.effects = append(s.effects, p)
}

// LoopTheme replaces whatever is playing with t, repeating until stopped.
func (s *Service) LoopTheme(t Theme) {
	s.StopTheme()
	if err := s.start(t, true); err != nil {
		s.logger.Warn("loop theme", zap.Stringer("theme", t), zap.Error(err))
	}
}

// QueueTheme plays t once the current track finishes, or now if nothing plays.
func (s *Service) QueueTheme(t Theme) {
	if s.bgm == nil || !s.bgm.IsPlaying() {
		s.closeBGM()
		if err := s.start(t, false); err != nil {
			s.logger.Warn("queue theme", zap.Stringer("theme", t), zap.Error(err))
		}
		return
	}
	s.queue = append(s.queue, t)
}

// ThemeDone reports whether the background track has finished and nothing
// is queued behind it.
func (s *Service) ThemeDone() bool {
	return (s.bgm == nil || !s.bgm.IsPlaying()) && len(s.queue) == 0
}

// Current returns the last theme started and whether a track is loaded.
func (s *Service) Current() (Theme, bool) {
	return s.current, s.bgm != nil
}

// StopTheme stops background playback and drops the queue.
func (s *Service) StopTheme() {
	s.closeBGM()
	s.queue = s.queue[:0]
}

// Update advances the theme queue and releases finished effect players.
// Call once per frame.
func (s *Service) Update() {
	live := s.effects[:0]
	for _, p := range s.effects {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			s.logger.Debug("close effect player", zap.Error(err))
		}
	}
	clear(s.effects[len(live):])
	s.effects = live

	if s.bgm != nil && !s.bgm.IsPlaying() && len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.closeBGM()
		if err := s.start(next, false); err != nil {
			s.logger.Warn("advance theme queue", zap.Stringer("theme", next), zap.Error(err))
		}
	}
}

// Close stops all playback.
func (s *Service) Close() {
	s.StopTheme()
	for _, p := range s.effects {
		p.Pause()
		_ = p.Close()
	}
	s.effects = nil
}

func (s *Service) start(t Theme, loop bool) error {
	a, ok := s.reg.Theme(t)
	if !ok {
		return fmt.Errorf("unknown theme %d", int(t))
	}
	p, err := s.newPlayer(a.PCM, loop)
	if err != nil {
		return err
	}
	p.SetVolume(s.bgmVolume)
	p.Play()
	s.bgm = p
	s.current = t
	return nil
}

func (s *Service) closeBGM() {
	if s.bgm == nil {
		return
	}
	s.bgm.Pause()
	if err := s.bgm.Close(); err != nil {
		s.logger.Debug("close theme player", zap.Error(err))
	}
	s.bgm = nil
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}

// Silent discards every request. It backs headless runs.
type Silent struct{}

func (Silent) PlayEffect(Effect) {}
func (Silent) LoopTheme(Theme) {}
func (Silent) QueueTheme(Theme) {}
func (Silent) ThemeDone() bool { return true }
func (Silent) StopTheme() {}
