package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// decodeConcurrency caps how many assets are decoded at once.
const decodeConcurrency = 4

// Asset is one decoded sound, ready for playback.
type Asset struct {
	Name        string
	PCM         []byte // 16-bit little-endian stereo at the registry sample rate
	Digest      uint64 // xxhash of the PCM
	Synthesized bool   // true when the file was missing and a stand-in was generated
}

// Registry holds every effect and theme in memory, keyed by id.
type Registry struct {
	sampleRate int
	effects    map[Effect]*Asset
	themes     map[Theme]*Asset
}

// SampleRate returns the rate all assets were decoded at.
func (r *Registry) SampleRate() int { return r.sampleRate }

// Effect returns the asset for e. Every id is present after LoadRegistry.
func (r *Registry) Effect(e Effect) (*Asset, bool) {
	a, ok := r.effects[e]
	return a, ok
}

// Theme returns the asset for t.
func (r *Registry) Theme(t Theme) (*Asset, bool) {
	a, ok := r.themes[t]
	return a, ok
}

// LoadRegistry reads and decodes every effect and theme from fsys. Assets
// absent from fsys are synthesized. A present but undecodable file is an
// error. A nil fsys synthesizes everything.
func LoadRegistry(ctx context.Context, fsys fs.FS, sampleRate int, logger *zap.Logger) (*Registry, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", sampleRate)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := &Registry{
		sampleRate: sampleRate,
		effects:    make(map[Effect]*Asset),
		themes:     make(map[Theme]*Asset),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(decodeConcurrency)

	for _, e := range Effects() {
		g.Go(func() error {
			a, err := loadAsset(ctx, fsys, e.path(), sampleRate, decodeWAV, func() beep.Streamer {
				return synthEffect(e, beep.SampleRate(sampleRate))
			})
			if err != nil {
				return fmt.Errorf("effect %s: %w", e, err)
			}
			mu.Lock()
			reg.effects[e] = a
			mu.Unlock()
			return nil
		})
	}
	for _, t := range Themes() {
		g.Go(func() error {
			a, err := loadAsset(ctx, fsys, t.path(), sampleRate, decodeOgg, func() beep.Streamer {
				return synthTheme(t, beep.SampleRate(sampleRate))
			})
			if err != nil {
				return fmt.Errorf("theme %s: %w", t, err)
			}
			mu.Lock()
			reg.themes[t] = a
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("audio: load registry: %w", err)
	}

	synthesized := 0
	for _, a := range reg.all() {
		if a.Synthesized {
			synthesized++
		}
		logger.Debug("audio asset loaded",
			zap.String("name", a.Name),
			zap.Int("bytes", len(a.PCM)),
			zap.Uint64("digest", a.Digest),
			zap.Bool("synthesized", a.Synthesized))
	}
	if synthesized > 0 {
		logger.Warn("audio assets missing, using synthesized stand-ins", zap.Int("count", synthesized))
	}
	return reg, nil
}

func (r *Registry) all() []*Asset {
	out := make([]*Asset, 0, len(r.effects)+len(r.themes))
	for _, e := range Effects() {
		out = append(out, r.effects[e])
	}
	for _, t := range Themes() {
		out = append(out, r.themes[t])
	}
	return out
}

type decodeFunc func(sampleRate int, src io.Reader) (io.Reader, error)

func decodeWAV(sampleRate int, src io.Reader) (io.Reader, error) {
	return wav.DecodeWithSampleRate(sampleRate, src)
}

func decodeOgg(sampleRate int, src io.Reader) (io.Reader, error) {
	return vorbis.DecodeWithSampleRate(sampleRate, src)
}

func loadAsset(ctx context.Context, fsys fs.FS, name string, sampleRate int, decode decodeFunc, synth func() beep.Streamer) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw []byte
	if fsys != nil {
		b, err := fs.ReadFile(fsys, name)
		switch {
		case err == nil:
			raw = b
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}

	a := &Asset{Name: name}
	if raw == nil {
		a.PCM = renderPCM(synth(), beep.SampleRate(sampleRate))
		a.Synthesized = true
	} else {
		stream, err := decode(sampleRate, bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		a.PCM = pcm
	}
	a.Digest = xxhash.Sum64(a.PCM)
	return a, nil
}
