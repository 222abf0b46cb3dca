package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// maxSynthDuration bounds how much PCM a synthesized asset may render.
const maxSynthDuration = 8 * time.Second

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a finite streamer producing the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)), // #nosec G404 -- noise only
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite streamer.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain. Zero or negative gain is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, d/10, d/3, rate)
}

// synthEffect builds the stand-in for a missing effect file.
func synthEffect(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectButtonClick:
		return withVolume(tone(1200, 30*time.Millisecond, WaveSquare, rate), 0.3)
	case EffectShoot:
		return withVolume(beep.Seq(
			tone(880, 40*time.Millisecond, WaveSaw, rate),
			tone(660, 40*time.Millisecond, WaveSaw, rate),
		), 0.35)
	case EffectHit:
		return withVolume(tone(0, 90*time.Millisecond, WaveNoise, rate), 0.4)
	default:
		return withVolume(tone(140, 120*time.Millisecond, WaveSine, rate), 0.6)
	}
}

// themeRoots are the root frequencies of the synthesized tracks: menu, then arena a-d.
var themeRoots = [...]float64{220.00, 261.63, 293.66, 329.63, 196.00}

// synthTheme builds a short arpeggio as the stand-in for a missing track.
func synthTheme(t Theme, rate beep.SampleRate) beep.Streamer {
	root := themeRoots[0]
	if i := t.ArenaIndex(); i >= 0 {
		root = themeRoots[1+i]
	}
	// minor arpeggio up and back down
	steps := []float64{1, 1.189, 1.498, 2, 1.498, 1.189, 1, 0.749}
	const note = 250 * time.Millisecond
	notes := make([]beep.Streamer, 0, len(steps))
	for _, m := range steps {
		notes = append(notes, tone(root*m, note, WaveSine, rate))
	}
	return withVolume(beep.Seq(notes...), 0.25)
}

// renderPCM drains s into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio players consume.
func renderPCM(s beep.Streamer, rate beep.SampleRate) []byte {
	limit := rate.N(maxSynthDuration)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*rate.N(time.Second/2))
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
