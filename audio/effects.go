package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/kataster/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, sweeping linearly from freq to endFreq over its duration
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay applies an exponential fade, rate is the e-folding count per second
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	k        float64
	position int
}

func newDecay(s beep.Streamer, k float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, k: k}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.k * float64(d.position) / float64(d.rate))
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect builders

// CreateLaserSound is a bright downward sweep
func CreateLaserSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	osc := NewSweep(1400, 300, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 60*time.Millisecond, rate), 0.25)
}

// CreateEnemyLaserSound is a lower, buzzier sweep than the player's laser
func CreateEnemyLaserSound(rate beep.SampleRate) beep.Streamer {
	d := 150 * time.Millisecond
	osc := NewSweep(700, 200, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 80*time.Millisecond, rate), 0.2)
}

// CreateExplosionSound is a short decaying noise burst
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := 400 * time.Millisecond
	noise := NewOscillator(0, d, WaveNoise, rate)
	return newVolume(newDecay(noise, 9, rate), 0.5)
}

// CreateShipExplosionSound is a long noise burst over a falling rumble
func CreateShipExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := 900 * time.Millisecond
	noise := newDecay(NewOscillator(0, d, WaveNoise, rate), 4, rate)
	rumble := newDecay(NewSweep(90, 40, d, WaveSine, rate), 3, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.6)), 0.6)
}

// CreateLifeLostSound is three falling square notes
func CreateLifeLostSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		d := 140 * time.Millisecond
		return NewEnvelope(NewOscillator(freq, d, WaveSquare, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
	}
	return newVolume(beep.Seq(note(523.25), note(392.00), note(261.63)), 0.2)
}

// CreateBlipSound is a short sine ping for menus and level changes
func CreateBlipSound(rate beep.SampleRate) beep.Streamer {
	d := 70 * time.Millisecond
	osc := NewOscillator(880, d, WaveSine, rate)
	return newVolume(NewEnvelope(osc, d, 3*time.Millisecond, 40*time.Millisecond, rate), 0.3)
}

// CreateThrustSound is a low filtered hiss
func CreateThrustSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	noise := NewOscillator(0, d, WaveNoise, rate)
	hum := NewOscillator(55, d, WaveSaw, rate)
	mixed := beep.Mix(newVolume(noise, 0.3), newVolume(hum, 0.4))
	return newVolume(NewEnvelope(mixed, d, 30*time.Millisecond, 80*time.Millisecond, rate), 0.3)
}

// Effect returns the streamer for sound, nil for SoundNone or unknown types
func Effect(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundLaser:
		return CreateLaserSound(rate)
	case core.SoundEnemyLaser:
		return CreateEnemyLaserSound(rate)
	case core.SoundExplosion:
		return CreateExplosionSound(rate)
	case core.SoundShipExplosion:
		return CreateShipExplosionSound(rate)
	case core.SoundLifeLost:
		return CreateLifeLostSound(rate)
	case core.SoundBlip:
		return CreateBlipSound(rate)
	case core.SoundThrust:
		return CreateThrustSound(rate)
	default:
		return nil
	}
}
