package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
)

const testRate = beep.SampleRate(8000)

// drain reads s to exhaustion, returning the left channel
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 256)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not end")
	return nil
}

func peak(samples []float64) float64 {
	p := 0.0
	for _, v := range samples {
		p = math.Max(p, math.Abs(v))
	}
	return p
}

// crossings counts sign changes, a proxy for frequency
func crossings(samples []float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			n++
		}
	}
	return n
}

func TestOscillatorLength(t *testing.T) {
	s := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	out := drain(t, s)
	assert.Len(t, out, testRate.N(100*time.Millisecond))
	assert.InDelta(t, 1.0, peak(out), 0.01)
}

func TestSweepFallsInPitch(t *testing.T) {
	out := drain(t, NewSweep(2000, 200, 200*time.Millisecond, WaveSine, testRate))
	half := len(out) / 2
	assert.Greater(t, crossings(out[:half]), crossings(out[half:]))
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 20*time.Millisecond, 20*time.Millisecond, testRate)
	out := drain(t, s)
	require.NotEmpty(t, out)
	assert.InDelta(t, 0, out[0], 1e-9, "attack starts silent")
	assert.InDelta(t, 1, out[len(out)/2], 1e-9, "sustain at full level")
	assert.Less(t, math.Abs(out[len(out)-1]), 0.01, "release ends near silence")
}

func TestEffectsEndAndStayBounded(t *testing.T) {
	sounds := []core.SoundType{
		core.SoundLaser,
		core.SoundEnemyLaser,
		core.SoundExplosion,
		core.SoundShipExplosion,
		core.SoundLifeLost,
		core.SoundBlip,
		core.SoundThrust,
	}
	for _, sound := range sounds {
		s := Effect(sound, testRate)
		require.NotNil(t, s, "sound %d", sound)
		out := drain(t, s)
		assert.NotEmpty(t, out, "sound %d", sound)
		p := peak(out)
		assert.Greater(t, p, 0.0, "sound %d audible", sound)
		assert.LessOrEqual(t, p, 1.0, "sound %d clips", sound)
	}
	assert.Nil(t, Effect(core.SoundNone, testRate))
}

func TestExplosionDecays(t *testing.T) {
	out := drain(t, CreateExplosionSound(testRate))
	tenth := len(out) / 10
	assert.Greater(t, peak(out[:tenth]), peak(out[len(out)-tenth:]))
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(0.5, false)

	assert.False(t, sm.Play(core.SoundLaser), "uninitialized manager plays nothing")
	assert.False(t, sm.IsMuted())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.IsMuted())
	assert.False(t, sm.Play(core.SoundBlip))
	assert.False(t, sm.ToggleMute())

	sm.Cleanup()

	assert.Equal(t, 1.0, NewSoundManager(2, false).volume)
	quiet := NewSoundManager(-1, false)
	assert.Zero(t, quiet.volume)
	assert.True(t, quiet.master.Silent, "zero volume is silent even unmuted")
}

func TestDisabledServiceLeavesWorldSilent(t *testing.T) {
	w, _ := engine.NewTestWorld(40, 20)
	svc := NewService(false, false, 0.5)
	require.NoError(t, svc.Init(w))
	assert.Nil(t, svc.manager)

	_, ok := engine.GetResource[*engine.AudioResource](w.ResourceStore)
	assert.False(t, ok)
	require.NoError(t, svc.Stop())

	assert.Error(t, svc.Init("not a world"))
}
