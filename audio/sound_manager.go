package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)

	// maxVoices caps concurrent effects, further requests are dropped
	maxVoices = 16
)

// SoundManager plays synthesized effects through a beep mixer on the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool

	muted  atomic.Bool
	volume float64
}

// NewSoundManager creates a sound manager at volume in [0, 1]
func NewSoundManager(volume float64, muted bool) *SoundManager {
	volume = math.Max(0, math.Min(1, volume))
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, volume),
		volume: volume,
	}
	sm.muted.Store(muted)
	sm.master.Silent = muted || volume <= 0
	return sm
}

// Initialize sets up the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferPeriod)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play starts sound, returns false when muted, uninitialized or saturated
func (sm *SoundManager) Play(sound core.SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	s := Effect(sound, sampleRate)
	if s == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return false
	}
	sm.mixer.Add(s)
	return true
}

// ToggleMute flips mute and returns the new state, muting silences playing sounds
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = muted || sm.volume <= 0
		speaker.Unlock()
	} else {
		sm.master.Silent = muted || sm.volume <= 0
	}
	return muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}
