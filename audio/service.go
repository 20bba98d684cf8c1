package audio

import (
	"fmt"
	"log"

	"github.com/lixenwraith/kataster/engine"
)

// Service wraps SoundManager as a Service
// A missing audio device leaves the game silent instead of failing startup
type Service struct {
	enabled bool
	muted   bool
	volume  float64

	manager *SoundManager
}

// NewService creates the audio service, disabled services never touch the speaker
func NewService(enabled, muted bool, volume float64) *Service {
	return &Service{enabled: enabled, muted: muted, volume: volume}
}

// Name implements Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init opens the speaker and bridges AudioResource into the world
func (s *Service) Init(world any) error {
	w, ok := world.(*engine.World)
	if !ok {
		return fmt.Errorf("audio service: unexpected world type %T", world)
	}
	if !s.enabled {
		log.Printf("audio disabled by configuration")
		return nil
	}

	sm := NewSoundManager(s.volume, s.muted)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
		return nil
	}
	s.manager = sm
	engine.AddResource(w.ResourceStore, &engine.AudioResource{Player: sm})
	return nil
}

// Start implements Service
func (s *Service) Start() error {
	return nil
}

// Stop closes the speaker
func (s *Service) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}
