package event

import (
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/parameter"
)

// AsteroidSpawnPayload describes an asteroid to create, position and velocity in Q32.32
type AsteroidSpawnPayload struct {
	Size parameter.AsteroidSize `yaml:"size"`
	X    int64                  `yaml:"x"`
	Y    int64                  `yaml:"y"`
	VelX int64                  `yaml:"vel_x"`
	VelY int64                  `yaml:"vel_y"`
}

// ExplosionSpawnPayload describes an explosion to animate, position in Q32.32
type ExplosionSpawnPayload struct {
	Kind core.ExplosionKind `yaml:"kind"`
	X    int64              `yaml:"x"`
	Y    int64              `yaml:"y"`
}

// ScorePayload carries points to add to the run
type ScorePayload struct {
	Points int `yaml:"points"`
}

// SoundRequestPayload selects a sound effect
type SoundRequestPayload struct {
	Sound core.SoundType `yaml:"sound"`
}
