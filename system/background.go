package system

import (
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/vmath"
)

// Star is one background point in arena cells, Brightness in [0, 1]
type Star struct {
	X, Y       int
	Brightness float64
}

type starSeed struct {
	x, y  float64
	phase float64
}

// BackgroundSystem drifts a starfield downward and twinkles it with Perlin noise
// Runs in every state, driven by real time
type BackgroundSystem struct {
	world *engine.World
	noise *perlin.Perlin

	seeds  []starSeed
	width  int
	height int

	offset  float64 // Rows scrolled
	elapsed float64 // Seconds
	stars   []Star
}

func NewBackgroundSystem(world *engine.World) *BackgroundSystem {
	seed := time.Now().UnixNano()
	s := &BackgroundSystem{
		world: world,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
	s.Init(vmath.NewFastRand(uint64(seed)))
	return s
}

// Init scatters stars across the current arena
func (s *BackgroundSystem) Init(rng *vmath.FastRand) {
	arena := s.world.Resources.Arena
	s.width, s.height = arena.Width, arena.Height
	n := int(float64(s.width*s.height) * parameter.StarDensity)

	s.seeds = make([]starSeed, n)
	for i := range s.seeds {
		s.seeds[i] = starSeed{
			x:     float64(rng.Intn(s.width)),
			y:     float64(rng.Intn(s.height)),
			phase: rng.Float64() * 100,
		}
	}
	s.stars = make([]Star, 0, n)
	s.offset = 0
	s.elapsed = 0
}

func (s *BackgroundSystem) Priority() int {
	return parameter.PriorityBackground
}

func (s *BackgroundSystem) Update() {
	if s.height <= 0 {
		return
	}
	dt := s.world.Resources.Time.DeltaTime.Seconds()
	s.elapsed += dt
	s.offset += parameter.StarScrollSpeed * dt
	for s.offset >= float64(s.height) {
		s.offset -= float64(s.height)
	}

	s.stars = s.stars[:0]
	for _, seed := range s.seeds {
		y := int(seed.y + s.offset)
		if y >= s.height {
			y -= s.height
		}
		// Noise2D is roughly in [-1, 1]
		n := s.noise.Noise2D(seed.phase, s.elapsed*parameter.StarTwinkleScale*10)
		b := (n + 1) / 2
		if b < 0 {
			b = 0
		} else if b > 1 {
			b = 1
		}
		s.stars = append(s.stars, Star{X: int(seed.x), Y: y, Brightness: b})
	}
}

// Stars returns the field computed by the last Update, valid until the next one
// Caller holds the world lock
func (s *BackgroundSystem) Stars() []Star {
	return s.stars
}
