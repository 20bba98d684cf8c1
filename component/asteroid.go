package component

import "github.com/lixenwraith/kataster/parameter"

// AsteroidComponent marks a drifting rock
type AsteroidComponent struct {
	Size parameter.AsteroidSize
}
