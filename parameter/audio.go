package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
	DefaultVolume     = 0.6
)
