package snake

import (
	"time"

	"github.com/iburimskiy/ouroboros/internal/config"
)

// Stage is the fade-in state of the animation.
type Stage int

const (
	Fading Stage = iota
	Steady
)

func (s Stage) String() string {
	switch s {
	case Fading:
		return "fading"
	case Steady:
		return "steady"
	default:
		return "unknown"
	}
}

// FadeAt returns the opacity multiplier after elapsed time.
func FadeAt(elapsed time.Duration) float64 {
	if elapsed >= config.FadeDuration {
		return 1
	}
	return clamp01(float64(elapsed) / float64(config.FadeDuration))
}
