package snake

import (
	"math"
	"time"

	"github.com/iburimskiy/ouroboros/internal/config"
)

// Viewport is the size of the drawable surface in logical pixels.
type Viewport struct {
	Width, Height int
}

func (v Viewport) Radii() config.Radii { return config.RadiiFor(v.Width, v.Height) }

// Center is the screen position of the path origin.
func (v Viewport) Center() Vec {
	return Vec{float64(v.Width) / 2, float64(v.Height) / 2}
}

// HeadCache keeps the last frame's head for hit-testing and drawing.
type HeadCache struct {
	// Ring is relative to the viewport centre.
	Ring Ring
	// Centroid is in screen coordinates.
	Centroid   Vec
	Angle      float64
	BodyRadius float64
}

// Valid reports whether a head can be built from the cache.
func (h HeadCache) Valid() bool { return len(h.Ring) >= 3 }

// State is everything that survives from one frame to the next.
type State struct {
	Elapsed  time.Duration
	Fade     float64
	Viewport Viewport
	Head     HeadCache
}

// NewState starts a fresh animation on a surface of the given size.
func NewState(width, height int) State {
	return State{Viewport: Viewport{Width: width, Height: height}}
}

// Resize changes the surface size; the next Step uses the new radii.
func (s State) Resize(width, height int) State {
	s.Viewport = Viewport{Width: width, Height: height}
	return s
}

// Phase is the position of the tail on the path, in turns, wrapped to [0, 1).
func (s State) Phase() float64 {
	return math.Mod(s.Elapsed.Seconds()*config.Speed, 1)
}

func (s State) Stage() Stage {
	if s.Fade >= 1 {
		return Steady
	}
	return Fading
}

// Frame is the geometry of one rendered frame.
type Frame struct {
	Spine
	Fade   float64
	Radii  config.Radii
	Origin Vec
	Head   HeadCache
}

// Step advances the animation by dt and samples the frame's geometry.
// Negative dt is ignored.
func Step(s State, dt time.Duration) (State, Frame) {
	if dt > 0 {
		s.Elapsed += dt
	}
	s.Fade = FadeAt(s.Elapsed)

	radii := s.Viewport.Radii()
	origin := s.Viewport.Center()
	spine := Sample(s.Phase(), radii)

	neck := spine.Rings[len(spine.Rings)-1]
	s.Head = HeadCache{
		Ring:       neck.Clone(),
		Centroid:   origin.Add(neck.Centroid()),
		Angle:      spine.HeadAngle,
		BodyRadius: radii.Body,
	}

	return s, Frame{
		Spine:  spine,
		Fade:   s.Fade,
		Radii:  radii,
		Origin: origin,
		Head:   s.Head,
	}
}
