package config

import (
	"math"
	"time"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Ouroboros"
	TPS          = 60

	// Body mesh
	SpineCount = 32
	RingPoints = 12

	// Radii as fractions of the smaller viewport side
	MoveRadiusFactor = 0.33
	BodyRadiusFactor = 0.15

	// Ring radius = body * (RingRadiusBase + RingRadiusGrowth*ratio)
	RingRadiusBase   = 0.2
	RingRadiusGrowth = 0.4

	// Centre path stretch
	PathStretchX = 1.2
	PathStretchY = 0.5

	// Turns of the centre path per second
	Speed = 0.05

	FadeDuration = 1200 * time.Millisecond

	// Head
	HeadLengthFactor = 1.35
	RidgeAlong       = 0.65
	RidgeUp          = 0.25
	EyeAlong         = 0.60
	EyeOffset        = 0.12
	SocketWidth      = 0.35
	SocketHeight     = 0.05
	RedPupilForward  = 0.06
	RedPupilSize     = 0.03
	DarkPupilForward = 0.075
	DarkPupilSize    = 0.035
	EllipseSegments  = 24

	// Click radius = HitRadiusFactor * body radius
	HitRadiusFactor = 2.0

	// Page opened when the head is clicked
	NavigationTarget = "cd.html"

	// Shading (gray levels 0-255)
	TailShade      = 40
	HeadShade      = 100
	CapShade       = 80
	RidgeShade     = 95
	FacetShadeLow  = 55
	FacetShadeHigh = 95
	HeadStroke     = 2.0

	// Rattle
	SampleRate     = 44100
	RattleDuration = 450 * time.Millisecond
	RattleRingSize = 4096
	GlowWindow     = 1024
	GlowGain       = 4.0
)

// Radii holds the viewport-derived sizes of the snake.
type Radii struct {
	Move float64
	Body float64
}

// RadiiFor derives the move and body radii from a viewport size.
func RadiiFor(width, height int) Radii {
	m := math.Min(float64(width), float64(height))
	return Radii{
		Move: m * MoveRadiusFactor,
		Body: m * BodyRadiusFactor,
	}
}
