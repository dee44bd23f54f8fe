package snake

import (
	"math"

	"github.com/iburimskiy/ouroboros/internal/config"
)

// Spine is one frame's worth of sampled cross-sections, tail first.
type Spine struct {
	Rings  []Ring
	Ratios []float64
	// HeadAngle is the direction of travel at the last ring.
	HeadAngle float64
}

// Ratio maps index i of n cross-sections onto [0, 1].
func Ratio(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// CenterAt returns the spine centre for a position on the path, measured
// in turns. The path has period 1.
func CenterAt(turns, move float64) Vec {
	a := 2 * math.Pi * wrap01(turns)
	return Vec{
		X: move * math.Cos(a) * config.PathStretchX,
		Y: move * math.Sin(2*a) * config.PathStretchY,
	}
}

// TangentAt returns the heading of the path at the given position, in radians.
func TangentAt(turns, move float64) float64 {
	a := 2 * math.Pi * wrap01(turns)
	dx := -move * config.PathStretchX * math.Sin(a)
	dy := move * math.Cos(2*a)
	return math.Atan2(dy, dx)
}

// RingRadius is thin at the tail (ratio 0) and fat at the head (ratio 1).
func RingRadius(ratio, body float64) float64 {
	return body * (config.RingRadiusBase + config.RingRadiusGrowth*ratio)
}

// RingAround places points evenly on a circle around c.
func RingAround(c Vec, radius float64, points int) Ring {
	ring := make(Ring, points)
	for j := range ring {
		a := 2 * math.Pi * float64(j) / float64(points)
		ring[j] = Vec{c.X + radius*math.Cos(a), c.Y + radius*math.Sin(a)}
	}
	return ring
}

// Sample builds the body for the given phase. Each cross-section sits at
// phase+ratio along the path so motion travels from tail to head.
func Sample(phase float64, radii config.Radii) Spine {
	n := config.SpineCount
	s := Spine{
		Rings:  make([]Ring, n),
		Ratios: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		r := Ratio(i, n)
		turns := wrap01(phase + r)
		s.Ratios[i] = r
		s.Rings[i] = RingAround(CenterAt(turns, radii.Move), RingRadius(r, radii.Body), config.RingPoints)
		if i == n-1 {
			s.HeadAngle = TangentAt(turns, radii.Move)
		}
	}
	return s
}
