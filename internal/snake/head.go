package snake

import (
	"math"

	"github.com/iburimskiy/ouroboros/internal/config"
)

// Facet is one triangle of the head cone.
type Facet struct {
	A, B, Tip Vec
	Shade     float64
}

// Eye is a socket with two nested pupils, all as closed polygons.
type Eye struct {
	Socket    []Vec
	RedPupil  []Vec
	DarkPupil []Vec
}

// Head is the low-poly cone built on top of the last ring.
type Head struct {
	Base     Ring
	Centroid Vec
	Tip      Vec
	Ridge    [3]Vec
	Facets   []Facet
	Spokes   [][2]Vec
	Eyes     [2]Eye
}

// BuildHead builds the head from the neck ring, the heading angle and the
// body radius. It reports false if the ring cannot carry a head.
func BuildHead(ring Ring, angle, body float64) (Head, bool) {
	if len(ring) < 3 {
		return Head{}, false
	}

	length := body * config.HeadLengthFactor
	fwd := Vec{math.Cos(angle), math.Sin(angle)}
	perp := Vec{-fwd.Y, fwd.X}

	c := ring.Centroid()
	tip := c.Add(fwd.Scale(length))

	h := Head{
		Base:     ring,
		Centroid: c,
		Tip:      tip,
		Facets:   make([]Facet, len(ring)),
		Spokes:   make([][2]Vec, len(ring)),
	}

	ridge := c.Add(fwd.Scale(length * config.RidgeAlong)).Add(perp.Scale(body * config.RidgeUp))
	h.Ridge = [3]Vec{c, ridge, tip}

	for i := range ring {
		h.Facets[i] = Facet{
			A:     ring[i],
			B:     ring[(i+1)%len(ring)],
			Tip:   tip,
			Shade: lerp(config.FacetShadeLow, config.FacetShadeHigh, Ratio(i, len(ring))),
		}
		h.Spokes[i] = [2]Vec{ring[i], tip}
	}

	base := c.Add(fwd.Scale(length * config.EyeAlong))
	off := body * config.EyeOffset
	for k, side := range [2]float64{-1, 1} {
		// local frame: x along the head, y across it
		local := func(x, y float64) Vec {
			return base.Add(Vec{x, y}.Rotate(angle))
		}
		h.Eyes[k] = Eye{
			Socket: Ellipse(local(0, side*off),
				body*config.SocketWidth/2, body*config.SocketHeight/2, angle, config.EllipseSegments),
			RedPupil: Ellipse(local(body*config.RedPupilForward, side*off),
				body*config.RedPupilSize/2, body*config.RedPupilSize/2, angle, config.EllipseSegments),
			DarkPupil: Ellipse(local(body*config.DarkPupilForward, side*off),
				body*config.DarkPupilSize/2, body*config.DarkPupilSize/2, angle, config.EllipseSegments),
		}
	}
	return h, true
}

// Ellipse approximates an ellipse with semi-axes rx, ry rotated by angle.
func Ellipse(c Vec, rx, ry, angle float64, segments int) []Vec {
	pts := make([]Vec, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = c.Add(Vec{rx * math.Cos(a), ry * math.Sin(a)}.Rotate(angle))
	}
	return pts
}
