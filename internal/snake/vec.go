package snake

import "math"

// Vec is a point or direction in the plane.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Rotate turns v by angle radians around the origin.
func (v Vec) Rotate(angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Ring is one cross-section of the body.
type Ring []Vec

// Centroid returns the mean of the ring's points.
func (r Ring) Centroid() Vec {
	var c Vec
	if len(r) == 0 {
		return c
	}
	for _, p := range r {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(r)))
}

// Clone returns a copy of r that shares no storage with it.
func (r Ring) Clone() Ring {
	return append(Ring(nil), r...)
}

// Translate returns a copy of r shifted by d.
func (r Ring) Translate(d Vec) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = p.Add(d)
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrap01 maps v into [0, 1).
func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
