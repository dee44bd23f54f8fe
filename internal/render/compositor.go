package render

import (
	"image/color"

	"github.com/iburimskiy/ouroboros/internal/config"
	"github.com/iburimskiy/ouroboros/internal/snake"
)

// Compositor turns a frame's geometry into draw calls.
type Compositor struct {
	// Glow in [0,1] brightens the pupils.
	Glow float64

	quad [4]snake.Vec
}

// Draw paints f onto c: background, body from tail to head, then the head.
func (k *Compositor) Draw(c Canvas, f snake.Frame) {
	c.Clear(color.Black)

	for i := 1; i < len(f.Rings); i++ {
		k.drawSegment(c, f.Rings[i-1].Translate(f.Origin), f.Rings[i].Translate(f.Origin), f.Ratios[i], f.Fade)
	}

	if !f.Head.Valid() {
		return
	}
	head, ok := snake.BuildHead(f.Head.Ring.Translate(f.Origin), f.Head.Angle, f.Radii.Body)
	if !ok {
		return
	}
	k.drawHead(c, head, f.Fade)
}

// drawSegment connects two rings with a closed strip of quads.
func (k *Compositor) drawSegment(c Canvas, prev, curr snake.Ring, ratio, fade float64) {
	fill := gray(config.TailShade+(config.HeadShade-config.TailShade)*ratio, fade)
	stroke := gray(0, fade)
	width := (1 + 2*ratio) * fade

	n := len(curr)
	for j := 0; j < n; j++ {
		next := (j + 1) % n
		k.quad = [4]snake.Vec{prev[j], curr[j], curr[next], prev[next]}
		c.FillPolygon(k.quad[:], fill)
		c.StrokePolygon(k.quad[:], width, stroke)
	}
}

func (k *Compositor) drawHead(c Canvas, h snake.Head, fade float64) {
	c.FillPolygon(h.Base, gray(config.CapShade, fade))
	c.FillPolygon(h.Ridge[:], gray(config.RidgeShade, fade))

	edge := gray(0, fade)
	width := config.HeadStroke * fade
	for _, f := range h.Facets {
		tri := []snake.Vec{f.A, f.B, f.Tip}
		c.FillPolygon(tri, gray(f.Shade, fade))
		c.StrokePolygon(tri, width, edge)
	}

	// Overdraw can hide parts of facet edges; redraw every spoke.
	for _, s := range h.Spokes {
		c.Line(s[0], s[1], width, edge)
	}

	red := pupilRed(k.Glow, fade)
	for _, e := range h.Eyes {
		c.FillPolygon(e.Socket, edge)
	}
	for _, e := range h.Eyes {
		c.FillPolygon(e.RedPupil, red)
	}
	for _, e := range h.Eyes {
		c.FillPolygon(e.DarkPupil, edge)
	}
}
