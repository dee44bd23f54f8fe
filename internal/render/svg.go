package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/iburimskiy/ouroboros/internal/snake"
)

// SVG writes draw calls as an SVG document.
type SVG struct {
	canvas        *svg.SVG
	width, height float64
}

// NewSVG starts a document of the given size on w. Call End when done.
func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{canvas: svg.New(w), width: float64(width), height: float64(height)}
	s.canvas.Start(s.width, s.height)
	s.canvas.Title("Ouroboros")
	return s
}

func (s *SVG) End() {
	s.canvas.End()
}

func (s *SVG) Clear(c color.Color) {
	s.canvas.Rect(0, 0, s.width, s.height, fillStyle(c))
}

func (s *SVG) FillPolygon(pts []snake.Vec, c color.Color) {
	if len(pts) < 3 {
		return
	}
	xs, ys := coords(pts)
	s.canvas.Polygon(xs, ys, fillStyle(c)+";stroke:none")
}

func (s *SVG) StrokePolygon(pts []snake.Vec, width float64, c color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	xs, ys := coords(pts)
	s.canvas.Polygon(xs, ys, "fill:none;"+strokeStyle(c, width))
}

func (s *SVG) Line(a, b snake.Vec, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	s.canvas.Line(a.X, a.Y, b.X, b.Y, strokeStyle(c, width))
}

func coords(pts []snake.Vec) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func fillStyle(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", n.R, n.G, n.B, float64(n.A)/0xff)
}

func strokeStyle(c color.Color, width float64) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:%.2f;stroke-linejoin:round;stroke-linecap:round",
		n.R, n.G, n.B, float64(n.A)/0xff, width)
}
