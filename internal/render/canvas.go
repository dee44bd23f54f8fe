package render

import (
	"image/color"

	"github.com/iburimskiy/ouroboros/internal/snake"
)

// Canvas is a drawing surface. Polygons are closed; coordinates are in
// screen pixels. Callers reuse pts between calls, so implementations must
// not retain pts after returning.
type Canvas interface {
	Clear(c color.Color)
	FillPolygon(pts []snake.Vec, c color.Color)
	StrokePolygon(pts []snake.Vec, width float64, c color.Color)
	Line(a, b snake.Vec, width float64, c color.Color)
}
