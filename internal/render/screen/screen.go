// Package screen draws render output onto ebiten images.
package screen

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ouroboros/internal/render"
	"github.com/iburimskiy/ouroboros/internal/snake"
)

var _ render.Canvas = (*Screen)(nil)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Screen is a render.Canvas backed by an ebiten image.
type Screen struct {
	dst *ebiten.Image

	// reused between calls
	vs []ebiten.Vertex
	is []uint16
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// Target switches the image drawn onto; ebiten hands a new screen each frame.
func (s *Screen) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *Screen) FillPolygon(pts []snake.Vec, c color.Color) {
	if len(pts) < 3 || transparent(c) {
		return
	}
	p := polygonPath(pts)
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(c, fillOptions)
}

func (s *Screen) StrokePolygon(pts []snake.Vec, width float64, c color.Color) {
	if len(pts) < 2 || width <= 0 || transparent(c) {
		return
	}
	p := polygonPath(pts)
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	s.draw(c, strokeOptions)
}

func (s *Screen) Line(a, b snake.Vec, width float64, c color.Color) {
	if width <= 0 || transparent(c) {
		return
	}
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

var (
	// fill triangulation overlaps itself and needs a stencil rule
	fillOptions   = &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.NonZero}
	strokeOptions = &ebiten.DrawTrianglesOptions{AntiAlias: true}
)

func (s *Screen) draw(c color.Color, op *ebiten.DrawTrianglesOptions) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b, a := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	s.dst.DrawTriangles(s.vs, s.is, white(), op)
}

func polygonPath(pts []snake.Vec) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, v := range pts[1:] {
		p.LineTo(float32(v.X), float32(v.Y))
	}
	p.Close()
	return &p
}

func transparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}
