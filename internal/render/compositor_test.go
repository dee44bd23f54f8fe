package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/ouroboros/internal/config"
	"github.com/iburimskiy/ouroboros/internal/snake"
)

type call struct {
	op    string
	pts   []snake.Vec
	width float64
	color color.NRGBA
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	calls []call
}

func (r *recorder) add(op string, pts []snake.Vec, width float64, c color.Color) {
	cp := append([]snake.Vec(nil), pts...)
	r.calls = append(r.calls, call{op, cp, width, color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (r *recorder) Clear(c color.Color) { r.add("clear", nil, 0, c) }
func (r *recorder) FillPolygon(pts []snake.Vec, c color.Color) {
	r.add("fill", pts, 0, c)
}
func (r *recorder) StrokePolygon(pts []snake.Vec, width float64, c color.Color) {
	r.add("stroke", pts, width, c)
}
func (r *recorder) Line(a, b snake.Vec, width float64, c color.Color) {
	r.add("line", []snake.Vec{a, b}, width, c)
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func frameAt(elapsed time.Duration) snake.Frame {
	_, f := snake.Step(snake.NewState(800, 600), elapsed)
	return f
}

func TestDrawAtStartIsInvisible(t *testing.T) {
	f := frameAt(0)
	var rec recorder
	var k Compositor
	k.Draw(&rec, f)

	if len(rec.calls) < 2 || rec.calls[0].op != "clear" {
		t.Fatalf("first call = %+v, want clear", rec.calls[0])
	}
	for i, c := range rec.calls[1:] {
		if c.color.A != 0 {
			t.Fatalf("call %d (%s) has alpha %d at fade 0", i+1, c.op, c.color.A)
		}
		if c.width != 0 {
			t.Fatalf("call %d (%s) has width %v at fade 0", i+1, c.op, c.width)
		}
	}
	// the geometry is still there
	if len(f.Rings) != 32 || len(f.Rings[0]) != 12 {
		t.Errorf("frame has %d rings of %d points", len(f.Rings), len(f.Rings[0]))
	}
}

func TestDrawCallCounts(t *testing.T) {
	var rec recorder
	var k Compositor
	k.Draw(&rec, frameAt(2*time.Second))

	n, m := config.SpineCount, config.RingPoints
	quads := (n - 1) * m
	// body quads + cap + ridge + facets + sockets + red pupils + dark pupils
	if got, want := rec.count("fill"), quads+2+m+6; got != want {
		t.Errorf("fills = %d, want %d", got, want)
	}
	if got, want := rec.count("stroke"), quads+m; got != want {
		t.Errorf("strokes = %d, want %d", got, want)
	}
	if got := rec.count("line"); got != m {
		t.Errorf("spoke lines = %d, want %d", got, m)
	}
}

func TestDrawOrderHeadOnTop(t *testing.T) {
	var rec recorder
	var k Compositor
	f := frameAt(2 * time.Second)
	k.Draw(&rec, f)

	head, ok := snake.BuildHead(f.Head.Ring.Translate(f.Origin), f.Head.Angle, f.Radii.Body)
	if !ok {
		t.Fatal("no head")
	}

	lastLine, firstHead := -1, -1
	for i, c := range rec.calls {
		if c.op == "line" {
			lastLine = i
			if c.pts[1] != head.Tip {
				t.Errorf("spoke %d ends at %v, want tip %v", i, c.pts[1], head.Tip)
			}
		}
		if firstHead < 0 && c.op == "fill" && len(c.pts) == len(head.Base) && c.pts[0] == head.Base[0] {
			firstHead = i
		}
	}
	quads := (config.SpineCount - 1) * config.RingPoints
	if firstHead != 1+2*quads {
		t.Errorf("head cap drawn at call %d, want right after body (%d)", firstHead, 1+2*quads)
	}

	// eyes come after every spoke
	tail := rec.calls[lastLine+1:]
	if len(tail) != 6 {
		t.Fatalf("%d calls after spokes, want 6 eye polygons", len(tail))
	}
	for i, c := range tail {
		if c.op != "fill" || len(c.pts) != config.EllipseSegments {
			t.Errorf("eye call %d = %s with %d points", i, c.op, len(c.pts))
		}
	}
	if tail[2].color.R == 0 || tail[2].color.G != 0 {
		t.Errorf("pupil colour = %+v, want red", tail[2].color)
	}
}

func TestBodyShadeRisesTowardsHead(t *testing.T) {
	var rec recorder
	var k Compositor
	k.Draw(&rec, frameAt(5*time.Second))

	var fills []call
	for _, c := range rec.calls {
		if c.op == "fill" && len(c.pts) == 4 {
			fills = append(fills, c)
		}
	}
	first, last := fills[0], fills[len(fills)-1]
	if first.color.R >= last.color.R {
		t.Errorf("tail shade %d not darker than head shade %d", first.color.R, last.color.R)
	}
	if last.color.R != config.HeadShade {
		t.Errorf("last segment shade = %d, want %d", last.color.R, config.HeadShade)
	}
	if first.color.A != 255 {
		t.Errorf("alpha after fade-in = %d, want 255", first.color.A)
	}

	var strokes []call
	for _, c := range rec.calls {
		if c.op == "stroke" && len(c.pts) == 4 {
			strokes = append(strokes, c)
		}
	}
	if strokes[0].width >= strokes[len(strokes)-1].width {
		t.Errorf("outline width %v at tail, %v at head", strokes[0].width, strokes[len(strokes)-1].width)
	}
	if w := strokes[len(strokes)-1].width; w != 3 {
		t.Errorf("head segment outline = %v, want 3", w)
	}
}

func TestDrawSkipsHeadWithoutCache(t *testing.T) {
	f := frameAt(time.Second)
	f.Head = snake.HeadCache{}
	var rec recorder
	var k Compositor
	k.Draw(&rec, f)
	if got := rec.count("line"); got != 0 {
		t.Errorf("drew %d spokes without a head", got)
	}
	quads := (config.SpineCount - 1) * config.RingPoints
	if got := rec.count("fill"); got != quads {
		t.Errorf("fills = %d, want body only (%d)", got, quads)
	}
}

func TestGlowBrightensPupils(t *testing.T) {
	calm := pupilRed(0, 1)
	lit := pupilRed(1, 1)
	if calm.R != pupilRedLevel || calm.G != 0 || calm.B != 0 {
		t.Errorf("resting pupil = %+v", calm)
	}
	if lit.R != 255 {
		t.Errorf("glowing pupil = %+v, want full red", lit)
	}
}

func TestSegmentQuadsSurviveBufferReuse(t *testing.T) {
	var rec recorder
	var k Compositor
	k.Draw(&rec, frameAt(2*time.Second))

	// the compositor reuses one quad buffer, so each recorded copy must differ
	var quads [][]snake.Vec
	for _, c := range rec.calls {
		if c.op == "fill" && len(c.pts) == 4 {
			quads = append(quads, c.pts)
		}
	}
	if len(quads) < 2 {
		t.Fatalf("only %d quads drawn", len(quads))
	}
	if quads[0][0] == quads[1][0] && quads[0][2] == quads[1][2] {
		t.Errorf("first two quads are identical: %v", quads[0])
	}
	// neighbouring quads share an edge
	if quads[0][2] != quads[1][1] || quads[0][3] != quads[1][0] {
		t.Errorf("quads %v and %v do not share an edge", quads[0], quads[1])
	}
}
