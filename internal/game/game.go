package game

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/ouroboros/internal/config"
	"github.com/iburimskiy/ouroboros/internal/render"
	"github.com/iburimskiy/ouroboros/internal/render/screen"
	"github.com/iburimskiy/ouroboros/internal/snake"
)

// Sound plays the click feedback and reports how loud it currently is.
type Sound interface {
	PlayRattle(d time.Duration)
	Level(n int) float64
}

// Navigator leaves the animation for another page.
type Navigator interface {
	Navigate(target string) error
}

type Options struct {
	Width, Height int
	Debug         bool

	Logger    *log.Logger
	Navigator Navigator
	Sound     Sound
	// Input defaults to the ebiten mouse, touch and keyboard state.
	Input Input
	// Alert shows an error to the user. Optional.
	Alert func(error)
	// Now defaults to time.Now.
	Now func() time.Time
}

type Game struct {
	opts Options

	state snake.State
	frame snake.Frame
	last  time.Time

	compositor render.Compositor
	screen     *screen.Screen
	presses    []snake.Vec

	// set once navigation succeeded; the loop ends after the rattle
	leaving bool
	quitAt  time.Duration
}

func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "ouroboros: ", log.LstdFlags)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Input == nil {
		opts.Input = &ebitenInput{}
	}
	return &Game{
		opts:  opts,
		state: snake.NewState(opts.Width, opts.Height),
	}
}

func (g *Game) Update() error {
	if g.opts.Input.QuitPressed() {
		return ebiten.Termination
	}

	g.presses = g.opts.Input.Presses(g.presses[:0])
	for _, p := range g.presses {
		g.click(p)
	}

	g.advance()

	if g.leaving && g.state.Elapsed >= g.quitAt {
		return ebiten.Termination
	}
	return nil
}

// advance moves the animation by the wall-clock time since the last tick.
func (g *Game) advance() {
	now := g.opts.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	g.state, g.frame = snake.Step(g.state, dt)
	if g.opts.Sound != nil {
		g.compositor.Glow = g.opts.Sound.Level(config.GlowWindow) * config.GlowGain
	}
}

// click hit-tests p against the head drawn in the last frame.
func (g *Game) click(p snake.Vec) bool {
	if g.leaving || !snake.Hit(g.state.Head, p) {
		return false
	}
	if g.opts.Sound != nil {
		g.opts.Sound.PlayRattle(config.RattleDuration)
	}
	if g.opts.Navigator == nil {
		return true
	}

	if err := g.opts.Navigator.Navigate(config.NavigationTarget); err != nil {
		err = fmt.Errorf("navigate to %s: %w", config.NavigationTarget, err)
		g.opts.Logger.Print(err)
		if g.opts.Alert != nil {
			g.opts.Alert(err)
		}
		return true
	}
	g.opts.Logger.Printf("navigated to %s", config.NavigationTarget)
	g.leaving = true
	g.quitAt = g.state.Elapsed + config.RattleDuration
	return true
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.screen == nil {
		g.screen = screen.NewScreen(dst)
	}
	g.screen.Target(dst)
	g.compositor.Draw(g.screen, g.frame)

	if g.opts.Debug {
		msg := fmt.Sprintf("TPS %.1f  FPS %.1f  phase %.3f  fade %.2f (%s)",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.state.Phase(), g.state.Fade, g.state.Stage())
		ebitenutil.DebugPrintAt(dst, msg, 12, 12)
	}
}

// Layout keeps the surface the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.state.Viewport
	if v.Width != outsideWidth || v.Height != outsideHeight {
		g.state = g.state.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
