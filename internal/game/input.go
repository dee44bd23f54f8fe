package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ouroboros/internal/snake"
)

// Input reports the discrete input events of one tick.
type Input interface {
	QuitPressed() bool
	// Presses appends the clicks and new touches of this tick to dst.
	Presses(dst []snake.Vec) []snake.Vec
}

type ebitenInput struct {
	touchIDs []ebiten.TouchID
}

func (in *ebitenInput) QuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (in *ebitenInput) Presses(dst []snake.Vec) []snake.Vec {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, snake.Vec{X: float64(x), Y: float64(y)})
	}
	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	return appendTouches(dst, in.touchIDs, ebiten.TouchPosition)
}

func appendTouches(dst []snake.Vec, ids []ebiten.TouchID, pos func(ebiten.TouchID) (int, int)) []snake.Vec {
	for _, id := range ids {
		x, y := pos(id)
		dst = append(dst, snake.Vec{X: float64(x), Y: float64(y)})
	}
	return dst
}
