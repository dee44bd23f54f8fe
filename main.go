package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ouroboros/internal/config"
	"github.com/iburimskiy/ouroboros/internal/game"
	"github.com/iburimskiy/ouroboros/internal/sound"
)

func main() {
	debug := flag.Bool("debug", false, "show frame rate and animation phase")
	flag.Parse()

	logger := log.New(os.Stderr, "ouroboros: ", log.LstdFlags)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := game.New(game.Options{
		Width:     config.WindowWidth,
		Height:    config.WindowHeight,
		Debug:     *debug,
		Logger:    logger,
		Navigator: game.BrowserNavigator{},
		Sound:     sound.NewPlayer(config.SampleRate, config.RattleRingSize, logger),
		Alert:     game.ErrorDialog(logger),
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
