// Command ouroboros-svg renders a single frame of the animation as SVG.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/iburimskiy/ouroboros/internal/config"
	"github.com/iburimskiy/ouroboros/internal/render"
	"github.com/iburimskiy/ouroboros/internal/snake"
)

func main() {
	at := flag.Duration("t", 2*time.Second, "elapsed time of the frame")
	width := flag.Int("w", config.WindowWidth, "viewport width")
	height := flag.Int("h", config.WindowHeight, "viewport height")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	log.SetPrefix("ouroboros-svg: ")
	log.SetFlags(0)

	if err := run(*out, *at, *width, *height); err != nil {
		log.Fatal(err)
	}
}

func run(path string, at time.Duration, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", width, height)
	}

	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	if err := writeFrame(bw, at, width, height); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeFrame(w io.Writer, at time.Duration, width, height int) error {
	_, frame := snake.Step(snake.NewState(width, height), at)
	if !frame.Head.Valid() {
		return fmt.Errorf("no head at %v", at)
	}
	s := render.NewSVG(w, width, height)
	var k render.Compositor
	k.Draw(s, frame)
	s.End()
	return nil
}
