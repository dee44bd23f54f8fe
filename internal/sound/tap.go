package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can react to what is currently playing.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	t.mu.Lock()
	for i := 0; i < n; i++ {
		t.push(samples[i])
	}
	if !ok {
		// flush so the level drops back once the source is done
		for i := 0; i < len(t.buffer); i++ {
			t.push([2]float64{})
		}
	}
	t.mu.Unlock()
	return n, ok
}

func (t *Tap) push(s [2]float64) {
	t.buffer[t.nextIndex] = s
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
}

func (t *Tap) Err() error { return t.Source.Err() }

// Level returns the RMS of the last n mono-mixed samples, in [0, 1].
func (t *Tap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n <= 0 {
		return 0
	}
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	var sum float64
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		s := t.buffer[idx]
		mono := (s[0] + s[1]) * 0.5
		sum += mono * mono
		idx--
	}
	return math.Min(1, math.Sqrt(sum/float64(n)))
}
