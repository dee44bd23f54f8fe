package sound

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player plays rattles on the default output device. The device is opened
// on first use; if that fails the player stays silent.
type Player struct {
	sr       beep.SampleRate
	ringSize int
	logger   *log.Logger
	rng      *rand.Rand

	mu       sync.Mutex
	initDone bool
	disabled bool
	tap      *Tap
}

func NewPlayer(sampleRate, ringSize int, logger *log.Logger) *Player {
	return &Player{
		sr:       beep.SampleRate(sampleRate),
		ringSize: ringSize,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *Player) init() error {
	if p.initDone {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initDone = true
	return nil
}

// PlayRattle starts a rattle of length d, replacing any rattle in progress.
func (p *Player) PlayRattle(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disabled {
		return
	}
	if err := p.init(); err != nil {
		p.disabled = true
		p.logger.Printf("sound disabled: %v", err)
		return
	}

	t := NewTap(Rattle(p.sr, d, p.rng), p.ringSize)
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.tap = t
	speaker.Play(t)
}

// Level is the loudness of the current rattle, 0 when silent.
func (p *Player) Level(n int) float64 {
	p.mu.Lock()
	t := p.tap
	p.mu.Unlock()
	if t == nil {
		return 0
	}
	return t.Level(n)
}
