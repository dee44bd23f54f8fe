package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

const (
	rattleRate  = 28.0 // clicks per second
	rattleDecay = 6.0
	rattleGain  = 0.6
)

// Rattle returns a burst of clicking noise that fades out over d.
func Rattle(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			// each click is a half-sine pulse of noise
			click := math.Max(0, math.Sin(2*math.Pi*rattleRate*t))
			env := math.Exp(-rattleDecay * t)
			v := (rng.Float64()*2 - 1) * click * env * rattleGain
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
