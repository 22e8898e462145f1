package generators

import "github.com/faiface/beep"

// Amplitude scales the wrapped Streamer by a constant gain.
type Amplitude struct {
	Streamer beep.Streamer
	Gain     float64
}

// Stream streams the wrapped Streamer multiplied by the gain.
func (a *Amplitude) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = a.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= a.Gain
		samples[i][1] *= a.Gain
	}
	return n, ok
}

func (a *Amplitude) Err() error {
	return a.Streamer.Err()
}
