// Package generators adapts oscgen sample sources to beep.Streamer, so they
// can be mixed, taken, and played with the beep toolkit. Each streamer is
// mono: the same sample is written to both channels.
package generators

import (
	"github.com/faiface/beep"
	"github.com/pkg/errors"

	"github.com/Alextopher/oscgen"
)

// streamer adapts any pull-based generator to a beep.Streamer. The stream
// never ends on its own; wrap it with beep.Take for bounded playback.
type streamer struct {
	gen oscgen.Generator
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.gen.NextSample()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (*streamer) Err() error {
	return nil
}

// Stream wraps an existing generator as a beep.Streamer.
func Stream(gen oscgen.Generator) beep.Streamer {
	return &streamer{gen}
}

// Tone creates an infinite band-limited tone streamer with the given
// frequency. The sample rate must be at least 2 times greater than the
// frequency, otherwise this function returns an error.
func Tone(sr beep.SampleRate, freq float64, w oscgen.Waveform) (beep.Streamer, error) {
	if err := checkRatio(sr, freq); err != nil {
		return nil, err
	}
	osc, err := oscgen.NewPolyBlepOsc(float64(sr), freq, w)
	if err != nil {
		return nil, err
	}
	return &streamer{osc}, nil
}

// NaiveTone is Tone without anti-aliasing. Useful as a reference or when
// the aliasing is the point.
func NaiveTone(sr beep.SampleRate, freq float64, w oscgen.Waveform) (beep.Streamer, error) {
	if err := checkRatio(sr, freq); err != nil {
		return nil, err
	}
	osc, err := oscgen.NewNaiveOsc(float64(sr), freq, w)
	if err != nil {
		return nil, err
	}
	return &streamer{osc}, nil
}

// SineTone creates a streamer which will produce an infinite sine wave with
// the given frequency.
func SineTone(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	return Tone(sr, freq, oscgen.Sine)
}

// SawtoothTone creates a streamer which will produce an infinite sawtooth
// wave with the given frequency.
func SawtoothTone(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	return Tone(sr, freq, oscgen.Saw)
}

// SquareTone creates a streamer which will produce an infinite square wave
// with the given frequency.
func SquareTone(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	return Tone(sr, freq, oscgen.Square)
}

// TriangleTone creates a streamer which will produce an infinite triangle
// wave with the given frequency.
func TriangleTone(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	return Tone(sr, freq, oscgen.Triangle)
}

func checkRatio(sr beep.SampleRate, freq float64) error {
	if freq/float64(sr) >= 1.0/2.0 {
		return errors.Errorf("tone generator: samplerate must be at least 2 times greater than frequency (sr=%d, freq=%g)", sr, freq)
	}
	return nil
}
