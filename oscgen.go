// Package oscgen generates per-sample audio signals: periodic waveforms via
// phase-accumulating oscillators, with an optional band-limited variant that
// suppresses aliasing at waveform discontinuities.
//
// Every generator produces a single-channel stream of float64 samples at a
// fixed sample rate. Streams are logically infinite; bounded consumption is
// the caller's job (see the generators package for beep.Take integration).
// Generators are not safe for concurrent pulls; give each goroutine its own
// instance or serialize access externally.
//
// Noise generation lives in the separate noise package so that builds which
// only need oscillators never link its random-number dependency.
package oscgen

import "math"

// Waveform selects the shape an oscillator produces.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// Generator is the pull contract shared by all sample sources. NextSample
// advances internal state by exactly one sample; Fill advances it by
// len(buf) samples, writing in order. Fill(buf) produces the same sequence
// as len(buf) sequential NextSample calls.
type Generator interface {
	NextSample() float64
	Fill(buf []float64)
}

// shape maps a phase in [0, 1) to the raw, uncorrected waveform value.
//
// Saw ramps -1 to +1 with its discontinuity at the wrap. Square is +1 for
// the first half cycle. Triangle peaks at +1 on phase 0.25 and -1 on 0.75.
func shape(w Waveform, phase float64) float64 {
	switch w {
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	case Saw:
		return 2*phase - 1
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	}
	return 0
}

// advance steps phase by inc and re-wraps it into [0, 1). The subtraction
// fast path covers the common increments; Floor handles increments past
// Nyquist and negative frequencies.
func advance(phase, inc float64) float64 {
	phase += inc
	if phase >= 1 || phase < 0 {
		phase -= math.Floor(phase)
		if phase >= 1 {
			// tiny negative phases can round up to exactly 1.0
			phase = 0
		}
	}
	return phase
}
