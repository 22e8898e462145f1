package oscgen

import (
	"math"

	"github.com/pkg/errors"
)

// NaiveOsc is a phase-accumulating oscillator with no anti-aliasing.
// Simple and cheap, but non-sine waveforms alias audibly at higher
// frequencies; PolyBlepOsc is the corrected variant. NaiveOsc is the
// reference the corrected variant is validated against away from
// discontinuities.
type NaiveOsc struct {
	sampleRate float64
	phase      float64
	inc        float64
	waveform   Waveform
}

// NewNaiveOsc creates an oscillator producing the given waveform. The
// sample rate must be positive and finite. Frequency is unrestricted: a
// negative frequency runs the phase backwards, and frequencies at or above
// Nyquist alias rather than fail.
func NewNaiveOsc(sampleRate, frequency float64, waveform Waveform) (*NaiveOsc, error) {
	if err := checkSampleRate("naive oscillator", sampleRate); err != nil {
		return nil, err
	}
	return &NaiveOsc{
		sampleRate: sampleRate,
		inc:        frequency / sampleRate,
		waveform:   waveform,
	}, nil
}

// SetFrequency retunes the oscillator. Phase is preserved, so the waveform
// stays continuous across the change. Must not race with a pull.
func (o *NaiveOsc) SetFrequency(hz float64) {
	o.inc = hz / o.sampleRate
}

// NextSample returns the waveform value at the current phase, then advances
// the phase by one increment. The first sample after construction is the
// phase-zero value.
func (o *NaiveOsc) NextSample() float64 {
	v := shape(o.waveform, o.phase)
	o.phase = advance(o.phase, o.inc)
	return v
}

// Fill writes exactly len(buf) consecutive samples.
func (o *NaiveOsc) Fill(buf []float64) {
	for i := range buf {
		buf[i] = o.NextSample()
	}
}

func checkSampleRate(what string, sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return errors.Errorf("oscgen: %s: sample rate must be positive and finite, got %v", what, sampleRate)
	}
	return nil
}
