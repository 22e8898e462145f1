package oscgen

import "math"

// PolyBlepOsc is a band-limited oscillator. It computes the same raw
// waveform as NaiveOsc and then applies a polynomial correction to samples
// that land within one increment of a discontinuity: a quadratic step
// residual (polyBLEP) at the saw wrap and both square edges, and a cubic
// slope residual (polyBLAMP) at the triangle corners. Sine has no
// discontinuities and is passed through untouched.
//
// Corrections vanish as the increment approaches zero and are skipped
// entirely for non-positive increments, so a zero or negative frequency
// degrades to naive behavior instead of dividing by zero.
type PolyBlepOsc struct {
	sampleRate float64
	phase      float64
	inc        float64
	waveform   Waveform
}

// NewPolyBlepOsc creates a band-limited oscillator. Parameter rules match
// NewNaiveOsc.
func NewPolyBlepOsc(sampleRate, frequency float64, waveform Waveform) (*PolyBlepOsc, error) {
	if err := checkSampleRate("polyBLEP oscillator", sampleRate); err != nil {
		return nil, err
	}
	return &PolyBlepOsc{
		sampleRate: sampleRate,
		inc:        frequency / sampleRate,
		waveform:   waveform,
	}, nil
}

// SetFrequency retunes the oscillator, preserving phase.
func (o *PolyBlepOsc) SetFrequency(hz float64) {
	o.inc = hz / o.sampleRate
}

// NextSample returns the corrected waveform value at the current phase,
// then advances the phase by one increment.
func (o *PolyBlepOsc) NextSample() float64 {
	v := shape(o.waveform, o.phase)

	switch o.waveform {
	case Saw:
		// downward step of 2 at the wrap
		v -= polyBlep(o.phase, o.inc)
	case Square:
		// rising edge at the wrap, falling edge half a cycle later
		v += polyBlep(o.phase, o.inc)
		half := o.phase + 0.5
		if half >= 1 {
			half -= 1
		}
		v -= polyBlep(half, o.inc)
	case Triangle:
		v += o.corner(0.25, -1)
		v += o.corner(0.75, +1)
	}

	o.phase = advance(o.phase, o.inc)
	return v
}

// Fill writes exactly len(buf) consecutive samples.
func (o *PolyBlepOsc) Fill(buf []float64) {
	for i := range buf {
		buf[i] = o.NextSample()
	}
}

// polyBlep returns the two-sample polynomial residual smoothing a step at
// phase 0, for a sample whose phase lands within one increment of it. The
// kernel is a function of the fractional offset t between the sample and
// the exact crossing, measured in increments. The two lobes integrate to
// zero, so the waveform's DC offset is preserved.
func polyBlep(phase, inc float64) float64 {
	if inc <= 0 {
		return 0
	}
	// just after the step: phase in [0, inc)
	if phase < inc {
		t := phase / inc
		return 2*t - t*t - 1
	}
	// just before the step: phase in (1-inc, 1)
	if phase > 1-inc {
		t := (phase - 1) / inc
		return t*t + 2*t + 1
	}
	return 0
}

// polyBlamp is the integral of the polyBlep residual: a cubic bump that
// rounds a slope discontinuity. t is the signed distance from the corner in
// increments, in [-1, 1]; the peak value is 1/3 on the corner itself.
func polyBlamp(t float64) float64 {
	a := 1 - math.Abs(t)
	return a * a * a / 3
}

// corner applies the polyBLAMP correction for the slope discontinuity at
// the given corner phase. The triangle slope swings between +4 and -4 per
// cycle, so the per-sample slope change is 8*inc; half of that scales the
// residual. sign is -1 at the peak and +1 at the trough.
func (o *PolyBlepOsc) corner(at, sign float64) float64 {
	if o.inc <= 0 || o.inc >= 0.25 {
		// corners are 0.5 apart; past a quarter cycle per sample the
		// windows overlap and the correction stops being meaningful
		return 0
	}
	d := o.phase - at
	if d > 0.5 {
		d -= 1
	} else if d < -0.5 {
		d += 1
	}
	if d <= -o.inc || d >= o.inc {
		return 0
	}
	return sign * 4 * o.inc * polyBlamp(d/o.inc)
}
