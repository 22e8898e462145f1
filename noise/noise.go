// Package noise generates white, pink, and brown noise sample streams.
//
// It is deliberately independent of the oscillator package: builds that only
// need periodic waveforms never link the random-number dependency. Noise
// generators satisfy the same pull contract as the oscillators
// (NextSample/Fill) and never fail after construction.
package noise

import (
	"sync/atomic"
	"time"

	"github.com/valyala/fastrand"
)

// Kind selects the spectral shape of a Generator.
type Kind int

const (
	// White noise has equal energy at all frequencies.
	White Kind = iota
	// Pink noise falls off at -3 dB/octave (1/f), equal energy per octave.
	Pink
	// Brown noise falls off at -6 dB/octave (1/f^2), integrated white.
	Brown
)

func (k Kind) String() string {
	switch k {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	}
	return "unknown"
}

// Generator produces an unbounded stream of noise samples. White samples
// are uniform in [-1, 1); pink and brown are derived from the same white
// source through fixed, stable filter state that persists across pulls.
// Pink and brown are not hard-clipped and may transiently exceed +-1, but
// their gain constants keep steady-state RMS bounded.
//
// Each Generator owns its random source, seeded at construction from the
// clock plus a process-wide counter, so independently constructed
// generators produce independent streams. A Generator must not be pulled
// from two goroutines at once.
type Generator struct {
	rng  fastrand.RNG
	kind Kind

	// pink filter bank, Paul Kellet's economy method
	b [6]float64

	// brown leaky integrator
	prev float64
}

// seedCounter separates generators constructed within one clock tick.
var seedCounter uint32

func newGenerator(kind Kind) *Generator {
	g := &Generator{kind: kind}
	seed := uint32(time.Now().UnixNano()) + atomic.AddUint32(&seedCounter, 0x9E3779B9)
	if seed == 0 {
		seed = 1
	}
	g.rng.Seed(seed)
	return g
}

// NewWhite returns a white noise generator.
func NewWhite() *Generator { return newGenerator(White) }

// NewPink returns a pink noise generator.
func NewPink() *Generator { return newGenerator(Pink) }

// NewBrown returns a brown noise generator.
func NewBrown() *Generator { return newGenerator(Brown) }

// NewSeeded returns a generator with a deterministic, reproducible sample
// stream. A zero seed is remapped to 1, since the underlying RNG reserves
// zero for its entropy-seeded state.
func NewSeeded(kind Kind, seed uint32) *Generator {
	if seed == 0 {
		seed = 1
	}
	g := &Generator{kind: kind}
	g.rng.Seed(seed)
	return g
}

// Kind reports the generator's spectral shape.
func (g *Generator) Kind() Kind { return g.kind }

// white returns the next uniform sample in [-1, 1).
func (g *Generator) white() float64 {
	return float64(g.rng.Uint32())*(2.0/4294967296.0) - 1.0
}

// NextSample returns the next noise sample, advancing the random source and
// any filter state by exactly one step.
func (g *Generator) NextSample() float64 {
	switch g.kind {
	case Pink:
		w := g.white()
		g.b[0] = 0.99886*g.b[0] + w*0.0555179
		g.b[1] = 0.99332*g.b[1] + w*0.0750759
		g.b[2] = 0.96900*g.b[2] + w*0.1538520
		g.b[3] = 0.86650*g.b[3] + w*0.3104856
		g.b[4] = 0.55000*g.b[4] + w*0.5329522
		g.b[5] = -0.7616*g.b[5] - w*0.0168980
		return (g.b[0] + g.b[1] + g.b[2] + g.b[3] + g.b[4] + g.b[5] + w*0.5362) * 0.11
	case Brown:
		// leaky integration keeps the random walk from drifting unbounded
		w := g.white()
		g.prev = (g.prev + 0.02*w) / 1.02
		return g.prev * 3.5
	default:
		return g.white()
	}
}

// Fill writes exactly len(buf) consecutive samples.
func (g *Generator) Fill(buf []float64) {
	for i := range buf {
		buf[i] = g.NextSample()
	}
}
