package oscgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyBlepResidual(t *testing.T) {
	const inc = 0.1

	// maximal just after the step, tapering to zero one increment out
	assert.InDelta(t, -1.0, polyBlep(0.0, inc), 1e-9)
	assert.InDelta(t, -0.25, polyBlep(0.05, inc), 1e-9)
	assert.InDelta(t, 0.0, polyBlep(0.1, inc), 1e-9)

	// mirrored just before the step
	assert.InDelta(t, 0.25, polyBlep(0.95, inc), 1e-9)
	assert.InDelta(t, 0.0, polyBlep(0.9, inc), 1e-9)

	// zero away from the step
	assert.InDelta(t, 0.0, polyBlep(0.3, inc), 1e-9)
	assert.InDelta(t, 0.0, polyBlep(0.5, inc), 1e-9)
	assert.InDelta(t, 0.0, polyBlep(0.7, inc), 1e-9)

	// degenerate increments contribute nothing rather than dividing by zero
	assert.Equal(t, 0.0, polyBlep(0.0, 0.0))
	assert.Equal(t, 0.0, polyBlep(0.5, -0.1))
}

func TestPolyBlampResidual(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, polyBlamp(0), 1e-9)
	assert.InDelta(t, 0.0, polyBlamp(1), 1e-9)
	assert.InDelta(t, 0.0, polyBlamp(-1), 1e-9)
	assert.InDelta(t, polyBlamp(0.5), polyBlamp(-0.5), 1e-12)
	assert.InDelta(t, 0.125/3.0, polyBlamp(0.5), 1e-9)
}

func TestPolyBlepSineMatchesNaive(t *testing.T) {
	poly, err := NewPolyBlepOsc(100, 5, Sine)
	require.NoError(t, err)
	naive, err := NewNaiveOsc(100, 5, Sine)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.InDelta(t, naive.NextSample(), poly.NextSample(), 1e-12)
	}
}

func TestPolyBlepSawSmoothsWrap(t *testing.T) {
	// 16 samples per cycle; only the sample on the wrap sits in the window
	poly, err := NewPolyBlepOsc(16, 1, Saw)
	require.NoError(t, err)
	naive, err := NewNaiveOsc(16, 1, Saw)
	require.NoError(t, err)

	pb := make([]float64, 16)
	nb := make([]float64, 16)
	poly.Fill(pb)
	naive.Fill(nb)

	assert.Greater(t, math.Abs(pb[0]-nb[0]), 0.1, "wrap sample should be corrected")
	for i := 1; i < 16; i++ {
		assert.InDelta(t, nb[i], pb[i], 1e-9, "sample %d is away from the wrap", i)
	}
}

func TestPolyBlepSquareSmoothsBothEdges(t *testing.T) {
	// 20 samples per cycle: edges land on samples 0 and 10
	poly, err := NewPolyBlepOsc(20, 1, Square)
	require.NoError(t, err)
	naive, err := NewNaiveOsc(20, 1, Square)
	require.NoError(t, err)

	pb := make([]float64, 20)
	nb := make([]float64, 20)
	poly.Fill(pb)
	naive.Fill(nb)

	for i := range pb {
		diff := math.Abs(pb[i] - nb[i])
		if i == 0 || i == 10 {
			assert.Greater(t, diff, 0.5, "edge sample %d", i)
		} else {
			assert.InDelta(t, 0.0, diff, 1e-9, "sample %d", i)
		}
	}
}

func TestPolyBlepTriangleRoundsCorners(t *testing.T) {
	// 20 samples per cycle: corners land on samples 5 (peak) and 15 (trough)
	poly, err := NewPolyBlepOsc(20, 1, Triangle)
	require.NoError(t, err)
	naive, err := NewNaiveOsc(20, 1, Triangle)
	require.NoError(t, err)

	pb := make([]float64, 20)
	nb := make([]float64, 20)
	poly.Fill(pb)
	naive.Fill(nb)

	// the peak is pulled down and the trough pulled up
	assert.Less(t, pb[5], nb[5])
	assert.Greater(t, pb[15], nb[15])
	assert.Greater(t, math.Abs(pb[5]-nb[5]), 0.01)

	for i := range pb {
		if i == 5 || i == 15 {
			continue
		}
		assert.InDelta(t, nb[i], pb[i], 1e-6, "sample %d is away from the corners", i)
	}
}

func TestPolyBlepAgreesAwayFromDiscontinuities(t *testing.T) {
	// at 440 Hz the correction window is under 1% of the cycle, so almost
	// every sample must agree with the naive reference
	for _, w := range []Waveform{Saw, Square, Triangle} {
		poly, err := NewPolyBlepOsc(44100, 440, w)
		require.NoError(t, err)
		naive, err := NewNaiveOsc(44100, 440, w)
		require.NoError(t, err)

		agree := 0
		const n = 10000
		for i := 0; i < n; i++ {
			if math.Abs(poly.NextSample()-naive.NextSample()) < 1e-4 {
				agree++
			}
		}
		assert.Greater(t, agree, n*9/10, "%v", w)
	}
}

func TestPolyBlepBoundedOutput(t *testing.T) {
	for _, w := range []Waveform{Sine, Saw, Square, Triangle} {
		osc, err := NewPolyBlepOsc(44100, 439.7, w)
		require.NoError(t, err)

		for i := 0; i < 10000; i++ {
			s := osc.NextSample()
			if s < -1.05 || s > 1.05 {
				t.Fatalf("%v: sample %d out of range: %v", w, i, s)
			}
		}
	}
}

func TestPolyBlepSquareHasLessEnergyAboveTenKilohertz(t *testing.T) {
	poly, err := NewPolyBlepOsc(44100, 440, Square)
	require.NoError(t, err)
	naive, err := NewNaiveOsc(44100, 440, Square)
	require.NoError(t, err)

	pb := make([]float64, 512)
	nb := make([]float64, 512)
	poly.Fill(pb)
	naive.Fill(nb)

	polyHigh := bandEnergy(pb, 44100, 10000)
	naiveHigh := bandEnergy(nb, 44100, 10000)

	assert.Less(t, polyHigh, naiveHigh)
	assert.Greater(t, naiveHigh, 0.0)
}

func TestPolyBlepSurvivesExtremeFrequencies(t *testing.T) {
	for _, freq := range []float64{0, -440, 22050, 30000, 100000} {
		for _, w := range []Waveform{Saw, Square, Triangle} {
			osc, err := NewPolyBlepOsc(44100, freq, w)
			require.NoError(t, err)

			for i := 0; i < 1000; i++ {
				s := osc.NextSample()
				if math.IsNaN(s) || math.IsInf(s, 0) {
					t.Fatalf("%v at %v Hz: non-finite sample at %d", w, freq, i)
				}
			}
		}
	}
}

func TestPolyBlepFillMatchesNextSample(t *testing.T) {
	for _, w := range []Waveform{Sine, Saw, Square, Triangle} {
		a, err := NewPolyBlepOsc(44100, 440, w)
		require.NoError(t, err)
		b, err := NewPolyBlepOsc(44100, 440, w)
		require.NoError(t, err)

		buf := make([]float64, 256)
		a.Fill(buf)

		for i, v := range buf {
			if got := b.NextSample(); got != v {
				t.Fatalf("%v: fill[%d] = %v, next-sample = %v", w, i, v, got)
			}
		}
	}
}

// bandEnergy sums DFT bin power at and above the given frequency. Plain
// O(n*k) evaluation; buffers here are small enough not to care.
func bandEnergy(samples []float64, sampleRate, from float64) float64 {
	n := len(samples)
	total := 0.0
	for k := 1; k <= n/2; k++ {
		if float64(k)*sampleRate/float64(n) < from {
			continue
		}
		var re, im float64
		for i, s := range samples {
			a := 2 * math.Pi * float64(k) * float64(i) / float64(n)
			re += s * math.Cos(a)
			im -= s * math.Sin(a)
		}
		total += re*re + im*im
	}
	return total
}
