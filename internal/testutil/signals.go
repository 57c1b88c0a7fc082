// Package testutil provides deterministic signal generators and tolerance
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// SeriesFromChannels assembles per-channel slices into a T-by-C series.
// All channels must have the same length.
func SeriesFromChannels(channels ...[]float64) *mat.Dense {
	rows := len(channels[0])
	out := mat.NewDense(rows, len(channels), nil)
	for j, ch := range channels {
		out.SetCol(j, ch)
	}
	return out
}

// ScaledPair returns a two-channel series where the second channel is the
// first scaled by the given factor: perfectly correlated (or
// anti-correlated for negative factors) by construction.
func ScaledPair(base []float64, factor float64) *mat.Dense {
	scaled := make([]float64, len(base))
	for i, v := range base {
		scaled[i] = factor * v
	}
	return SeriesFromChannels(base, scaled)
}
