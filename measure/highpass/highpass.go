// Package highpass characterizes the high-pass filtering a sliding-window
// correlation implicitly applies to its input.
//
// Windowed de-meaning subtracts a moving weighted average, which is the
// same as filtering with a unit impulse minus the window kernel. This
// package exposes that transfer function, its magnitude response, and the
// -3 dB cutoff frequency used to pick a safe single-sideband modulation
// frequency.
package highpass

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/Research-lab-KUMS/gift/dsp/spectrum"
)

// Errors returned by response and cutoff computation.
var (
	ErrEmptyKernel     = errors.New("highpass: empty kernel")
	ErrInvalidInterval = errors.New("highpass: sampling interval must be positive and finite")
	ErrInvalidSize     = errors.New("highpass: window size must be > 1")
	ErrNoCutoff        = errors.New("highpass: no half-power sample found in response")
)

// minFFTSize bounds the frequency resolution of numeric cutoff searches.
const minFFTSize = 4096

// Transfer returns the implicit high-pass impulse response: a unit impulse
// at the kernel center minus the kernel itself.
func Transfer(kernel []float64) []float64 {
	out := make([]float64, len(kernel))
	for i, v := range kernel {
		out[i] = -v
	}

	if len(kernel) > 0 {
		out[(len(kernel)-1)/2] += 1
	}

	return out
}

// Response computes the single-sided magnitude response of the filter h at
// sampling interval dt. It returns the bin frequencies in Hz and the
// magnitude per bin, covering DC through Nyquist.
func Response(h []float64, dt float64) (freqs, mag []float64, err error) {
	if len(h) == 0 {
		return nil, nil, ErrEmptyKernel
	}

	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInterval, dt)
	}

	fftSize := nextPowerOf2(len(h) * 8)
	if fftSize < minFFTSize {
		fftSize = minFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("highpass: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range h {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)

	err = plan.Forward(freq, padded)
	if err != nil {
		return nil, nil, fmt.Errorf("highpass: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	mag = spectrum.Magnitude(freq[:binCount])
	freqs = spectrum.FrequencyAxis(binCount, fftSize, 1/dt)

	return freqs, mag, nil
}

// CutoffRectangular returns the closed-form -3 dB cutoff in Hz of the
// high-pass implied by a rectangular window of the given size.
func CutoffRectangular(size int, dt float64) (float64, error) {
	if size <= 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, dt)
	}

	return 0.88 / math.Sqrt(float64(size)*float64(size)-1) / dt, nil
}

// Cutoff3dB locates the -3 dB (half-power) frequency of the high-pass
// implied by the given normalized kernel, by searching the magnitude
// response for the sample closest to the half-power level with an
// expanding tolerance.
func Cutoff3dB(kernel []float64, dt float64) (float64, error) {
	h := Transfer(kernel)

	freqs, mag, err := Response(h, dt)
	if err != nil {
		return 0, err
	}

	peak := 0.0
	for _, m := range mag {
		if m > peak {
			peak = m
		}
	}

	if peak == 0 {
		return 0, ErrNoCutoff
	}

	target := peak / math.Sqrt2
	for tol := target * 1e-4; tol <= target; tol *= 2 {
		for i, m := range mag {
			if math.Abs(m-target) <= tol {
				return freqs[i], nil
			}
		}
	}

	return 0, ErrNoCutoff
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
