// Package analytic constructs analytic (Hilbert) signal representations and
// applies single-sideband frequency shifts to real-valued series.
//
// The analytic signal of a real signal x is the complex signal whose real
// part is x and whose imaginary part is the Hilbert transform of x. Its
// spectrum is one-sided: negative-frequency content is zeroed and interior
// positive-frequency content doubled. Multiplying it by a complex carrier
// exp(i*2*pi*f*t) and taking the real part shifts the spectral content of x
// by f without the image band a plain cosine mixer would produce.
package analytic

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by analytic-signal construction and modulation.
var (
	ErrEmptySignal     = errors.New("analytic: empty signal")
	ErrInvalidInterval = errors.New("analytic: sampling interval must be positive and finite")
	ErrInvalidFreq     = errors.New("analytic: modulation frequency must be finite")
)

// Signal returns the analytic representation of x as a complex slice of the
// same length. The real part of the result equals x up to floating-point
// rounding; the imaginary part is the Hilbert transform of x.
func Signal(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	fft := fourier.NewCmplxFFT(len(x))
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}

	analyticInPlace(fft, out)

	return out, nil
}

// analyticInPlace converts the full-length DFT contents of buf into the
// analytic signal in the time domain. buf holds the time-domain samples on
// entry and the analytic samples on return.
func analyticInPlace(fft *fourier.CmplxFFT, buf []complex128) {
	n := len(buf)

	coeff := fft.Coefficients(nil, buf)

	// One-sided spectrum: keep DC (and Nyquist for even lengths) as-is,
	// double the interior positive frequencies, zero the negatives.
	half := n / 2
	upper := half
	if n%2 == 0 {
		upper = half - 1
	}
	for k := 1; k <= upper; k++ {
		coeff[k] *= 2
	}
	for k := half + 1; k < n; k++ {
		coeff[k] = 0
	}

	fft.Sequence(buf, coeff)

	// The gonum transform pair is unnormalized.
	scale := complex(1/float64(n), 0)
	for i := range buf {
		buf[i] *= scale
	}
}

// Modulator applies a single-sideband frequency shift to real signals
// sampled at a fixed interval. It is safe for sequential reuse across
// signals of varying length; the FFT plan is rebuilt when the length
// changes. It is not safe for concurrent use.
type Modulator struct {
	freq float64
	dt   float64

	fft    *fourier.CmplxFFT
	fftLen int

	carrier []complex128
	scratch []complex128
}

// NewModulator creates a modulator for the given shift frequency in Hz and
// sampling interval in seconds.
func NewModulator(freq, dt float64) (*Modulator, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, dt)
	}

	if math.IsNaN(freq) || math.IsInf(freq, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFreq, freq)
	}

	return &Modulator{freq: freq, dt: dt}, nil
}

// Frequency returns the configured shift frequency in Hz.
func (m *Modulator) Frequency() float64 { return m.freq }

// SamplingInterval returns the configured sampling interval in seconds.
func (m *Modulator) SamplingInterval() float64 { return m.dt }

// Carrier returns the complex carrier exp(i*2*pi*f*t) sampled at
// t = 0, dt, ..., (n-1)*dt.
func (m *Modulator) Carrier(n int) []complex128 {
	out := make([]complex128, n)
	step := 2 * math.Pi * m.freq * m.dt
	for i := range out {
		out[i] = cmplx.Exp(complex(0, step*float64(i)))
	}
	return out
}

// ApplyChannel frequency-shifts a single real channel and returns the real
// part of the modulated analytic signal.
func (m *Modulator) ApplyChannel(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	m.prepare(len(x))

	out := make([]float64, len(x))
	m.modulateInto(out, x)

	return out, nil
}

// Apply frequency-shifts every channel (column) of a T-by-C series and
// returns a new series of the same shape.
func (m *Modulator) Apply(series *mat.Dense) (*mat.Dense, error) {
	rows, cols := series.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptySignal
	}

	m.prepare(rows)

	out := mat.NewDense(rows, cols, nil)
	channel := make([]float64, rows)
	shifted := make([]float64, rows)

	for j := 0; j < cols; j++ {
		mat.Col(channel, j, series)
		m.modulateInto(shifted, channel)
		out.SetCol(j, shifted)
	}

	return out, nil
}

func (m *Modulator) prepare(n int) {
	if m.fftLen == n {
		return
	}

	m.fft = fourier.NewCmplxFFT(n)
	m.fftLen = n
	m.carrier = m.Carrier(n)
	m.scratch = make([]complex128, n)
}

func (m *Modulator) modulateInto(dst, x []float64) {
	for i, v := range x {
		m.scratch[i] = complex(v, 0)
	}

	analyticInPlace(m.fft, m.scratch)

	for i := range dst {
		dst[i] = real(m.scratch[i] * m.carrier[i])
	}
}
