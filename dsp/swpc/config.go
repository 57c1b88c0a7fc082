package swpc

import (
	"errors"
	"fmt"
	"math"

	"github.com/Research-lab-KUMS/gift/dsp/window"
)

// KernelType selects the weighting window used for the sliding correlation.
// The set is closed: unrecognized values are rejected before any computation.
type KernelType int

const (
	KernelRectangular KernelType = iota
	KernelGaussian
	KernelTaperedCosine
)

// String returns the kernel name.
func (k KernelType) String() string {
	switch k {
	case KernelRectangular:
		return "rectangular"
	case KernelGaussian:
		return "gaussian"
	case KernelTaperedCosine:
		return "tapered-cosine"
	default:
		return fmt.Sprintf("KernelType(%d)", int(k))
	}
}

// windowType maps the kernel selector onto the window generator.
func (k KernelType) windowType() (window.Type, bool) {
	switch k {
	case KernelRectangular:
		return window.TypeRectangular, true
	case KernelGaussian:
		return window.TypeGauss, true
	case KernelTaperedCosine:
		return window.TypeTukey, true
	default:
		return 0, false
	}
}

// Errors returned by configuration validation and computation.
var (
	ErrUnknownKernel       = errors.New("swpc: unknown window kernel type")
	ErrInvalidWindowSize   = errors.New("swpc: window size must be positive")
	ErrInvalidInterval     = errors.New("swpc: sampling interval must be positive and finite")
	ErrFrequencyRange      = errors.New("swpc: modulation frequency must lie in (0, Nyquist)")
	ErrEmptySeries         = errors.New("swpc: series must have at least one sample and one channel")
	ErrEmptyKernel         = errors.New("swpc: kernel must not be empty")
	ErrKernelNotNormalized = errors.New("swpc: kernel weights must be non-negative and sum to one")
)

// WarningCode identifies a non-fatal advisory condition.
type WarningCode int

const (
	// WarnEvenWindowSize flags an even window size: the window has no
	// integer center sample, so window centers are half-integers.
	WarnEvenWindowSize WarningCode = iota
)

// Warning is a non-fatal advisory raised during computation.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string { return w.Message }

// Config holds the parameters of one SSB+SWPC computation.
type Config struct {
	// WindowSize is the sliding-window length in samples. Odd sizes give
	// an exact integer window center; even sizes are accepted with a
	// warning.
	WindowSize int

	// SamplingInterval is the sample spacing in seconds, shared by all
	// channels.
	SamplingInterval float64

	// ModulationFreq is the single-sideband shift frequency in Hz. It
	// must lie strictly between zero and the Nyquist frequency; for the
	// shift to clear the window's stopband it should also exceed the
	// window's implied high-pass cutoff (see measure/highpass), which is
	// the caller's responsibility.
	ModulationFreq float64

	// Kernel selects the weighting window type.
	Kernel KernelType

	// Diagnostics requests the observational side channel (modulated
	// series, implied high-pass transfer function and its cutoff).
	Diagnostics bool
}

// Nyquist returns the half-sampling-rate frequency in Hz.
func (c Config) Nyquist() float64 {
	return 0.5 / c.SamplingInterval
}

// Validate checks the configuration eagerly, before any computation.
func (c Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, c.WindowSize)
	}

	if !(c.SamplingInterval > 0) || math.IsInf(c.SamplingInterval, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, c.SamplingInterval)
	}

	if _, ok := c.Kernel.windowType(); !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKernel, c.Kernel)
	}

	if !(c.ModulationFreq > 0) || c.ModulationFreq >= c.Nyquist() {
		return fmt.Errorf("%w: f=%v, nyquist=%v", ErrFrequencyRange,
			c.ModulationFreq, c.Nyquist())
	}

	return nil
}

// warnings returns the advisory conditions implied by the configuration.
func (c Config) warnings() []Warning {
	var out []Warning

	if c.WindowSize%2 == 0 {
		out = append(out, Warning{
			Code: WarnEvenWindowSize,
			Message: fmt.Sprintf(
				"swpc: even window size %d has no integer center sample; window centers are half-integers",
				c.WindowSize),
		})
	}

	return out
}

// kernel builds the normalized weight vector for the configured type.
func (c Config) kernel() ([]float64, error) {
	t, ok := c.Kernel.windowType()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKernel, c.Kernel)
	}

	return window.Normalized(t, c.WindowSize)
}
