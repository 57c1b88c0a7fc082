package swpc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Research-lab-KUMS/gift/measure/highpass"
)

// Diagnostics is the observational side channel for external plotting and
// inspection tools. It exposes the intermediate spectra of a run; nothing
// in the pipeline consumes it.
type Diagnostics struct {
	// Raw is the input series.
	Raw *mat.Dense

	// Modulated is the frequency-shifted series fed to the correlation.
	Modulated *mat.Dense

	// Kernel is the normalized weight window.
	Kernel []float64

	// Transfer is the implicit high-pass impulse response, a unit
	// impulse minus the kernel.
	Transfer []float64

	// Frequencies and Response hold the single-sided magnitude response
	// of Transfer, DC through Nyquist, in Hz.
	Frequencies []float64
	Response    []float64

	// Cutoff3dBHz is the -3 dB cutoff of the implied high-pass: closed
	// form for rectangular kernels, located numerically otherwise. The
	// modulation frequency should sit above it.
	Cutoff3dBHz float64
}

func buildDiagnostics(raw, modulated *mat.Dense, kernel []float64, cfg Config) (*Diagnostics, error) {
	transfer := highpass.Transfer(kernel)

	freqs, response, err := highpass.Response(transfer, cfg.SamplingInterval)
	if err != nil {
		return nil, err
	}

	var cutoff float64
	if cfg.Kernel == KernelRectangular && cfg.WindowSize > 1 {
		cutoff, err = highpass.CutoffRectangular(cfg.WindowSize, cfg.SamplingInterval)
	} else {
		cutoff, err = highpass.Cutoff3dB(kernel, cfg.SamplingInterval)
	}
	if err != nil {
		return nil, err
	}

	return &Diagnostics{
		Raw:         raw,
		Modulated:   modulated,
		Kernel:      kernel,
		Transfer:    transfer,
		Frequencies: freqs,
		Response:    response,
		Cutoff3dBHz: cutoff,
	}, nil
}
