// Package swpc computes time-resolved correlation between the channels of
// a multivariate series using single-sideband modulation followed by
// sliding-window weighted Pearson correlation.
//
// Sliding-window correlation implicitly high-pass filters its input: the
// windowed de-meaning removes everything below the window's cutoff. The
// single-sideband step shifts the signal's spectral content up by a chosen
// modulation frequency first, moving it out of that stopband, so slow
// correlation dynamics survive short windows.
//
// The pipeline is pure and deterministic: one call to [Compute] consumes a
// T-by-C series and produces one vectorized connectivity time series plus
// the window center indices that align it with the input. Window positions
// are computed concurrently; results are ordered by window start.
//
// # Usage
//
//	res, err := swpc.Compute(series, swpc.Config{
//		WindowSize:       15,
//		SamplingInterval: 1,
//		ModulationFreq:   0.1,
//		Kernel:           swpc.KernelRectangular,
//	})
//
// Bandlimiting or upsampling the input, choosing the window size, and
// picking a modulation frequency above the window's high-pass cutoff (see
// measure/highpass) remain the caller's responsibility.
package swpc
