package swpc

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/Research-lab-KUMS/gift/dsp/analytic"
	"github.com/Research-lab-KUMS/gift/dsp/lowertri"
)

// Result holds the output of one SSB+SWPC computation.
type Result struct {
	// Connectivity is the N-by-C(C-1)/2 matrix of vectorized
	// lower-triangular correlations, one row per window position. It is
	// nil when there are no windows (T < window size) or fewer than two
	// channels.
	Connectivity *mat.Dense

	// Centers holds the median time index of each window, aligned with
	// the rows of Connectivity. Entries are half-integers for even
	// window sizes.
	Centers []float64

	// TriangleIndices is the reusable flat lower-triangle index set for
	// the channel count of this run.
	TriangleIndices []int

	// Warnings lists non-fatal advisory conditions.
	Warnings []Warning

	// Diagnostics is populated only when Config.Diagnostics is set.
	Diagnostics *Diagnostics
}

// WindowCount returns the number of window positions for a series of
// length samples and the given window size, clamped at zero.
func WindowCount(samples, windowSize int) int {
	n := samples - windowSize + 1
	if n < 0 {
		return 0
	}
	return n
}

// Compute runs the full pipeline: single-sideband modulation of every
// channel, sliding weighted correlation across all channel pairs, and
// lower-triangle vectorization of the per-window correlation matrices.
//
// Zero weighted variance of a channel inside a window yields NaN entries
// for that channel's pairs in the affected row; these propagate to the
// output rather than aborting, and consumers must treat them as "undefined
// correlation for this window".
func Compute(series *mat.Dense, cfg Config) (*Result, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	rows, cols := series.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySeries, rows, cols)
	}

	weights, err := cfg.kernel()
	if err != nil {
		return nil, err
	}

	mod, err := analytic.NewModulator(cfg.ModulationFreq, cfg.SamplingInterval)
	if err != nil {
		return nil, err
	}

	modulated, err := mod.Apply(series)
	if err != nil {
		return nil, err
	}

	stack, centers, err := SlidingCorrelation(modulated, weights)
	if err != nil {
		return nil, err
	}

	connectivity, indices, err := lowertri.VectorizeStack(stack)
	if err != nil {
		return nil, err
	}

	if indices == nil && cols > 0 {
		// Empty stack: still report the reusable index set.
		indices, err = lowertri.Indices(cols)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Connectivity:    connectivity,
		Centers:         centers,
		TriangleIndices: indices,
		Warnings:        cfg.warnings(),
	}

	if cfg.Diagnostics {
		diag, err := buildDiagnostics(series, modulated, weights, cfg)
		if err != nil {
			return nil, err
		}
		res.Diagnostics = diag
	}

	return res, nil
}

// SlidingCorrelation computes the weighted Pearson correlation matrix for
// every window position of a T-by-C series, together with the median time
// index of each window. weights must be non-negative and sum to one.
//
// When T is shorter than the window, the result is empty: nil stack, nil
// centers, no error.
//
// Window positions are independent and are computed in parallel; stack and
// center entries remain paired by window-start index.
func SlidingCorrelation(series *mat.Dense, weights []float64) ([]*mat.SymDense, []float64, error) {
	err := validateWeights(weights)
	if err != nil {
		return nil, nil, err
	}

	rows, cols := series.Dims()
	if rows == 0 || cols == 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrEmptySeries, rows, cols)
	}

	n := WindowCount(rows, len(weights))
	if n == 0 {
		return nil, nil, nil
	}

	stack := make([]*mat.SymDense, n)
	centers := make([]float64, n)
	center := float64(len(weights)-1) / 2

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var group errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		group.Go(func() error {
			sc := newScratch(len(weights), cols)
			for s := start; s < end; s++ {
				m := mat.NewSymDense(cols, nil)
				correlationAt(series, s, weights, sc, m)
				stack[s] = m
				centers[s] = float64(s) + center
			}
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, nil, err
	}

	return stack, centers, nil
}

func validateWeights(weights []float64) error {
	if len(weights) == 0 {
		return ErrEmptyKernel
	}

	sum := 0.0
	for _, v := range weights {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: weight %v", ErrKernelNotNormalized, v)
		}
		sum += v
	}

	if math.Abs(sum-1) > 1e-8 {
		return fmt.Errorf("%w: sum %v", ErrKernelNotNormalized, sum)
	}

	return nil
}

// scratch holds per-worker buffers for the window correlation.
type scratch struct {
	means    []float64 // C
	variance []float64 // C
	centered []float64 // L*C, row-major
	gram     []float64 // C*C, row-major
}

func newScratch(winSize, channels int) *scratch {
	return &scratch{
		means:    make([]float64, channels),
		variance: make([]float64, channels),
		centered: make([]float64, winSize*channels),
		gram:     make([]float64, channels*channels),
	}
}

// correlationAt computes the weighted correlation matrix of the window
// starting at sample s into dst.
func correlationAt(series *mat.Dense, s int, weights []float64, sc *scratch, dst *mat.SymDense) {
	raw := series.RawMatrix()
	winSize := len(weights)
	channels := raw.Cols

	// Weighted per-channel mean over the window.
	for c := range sc.means {
		sc.means[c] = 0
	}
	for l := 0; l < winSize; l++ {
		row := raw.Data[(s+l)*raw.Stride : (s+l)*raw.Stride+channels]
		wl := weights[l]
		for c, v := range row {
			sc.means[c] += wl * v
		}
	}

	// Weighted de-meaning.
	for l := 0; l < winSize; l++ {
		row := raw.Data[(s+l)*raw.Stride : (s+l)*raw.Stride+channels]
		out := sc.centered[l*channels : (l+1)*channels]
		for c, v := range row {
			out[c] = v - sc.means[c]
		}
	}

	// Weighted Gram matrix: centered^T * (centered row-scaled by weights).
	for i := range sc.gram {
		sc.gram[i] = 0
	}
	for l := 0; l < winSize; l++ {
		row := sc.centered[l*channels : (l+1)*channels]
		wl := weights[l]
		for i := 0; i < channels; i++ {
			wi := wl * row[i]
			gi := sc.gram[i*channels : (i+1)*channels]
			for j, v := range row {
				gi[j] += wi * v
			}
		}
	}

	// Symmetrize against floating-point rounding before normalization.
	for i := 0; i < channels; i++ {
		for j := i + 1; j < channels; j++ {
			m := 0.5 * (sc.gram[i*channels+j] + sc.gram[j*channels+i])
			sc.gram[i*channels+j] = m
			sc.gram[j*channels+i] = m
		}
	}

	for i := 0; i < channels; i++ {
		sc.variance[i] = sc.gram[i*channels+i]
	}

	// Normalize to correlation. Zero weighted variance yields NaN for the
	// affected channel's row and column, left to propagate downstream.
	for i := 0; i < channels; i++ {
		dst.SetSym(i, i, sc.variance[i]/sc.variance[i])
		for j := i + 1; j < channels; j++ {
			denom := math.Sqrt(sc.variance[i] * sc.variance[j])
			dst.SetSym(i, j, sc.gram[i*channels+j]/denom)
		}
	}
}
