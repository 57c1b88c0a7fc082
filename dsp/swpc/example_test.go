package swpc_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Research-lab-KUMS/gift/dsp/swpc"
)

func ExampleCompute() {
	// Two perfectly correlated channels: B = 2*A.
	const samples = 100

	series := mat.NewDense(samples, 2, nil)
	for i := 0; i < samples; i++ {
		v := math.Sin(0.3*float64(i)) + 0.5*math.Cos(0.07*float64(i))
		series.Set(i, 0, v)
		series.Set(i, 1, 2*v)
	}

	res, err := swpc.Compute(series, swpc.Config{
		WindowSize:       15,
		SamplingInterval: 1,
		ModulationFreq:   0.1,
		Kernel:           swpc.KernelRectangular,
	})
	if err != nil {
		panic(err)
	}

	windows, pairs := res.Connectivity.Dims()
	fmt.Printf("windows: %d pairs: %d\n", windows, pairs)
	fmt.Printf("first center: %.0f first correlation: %.3f\n",
		res.Centers[0], res.Connectivity.At(0, 0))
	// Output:
	// windows: 86 pairs: 1
	// first center: 7 first correlation: 1.000
}
