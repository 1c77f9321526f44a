package probe

import (
	"context"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/robostack-edu/envcheck/internal/checkup"
	"github.com/robostack-edu/envcheck/internal/model"
)

// fftProbeSamples is the length of the synthetic signal pushed through
// the FFT probe. 128 keeps the probe instant while still exercising the
// radix-2 code path.
const fftProbeSamples = 128

// LinearAlgebra returns a check that multiplies a 3×3 matrix by the
// identity and verifies the product reproduces the input. A mismatch
// would indicate a miscompiled or corrupted numeric stack — unlikely,
// but this is exactly the class of breakage a smoke test exists to catch.
func LinearAlgebra() checkup.Check {
	return checkup.Check{
		Name: "linear algebra",
		Run: func(ctx context.Context) model.CheckResult {
			a := mat.NewDense(3, 3, []float64{
				0, 1, 2,
				3, 4, 5,
				6, 7, 8,
			})
			identity := mat.NewDense(3, 3, []float64{
				1, 0, 0,
				0, 1, 0,
				0, 0, 1,
			})

			var product mat.Dense
			product.Mul(a, identity)

			if !mat.Equal(&product, a) {
				return model.Fail("linear algebra", "rebuild or reinstall the envcheck binary",
					"matrix multiply returned an unexpected result")
			}
			return model.Pass("linear algebra", "matrix multiply OK (3x3 identity product)")
		},
	}
}

// FFT returns a check that transforms a sampled sine wave and verifies
// every coefficient is finite.
func FFT() checkup.Check {
	return checkup.Check{
		Name: "fft",
		Run: func(ctx context.Context) model.CheckResult {
			// Four full periods sampled across the window.
			samples := make([]float64, fftProbeSamples)
			for i := range samples {
				samples[i] = math.Sin(8 * math.Pi * float64(i) / float64(fftProbeSamples-1))
			}

			fft := fourier.NewFFT(fftProbeSamples)
			coeffs := fft.Coefficients(nil, samples)

			for i, c := range coeffs {
				if cmplx.IsNaN(c) || cmplx.IsInf(c) {
					return model.Fail("fft", "rebuild or reinstall the envcheck binary",
						"FFT produced a non-finite coefficient at bin %d", i)
				}
			}
			return model.Pass("fft", "FFT OK (%d finite coefficients)", len(coeffs))
		},
	}
}
