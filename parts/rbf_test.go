package parts_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wenjingk/GPy/kern"
	"github.com/wenjingk/GPy/parts"
)

func TestRBF_KValues(t *testing.T) {
	r := parts.NewRBF(2, 0.5)
	X := mat.NewDense(2, 1, []float64{0, 1})
	target := mat.NewDense(2, 2, nil)

	r.K(X, X, target)
	assert.InDelta(t, 2.0, target.At(0, 0), 1e-12)
	assert.InDelta(t, 2*math.Exp(-2), target.At(0, 1), 1e-12)
	assert.InDelta(t, target.At(0, 1), target.At(1, 0), 1e-12)
}

func TestRBF_KSymmetricInCompound(t *testing.T) {
	k := kern.New(2, []kern.Part{parts.NewRBF(1, 1), parts.NewBias(0.2)}, nil)
	X := input(5, 2)

	K := k.K(X, nil, nil, nil)
	for i := 0; i < 5; i++ {
		for j := 0; j < i; j++ {
			assert.InDelta(t, K.At(i, j), K.At(j, i), 1e-12)
		}
	}
}

func TestRBF_KGradParams(t *testing.T) {
	r := parts.NewRBF(2, 1)
	X := mat.NewDense(2, 1, []float64{0, 1})
	partial := mat.NewDense(2, 2, nil)
	partial.Set(0, 1, 1)
	target := make([]float64, 2)

	r.KGradParams(partial, X, X, target)
	e := math.Exp(-0.5)
	assert.InDelta(t, e, target[0], 1e-12)   // dk/dvariance
	assert.InDelta(t, 2*e, target[1], 1e-12) // dk/dlengthscale = v e d2 / l^3
}

func TestRBF_KGradInputsPointsTowardNeighbor(t *testing.T) {
	r := parts.NewRBF(1, 1)
	X := mat.NewDense(1, 1, []float64{0})
	X2 := mat.NewDense(1, 1, []float64{1})
	partial := mat.NewDense(1, 1, []float64{1})
	target := mat.NewDense(1, 1, nil)

	r.KGradInputs(partial, X, X2, target)
	assert.InDelta(t, math.Exp(-0.5), target.At(0, 0), 1e-12)
}

func TestRBF_KdiagIsVariance(t *testing.T) {
	k := kern.New(2, []kern.Part{parts.NewRBF(1.5, 2)}, nil)
	diag := k.Kdiag(input(3, 2), nil)
	assert.Equal(t, []float64{1.5, 1.5, 1.5}, diag)
}

func TestRBF_Psi1CollapsesToKForZeroVariance(t *testing.T) {
	// With S = 0 the expectation is just the covariance at the means.
	r := parts.NewRBF(1.2, 0.8)
	Z := input(3, 2)
	Mu := input(4, 2)
	S := mat.NewDense(4, 2, nil)

	psi1 := mat.NewDense(4, 3, nil)
	r.Psi1(Z, Mu, S, psi1)

	K := mat.NewDense(4, 3, nil)
	r.K(Mu, Z, K)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, K.At(i, j), psi1.At(i, j), 1e-12)
		}
	}
}

func TestRBF_Psi2CollapsesToKProductForZeroVariance(t *testing.T) {
	r := parts.NewRBF(0.9, 1.1)
	Z := input(2, 2)
	Mu := input(3, 2)
	S := mat.NewDense(3, 2, nil)

	psi2 := kern.NewCube(3, 2, 2)
	r.Psi2(Z, Mu, S, psi2)

	K := mat.NewDense(3, 2, nil)
	r.K(Mu, Z, K)
	for i := 0; i < 3; i++ {
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				assert.InDelta(t, K.At(i, a)*K.At(i, b), psi2.At(i, a, b), 1e-12)
			}
		}
	}
}

func TestRBF_Psi1ShrinksWithVariance(t *testing.T) {
	r := parts.NewRBF(1, 1)
	Z := mat.NewDense(1, 1, []float64{0})
	Mu := mat.NewDense(1, 1, []float64{1})

	exact := mat.NewDense(1, 1, nil)
	r.Psi1(Z, Mu, mat.NewDense(1, 1, nil), exact)
	smoothed := mat.NewDense(1, 1, nil)
	r.Psi1(Z, Mu, mat.NewDense(1, 1, []float64{2}), smoothed)

	require.Less(t, smoothed.At(0, 0), exact.At(0, 0))
	assert.Greater(t, smoothed.At(0, 0), 0.0)
}

func TestRBF_PsiGradientsNotImplemented(t *testing.T) {
	r := parts.NewRBF(1, 1)
	Z, Mu, S := input(2, 1), input(2, 1), input(2, 1)

	assert.PanicsWithValue(t, parts.ErrNotImplemented, func() {
		r.Psi1GradParams(Z, Mu, S, kern.NewCube(2, 2, 2))
	})
	assert.PanicsWithValue(t, parts.ErrNotImplemented, func() {
		r.Psi2GradMoments(Z, Mu, S, kern.NewTensor4(2, 2, 2, 1), kern.NewTensor4(2, 2, 2, 1))
	})
}
