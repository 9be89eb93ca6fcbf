// Package parts provides basic concrete kernel parts for kern.Compound:
// bias, white noise, linear and squared-exponential (rbf) covariances.
package parts

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/wenjingk/GPy/kern"
)

var _ kern.Part = (*Bias)(nil)

// Bias is the constant covariance k(x, x') = variance.
type Bias struct {
	variance float64
}

// NewBias returns a bias part with the given variance.
func NewBias(variance float64) *Bias {
	return &Bias{variance: variance}
}

func (b *Bias) Name() string { return "bias" }

func (b *Bias) NumParams() int { return 1 }

func (b *Bias) Params() []float64 { return []float64{b.variance} }

func (b *Bias) ParamNames() []string { return []string{"variance"} }

func (b *Bias) SetParams(theta []float64) {
	if len(theta) != 1 {
		panic(kern.ErrParamLength)
	}
	b.variance = theta[0]
}

func (b *Bias) K(X, X2, target *mat.Dense) {
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		floats.AddConst(b.variance, target.RawRowView(i))
	}
}

func (b *Bias) KGradParams(partial, X, X2 *mat.Dense, target []float64) {
	target[0] += mat.Sum(partial)
}

func (b *Bias) KGradInputs(partial, X, X2, target *mat.Dense) {}

func (b *Bias) Kdiag(X *mat.Dense, target []float64) {
	floats.AddConst(b.variance, target)
}

func (b *Bias) KdiagGradParams(partial []float64, X *mat.Dense, target []float64) {
	target[0] += floats.Sum(partial)
}

func (b *Bias) KdiagGradInputs(partial []float64, X, target *mat.Dense) {}

func (b *Bias) Psi0(Z, Mu, S *mat.Dense, target []float64) {
	floats.AddConst(b.variance, target)
}

func (b *Bias) Psi0GradParams(Z, Mu, S, target *mat.Dense) {
	n, _ := Mu.Dims()
	for i := 0; i < n; i++ {
		target.Set(i, 0, target.At(i, 0)+1)
	}
}

func (b *Bias) Psi0GradMoments(Z, Mu, S, targetMu, targetS *mat.Dense) {}

func (b *Bias) Psi1(Z, Mu, S, target *mat.Dense) {
	n, _ := Mu.Dims()
	for i := 0; i < n; i++ {
		floats.AddConst(b.variance, target.RawRowView(i))
	}
}

func (b *Bias) Psi1GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {
	for i := 0; i < target.N; i++ {
		for j := 0; j < target.M; j++ {
			target.Add(i, j, 0, 1)
		}
	}
}

func (b *Bias) Psi1GradInducing(Z, Mu, S *mat.Dense, target *kern.Cube) {}

func (b *Bias) Psi1GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Cube) {}

func (b *Bias) Psi2(Z, Mu, S *mat.Dense, target *kern.Cube) {
	v2 := b.variance * b.variance
	for i := 0; i < target.N; i++ {
		for j := 0; j < target.M; j++ {
			for l := 0; l < target.P; l++ {
				target.Add(i, j, l, v2)
			}
		}
	}
}

func (b *Bias) Psi2GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {
	n, _ := Mu.Dims()
	// Summed over the data axis.
	g := 2 * b.variance * float64(n)
	for j := 0; j < target.N; j++ {
		for l := 0; l < target.M; l++ {
			target.Add(j, l, 0, g)
		}
	}
}

func (b *Bias) Psi2GradInducing(Z, Mu, S *mat.Dense, target *kern.Tensor4) {}

func (b *Bias) Psi2GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Tensor4) {}
