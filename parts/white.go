package parts

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/wenjingk/GPy/kern"
)

var _ kern.Part = (*White)(nil)

// White is independent observation noise: k(x, x') = variance when x and x'
// are the same data point, zero otherwise. Off the diagonal of a
// self-covariance it contributes nothing, so K only writes when its two
// input views alias the same rows.
type White struct {
	variance float64
}

// NewWhite returns a white-noise part with the given variance.
func NewWhite(variance float64) *White {
	return &White{variance: variance}
}

func (w *White) Name() string { return "white" }

func (w *White) NumParams() int { return 1 }

func (w *White) Params() []float64 { return []float64{w.variance} }

func (w *White) ParamNames() []string { return []string{"variance"} }

func (w *White) SetParams(theta []float64) {
	if len(theta) != 1 {
		panic(kern.ErrParamLength)
	}
	w.variance = theta[0]
}

// sameView reports whether a and b are views of the same rows of the same
// backing matrix.
func sameView(a, b *mat.Dense) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return false
	}
	ma, mb := a.RawMatrix(), b.RawMatrix()
	return ma.Stride == mb.Stride && &ma.Data[0] == &mb.Data[0]
}

func (w *White) K(X, X2, target *mat.Dense) {
	if !sameView(X, X2) {
		return
	}
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		target.Set(i, i, target.At(i, i)+w.variance)
	}
}

func (w *White) KGradParams(partial, X, X2 *mat.Dense, target []float64) {
	if !sameView(X, X2) {
		return
	}
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		target[0] += partial.At(i, i)
	}
}

func (w *White) KGradInputs(partial, X, X2, target *mat.Dense) {}

func (w *White) Kdiag(X *mat.Dense, target []float64) {
	floats.AddConst(w.variance, target)
}

func (w *White) KdiagGradParams(partial []float64, X *mat.Dense, target []float64) {
	target[0] += floats.Sum(partial)
}

func (w *White) KdiagGradInputs(partial []float64, X, target *mat.Dense) {}

func (w *White) Psi0(Z, Mu, S *mat.Dense, target []float64) {
	floats.AddConst(w.variance, target)
}

func (w *White) Psi0GradParams(Z, Mu, S, target *mat.Dense) {
	n, _ := Mu.Dims()
	for i := 0; i < n; i++ {
		target.Set(i, 0, target.At(i, 0)+1)
	}
}

func (w *White) Psi0GradMoments(Z, Mu, S, targetMu, targetS *mat.Dense) {}

// The latent inputs and the inducing inputs never coincide, so white noise
// drops out of psi1 and psi2 entirely.

func (w *White) Psi1(Z, Mu, S, target *mat.Dense) {}

func (w *White) Psi1GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {}

func (w *White) Psi1GradInducing(Z, Mu, S *mat.Dense, target *kern.Cube) {}

func (w *White) Psi1GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Cube) {}

func (w *White) Psi2(Z, Mu, S *mat.Dense, target *kern.Cube) {}

func (w *White) Psi2GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {}

func (w *White) Psi2GradInducing(Z, Mu, S *mat.Dense, target *kern.Tensor4) {}

func (w *White) Psi2GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Tensor4) {}
