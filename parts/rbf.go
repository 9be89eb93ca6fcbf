package parts

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/wenjingk/GPy/kern"
)

var _ kern.Part = (*RBF)(nil)

// RBF is the isotropic squared-exponential covariance
// k(x, x') = variance * exp(-|x - x'|^2 / (2 lengthscale^2)).
//
// The psi0 family and psi1/psi2 themselves are implemented; the psi1/psi2
// gradients panic with ErrNotImplemented.
// TODO: port the rbf psi1/psi2 gradient closed forms.
type RBF struct {
	variance    float64
	lengthscale float64
}

// NewRBF returns an rbf part with the given variance and lengthscale.
func NewRBF(variance, lengthscale float64) *RBF {
	return &RBF{variance: variance, lengthscale: lengthscale}
}

func (r *RBF) Name() string { return "rbf" }

func (r *RBF) NumParams() int { return 2 }

func (r *RBF) Params() []float64 { return []float64{r.variance, r.lengthscale} }

func (r *RBF) ParamNames() []string { return []string{"variance", "lengthscale"} }

func (r *RBF) SetParams(theta []float64) {
	if len(theta) != 2 {
		panic(kern.ErrParamLength)
	}
	r.variance, r.lengthscale = theta[0], theta[1]
}

// sqDist is the squared euclidean distance between row i of X and row j of
// X2.
func sqDist(X, X2 *mat.Dense, i, j int) float64 {
	_, q := X.Dims()
	d2 := 0.0
	for d := 0; d < q; d++ {
		diff := X.At(i, d) - X2.At(j, d)
		d2 += diff * diff
	}
	return d2
}

func (r *RBF) K(X, X2, target *mat.Dense) {
	n, _ := X.Dims()
	m, _ := X2.Dims()
	l2 := r.lengthscale * r.lengthscale
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			k := r.variance * math.Exp(-sqDist(X, X2, i, j)/(2*l2))
			target.Set(i, j, target.At(i, j)+k)
		}
	}
}

func (r *RBF) KGradParams(partial, X, X2 *mat.Dense, target []float64) {
	n, _ := X.Dims()
	m, _ := X2.Dims()
	l2 := r.lengthscale * r.lengthscale
	l3 := l2 * r.lengthscale
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			d2 := sqDist(X, X2, i, j)
			e := math.Exp(-d2 / (2 * l2))
			p := partial.At(i, j)
			target[0] += p * e
			target[1] += p * r.variance * e * d2 / l3
		}
	}
}

func (r *RBF) KGradInputs(partial, X, X2, target *mat.Dense) {
	n, q := X.Dims()
	m, _ := X2.Dims()
	l2 := r.lengthscale * r.lengthscale
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			k := r.variance * math.Exp(-sqDist(X, X2, i, j)/(2*l2))
			p := partial.At(i, j) * k / l2
			for d := 0; d < q; d++ {
				target.Set(i, d, target.At(i, d)+p*(X2.At(j, d)-X.At(i, d)))
			}
		}
	}
}

func (r *RBF) Kdiag(X *mat.Dense, target []float64) {
	floats.AddConst(r.variance, target)
}

func (r *RBF) KdiagGradParams(partial []float64, X *mat.Dense, target []float64) {
	target[0] += floats.Sum(partial)
}

func (r *RBF) KdiagGradInputs(partial []float64, X, target *mat.Dense) {}

func (r *RBF) Psi0(Z, Mu, S *mat.Dense, target []float64) {
	floats.AddConst(r.variance, target)
}

func (r *RBF) Psi0GradParams(Z, Mu, S, target *mat.Dense) {
	n, _ := Mu.Dims()
	for i := 0; i < n; i++ {
		target.Set(i, 0, target.At(i, 0)+1)
	}
}

func (r *RBF) Psi0GradMoments(Z, Mu, S, targetMu, targetS *mat.Dense) {}

func (r *RBF) Psi1(Z, Mu, S, target *mat.Dense) {
	n, q := Mu.Dims()
	m, _ := Z.Dims()
	l2 := r.lengthscale * r.lengthscale
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			val := r.variance
			for d := 0; d < q; d++ {
				denom := l2 + S.At(i, d)
				diff := Mu.At(i, d) - Z.At(j, d)
				val *= math.Sqrt(l2/denom) * math.Exp(-diff*diff/(2*denom))
			}
			target.Set(i, j, target.At(i, j)+val)
		}
	}
}

func (r *RBF) Psi1GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {
	panic(ErrNotImplemented)
}

func (r *RBF) Psi1GradInducing(Z, Mu, S *mat.Dense, target *kern.Cube) {
	panic(ErrNotImplemented)
}

func (r *RBF) Psi1GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Cube) {
	panic(ErrNotImplemented)
}

func (r *RBF) Psi2(Z, Mu, S *mat.Dense, target *kern.Cube) {
	n, q := Mu.Dims()
	m, _ := Z.Dims()
	l2 := r.lengthscale * r.lengthscale
	v2 := r.variance * r.variance
	for i := 0; i < n; i++ {
		for a := 0; a < m; a++ {
			for b := 0; b < m; b++ {
				val := v2
				for d := 0; d < q; d++ {
					zd := Z.At(a, d) - Z.At(b, d)
					zbar := 0.5 * (Z.At(a, d) + Z.At(b, d))
					denom := l2 + 2*S.At(i, d)
					mu := Mu.At(i, d)
					val *= math.Sqrt(l2/denom) *
						math.Exp(-zd*zd/(4*l2)-(mu-zbar)*(mu-zbar)/denom)
				}
				target.Add(i, a, b, val)
			}
		}
	}
}

func (r *RBF) Psi2GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {
	panic(ErrNotImplemented)
}

func (r *RBF) Psi2GradInducing(Z, Mu, S *mat.Dense, target *kern.Tensor4) {
	panic(ErrNotImplemented)
}

func (r *RBF) Psi2GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Tensor4) {
	panic(ErrNotImplemented)
}
