package parts

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wenjingk/GPy/kern"
)

var _ kern.Part = (*Linear)(nil)

// Linear is the homogeneous linear covariance k(x, x') = variance * x.x'.
type Linear struct {
	variance float64
}

// NewLinear returns a linear part with the given variance.
func NewLinear(variance float64) *Linear {
	return &Linear{variance: variance}
}

func (l *Linear) Name() string { return "linear" }

func (l *Linear) NumParams() int { return 1 }

func (l *Linear) Params() []float64 { return []float64{l.variance} }

func (l *Linear) ParamNames() []string { return []string{"variance"} }

func (l *Linear) SetParams(theta []float64) {
	if len(theta) != 1 {
		panic(kern.ErrParamLength)
	}
	l.variance = theta[0]
}

func (l *Linear) K(X, X2, target *mat.Dense) {
	n, _ := X.Dims()
	m, _ := X2.Dims()
	for i := 0; i < n; i++ {
		xi := X.RowView(i)
		for j := 0; j < m; j++ {
			target.Set(i, j, target.At(i, j)+l.variance*mat.Dot(xi, X2.RowView(j)))
		}
	}
}

func (l *Linear) KGradParams(partial, X, X2 *mat.Dense, target []float64) {
	n, _ := X.Dims()
	m, _ := X2.Dims()
	for i := 0; i < n; i++ {
		xi := X.RowView(i)
		for j := 0; j < m; j++ {
			target[0] += partial.At(i, j) * mat.Dot(xi, X2.RowView(j))
		}
	}
}

func (l *Linear) KGradInputs(partial, X, X2, target *mat.Dense) {
	n, q := X.Dims()
	m, _ := X2.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			p := l.variance * partial.At(i, j)
			for d := 0; d < q; d++ {
				target.Set(i, d, target.At(i, d)+p*X2.At(j, d))
			}
		}
	}
}

func (l *Linear) Kdiag(X *mat.Dense, target []float64) {
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		xi := X.RowView(i)
		target[i] += l.variance * mat.Dot(xi, xi)
	}
}

func (l *Linear) KdiagGradParams(partial []float64, X *mat.Dense, target []float64) {
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		xi := X.RowView(i)
		target[0] += partial[i] * mat.Dot(xi, xi)
	}
}

func (l *Linear) KdiagGradInputs(partial []float64, X, target *mat.Dense) {
	n, q := X.Dims()
	for i := 0; i < n; i++ {
		for d := 0; d < q; d++ {
			target.Set(i, d, target.At(i, d)+2*l.variance*partial[i]*X.At(i, d))
		}
	}
}

func (l *Linear) Psi0(Z, Mu, S *mat.Dense, target []float64) {
	n, q := Mu.Dims()
	for i := 0; i < n; i++ {
		sum := 0.0
		for d := 0; d < q; d++ {
			mu := Mu.At(i, d)
			sum += mu*mu + S.At(i, d)
		}
		target[i] += l.variance * sum
	}
}

func (l *Linear) Psi0GradParams(Z, Mu, S, target *mat.Dense) {
	n, q := Mu.Dims()
	for i := 0; i < n; i++ {
		sum := 0.0
		for d := 0; d < q; d++ {
			mu := Mu.At(i, d)
			sum += mu*mu + S.At(i, d)
		}
		target.Set(i, 0, target.At(i, 0)+sum)
	}
}

func (l *Linear) Psi0GradMoments(Z, Mu, S, targetMu, targetS *mat.Dense) {
	n, q := Mu.Dims()
	for i := 0; i < n; i++ {
		for d := 0; d < q; d++ {
			targetMu.Set(i, d, targetMu.At(i, d)+2*l.variance*Mu.At(i, d))
			targetS.Set(i, d, targetS.At(i, d)+l.variance)
		}
	}
}

func (l *Linear) Psi1(Z, Mu, S, target *mat.Dense) {
	n, _ := Mu.Dims()
	m, _ := Z.Dims()
	for i := 0; i < n; i++ {
		mui := Mu.RowView(i)
		for j := 0; j < m; j++ {
			target.Set(i, j, target.At(i, j)+l.variance*mat.Dot(mui, Z.RowView(j)))
		}
	}
}

func (l *Linear) Psi1GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {
	n, _ := Mu.Dims()
	m, _ := Z.Dims()
	for i := 0; i < n; i++ {
		mui := Mu.RowView(i)
		for j := 0; j < m; j++ {
			target.Add(i, j, 0, mat.Dot(mui, Z.RowView(j)))
		}
	}
}

func (l *Linear) Psi1GradInducing(Z, Mu, S *mat.Dense, target *kern.Cube) {
	n, q := Mu.Dims()
	m, _ := Z.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			for d := 0; d < q; d++ {
				target.Add(i, j, d, l.variance*Mu.At(i, d))
			}
		}
	}
}

func (l *Linear) Psi1GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Cube) {
	n, q := Mu.Dims()
	m, _ := Z.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			for d := 0; d < q; d++ {
				targetMu.Add(i, j, d, l.variance*Z.At(j, d))
			}
		}
	}
}

// psi2Term is E[k(x_n, z_a) k(x_n, z_b)] for the linear covariance, without
// the leading v^2: (z_a.mu_n)(z_b.mu_n) + sum_q z_aq z_bq S_nq.
func psi2Term(Z, Mu, S *mat.Dense, n, a, b int) float64 {
	mun := Mu.RowView(n)
	za, zb := Z.RowView(a), Z.RowView(b)
	t := mat.Dot(za, mun) * mat.Dot(zb, mun)
	for d := 0; d < za.Len(); d++ {
		t += Z.At(a, d) * Z.At(b, d) * S.At(n, d)
	}
	return t
}

func (l *Linear) Psi2(Z, Mu, S *mat.Dense, target *kern.Cube) {
	n, _ := Mu.Dims()
	m, _ := Z.Dims()
	v2 := l.variance * l.variance
	for i := 0; i < n; i++ {
		for a := 0; a < m; a++ {
			for b := 0; b < m; b++ {
				target.Add(i, a, b, v2*psi2Term(Z, Mu, S, i, a, b))
			}
		}
	}
}

func (l *Linear) Psi2GradParams(Z, Mu, S *mat.Dense, target *kern.Cube) {
	n, _ := Mu.Dims()
	m, _ := Z.Dims()
	for a := 0; a < m; a++ {
		for b := 0; b < m; b++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += 2 * l.variance * psi2Term(Z, Mu, S, i, a, b)
			}
			target.Add(a, b, 0, sum)
		}
	}
}

func (l *Linear) Psi2GradInducing(Z, Mu, S *mat.Dense, target *kern.Tensor4) {
	n, q := Mu.Dims()
	m, _ := Z.Dims()
	v2 := l.variance * l.variance
	for i := 0; i < n; i++ {
		mui := Mu.RowView(i)
		for a := 0; a < m; a++ {
			for b := 0; b < m; b++ {
				zbmu := mat.Dot(Z.RowView(b), mui)
				for d := 0; d < q; d++ {
					target.Add(i, a, b, d, v2*(Mu.At(i, d)*zbmu+S.At(i, d)*Z.At(b, d)))
				}
			}
		}
	}
}

func (l *Linear) Psi2GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *kern.Tensor4) {
	n, q := Mu.Dims()
	m, _ := Z.Dims()
	v2 := l.variance * l.variance
	for i := 0; i < n; i++ {
		mui := Mu.RowView(i)
		for a := 0; a < m; a++ {
			zamu := mat.Dot(Z.RowView(a), mui)
			for b := 0; b < m; b++ {
				zbmu := mat.Dot(Z.RowView(b), mui)
				for d := 0; d < q; d++ {
					za, zb := Z.At(a, d), Z.At(b, d)
					targetMu.Add(i, a, b, d, v2*(za*zbmu+zb*zamu))
					targetS.Add(i, a, b, d, v2*za*zb)
				}
			}
		}
	}
}
