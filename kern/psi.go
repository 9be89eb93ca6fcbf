package kern

import "gonum.org/v1/gonum/mat"

// Psi statistics are the expectations of the covariance (and of covariance
// cross-products) under a factorized Gaussian over the latent inputs, as
// needed by variational sparse GP approximations. Z holds the M×Q inducing
// inputs; Mu and S hold the N×Q variational means and variances.
//
// Unlike the K family, psi dispatch applies no row or column slicing: every
// part accumulates over the full buffers, since the variational bound is
// computed over all data and inducing points jointly. Hyperparameter
// gradients still go to the per-part parameter blocks.

// psiDims validates the shapes of the psi inputs and returns (N, M, Q).
func (k *Compound) psiDims(Z, Mu, S *mat.Dense) (n, m, q int) {
	m, q = Z.Dims()
	n, qMu := Mu.Dims()
	nS, qS := S.Dims()
	if qMu != q || nS != n || qS != q {
		panic(ErrDimensionMismatch)
	}
	return n, m, q
}

// Psi0 returns the length-N vector E[k(x_n, x_n)].
func (k *Compound) Psi0(Z, Mu, S *mat.Dense) []float64 {
	n, _, _ := k.psiDims(Z, Mu, S)
	target := make([]float64, n)
	for _, p := range k.parts {
		p.Psi0(Z, Mu, S, target)
	}
	return target
}

// Psi0GradParams returns the N×NumParams gradient of psi0 with respect to
// the flat hyperparameter vector.
func (k *Compound) Psi0GradParams(Z, Mu, S *mat.Dense) *mat.Dense {
	n, _, _ := k.psiDims(Z, Mu, S)
	target := mat.NewDense(n, k.nParams, nil)
	for i, p := range k.parts {
		ps := k.paramSlices[i]
		if ps.Len() == 0 {
			continue
		}
		p.Psi0GradParams(Z, Mu, S, view(target, Range{0, n}, ps))
	}
	return target
}

// Psi0GradMoments returns the gradients of psi0 with respect to the
// variational means and variances, each N×Q.
func (k *Compound) Psi0GradMoments(Z, Mu, S *mat.Dense) (gradMu, gradS *mat.Dense) {
	n, _, q := k.psiDims(Z, Mu, S)
	gradMu = mat.NewDense(n, q, nil)
	gradS = mat.NewDense(n, q, nil)
	for _, p := range k.parts {
		p.Psi0GradMoments(Z, Mu, S, gradMu, gradS)
	}
	return gradMu, gradS
}

// Psi1 returns the N×M matrix E[k(x_n, z_m)].
func (k *Compound) Psi1(Z, Mu, S *mat.Dense) *mat.Dense {
	n, m, _ := k.psiDims(Z, Mu, S)
	target := mat.NewDense(n, m, nil)
	for _, p := range k.parts {
		p.Psi1(Z, Mu, S, target)
	}
	return target
}

// Psi1GradParams returns the N×M×NumParams gradient of psi1 with respect to
// the flat hyperparameter vector.
func (k *Compound) Psi1GradParams(Z, Mu, S *mat.Dense) *Cube {
	n, m, _ := k.psiDims(Z, Mu, S)
	target := NewCube(n, m, k.nParams)
	for i, p := range k.parts {
		ps := k.paramSlices[i]
		if ps.Len() == 0 {
			continue
		}
		p.Psi1GradParams(Z, Mu, S, target.SliceP(ps.Start, ps.End))
	}
	return target
}

// Psi1GradInducing returns the N×M×Q gradient of psi1 with respect to the
// inducing inputs Z.
func (k *Compound) Psi1GradInducing(Z, Mu, S *mat.Dense) *Cube {
	n, m, q := k.psiDims(Z, Mu, S)
	target := NewCube(n, m, q)
	for _, p := range k.parts {
		p.Psi1GradInducing(Z, Mu, S, target)
	}
	return target
}

// Psi1GradMoments returns the gradients of psi1 with respect to the
// variational means and variances, each N×M×Q.
func (k *Compound) Psi1GradMoments(Z, Mu, S *mat.Dense) (gradMu, gradS *Cube) {
	n, m, q := k.psiDims(Z, Mu, S)
	gradMu = NewCube(n, m, q)
	gradS = NewCube(n, m, q)
	for _, p := range k.parts {
		p.Psi1GradMoments(Z, Mu, S, gradMu, gradS)
	}
	return gradMu, gradS
}

// Psi2 returns the N×M×M tensor E[k(x_n, z_m) k(x_n, z_m')], symmetric in
// the two inducing axes.
//
// Summing the parts' own psi2 contributions leaves out the cross-part
// products E[k_a(x_n,z_m) k_b(x_n,z_m')] for a != b; callers composing
// multiple parts must account for those separately.
// TODO: accumulate the cross-part psi1 outer products here.
func (k *Compound) Psi2(Z, Mu, S *mat.Dense) *Cube {
	n, m, _ := k.psiDims(Z, Mu, S)
	target := NewCube(n, m, m)
	for _, p := range k.parts {
		p.Psi2(Z, Mu, S, target)
	}
	return target
}

// Psi2GradParams returns the M×M×NumParams gradient of psi2 with respect to
// the flat hyperparameter vector, summed over the data axis.
func (k *Compound) Psi2GradParams(Z, Mu, S *mat.Dense) *Cube {
	_, m, _ := k.psiDims(Z, Mu, S)
	target := NewCube(m, m, k.nParams)
	for i, p := range k.parts {
		ps := k.paramSlices[i]
		if ps.Len() == 0 {
			continue
		}
		p.Psi2GradParams(Z, Mu, S, target.SliceP(ps.Start, ps.End))
	}
	return target
}

// Psi2GradInducing returns the N×M×M×Q gradient of psi2 with respect to the
// inducing inputs Z, taken with respect to the first inducing axis.
func (k *Compound) Psi2GradInducing(Z, Mu, S *mat.Dense) *Tensor4 {
	n, m, q := k.psiDims(Z, Mu, S)
	target := NewTensor4(n, m, m, q)
	for _, p := range k.parts {
		p.Psi2GradInducing(Z, Mu, S, target)
	}
	return target
}

// Psi2GradMoments returns the gradients of psi2 with respect to the
// variational means and variances, each N×M×M×Q.
//
// Known to be incomplete: beyond the per-part terms accumulated here, the
// full gradient carries extra terms (the moment derivatives of the missing
// cross-part products, see Psi2). They are deliberately not approximated.
// TODO: add the missing psi2 moment cross terms once Psi2 accumulates the
// cross-part products.
func (k *Compound) Psi2GradMoments(Z, Mu, S *mat.Dense) (gradMu, gradS *Tensor4) {
	n, m, q := k.psiDims(Z, Mu, S)
	gradMu = NewTensor4(n, m, m, q)
	gradS = NewTensor4(n, m, m, q)
	for _, p := range k.parts {
		p.Psi2GradMoments(Z, Mu, S, gradMu, gradS)
	}
	return gradMu, gradS
}
