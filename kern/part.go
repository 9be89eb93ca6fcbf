package kern

import "gonum.org/v1/gonum/mat"

// Part is a single positive-definite covariance function with a fixed number
// of hyperparameters. A Compound dispatches every operation to its parts
// over sliced sub-views of the inputs, and each part accumulates (+=) into a
// caller-supplied target aliasing a region of a shared, zero-initialized
// output buffer. Parts must only ever add into a target, never overwrite or
// resize it; overlapping targets of different parts are how the sum kernel
// composes.
//
// Gradients with respect to inputs are taken with respect to the first
// argument's rows.
type Part interface {
	// Name identifies the covariance family, e.g. "rbf".
	Name() string

	// NumParams is the number of hyperparameters.
	NumParams() int

	// Params returns a copy of the hyperparameter vector.
	Params() []float64

	// SetParams overwrites the hyperparameters. len(theta) must equal
	// NumParams.
	SetParams(theta []float64)

	// ParamNames returns one name per hyperparameter, in Params order.
	ParamNames() []string

	// K accumulates the covariance between the rows of X and X2 into
	// target, of shape rows(X) × rows(X2).
	K(X, X2, target *mat.Dense)

	// KGradParams accumulates the hyperparameter gradient into target
	// (one entry per hyperparameter), given the upstream partial dL/dK
	// for the block this part produced.
	KGradParams(partial, X, X2 *mat.Dense, target []float64)

	// KGradInputs accumulates dL/dX into target, of the same shape as X.
	KGradInputs(partial, X, X2, target *mat.Dense)

	// Kdiag accumulates the covariance diagonal over the rows of X into
	// target, of length rows(X).
	Kdiag(X *mat.Dense, target []float64)

	// KdiagGradParams is the diagonal counterpart of KGradParams; partial
	// has length rows(X).
	KdiagGradParams(partial []float64, X *mat.Dense, target []float64)

	// KdiagGradInputs is the diagonal counterpart of KGradInputs.
	KdiagGradInputs(partial []float64, X, target *mat.Dense)

	// Psi statistics: expectations of the covariance under a factorized
	// Gaussian over the latent inputs. Z holds the M×Q inducing inputs,
	// Mu and S the N×Q variational means and variances. Unlike the K
	// family, psi targets are never sliced by rows or columns; every part
	// accumulates over the full buffers.
	Psi0(Z, Mu, S *mat.Dense, target []float64)
	Psi0GradParams(Z, Mu, S, target *mat.Dense)
	Psi0GradMoments(Z, Mu, S, targetMu, targetS *mat.Dense)
	Psi1(Z, Mu, S, target *mat.Dense)
	Psi1GradParams(Z, Mu, S *mat.Dense, target *Cube)
	Psi1GradInducing(Z, Mu, S *mat.Dense, target *Cube)
	Psi1GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *Cube)
	Psi2(Z, Mu, S *mat.Dense, target *Cube)
	Psi2GradParams(Z, Mu, S *mat.Dense, target *Cube)
	Psi2GradInducing(Z, Mu, S *mat.Dense, target *Tensor4)
	Psi2GradMoments(Z, Mu, S *mat.Dense, targetMu, targetS *Tensor4)
}
