package kern

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Compound is a sum of kernel parts over a shared input space. Each part
// reads a column slice of the inputs, and every operation can additionally
// restrict each part to a row slice of the data, which is what enables
// hierarchical and correlated-output models on top of a single kernel.
//
// All evaluation methods follow the same dispatch pattern: allocate a
// zeroed output, hand each part the row- and column-sliced sub-views of the
// inputs together with the matching sub-view of the output, and let the
// part accumulate in place. Parts sharing rows sum their contributions;
// parts on disjoint rows write to disjoint regions.
//
// Methods panic with one of the package sentinel errors on a contract
// violation, in the manner of gonum/mat.
type Compound struct {
	dim         int
	parts       []Part
	inputSlices []Range
	paramSlices []Range
	nParams     int
	constraints Constraints
}

// New builds a compound kernel over a dim-dimensional input space from the
// given parts. inputSlices holds the column interval each part reads; nil
// means every part reads all dim columns.
func New(dim int, parts []Part, inputSlices []Range) *Compound {
	if dim <= 0 {
		panic(ErrDimensionMismatch)
	}
	for _, p := range parts {
		if p == nil || p.NumParams() < 0 {
			panic(ErrBadPart)
		}
	}
	cols := make([]Range, len(parts))
	if inputSlices == nil {
		for i := range cols {
			cols[i] = Range{0, dim}
		}
	} else {
		if len(inputSlices) != len(parts) {
			panic(ErrInvalidSliceSpec)
		}
		for i, r := range inputSlices {
			if r.Start < 0 || r.End <= r.Start || r.End > dim {
				panic(ErrInvalidSliceSpec)
			}
			cols[i] = r
		}
	}
	k := &Compound{
		dim:         dim,
		parts:       append([]Part(nil), parts...),
		inputSlices: cols,
	}
	k.computeParamSlices()
	return k
}

// computeParamSlices lays the parts' parameter blocks out contiguously in
// part order.
func (k *Compound) computeParamSlices() {
	k.paramSlices = k.paramSlices[:0]
	count := 0
	for _, p := range k.parts {
		n := p.NumParams()
		k.paramSlices = append(k.paramSlices, Range{count, count + n})
		count += n
	}
	k.nParams = count
}

// Dim returns the input-space dimension D.
func (k *Compound) Dim() int { return k.dim }

// NumParts returns the number of kernel parts.
func (k *Compound) NumParts() int { return len(k.parts) }

// NumParams returns the total hyperparameter count over all parts.
func (k *Compound) NumParams() int { return k.nParams }

// InputSlice returns the column interval part i reads.
func (k *Compound) InputSlice(i int) Range { return k.inputSlices[i] }

// ParamSlice returns part i's block in the flat parameter vector.
func (k *Compound) ParamSlice(i int) Range { return k.paramSlices[i] }

// Constraints exposes the kernel's constraint metadata for declaration and
// inspection. Composition merges it; nothing in this package enforces it.
func (k *Compound) Constraints() *Constraints { return &k.constraints }

// Params concatenates every part's hyperparameters into one flat vector of
// length NumParams.
func (k *Compound) Params() []float64 {
	out := make([]float64, 0, k.nParams)
	for _, p := range k.parts {
		out = append(out, p.Params()...)
	}
	return out
}

// SetParams distributes a flat parameter vector back over the parts.
func (k *Compound) SetParams(theta []float64) {
	if len(theta) != k.nParams {
		panic(ErrParamLength)
	}
	for i, p := range k.parts {
		s := k.paramSlices[i]
		p.SetParams(theta[s.Start:s.End])
	}
}

// ParamNames returns globally unique parameter names of the form
// <partName>_<partIndex>_<paramName>, in flat-vector order.
func (k *Compound) ParamNames() []string {
	names := make([]string, 0, k.nParams)
	for i, p := range k.parts {
		for _, n := range p.ParamNames() {
			names = append(names, fmt.Sprintf("%s_%d_%s", p.Name(), i, n))
		}
	}
	return names
}

// checkInput verifies that X has exactly Dim columns and returns its row
// count.
func (k *Compound) checkInput(X *mat.Dense) int {
	n, d := X.Dims()
	if d != k.dim {
		panic(ErrDimensionMismatch)
	}
	return n
}

// view returns the aliasing sub-matrix m[r.Start:r.End, c.Start:c.End].
func view(m *mat.Dense, r, c Range) *mat.Dense {
	return m.Slice(r.Start, r.End, c.Start, c.End).(*mat.Dense)
}

// K evaluates the covariance matrix between the rows of X and X2. A nil X2
// defaults to X (self-covariance). sel1 and sel2 restrict, per part, which
// rows of X and X2 the part covers; see RowSelector.
func (k *Compound) K(X, X2 *mat.Dense, sel1, sel2 []RowSelector) *mat.Dense {
	n := k.checkInput(X)
	if X2 == nil {
		X2 = X
	}
	n2 := k.checkInput(X2)
	rows1 := k.resolveRows(sel1, n)
	rows2 := k.resolveRows(sel2, n2)
	target := mat.NewDense(n, n2, nil)
	for i, p := range k.parts {
		s1, s2 := rows1[i], rows2[i]
		if s1.Len() == 0 || s2.Len() == 0 {
			continue
		}
		cs := k.inputSlices[i]
		p.K(view(X, s1, cs), view(X2, s2, cs), view(target, s1, s2))
	}
	return target
}

// Kdiag evaluates the covariance diagonal over the rows of X.
func (k *Compound) Kdiag(X *mat.Dense, sel []RowSelector) []float64 {
	n := k.checkInput(X)
	rows := k.resolveRows(sel, n)
	target := make([]float64, n)
	for i, p := range k.parts {
		s := rows[i]
		if s.Len() == 0 {
			continue
		}
		p.Kdiag(view(X, s, k.inputSlices[i]), target[s.Start:s.End])
	}
	return target
}

// KGradParams evaluates the gradient of the loss with respect to the flat
// hyperparameter vector, given the upstream partial dL/dK. Each part writes
// only into its own parameter block, so the blocks never alias.
func (k *Compound) KGradParams(partial, X, X2 *mat.Dense, sel1, sel2 []RowSelector) []float64 {
	n := k.checkInput(X)
	if X2 == nil {
		X2 = X
	}
	n2 := k.checkInput(X2)
	if pr, pc := partial.Dims(); pr != n || pc != n2 {
		panic(ErrDimensionMismatch)
	}
	rows1 := k.resolveRows(sel1, n)
	rows2 := k.resolveRows(sel2, n2)
	target := make([]float64, k.nParams)
	for i, p := range k.parts {
		s1, s2 := rows1[i], rows2[i]
		ps := k.paramSlices[i]
		if s1.Len() == 0 || s2.Len() == 0 || ps.Len() == 0 {
			continue
		}
		cs := k.inputSlices[i]
		p.KGradParams(view(partial, s1, s2), view(X, s1, cs), view(X2, s2, cs), target[ps.Start:ps.End])
	}
	return target
}

// KGradInputs evaluates the gradient of the loss with respect to X, given
// the upstream partial dL/dK. Parts with overlapping column slices add
// their contributions.
func (k *Compound) KGradInputs(partial, X, X2 *mat.Dense, sel1, sel2 []RowSelector) *mat.Dense {
	n := k.checkInput(X)
	if X2 == nil {
		X2 = X
	}
	n2 := k.checkInput(X2)
	if pr, pc := partial.Dims(); pr != n || pc != n2 {
		panic(ErrDimensionMismatch)
	}
	rows1 := k.resolveRows(sel1, n)
	rows2 := k.resolveRows(sel2, n2)
	target := mat.NewDense(n, k.dim, nil)
	for i, p := range k.parts {
		s1, s2 := rows1[i], rows2[i]
		if s1.Len() == 0 || s2.Len() == 0 {
			continue
		}
		cs := k.inputSlices[i]
		p.KGradInputs(view(partial, s1, s2), view(X, s1, cs), view(X2, s2, cs), view(target, s1, cs))
	}
	return target
}

// KdiagGradParams is the diagonal counterpart of KGradParams; partial holds
// dL/dKdiag and must have one entry per row of X.
func (k *Compound) KdiagGradParams(partial []float64, X *mat.Dense, sel []RowSelector) []float64 {
	n := k.checkInput(X)
	if len(partial) != n {
		panic(ErrDimensionMismatch)
	}
	rows := k.resolveRows(sel, n)
	target := make([]float64, k.nParams)
	for i, p := range k.parts {
		s := rows[i]
		ps := k.paramSlices[i]
		if s.Len() == 0 || ps.Len() == 0 {
			continue
		}
		p.KdiagGradParams(partial[s.Start:s.End], view(X, s, k.inputSlices[i]), target[ps.Start:ps.End])
	}
	return target
}

// KdiagGradInputs is the diagonal counterpart of KGradInputs.
func (k *Compound) KdiagGradInputs(partial []float64, X *mat.Dense, sel []RowSelector) *mat.Dense {
	n := k.checkInput(X)
	if len(partial) != n {
		panic(ErrDimensionMismatch)
	}
	rows := k.resolveRows(sel, n)
	target := mat.NewDense(n, k.dim, nil)
	for i, p := range k.parts {
		s := rows[i]
		if s.Len() == 0 {
			continue
		}
		cs := k.inputSlices[i]
		p.KdiagGradInputs(partial[s.Start:s.End], view(X, s, cs), view(target, s, cs))
	}
	return target
}

// Add returns a new compound kernel over the same input space holding k's
// parts followed by other's. Both kernels must share the same dimension.
// Constraint metadata is merged with other's indices shifted up by k's
// parameter count. The operands are left untouched.
func (k *Compound) Add(other *Compound) *Compound {
	if k.dim != other.dim {
		panic(ErrDimensionMismatch)
	}
	parts := append(append([]Part(nil), k.parts...), other.parts...)
	cols := append(append([]Range(nil), k.inputSlices...), other.inputSlices...)
	sum := New(k.dim, parts, cols)
	sum.constraints = mergeConstraints(k.constraints, other.constraints, k.nParams)
	return sum
}

// AddOrthogonal returns a new compound kernel over the concatenation of the
// two input spaces: the result has dimension k.Dim()+other.Dim(), k's parts
// keep their column slices and other's are shifted past k's columns. Use it
// to combine kernels observing disjoint feature blocks. Constraint metadata
// is merged as in Add.
func (k *Compound) AddOrthogonal(other *Compound) *Compound {
	dim := k.dim + other.dim
	parts := append(append([]Part(nil), k.parts...), other.parts...)
	cols := append([]Range(nil), k.inputSlices...)
	for _, r := range other.inputSlices {
		cols = append(cols, Range{r.Start + k.dim, r.End + k.dim})
	}
	sum := New(dim, parts, cols)
	sum.constraints = mergeConstraints(k.constraints, other.constraints, k.nParams)
	return sum
}
