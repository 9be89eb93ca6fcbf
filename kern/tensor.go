package kern

// Cube is a dense rank-3 float64 array in row-major layout, in the manner of
// blas64.General one rank up. Gradient targets handed to kernel parts are
// Cube views; parts accumulate through Add and must not reshape the view.
type Cube struct {
	N, M, P          int
	strideN, strideM int
	data             []float64
}

// NewCube returns a zeroed n×m×p cube.
func NewCube(n, m, p int) *Cube {
	return &Cube{
		N: n, M: m, P: p,
		strideN: m * p,
		strideM: p,
		data:    make([]float64, n*m*p),
	}
}

// At returns the element at (i, j, k).
func (c *Cube) At(i, j, k int) float64 {
	return c.data[i*c.strideN+j*c.strideM+k]
}

// Set stores v at (i, j, k).
func (c *Cube) Set(i, j, k int, v float64) {
	c.data[i*c.strideN+j*c.strideM+k] = v
}

// Add accumulates v into (i, j, k).
func (c *Cube) Add(i, j, k int, v float64) {
	c.data[i*c.strideN+j*c.strideM+k] += v
}

// SliceP returns a view over the last-axis interval [lo, hi). The view
// shares the receiver's backing array.
func (c *Cube) SliceP(lo, hi int) *Cube {
	if lo < 0 || hi < lo || hi > c.P {
		panic(ErrInvalidSliceSpec)
	}
	return &Cube{
		N: c.N, M: c.M, P: hi - lo,
		strideN: c.strideN,
		strideM: c.strideM,
		data:    c.data[lo:],
	}
}

// Tensor4 is a dense rank-4 float64 array in row-major layout. It backs the
// psi2 gradients with respect to inducing inputs and variational moments.
type Tensor4 struct {
	N, M, P, Q                int
	strideN, strideM, strideP int
	data                      []float64
}

// NewTensor4 returns a zeroed n×m×p×q tensor.
func NewTensor4(n, m, p, q int) *Tensor4 {
	return &Tensor4{
		N: n, M: m, P: p, Q: q,
		strideN: m * p * q,
		strideM: p * q,
		strideP: q,
		data:    make([]float64, n*m*p*q),
	}
}

// At returns the element at (i, j, k, l).
func (t *Tensor4) At(i, j, k, l int) float64 {
	return t.data[i*t.strideN+j*t.strideM+k*t.strideP+l]
}

// Set stores v at (i, j, k, l).
func (t *Tensor4) Set(i, j, k, l int, v float64) {
	t.data[i*t.strideN+j*t.strideM+k*t.strideP+l] = v
}

// Add accumulates v into (i, j, k, l).
func (t *Tensor4) Add(i, j, k, l int, v float64) {
	t.data[i*t.strideN+j*t.strideM+k*t.strideP+l] += v
}
