package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjingk/GPy/kern"
	"github.com/wenjingk/GPy/parts"
)

func TestCompound_KdiagMatchesKDiagonal(t *testing.T) {
	k := kern.New(3, []kern.Part{
		parts.NewRBF(1, 0.5),
		parts.NewLinear(0.2),
		parts.NewBias(0.1),
		parts.NewWhite(0.05),
	}, nil)
	X := input(5, 3)

	K := k.K(X, nil, nil, nil)
	diag := k.Kdiag(X, nil)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, K.At(i, i), diag[i], 1e-12)
	}
}

func TestCompound_AddEqualsElementwiseSum(t *testing.T) {
	a := kern.New(2, []kern.Part{parts.NewRBF(1, 1)}, nil)
	b := kern.New(2, []kern.Part{parts.NewLinear(0.5)}, nil)
	sum := a.Add(b)
	X := input(4, 2)

	Ka := a.K(X, nil, nil, nil)
	Kb := b.K(X, nil, nil, nil)
	Ks := sum.K(X, nil, nil, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, Ka.At(i, j)+Kb.At(i, j), Ks.At(i, j), 1e-12)
		}
	}
}

func TestCompound_OrthogonalPartsIgnoreEachOthersColumns(t *testing.T) {
	spatial := kern.New(2, []kern.Part{parts.NewRBF(1, 1)}, nil)
	trend := kern.New(1, []kern.Part{parts.NewLinear(0.5)}, nil)
	k := spatial.AddOrthogonal(trend)
	require.Equal(t, 3, k.Dim())

	// Perturbing the trend column must not move the rbf contribution, so
	// the change in K is purely linear in column 2.
	X := input(3, 3)
	K1 := k.K(X, nil, nil, nil)

	X.Set(0, 2, X.At(0, 2)+10)
	K2 := k.K(X, nil, nil, nil)

	delta := K2.At(0, 1) - K1.At(0, 1)
	assert.InDelta(t, 0.5*10*X.At(1, 2), delta, 1e-12)
}
