package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenjingk/GPy/kern"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kernel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKernelSpec_BuildsCompound(t *testing.T) {
	path := writeSpec(t, `
dimension: 3
parts:
  - type: rbf
    variance: 2.0
    lengthscale: 0.5
    slice: [0, 2]
  - type: linear
    variance: 0.1
constraints:
  positive: [0, 1, 2]
  bounded:
    - index: 1
      lower: 0.01
      upper: 10
`)
	spec, err := loadKernelSpec(path)
	require.NoError(t, err)

	k, err := spec.build()
	require.NoError(t, err)
	assert.Equal(t, 3, k.Dim())
	assert.Equal(t, 2, k.NumParts())
	assert.Equal(t, 3, k.NumParams())
	assert.Equal(t, kern.Range{Start: 0, End: 2}, k.InputSlice(0))
	assert.Equal(t, kern.Range{Start: 0, End: 3}, k.InputSlice(1))
	assert.Equal(t, []float64{2, 0.5, 0.1}, k.Params())
	assert.Equal(t, []string{"rbf_0_variance", "rbf_0_lengthscale", "linear_1_variance"}, k.ParamNames())
	assert.Equal(t, []int{0, 1, 2}, k.Constraints().Positive)
	require.Len(t, k.Constraints().Bounded, 1)
	assert.Equal(t, 1, k.Constraints().Bounded[0].Index)
}

func TestKernelSpec_DefaultsHyperparameters(t *testing.T) {
	path := writeSpec(t, `
dimension: 1
parts:
  - type: bias
`)
	spec, err := loadKernelSpec(path)
	require.NoError(t, err)

	k, err := spec.build()
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, k.Params())
}

func TestKernelSpec_RejectsUnknownPartType(t *testing.T) {
	spec := &kernelSpec{Dimension: 2, Parts: []partSpec{{Type: "periodic"}}}
	_, err := spec.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown part type")
}

func TestKernelSpec_RejectsBadSlice(t *testing.T) {
	spec := &kernelSpec{Dimension: 2, Parts: []partSpec{{Type: "bias", Slice: []int{0, 3}}}}
	_, err := spec.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestKernelSpec_RejectsConstraintOutOfRange(t *testing.T) {
	spec := &kernelSpec{Dimension: 2, Parts: []partSpec{{Type: "bias"}}}
	spec.Constraints.Positive = []int{5}
	_, err := spec.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestKernelSpec_RejectsMissingParts(t *testing.T) {
	spec := &kernelSpec{Dimension: 2}
	_, err := spec.build()
	require.Error(t, err)
}

func TestLoadKernelSpec_MissingFile(t *testing.T) {
	_, err := loadKernelSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
