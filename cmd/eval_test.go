package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMatrix_ParsesRows(t *testing.T) {
	path := writeCSV(t, "1,2\n3.5,-4\n")
	X, err := loadMatrix(path, 2)
	require.NoError(t, err)

	n, d := X.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, d)
	assert.Equal(t, 3.5, X.At(1, 0))
	assert.Equal(t, -4.0, X.At(1, 1))
}

func TestLoadMatrix_RejectsWrongWidth(t *testing.T) {
	path := writeCSV(t, "1,2,3\n")
	_, err := loadMatrix(path, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kernel dimension")
}

func TestLoadMatrix_RejectsNonNumeric(t *testing.T) {
	path := writeCSV(t, "1,x\n")
	_, err := loadMatrix(path, 2)
	require.Error(t, err)
}

func TestLoadMatrix_RejectsEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := loadMatrix(path, 2)
	require.Error(t, err)
}
