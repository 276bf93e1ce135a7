package fileurl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileIfMissing(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "config", "config.yaml")
	assert.False(t, IsExist(dst))

	wrote, err := WriteFileIfMissing(dst, []byte("a: 1\n"), 0644)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.True(t, IsExist(dst))

	wrote, err = WriteFileIfMissing(dst, []byte("a: 2\n"), 0644)
	require.NoError(t, err)
	assert.False(t, wrote)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}
