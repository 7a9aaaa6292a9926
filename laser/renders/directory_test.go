package renders

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID(time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-20240309-140506$`), id)
}

func TestCreate(t *testing.T) {
	root := t.TempDir()
	d, err := Create(root)
	require.NoError(t, err)

	info, err := os.Stat(d.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(d.Path, "beam.png"), d.GetFilePath("beam.png"))

	target, err := os.Readlink(filepath.Join(root, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(t, d.ID, target)
}

func TestCopyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(src, []byte("levels: {}\n"), 0644))

	d, err := Create(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, d.CopyFile(src))

	got, err := os.ReadFile(d.GetFilePath("catalog.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "levels: {}\n", string(got))

	assert.Error(t, d.CopyFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
