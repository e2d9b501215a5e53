package color

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.yaml")
	config := `colors:
  - {name: "Forest Green", hex: "#228B22"}
  - {name: "Cheetah", hex: "#C98E41"}
  - {name: "Black", hex: "#000000"}
`
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	reg := NewMemoryRegistry()
	n, err := SeedFromFile(context.Background(), reg, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = reg.Resolve(context.Background(), "Cheetah")
	assert.NoError(t, err)

	// Re-seeding is harmless.
	_, err = SeedFromFile(context.Background(), reg, path)
	require.NoError(t, err)
	colors, err := reg.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, colors, 3)
}

func TestSeedFromMissingFile(t *testing.T) {
	reg := NewMemoryRegistry()
	_, err := SeedFromFile(context.Background(), reg, "missing.yaml")
	require.Error(t, err)
}
