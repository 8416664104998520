package level_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/levelgen/internal/game/geom"
	"github.com/cory-johannsen/levelgen/internal/game/level"
)

func TestDefaultCatalogue_Valid(t *testing.T) {
	cat := level.DefaultCatalogue()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Regular, 3)
	for _, tmpl := range append([]level.Template{cat.Spawn, cat.Terminal}, cat.Regular...) {
		assert.Equal(t, geom.V(11, 11), tmpl.Size, tmpl.Name)
		assert.Len(t, tmpl.Doors, 4, tmpl.Name)
	}
}

func TestValidDoor(t *testing.T) {
	size := geom.V(11, 11)
	assert.True(t, level.ValidDoor(size, geom.V(0, 5)))
	assert.True(t, level.ValidDoor(size, geom.V(5, 10)))
	assert.False(t, level.ValidDoor(size, geom.V(0, 0)), "corner")
	assert.False(t, level.ValidDoor(size, geom.V(10, 10)), "corner")
	assert.False(t, level.ValidDoor(size, geom.V(5, 5)), "interior")
}

func TestCatalogue_ValidateReportsEveryProblem(t *testing.T) {
	cat := level.DefaultCatalogue()
	cat.Regular = append(cat.Regular, level.Template{Name: "standard-1", Size: geom.V(5, 5), Doors: []geom.Vec2{geom.V(2, 2)}})
	cat.Terminal.Size = geom.V(0, 11)

	err := cat.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate template name")
	assert.Contains(t, err.Error(), "not on a side")
	assert.Contains(t, err.Error(), "size must be positive")
}

func TestCatalogue_ValidateRequiresRegular(t *testing.T) {
	cat := level.DefaultCatalogue()
	cat.Regular = nil
	assert.Error(t, cat.Validate())
}

const catalogueYAML = `
catalogue:
  spawn:
    name: hub
    width: 9
    height: 9
    doors: [[0, 4], [8, 4]]
  terminal:
    name: relay
    width: 7
    height: 7
    doors: [[3, 0]]
  regular:
    - name: hall
      width: 13
      height: 7
      doors: [[0, 3], [12, 3], [6, 6]]
`

func TestLoadCatalogueFromBytes(t *testing.T) {
	cat, err := level.LoadCatalogueFromBytes([]byte(catalogueYAML))
	require.NoError(t, err)
	assert.Equal(t, "hub", cat.Spawn.Name)
	assert.Equal(t, geom.V(9, 9), cat.Spawn.Size)
	assert.Equal(t, []geom.Vec2{geom.V(3, 0)}, cat.Terminal.Doors)
	require.Len(t, cat.Regular, 1)
	assert.Equal(t, geom.V(13, 7), cat.Regular[0].Size)
}

func TestLoadCatalogueFromBytes_Invalid(t *testing.T) {
	_, err := level.LoadCatalogueFromBytes([]byte("catalogue:\n  regular: []\n"))
	assert.Error(t, err)

	_, err = level.LoadCatalogueFromBytes([]byte("catalogue: [unclosed"))
	assert.Error(t, err)
}

func TestLoadCatalogueFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogueYAML), 0o600))
	cat, err := level.LoadCatalogueFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "relay", cat.Terminal.Name)

	_, err = level.LoadCatalogueFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
