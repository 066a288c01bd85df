package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "menu.ntfg", "")
	writeFile(t, dir, filepath.Join("levels", "asteroids.ntfg"), "")
	writeFile(t, dir, "texture.png", "not a descriptor")

	scenes, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, filepath.Join(dir, "menu.ntfg"), scenes["menu"])
	assert.Equal(t, filepath.Join(dir, "levels", "asteroids.ntfg"), scenes["asteroids"])
}

func TestDiscoverDuplicateScene(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "menu.ntfg", "")
	writeFile(t, dir, filepath.Join("sub", "menu.ntfg"), "")

	_, err := Discover(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate scene "menu"`)
}

func TestDiscoverEmpty(t *testing.T) {
	t.Parallel()

	scenes, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, scenes)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "menu.ntfg", `# menu assets
Content/Textures/logo.png

Content\Audio\click.wav
  Content/Fonts/hud.ttf
`)

	assets, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Content/Textures/logo.png",
		"Content/Audio/click.wav",
		"Content/Fonts/hud.ttf",
	}, assets)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.ntfg"))
	require.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.ntfg", "x.png\ny.png\n")
	writeFile(t, dir, "b.ntfg", "y.png\nz.png\n")

	scenes, err := LoadAll(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"a": {"x.png", "y.png"},
		"b": {"y.png", "z.png"},
	}, scenes)
}
