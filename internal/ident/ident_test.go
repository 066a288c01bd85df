package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDeterministic(t *testing.T) {
	t.Parallel()

	a, err := ID("Content/Textures/ship.png")
	require.NoError(t, err)
	b, err := ID("Content/Textures/ship.png")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIDDistinctPaths(t *testing.T) {
	t.Parallel()

	a, err := ID("Content/Textures/ship.png")
	require.NoError(t, err)
	b, err := ID("Content/Textures/asteroid.png")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestIDSeparatorSensitive(t *testing.T) {
	t.Parallel()

	// Normalization is the caller's job; the hash sees raw bytes.
	slash, err := ID("a/b")
	require.NoError(t, err)
	backslash, err := ID(`a\b`)
	require.NoError(t, err)
	assert.NotEqual(t, slash, backslash)
}

func TestIDRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := ID(string([]byte{0xff, 0xfe, '/', 'x'}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestIDEmptyPath(t *testing.T) {
	t.Parallel()

	// Empty string is valid UTF-8 and hashes like any other input.
	id, err := ID("")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestIDCorpusCollisionFree(t *testing.T) {
	t.Parallel()

	paths := []string{
		"Content/Textures/ship.png",
		"Content/Textures/asteroid_big.png",
		"Content/Textures/asteroid_small.png",
		"Content/Audio/laser.wav",
		"Content/Audio/explosion.wav",
		"Content/Fonts/hud.ttf",
		"Content/Models/station.obj",
		"Content/Shaders/sprite.vert",
		"Content/Shaders/sprite.frag",
	}
	seen := make(map[uint64]string, len(paths))
	for _, p := range paths {
		id, err := ID(p)
		require.NoError(t, err)
		prev, dup := seen[id]
		require.False(t, dup, "id collision between %q and %q", prev, p)
		seen[id] = p
	}
}
