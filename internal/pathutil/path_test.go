package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "Content/Textures/ship.png", "Content/Textures/ship.png"},
		{"backslashes", `Content\Textures\ship.png`, "Content/Textures/ship.png"},
		{"mixed separators", `Content/Audio\laser.wav`, "Content/Audio/laser.wav"},
		{"leading dot slash", "./Content/ship.png", "Content/ship.png"},
		{"leading dot backslash", `.\Content\ship.png`, "Content/ship.png"},
		{"empty", "", ""},
		{"bare name", "ship.png", "ship.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	paths := []string{
		`Content\Models\asteroid.obj`,
		"Content/Models/asteroid.obj",
		"./a\\b/c",
	}
	for _, p := range paths {
		once := Normalize(p)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", p)
	}
}

func TestBase(t *testing.T) {
	assert.Equal(t, ".", Base(""))
	assert.Equal(t, ".", Base("."))
	assert.Equal(t, "ship.png", Base("Content/Textures/ship.png"))
	assert.Equal(t, "Textures", Base("Content/Textures/"))
	assert.Equal(t, "ship.png", Base("ship.png"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "menu", Stem("Content/Scenes/menu.ntfg"))
	assert.Equal(t, "asteroids", Stem("asteroids.ntfg"))
	assert.Equal(t, "noext", Stem("dir/noext"))
	assert.Equal(t, ".hidden", Stem(".hidden"))
}
