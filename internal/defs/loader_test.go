package defs

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnemies(t *testing.T) {
	lib := DefaultEnemies()
	require.Len(t, lib, 3)
	for _, id := range KnownEnemies {
		def, ok := lib[id]
		require.True(t, ok, id)
		assert.NoError(t, def.Validate())
		assert.Equal(t, 6, def.Sheet.Frames)
	}

	w, h := lib[EnemyWorm].DisplaySize()
	assert.Equal(t, 114.5, w)
	assert.Equal(t, 85.5, h)
	w, h = lib[EnemyGhost].DisplaySize()
	assert.Equal(t, 130.5, w)
	assert.Equal(t, 104.5, h)
	w, h = lib[EnemySpider].DisplaySize()
	assert.InDelta(t, 310.0/3, w, 1e-9, "spiders are drawn at a third")
	assert.InDelta(t, 175.0/3, h, 1e-9)
	assert.Equal(t, 261, lib[EnemyGhost].Sheet.FrameWidth())
	assert.Equal(t, 310, lib[EnemySpider].Sheet.FrameWidth())
	assert.Equal(t, image.Rect(310, 0, 620, 175), lib[EnemySpider].Sheet.FrameRect(1))
}

func TestVisualsRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{0x6b, 0x8e, 0x23, 255}, Visuals{Color: "#6b8e23"}.RGBA())
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, Visuals{Color: "green"}.RGBA())
}

func TestParseEnemyDefinitions(t *testing.T) {
	lib, err := ParseEnemyDefinitions([]byte(`[
		{"id": "worm", "name": "Fast worm", "sheet": {"path": "w.png", "width": 600, "height": 100, "frames": 3},
		 "scale": 1, "speed": {"min": 0.5, "max": 0.6}}
	]`))
	require.NoError(t, err)
	assert.Equal(t, "Fast worm", lib[EnemyWorm].Name)
	assert.Equal(t, 200, lib[EnemyWorm].Sheet.FrameWidth())
	assert.Equal(t, DefaultEnemies()[EnemyGhost], lib[EnemyGhost], "entries absent from the file keep defaults")
}

func TestParseEnemyDefinitionsErrors(t *testing.T) {
	cases := []struct {
		name string
		json string
		want error
	}{
		{"unknown id", `[{"id": "bat", "sheet": {"width": 6, "height": 1, "frames": 6}, "scale": 1}]`, ErrUnknownEnemy},
		{"zero frames", `[{"id": "worm", "sheet": {"width": 6, "height": 1, "frames": 0}, "scale": 1}]`, ErrInvalidSheet},
		{"zero scale", `[{"id": "worm", "sheet": {"width": 6, "height": 1, "frames": 6}, "scale": 0}]`, ErrInvalidSheet},
		{"inverted speed", `[{"id": "ghost", "sheet": {"width": 6, "height": 1, "frames": 6}, "scale": 1, "speed": {"min": 0.3, "max": 0.1}}]`, ErrInvalidSpeed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEnemyDefinitions([]byte(tc.json))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := ParseEnemyDefinitions([]byte(`{`))
	assert.Error(t, err)
}

func TestLoadEnemyDefinitions(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadEnemyDefinitions(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("shipped definitions match the built-in ones", func(t *testing.T) {
		lib, err := LoadEnemyDefinitions(filepath.Join("..", "..", "assets", "enemies.json"))
		require.NoError(t, err)
		assert.Equal(t, DefaultEnemies(), lib)
	})
}
