package config

import (
	"testing"

	"github.com/Highwind360/spoodle/spritesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validIndex = `{
	"player": {
		"filename": "player.png",
		"size": [64, 64],
		"starting_coords": [0, 0],
		"padding": 0,
		"frames_per_row": 13,
		"animation_names": ["spellcast_up", "spellcast_down"],
		"frames_per_animation": [7, 7]
	},
	"props": {
		"filename": "props.png",
		"size": [32, 32],
		"padding": 2,
		"scale_to": [64, 64],
		"filter": "linear",
		"frames_per_row": 3,
		"animation_names": ["rock", "tree", "shrub"],
		"frames_per_animation": [1, 1, 1]
	}
}`

func TestLoadSpriteSheets_Valid(t *testing.T) {
	sets, err := LoadSpriteSheets([]byte(validIndex))
	require.NoError(t, err)
	require.Len(t, sets, 2)

	player := sets["player"]
	assert.Equal(t, "player.png", player.Sheet.Filename)
	assert.Equal(t, 64, player.Sheet.FrameWidth)
	assert.Equal(t, 64, player.Sheet.FrameHeight)
	assert.Equal(t, 13, player.Sheet.FramesPerRow)
	assert.False(t, player.Sheet.Scaled())
	assert.Equal(t, spritesheet.FilterNearest, player.Sheet.Filter)
	assert.Equal(t, []string{"spellcast_up", "spellcast_down"}, player.Animations.Names)
	assert.Equal(t, []int{7, 7}, player.Animations.FrameCounts)

	props := sets["props"]
	assert.Equal(t, 2, props.Sheet.Padding)
	assert.True(t, props.Sheet.Scaled())
	assert.Equal(t, 64, props.Sheet.ScaleWidth)
	assert.Equal(t, spritesheet.FilterLinear, props.Sheet.Filter)
}

func TestLoadSpriteSheets_BadJSON(t *testing.T) {
	_, err := LoadSpriteSheets([]byte(`{`))
	require.Error(t, err)
}

func TestLoadSpriteSheets_EntryErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"missing filename",
			`{"x": {"size": [64,64], "frames_per_row": 1,
				"animation_names": ["a"], "frames_per_animation": [1]}}`,
			"missing filename",
		},
		{
			"missing size",
			`{"x": {"filename": "x.png", "frames_per_row": 1,
				"animation_names": ["a"], "frames_per_animation": [1]}}`,
			"missing size",
		},
		{
			"unknown filter",
			`{"x": {"filename": "x.png", "size": [64,64], "frames_per_row": 1,
				"filter": "cubic",
				"animation_names": ["a"], "frames_per_animation": [1]}}`,
			"unknown filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSpriteSheets([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), `sprite set "x"`)
		})
	}
}

func TestLoadSpriteSheets_GeometryCaughtAtLoad(t *testing.T) {
	doc := `{"x": {"filename": "x.png", "size": [0, 64], "frames_per_row": 1,
		"animation_names": ["a"], "frames_per_animation": [1]}}`

	_, err := LoadSpriteSheets([]byte(doc))
	var ge *spritesheet.GeometryError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "frame width", ge.Field)
}

func TestLoadSpriteSheets_MismatchCaughtAtLoad(t *testing.T) {
	doc := `{"x": {"filename": "x.png", "size": [64, 64], "frames_per_row": 1,
		"animation_names": ["a", "b"], "frames_per_animation": [1]}}`

	_, err := LoadSpriteSheets([]byte(doc))
	var me *spritesheet.MismatchError
	require.ErrorAs(t, err, &me)
}

func TestConfigDerivedDimensions(t *testing.T) {
	assert.Equal(t, C.TilesAcross*C.TileSize, C.Width)
	assert.Equal(t, C.TilesDown*C.TileSize, C.Height)
	assert.Equal(t, 768, C.Width)
	assert.Equal(t, 576, C.Height)
}
