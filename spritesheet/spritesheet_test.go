package spritesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EndToEnd(t *testing.T) {
	// Two rows of 13 cells, one animation per row.
	img := makeSheet(t, 832, 128, 64, 64)
	sheet := SheetSpec{FrameWidth: 64, FrameHeight: 64, FramesPerRow: 13}
	anims := AnimationSpec{
		Names:       []string{"spellcast_up", "spellcast_down"},
		FrameCounts: []int{13, 13},
	}

	table, err := Build(img, sheet, anims)
	require.NoError(t, err)

	assert.Equal(t, len(anims.Names), table.Len())
	assert.Equal(t, anims.TotalFrames(), table.FrameCount())
	assert.Equal(t, anims.Names, table.Names())

	// Frame order within an animation follows the row-major scan.
	down, ok := table.Frames("spellcast_down")
	require.True(t, ok)
	for i, frame := range down {
		c := frame.RGBAAt(0, 0)
		assert.Equal(t, uint8(i), c.R)
		assert.Equal(t, uint8(1), c.G)
	}
}

func TestBuild_AnimationsMaySpanRows(t *testing.T) {
	// Permissive binding: a 5-frame and an 11-frame animation on an
	// 8-wide grid cross the row boundary without complaint.
	img := makeSheet(t, 256, 64, 32, 32)
	sheet := SheetSpec{FrameWidth: 32, FrameHeight: 32, FramesPerRow: 8}
	anims := AnimationSpec{
		Names:       []string{"short", "long"},
		FrameCounts: []int{5, 11},
	}

	table, err := Build(img, sheet, anims)
	require.NoError(t, err)
	assert.Equal(t, 16, table.FrameCount())

	long, _ := table.Frames("long")
	// The sixth frame of "long" is cell 10, i.e. column 2 of row 1.
	c := long[5].RGBAAt(0, 0)
	assert.Equal(t, uint8(2), c.R)
	assert.Equal(t, uint8(1), c.G)
}

func TestBuild_Idempotent(t *testing.T) {
	img := makeSheet(t, 832, 64, 64, 64)
	sheet := SheetSpec{FrameWidth: 64, FrameHeight: 64, FramesPerRow: 13}
	anims := AnimationSpec{Names: []string{"walk"}, FrameCounts: []int{13}}

	first, err := Build(img, sheet, anims)
	require.NoError(t, err)
	second, err := Build(img, sheet, anims)
	require.NoError(t, err)

	a, _ := first.Frames("walk")
	b, _ := second.Frames("walk")
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Pix, b[i].Pix, "frame %d", i)
	}
}

func TestBuild_ValidatesBeforeSlicing(t *testing.T) {
	img := makeSheet(t, 64, 64, 32, 32)
	sheet := SheetSpec{FrameWidth: 32, FrameHeight: 32, FramesPerRow: 2}

	_, err := Build(img, sheet, AnimationSpec{
		Names:       []string{"a", "b"},
		FrameCounts: []int{1},
	})
	var me *MismatchError
	require.ErrorAs(t, err, &me)
}

func TestBuild_SlicesOnlyWhatTheSpecNeeds(t *testing.T) {
	// The image has room for 4 cells but the spec only needs 2; the
	// surplus must not trigger bounds checks beyond the needed count.
	img := makeSheet(t, 64, 64, 32, 32)
	sheet := SheetSpec{FrameWidth: 32, FrameHeight: 32, FramesPerRow: 2}

	table, err := Build(img, sheet, AnimationSpec{
		Names:       []string{"blink"},
		FrameCounts: []int{2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.FrameCount())
}

func TestAlignedToRows(t *testing.T) {
	sheet := SheetSpec{FrameWidth: 64, FrameHeight: 64, FramesPerRow: 13}

	aligned := AnimationSpec{
		Names:       []string{"up", "down"},
		FrameCounts: []int{13, 13},
	}
	assert.True(t, AlignedToRows(sheet, aligned))

	ragged := AnimationSpec{
		Names:       []string{"up", "down"},
		FrameCounts: []int{13, 7},
	}
	assert.False(t, AlignedToRows(sheet, ragged))
}

func TestSheetSpec_Scaled(t *testing.T) {
	assert.False(t, SheetSpec{}.Scaled())
	assert.True(t, SheetSpec{ScaleWidth: 64, ScaleHeight: 64}.Scaled())
}
