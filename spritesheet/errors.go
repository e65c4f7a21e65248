package spritesheet

import (
	"fmt"
	"image"
)

// GeometryError reports a sheet or animation spec field with an illegal
// value (non-positive size or frame count, negative padding or offset).
type GeometryError struct {
	Field string
	Value int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("spritesheet: invalid geometry: %s = %d", e.Field, e.Value)
}

// BoundsError reports a cell whose rectangle extends past the source
// image. Partial frames are never clipped; they would corrupt every frame
// after them in scan order.
type BoundsError struct {
	Index  int
	Rect   image.Rectangle
	Bounds image.Rectangle
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("spritesheet: cell %d at %v exceeds source bounds %v",
		e.Index, e.Rect, e.Bounds)
}

// MismatchError reports animation-name and frame-count lists of different
// lengths.
type MismatchError struct {
	Names  int
	Counts int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("spritesheet: %d animation names but %d frame counts",
		e.Names, e.Counts)
}

// FrameShortageError reports an animation whose declared frame count
// exceeds the cells remaining in the sheet.
type FrameShortageError struct {
	Animation string
	Requested int
	Available int
}

func (e *FrameShortageError) Error() string {
	return fmt.Sprintf("spritesheet: animation %q needs %d frames but only %d remain (short %d)",
		e.Animation, e.Requested, e.Available, e.Shortfall())
}

// Shortfall is how many frames the sheet is missing for this animation.
func (e *FrameShortageError) Shortfall() int {
	return e.Requested - e.Available
}

// DuplicateNameError reports a repeated (or empty) animation name within
// one sheet's spec. The output table requires unique keys; silently
// overwriting an earlier animation is never intended.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	if e.Name == "" {
		return "spritesheet: empty animation name"
	}
	return fmt.Sprintf("spritesheet: duplicate animation name %q", e.Name)
}
