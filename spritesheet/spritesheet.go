// Package spritesheet partitions a decoded spritesheet image into frame
// cells and groups them into named, ordered animation tables. It operates
// on plain image buffers and knows nothing about rendering; callers decode
// the file and hand the result in.
package spritesheet

import "image"

// Filter selects the resampling kernel used when a sheet is scaled.
type Filter int

const (
	// FilterNearest preserves hard pixel edges (pixel art default).
	FilterNearest Filter = iota
	// FilterLinear interpolates between neighboring pixels.
	FilterLinear
)

// SheetSpec describes the grid geometry of one spritesheet.
type SheetSpec struct {
	Filename string

	FrameWidth  int
	FrameHeight int

	// Top-left origin of the scan within the source image.
	StartX int
	StartY int

	// Padding is the pixel gap between adjacent cells on both axes.
	// It is never applied before the first or after the last cell.
	Padding int

	// FramesPerRow is how many cells are read before wrapping to the
	// next row.
	FramesPerRow int

	// ScaleWidth/ScaleHeight, when both positive, resample every cell
	// to that exact size. Both zero means no scaling.
	ScaleWidth  int
	ScaleHeight int

	Filter Filter
}

// Scaled reports whether the spec configures output resampling.
func (s SheetSpec) Scaled() bool {
	return s.ScaleWidth > 0 && s.ScaleHeight > 0
}

// Validate checks the grid geometry. All slicing entry points call it, but
// configuration loaders should call it at construction so bad specs are
// rejected before any image work happens.
func (s SheetSpec) Validate() error {
	switch {
	case s.FrameWidth <= 0:
		return &GeometryError{Field: "frame width", Value: s.FrameWidth}
	case s.FrameHeight <= 0:
		return &GeometryError{Field: "frame height", Value: s.FrameHeight}
	case s.FramesPerRow <= 0:
		return &GeometryError{Field: "frames per row", Value: s.FramesPerRow}
	case s.Padding < 0:
		return &GeometryError{Field: "padding", Value: s.Padding}
	case s.StartX < 0:
		return &GeometryError{Field: "starting x", Value: s.StartX}
	case s.StartY < 0:
		return &GeometryError{Field: "starting y", Value: s.StartY}
	}

	// scale_to must be fully specified or fully absent.
	if s.ScaleWidth != 0 || s.ScaleHeight != 0 {
		if s.ScaleWidth <= 0 {
			return &GeometryError{Field: "scale width", Value: s.ScaleWidth}
		}
		if s.ScaleHeight <= 0 {
			return &GeometryError{Field: "scale height", Value: s.ScaleHeight}
		}
	}

	return nil
}

// AnimationSpec names the animations of one sheet and how many cells each
// consumes, in declaration order. The two lists are parallel.
type AnimationSpec struct {
	Names       []string
	FrameCounts []int
}

// Validate checks the parallel-list structure. Bind repeats these checks,
// but loaders call this up front for early diagnostics.
func (a AnimationSpec) Validate() error {
	if len(a.Names) != len(a.FrameCounts) {
		return &MismatchError{Names: len(a.Names), Counts: len(a.FrameCounts)}
	}

	seen := make(map[string]struct{}, len(a.Names))
	for i, name := range a.Names {
		if name == "" {
			return &DuplicateNameError{Name: ""}
		}
		if _, ok := seen[name]; ok {
			return &DuplicateNameError{Name: name}
		}
		seen[name] = struct{}{}

		if a.FrameCounts[i] <= 0 {
			return &GeometryError{Field: "frame count for " + name, Value: a.FrameCounts[i]}
		}
	}

	return nil
}

// TotalFrames is the number of cells the spec consumes in total.
func (a AnimationSpec) TotalFrames() int {
	total := 0
	for _, n := range a.FrameCounts {
		total += n
	}
	return total
}

// Build slices src according to sheet and binds the cells into a table
// according to anims. It is a pure function over its inputs: src is only
// read, and the returned table owns independent pixel copies. A failed
// sheet yields no table at all.
func Build(src image.Image, sheet SheetSpec, anims AnimationSpec) (*Table, error) {
	if err := anims.Validate(); err != nil {
		return nil, err
	}

	cells, err := Slice(src, sheet, anims.TotalFrames())
	if err != nil {
		return nil, err
	}

	return Bind(cells, anims)
}

// AlignedToRows reports whether every animation consumes exactly one full
// grid row. The binder itself is permissive and lets animations span row
// boundaries; callers that want the strict one-row-per-animation layout
// check this separately.
func AlignedToRows(sheet SheetSpec, anims AnimationSpec) bool {
	for _, n := range anims.FrameCounts {
		if n != sheet.FramesPerRow {
			return false
		}
	}
	return true
}
