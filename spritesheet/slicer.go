package spritesheet

import (
	"image"

	"golang.org/x/image/draw"
)

// Slice extracts n cells from src in row-major order starting at the
// spec's origin. Consecutive cells on a row are FrameWidth+Padding apart,
// rows are FrameHeight+Padding apart, and the scan wraps after
// FramesPerRow cells. Each cell is an independent pixel copy; src is only
// read. When the spec configures scaling, every cell is resampled to the
// target size before being returned.
func Slice(src image.Image, spec SheetSpec, n int) ([]*image.RGBA, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &GeometryError{Field: "cell count", Value: n}
	}

	bounds := src.Bounds()
	cells := make([]*image.RGBA, 0, n)

	for i := 0; i < n; i++ {
		col := i % spec.FramesPerRow
		row := i / spec.FramesPerRow

		x := bounds.Min.X + spec.StartX + col*(spec.FrameWidth+spec.Padding)
		y := bounds.Min.Y + spec.StartY + row*(spec.FrameHeight+spec.Padding)
		rect := image.Rect(x, y, x+spec.FrameWidth, y+spec.FrameHeight)

		// A right or bottom edge exactly on the image edge is fine;
		// only exceeding it is an error.
		if !rect.In(bounds) {
			return nil, &BoundsError{Index: i, Rect: rect, Bounds: bounds}
		}

		cells = append(cells, extract(src, rect, spec))
	}

	return cells, nil
}

// extract copies one cell out of src, resampling it when the spec asks
// for an output size.
func extract(src image.Image, rect image.Rectangle, spec SheetSpec) *image.RGBA {
	if !spec.Scaled() {
		cell := image.NewRGBA(image.Rect(0, 0, spec.FrameWidth, spec.FrameHeight))
		draw.Draw(cell, cell.Bounds(), src, rect.Min, draw.Src)
		return cell
	}

	cell := image.NewRGBA(image.Rect(0, 0, spec.ScaleWidth, spec.ScaleHeight))
	spec.Filter.interpolator().Scale(cell, cell.Bounds(), src, rect, draw.Src, nil)
	return cell
}

func (f Filter) interpolator() draw.Interpolator {
	if f == FilterLinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}
