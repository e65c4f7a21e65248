package spritesheet

import "image"

// Table maps animation names to their ordered frame sequences. Iteration
// order matches the declaration order of the spec the table was built
// from. A table is immutable once built.
type Table struct {
	names  []string
	frames map[string][]*image.RGBA
}

// Names returns the animation names in declaration order.
func (t *Table) Names() []string {
	return t.names
}

// Frames returns the frame sequence bound to name.
func (t *Table) Frames(name string) ([]*image.RGBA, bool) {
	frames, ok := t.frames[name]
	return frames, ok
}

// Len is the number of animations in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// FrameCount is the total number of frames across all animations.
func (t *Table) FrameCount() int {
	total := 0
	for _, frames := range t.frames {
		total += len(frames)
	}
	return total
}

// Bind partitions cells into named contiguous runs, walking the spec's
// name and count lists in lock-step with a cursor into cells. Surplus
// cells past the last animation are simply unused; running out of cells
// mid-animation is an error naming the animation and the shortfall.
func Bind(cells []*image.RGBA, spec AnimationSpec) (*Table, error) {
	if len(spec.Names) != len(spec.FrameCounts) {
		return nil, &MismatchError{Names: len(spec.Names), Counts: len(spec.FrameCounts)}
	}

	table := &Table{
		names:  make([]string, 0, len(spec.Names)),
		frames: make(map[string][]*image.RGBA, len(spec.Names)),
	}

	cursor := 0
	for i, name := range spec.Names {
		count := spec.FrameCounts[i]

		if name == "" {
			return nil, &DuplicateNameError{Name: ""}
		}
		if _, ok := table.frames[name]; ok {
			return nil, &DuplicateNameError{Name: name}
		}
		if count <= 0 {
			return nil, &GeometryError{Field: "frame count for " + name, Value: count}
		}
		if cursor+count > len(cells) {
			return nil, &FrameShortageError{
				Animation: name,
				Requested: count,
				Available: len(cells) - cursor,
			}
		}

		table.names = append(table.names, name)
		table.frames[name] = cells[cursor : cursor+count : cursor+count]
		cursor += count
	}

	return table, nil
}
