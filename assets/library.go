package assets

import (
	"fmt"
	"sync"

	"github.com/Highwind360/spoodle/config"
	"github.com/Highwind360/spoodle/spritesheet"
	"github.com/hajimehoshi/ebiten/v2"
)

// Library caches built animation tables and their GPU-side textures per
// animation set. Caching lives here rather than in the spritesheet core;
// a failed sheet caches nothing.
type Library struct {
	mu         sync.Mutex
	sets       map[string]config.SpriteSet
	tables     map[string]*spritesheet.Table
	frames     map[string]map[string][]*ebiten.Image
	background *ebiten.Image
}

func NewLibrary() *Library {
	return &Library{
		tables: map[string]*spritesheet.Table{},
		frames: map[string]map[string][]*ebiten.Image{},
	}
}

// index lazily loads sprites.json. Callers hold l.mu.
func (l *Library) index() (map[string]config.SpriteSet, error) {
	if l.sets == nil {
		sets, err := LoadSpriteIndex()
		if err != nil {
			return nil, err
		}
		l.sets = sets
	}
	return l.sets, nil
}

// Table returns the built animation table for a set, building and
// caching it on first request.
func (l *Library) Table(set string) (*spritesheet.Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table(set)
}

func (l *Library) table(set string) (*spritesheet.Table, error) {
	if table, ok := l.tables[set]; ok {
		return table, nil
	}

	sets, err := l.index()
	if err != nil {
		return nil, err
	}

	spec, ok := sets[set]
	if !ok {
		return nil, fmt.Errorf("unknown sprite set %q", set)
	}

	src, err := LoadImage(spec.Sheet.Filename)
	if err != nil {
		return nil, err
	}

	table, err := spritesheet.Build(src, spec.Sheet, spec.Animations)
	if err != nil {
		return nil, fmt.Errorf("sprite set %q: %w", set, err)
	}

	l.tables[set] = table
	return table, nil
}

// Frames returns the ebiten textures for one animation of a set, in
// frame order. Textures are created once and memoized.
func (l *Library) Frames(set, animation string) ([]*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if anims, ok := l.frames[set]; ok {
		if frames, ok := anims[animation]; ok {
			return frames, nil
		}
	}

	table, err := l.table(set)
	if err != nil {
		return nil, err
	}

	cells, ok := table.Frames(animation)
	if !ok {
		return nil, fmt.Errorf("sprite set %q has no animation %q", set, animation)
	}

	frames := make([]*ebiten.Image, len(cells))
	for i, cell := range cells {
		frames[i] = ebiten.NewImageFromImage(cell)
	}

	if l.frames[set] == nil {
		l.frames[set] = map[string][]*ebiten.Image{}
	}
	l.frames[set][animation] = frames
	return frames, nil
}

// FirstFrame returns the first texture of an animation, the still image
// used for non-animated entities.
func (l *Library) FirstFrame(set, animation string) (*ebiten.Image, error) {
	frames, err := l.Frames(set, animation)
	if err != nil {
		return nil, err
	}
	return frames[0], nil
}

// Background returns the decoded background texture.
func (l *Library) Background() (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.background != nil {
		return l.background, nil
	}

	img, err := LoadImage(config.C.Background)
	if err != nil {
		return nil, err
	}

	l.background = ebiten.NewImageFromImage(img)
	return l.background, nil
}

var library = NewLibrary()

// Package-level accessors over a shared default library.

func Table(set string) (*spritesheet.Table, error) {
	return library.Table(set)
}

func Frames(set, animation string) ([]*ebiten.Image, error) {
	return library.Frames(set, animation)
}

func MustFirstFrame(set, animation string) *ebiten.Image {
	frame, err := library.FirstFrame(set, animation)
	if err != nil {
		panic(fmt.Sprintf("load frame %s/%s: %v", set, animation, err))
	}
	return frame
}

func MustBackground() *ebiten.Image {
	bg, err := library.Background()
	if err != nil {
		panic(fmt.Sprintf("load background: %v", err))
	}
	return bg
}
