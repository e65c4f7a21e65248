package config

import (
	"encoding/json"
	"fmt"

	"github.com/Highwind360/spoodle/spritesheet"
)

// sheetEntry mirrors one entry of the sprites.json schema:
//
//	"player": {
//	  "filename": "player.png",
//	  "size": [64, 64],
//	  "starting_coords": [0, 0],
//	  "padding": 0,
//	  "scale_to": [64, 64],
//	  "filter": "nearest",
//	  "frames_per_row": 13,
//	  "animation_names": ["spellcast_up", "spellcast_down"],
//	  "frames_per_animation": [7, 7]
//	}
//
// size, starting_coords and scale_to are [width, height] / [x, y] pairs;
// scale_to and filter are optional.
type sheetEntry struct {
	Filename           string   `json:"filename"`
	Size               *[2]int  `json:"size"`
	StartingCoords     *[2]int  `json:"starting_coords"`
	Padding            int      `json:"padding"`
	ScaleTo            *[2]int  `json:"scale_to"`
	Filter             string   `json:"filter"`
	FramesPerRow       int      `json:"frames_per_row"`
	AnimationNames     []string `json:"animation_names"`
	FramesPerAnimation []int    `json:"frames_per_animation"`
}

// SpriteSet is one fully validated animation set: the sheet geometry and
// the animation layout that partitions it.
type SpriteSet struct {
	Sheet      spritesheet.SheetSpec
	Animations spritesheet.AnimationSpec
}

// LoadSpriteSheets parses the sprites.json document and validates every
// entry at load time, so geometry and spec-shape problems surface here
// rather than deep inside slicing.
func LoadSpriteSheets(data []byte) (map[string]SpriteSet, error) {
	var entries map[string]sheetEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse sprite index: %w", err)
	}

	sets := make(map[string]SpriteSet, len(entries))
	for name, entry := range entries {
		set, err := entry.toSpriteSet()
		if err != nil {
			return nil, fmt.Errorf("sprite set %q: %w", name, err)
		}
		sets[name] = set
	}

	return sets, nil
}

func (e sheetEntry) toSpriteSet() (SpriteSet, error) {
	if e.Filename == "" {
		return SpriteSet{}, fmt.Errorf("missing filename")
	}
	if e.Size == nil {
		return SpriteSet{}, fmt.Errorf("missing size")
	}

	sheet := spritesheet.SheetSpec{
		Filename:     e.Filename,
		FrameWidth:   e.Size[0],
		FrameHeight:  e.Size[1],
		Padding:      e.Padding,
		FramesPerRow: e.FramesPerRow,
	}
	if e.StartingCoords != nil {
		sheet.StartX = e.StartingCoords[0]
		sheet.StartY = e.StartingCoords[1]
	}
	if e.ScaleTo != nil {
		sheet.ScaleWidth = e.ScaleTo[0]
		sheet.ScaleHeight = e.ScaleTo[1]
	}

	switch e.Filter {
	case "", "nearest":
		sheet.Filter = spritesheet.FilterNearest
	case "linear":
		sheet.Filter = spritesheet.FilterLinear
	default:
		return SpriteSet{}, fmt.Errorf("unknown filter %q", e.Filter)
	}

	if err := sheet.Validate(); err != nil {
		return SpriteSet{}, err
	}

	anims := spritesheet.AnimationSpec{
		Names:       e.AnimationNames,
		FrameCounts: e.FramesPerAnimation,
	}
	if err := anims.Validate(); err != nil {
		return SpriteSet{}, err
	}

	return SpriteSet{Sheet: sheet, Animations: anims}, nil
}
