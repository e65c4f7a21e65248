// Package assets owns the embedded image files and the application-side
// cache of built animation tables. The spritesheet core stays pure; this
// is the collaborator that resolves filenames, decodes PNGs, and keeps
// the results around for the scenes.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path"

	"github.com/Highwind360/spoodle/config"
)

//go:embed all:images
var imageFS embed.FS

// LoadImage reads and decodes an image from the embedded images
// directory by its configured filename.
func LoadImage(name string) (image.Image, error) {
	data, err := imageFS.ReadFile(path.Join(config.C.ImageDir, name))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}

	return img, nil
}

// LoadSpriteIndex reads and validates the embedded sprites.json.
func LoadSpriteIndex() (map[string]config.SpriteSet, error) {
	data, err := imageFS.ReadFile(path.Join(config.C.ImageDir, config.C.SpriteIndex))
	if err != nil {
		return nil, fmt.Errorf("read sprite index: %w", err)
	}
	return config.LoadSpriteSheets(data)
}
