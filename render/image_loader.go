package render

import (
	"fmt"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// readImage decodes an image file; tests swap it out.
var readImage = func(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// LoadImage loads an image from the filesystem and caches it by its cleaned
// path.
func LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("render: empty image path")
	}
	key := filepath.Clean(path)
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := readImage(key)
	if err != nil {
		return nil, fmt.Errorf("render: load %s: %w", path, err)
	}
	RegisterImage(key, img)
	return img, nil
}

// Texture tracks the sheet the open catalog points at. It satisfies the
// catalog manager's texture loader.
type Texture struct {
	Image *ebiten.Image
	Path  string
}

func (t *Texture) LoadTexture(path string) (int, int, error) {
	img, err := LoadImage(path)
	if err != nil {
		return 0, 0, err
	}
	t.Image = img
	t.Path = filepath.Clean(path)
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Reload re-reads the current sheet from disk. The old image stays in use
// until the new one has decoded, so a file caught mid-write changes nothing.
func (t *Texture) Reload() error {
	if t.Path == "" {
		return nil
	}
	img, err := readImage(t.Path)
	if err != nil {
		return fmt.Errorf("render: reload %s: %w", t.Path, err)
	}
	ReplaceImage(t.Path, img)
	t.Image = img
	return nil
}
