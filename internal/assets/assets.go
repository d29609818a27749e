// Package assets resolves asset paths against a run-time root and decodes
// texture images.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Resolver maps asset-relative paths onto the filesystem.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver rooted at root. An empty root means the
// working directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: filepath.Clean(root)}
}

// Root returns the asset root.
func (r *Resolver) Root() string {
	return r.root
}

// Path returns name joined to the root. Absolute names are returned as is.
func (r *Resolver) Path(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(r.root, filepath.FromSlash(name))
}

// LoadImage decodes the image at path into RGBA. With flipY the rows are
// reversed so that the first row is the bottom of the image, matching
// OpenGL's texture-coordinate origin.
func LoadImage(path string, flipY bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if rgba.Rect.Empty() {
		return nil, fmt.Errorf("%s image %s has no pixels", format, path)
	}

	if flipY {
		FlipVertical(rgba)
	}
	return rgba, nil
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
