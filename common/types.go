// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImportedTexture represents encoded image data read from an asset and, after Decode, its RGBA pixels.
type ImportedTexture struct {
	// Name is an identifier for this texture, usually its asset path.
	Name string

	// Data contains the encoded image bytes (PNG, JPEG, BMP, TIFF or WebP).
	Data []byte

	// Format is the image format name reported by the decoder (populated after Decode).
	Format string

	// Pixels holds tightly packed RGBA rows, bottom row first (populated after Decode).
	Pixels []byte

	// Width is the texture width in pixels (populated after Decode).
	Width int

	// Height is the texture height in pixels (populated after Decode).
	Height int
}

// Decode decodes Data into RGBA pixels. Rows are flipped so the first row is the bottom of the
// image, matching the texture coordinate origin of the graphics device.
//
// Returns:
//   - error: error if the data is empty or cannot be decoded
func (t *ImportedTexture) Decode() error {
	if t == nil {
		return fmt.Errorf("texture is nil")
	}
	if len(t.Data) == 0 {
		return fmt.Errorf("texture %s has no data", t.Name)
	}

	img, format, err := image.Decode(bytes.NewReader(t.Data))
	if err != nil {
		return fmt.Errorf("failed to decode texture %s: %w", t.Name, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	FlipRows(rgba.Pix, rgba.Stride)

	t.Format = format
	t.Pixels = rgba.Pix
	t.Width = bounds.Dx()
	t.Height = bounds.Dy()
	return nil
}

// FlipRows reverses the order of the rows of a pixel buffer in place.
//
// Parameters:
//   - pix: the pixel buffer
//   - stride: the number of bytes per row
func FlipRows(pix []byte, stride int) {
	if stride <= 0 {
		return
	}
	rows := len(pix) / stride
	tmp := make([]byte, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
