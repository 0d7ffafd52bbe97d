package loader

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// loaderBackend turns encoded asset bytes into decoded texture data. Implementations must be
// safe to call from worker goroutines; they never touch the graphics device.
type loaderBackend interface {
	// Decode decodes an encoded image.
	//
	// Parameters:
	//   - name: the asset path, used in errors
	//   - data: the encoded bytes
	//
	// Returns:
	//   - *common.ImportedTexture: the decoded texture
	//   - error: error if decoding fails
	Decode(name string, data []byte) (*common.ImportedTexture, error)
}

// imageLoaderBackend decodes PNG, JPEG, BMP, TIFF and WebP images.
type imageLoaderBackend struct{}

var _ loaderBackend = &imageLoaderBackend{}

func newImageLoaderBackend() loaderBackend {
	return &imageLoaderBackend{}
}

func (b *imageLoaderBackend) Decode(name string, data []byte) (*common.ImportedTexture, error) {
	tex := &common.ImportedTexture{Name: name, Data: data}
	if err := tex.Decode(); err != nil {
		return nil, err
	}
	tex.Data = nil
	return tex, nil
}
