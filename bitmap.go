package vessel

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Bitmap is a rectangular 8-bit grayscale pixel buffer, one byte per pixel
// in row-major order with the origin at the top-left. Rendered vessels use
// intensity 255 for the lumen interior and 0 for the background, with
// anti-aliased values in between along the lumen edge.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// NewBitmap creates a zeroed (all background) bitmap with the given
// dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Data returns the raw pixel data, height*width bytes in row-major order.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// SetIntensity sets a single pixel. Out-of-bounds coordinates are ignored.
func (b *Bitmap) SetIntensity(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[y*b.width+x] = v
}

// Intensity returns a single pixel value. Out-of-bounds coordinates read
// as background.
func (b *Bitmap) Intensity(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// ToImage converts the bitmap to an image.Gray sharing no storage.
func (b *Bitmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// EncodePNG writes the bitmap as PNG to the given writer.
// This is useful for streaming, network output, or custom storage.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b)
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return b.EncodePNG(f)
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return color.Gray{Y: b.Intensity(x, y)}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}
