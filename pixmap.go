package conic

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer, four bytes per pixel
// in R, G, B, A order. Its Data slice is laid out exactly as
// Gradient.FillRGBA expects.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	ch := c.rgba8()
	p.data[i+0] = uint8(ch[0])
	p.data[i+1] = uint8(ch[1])
	p.data[i+2] = uint8(ch[2])
	p.data[i+3] = uint8(ch[3])
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	ch := c.rgba8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = uint8(ch[0])
		p.data[i+1] = uint8(ch[1])
		p.data[i+2] = uint8(ch[2])
		p.data[i+3] = uint8(ch[3])
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return savePNG(path, p.ToImage())
}

// Graymap represents a rectangular single-channel intensity buffer,
// one byte per pixel. Its Data slice is laid out exactly as
// Gradient.FillGray expects.
type Graymap struct {
	width  int
	height int
	data   []uint8
}

// NewGraymap creates a new graymap with the given dimensions.
func NewGraymap(width, height int) *Graymap {
	return &Graymap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the graymap.
func (p *Graymap) Width() int { return p.width }

// Height returns the height of the graymap.
func (p *Graymap) Height() int { return p.height }

// Data returns the raw intensity data.
func (p *Graymap) Data() []uint8 { return p.data }

// SetGray sets the intensity of a single pixel.
func (p *Graymap) SetGray(x, y int, v uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = v
}

// Gray returns the intensity of a single pixel.
func (p *Graymap) Gray(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// Clear fills the entire graymap with an intensity.
func (p *Graymap) Clear(v uint8) {
	for i := range p.data {
		p.data[i] = v
	}
}

// ToImage converts the graymap to an image.Gray.
func (p *Graymap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Graymap) At(x, y int) color.Color {
	return color.Gray{Y: p.Gray(x, y)}
}

// Bounds implements the image.Image interface.
func (p *Graymap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Graymap) ColorModel() color.Model {
	return color.GrayModel
}

// SavePNG saves the graymap to a PNG file.
func (p *Graymap) SavePNG(path string) error {
	return savePNG(path, p.ToImage())
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
