package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored row-major as non-premultiplied RGBA, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start fully transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage converts any image.Image into a pixmap.
// Images without an alpha channel come out fully opaque.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy())
	xdraw.Draw(p.nrgba(), p.nrgba().Bounds(), img, bounds.Min, xdraw.Src)
	return p
}

func (p *Pixmap) imageSource() {}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Image returns a standard library view of the pixmap.
// The view shares the pixmap's storage.
func (p *Pixmap) Image() image.Image {
	return p.nrgba()
}

func (p *Pixmap) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
// Returns Transparent for coordinates outside the pixmap bounds.
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

// Fill fills the entire pixmap with a color.
func (p *Pixmap) Fill(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// ResizeNearest returns a resized copy using nearest-neighbor sampling.
// Nearest keeps hard edges intact and never invents pixel values that are
// not present in the source.
func (p *Pixmap) ResizeNearest(width, height int) *Pixmap {
	dst := NewPixmap(width, height)
	xdraw.NearestNeighbor.Scale(
		dst.nrgba(), dst.nrgba().Bounds(),
		p.nrgba(), p.nrgba().Bounds(),
		xdraw.Src, nil,
	)
	return dst
}

// Pad returns a copy expanded by width pixels on all four sides.
// The new ring is filled with the given color at that color's own alpha;
// the original pixels, including their alpha, are unchanged.
func (p *Pixmap) Pad(width int, fill RGBA) *Pixmap {
	if width <= 0 {
		return p.Clone()
	}
	dst := NewPixmap(p.width+2*width, p.height+2*width)
	dst.Fill(fill)
	for y := 0; y < p.height; y++ {
		srcOff := y * p.width * 4
		dstOff := ((y+width)*dst.width + width) * 4
		copy(dst.data[dstOff:dstOff+p.width*4], p.data[srcOff:srcOff+p.width*4])
	}
	return dst
}

// Alpha extracts the alpha channel as a mask.
func (p *Pixmap) Alpha() *Mask {
	m := NewMask(p.width, p.height)
	for i := 0; i < p.width*p.height; i++ {
		m.data[i] = p.data[i*4+3]
	}
	return m
}

// SetAlpha replaces the alpha channel with the given mask.
// The mask dimensions must match the pixmap.
func (p *Pixmap) SetAlpha(m *Mask) {
	if m.width != p.width || m.height != p.height {
		return
	}
	for i := 0; i < p.width*p.height; i++ {
		p.data[i*4+3] = m.data[i]
	}
}

// MulAlpha multiplies the mask into the existing alpha channel in place.
// Pre-existing transparency is preserved: a pixel can only become more
// transparent. The mask dimensions must match the pixmap.
func (p *Pixmap) MulAlpha(m *Mask) {
	if m.width != p.width || m.height != p.height {
		return
	}
	for i := 0; i < p.width*p.height; i++ {
		a := uint16(p.data[i*4+3]) * uint16(m.data[i])
		p.data[i*4+3] = uint8((a + 127) / 255)
	}
}
