package icon

import (
	"image"
	"math"
)

// Mask represents an alpha mask for compositing operations.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// ApertureMask builds a radial window mask over a width x height pixel grid.
//
// Each axis is normalized independently so that its extreme pixel centers
// map to ±1; for non-square grids the aperture is therefore elliptical.
// With r the normalized radius of a pixel center, the mask value is
//
//	r > 1:                        0
//	r <= threshold:               1
//	threshold < r <= 1:           0.5 + 0.5*cos(pi*(r-threshold)/(1-threshold))
//
// threshold == 1 degenerates to a hard-edged circle and threshold == 0 to a
// full raised-cosine taper. The taper is monotonically non-increasing in r.
func ApertureMask(width, height int, threshold float64) *Mask {
	m := NewMask(width, height)

	// Extreme pixel-center offset per axis. Zero for a 1-pixel axis, in
	// which case every coordinate on that axis normalizes to 0.
	maxX := float64(width-1) / 2
	maxY := float64(height-1) / 2

	for j := 0; j < height; j++ {
		y := 0.0
		if maxY > 0 {
			y = (float64(j) - float64(height)/2 + 0.5) / maxY
		}
		for i := 0; i < width; i++ {
			x := 0.0
			if maxX > 0 {
				x = (float64(i) - float64(width)/2 + 0.5) / maxX
			}
			r := math.Hypot(x, y)

			var a float64
			switch {
			case r > 1:
				a = 0
			case r <= threshold:
				a = 1
			default:
				// Unreachable when threshold == 1, so the divisor
				// is never zero here.
				a = 0.5 + 0.5*math.Cos(math.Pi*(r-threshold)/(1-threshold))
			}
			m.data[j*width+i] = uint8(math.Round(a * 255))
		}
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.width, m.height)
	copy(c.data, m.data)
	return c
}
