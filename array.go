package icon

import "fmt"

// Scale declares how raw array sample values are interpreted.
type Scale int

const (
	// ScaleAuto infers the range: if any sample exceeds 1 the whole
	// array is treated as 0-255 and divided by 255, otherwise values
	// are taken as already within [0, 1]. This mirrors the behavior of
	// common plotting toolkits but misreads normalized data that
	// contains out-of-range noise; pass ScaleUnit or ScaleByte when the
	// range is known.
	ScaleAuto Scale = iota

	// ScaleUnit treats samples as already within [0, 1].
	ScaleUnit

	// ScaleByte treats samples as 0-255 and divides by 255.
	ScaleByte
)

// Array is a raw numeric pixel source: row-major samples with 1 (gray),
// 3 (RGB) or 4 (RGBA) channels, channel-last. A single-channel array may
// be passed through a Colormap during recompute; multi-channel arrays are
// interpreted directly as pixel channels.
type Array struct {
	width    int
	height   int
	channels int
	data     []float64
	scale    Scale
}

// NewArray creates an array source from row-major, channel-last samples.
// channels must be 1, 3 or 4 and len(data) must equal
// width*height*channels.
func NewArray(width, height, channels int, data []float64) (*Array, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icon: array dimensions %dx%d: %w", width, height, ErrUnsupportedImage)
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("icon: array with %d channels: %w", channels, ErrUnsupportedImage)
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("icon: array data length %d, want %d: %w",
			len(data), width*height*channels, ErrUnsupportedImage)
	}
	return &Array{width: width, height: height, channels: channels, data: data}, nil
}

// GrayArray creates a single-channel array source.
func GrayArray(width, height int, data []float64) (*Array, error) {
	return NewArray(width, height, 1, data)
}

// SetScale overrides the automatic range inference (see Scale).
// It returns the array for chaining.
func (a *Array) SetScale(s Scale) *Array {
	a.scale = s
	return a
}

// Width returns the array width in samples.
func (a *Array) Width() int { return a.width }

// Height returns the array height in samples.
func (a *Array) Height() int { return a.height }

// Channels returns the number of channels per sample.
func (a *Array) Channels() int { return a.channels }

func (a *Array) imageSource() {}

// divisor resolves the scale policy to a per-sample divisor.
func (a *Array) divisor() float64 {
	switch a.scale {
	case ScaleUnit:
		return 1
	case ScaleByte:
		return 255
	default:
		for _, v := range a.data {
			if v > 1 {
				return 255
			}
		}
		return 1
	}
}

// pixmap renders the array into an RGBA pixmap, mapping single-channel
// samples through cmap when one is set.
func (a *Array) pixmap(cmap Colormap) *Pixmap {
	div := a.divisor()
	p := NewPixmap(a.width, a.height)

	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			i := (y*a.width + x) * a.channels
			var c RGBA
			switch a.channels {
			case 1:
				v := a.data[i] / div
				if cmap != nil {
					c = cmap(v)
				} else {
					c = RGBA{R: v, G: v, B: v, A: 1}
				}
			case 3:
				c = RGBA{
					R: a.data[i+0] / div,
					G: a.data[i+1] / div,
					B: a.data[i+2] / div,
					A: 1,
				}
			default:
				c = RGBA{
					R: a.data[i+0] / div,
					G: a.data[i+1] / div,
					B: a.data[i+2] / div,
					A: a.data[i+3] / div,
				}
			}
			p.SetPixel(x, y, c)
		}
	}
	return p
}
