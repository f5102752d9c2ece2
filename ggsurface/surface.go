// Package ggsurface renders icon placements onto a gogpu/gg drawing
// context.
//
// The surface maps data coordinates onto the context's pixel area using
// caller-supplied axis limits, converts point offsets at a configurable
// DPI, and delegates all rasterization to gg. It never owns the context:
// creation, font setup, and output all remain with the caller.
//
// gg rasterizes in submission order. The surface therefore assumes
// commands arrive in increasing z-order, which icon placement guarantees
// (image first, label after).
package ggsurface

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/icon"
)

// Surface implements icon.Surface on a gg.Context.
//
// The Surface is not safe for concurrent use.
type Surface struct {
	dc         *gg.Context
	xlim, ylim [2]float64
	dpi        float64
	guideColor gg.RGBA
	nextZ      int
}

// Option configures a Surface during creation.
type Option func(*Surface)

// WithDPI sets the resolution used to convert point offsets to pixels.
// The default is 72, i.e. one point per pixel.
func WithDPI(dpi float64) Option {
	return func(s *Surface) {
		s.dpi = dpi
	}
}

// WithGuideColor sets the color of tick-label guide lines.
// The default is black.
func WithGuideColor(c icon.RGBA) Option {
	return func(s *Surface) {
		s.guideColor = gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
}

// New creates a Surface over dc. The data ranges xlim and ylim are mapped
// onto the context's full pixel area, with y increasing upward as on a
// plot. Text is drawn with the context's current font and color, so set
// those on dc before placing icons.
func New(dc *gg.Context, xlim, ylim [2]float64, opts ...Option) *Surface {
	s := &Surface{
		dc:         dc,
		xlim:       xlim,
		ylim:       ylim,
		dpi:        72,
		guideColor: gg.Black,
		nextZ:      1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolve converts a mixed-unit anchor to pixel coordinates.
func (s *Surface) resolve(c icon.Coord) (float64, float64) {
	w := float64(s.dc.Width())
	h := float64(s.dc.Height())

	var x float64
	if c.XUnit == icon.UnitAxesFraction {
		x = c.X * w
	} else {
		x = (c.X - s.xlim[0]) / (s.xlim[1] - s.xlim[0]) * w
	}

	var y float64
	if c.YUnit == icon.UnitAxesFraction {
		y = h - c.Y*h
	} else {
		y = h - (c.Y-s.ylim[0])/(s.ylim[1]-s.ylim[0])*h
	}
	return x, y
}

// px converts points to pixels at the surface DPI.
func (s *Surface) px(points float64) float64 {
	return points * s.dpi / 72
}

// AddImage draws the pixmap onto the context and returns its z-order.
// Nearest-neighbor sampling keeps the icon's hard edges when scaled.
func (s *Surface) AddImage(img *icon.Pixmap, opts icon.ImageOptions) int {
	z := s.nextZ
	s.nextZ++

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	w := float64(img.Width()) * scale
	h := float64(img.Height()) * scale

	ax, ay := s.resolve(opts.Anchor)
	// Point offsets use plot orientation: positive y is up.
	cx := ax + s.px(opts.OffsetX)
	cy := ay - s.px(opts.OffsetY)

	x, y := alignBox(cx, cy, w, h, opts.HAlign, opts.VAlign)

	if opts.Guide != nil {
		s.drawGuide(ax, ay, cx, cy, opts.Guide)
	}

	buf := gg.ImageBufFromImage(img.Image())
	s.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: gg.InterpNearest,
	})
	return z
}

// AddText draws a text annotation with the context's current font and
// color. Without a font set on the context, gg draws nothing.
func (s *Surface) AddText(text string, opts icon.TextOptions) {
	if opts.ZOrder >= s.nextZ {
		s.nextZ = opts.ZOrder + 1
	}

	ax, ay := s.resolve(opts.Anchor)
	cx := ax + s.px(opts.OffsetX)
	cy := ay - s.px(opts.OffsetY)

	if opts.Guide != nil {
		s.drawGuide(ax, ay, cx, cy, opts.Guide)
	}

	s.dc.DrawStringAnchored(text, cx, cy, anchorX(opts.HAlign), anchorY(opts.VAlign))
}

// drawGuide strokes the connector from the anchor to the offset content,
// pulling each end in by its shrink distance.
func (s *Surface) drawGuide(x0, y0, x1, y1 float64, g *icon.GuideLine) {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	shrink0 := s.px(g.ShrinkAnchor)
	shrink1 := s.px(g.ShrinkContent)
	if shrink0+shrink1 >= length {
		return
	}

	s.dc.Push()
	s.dc.SetColor(s.guideColor.Color())
	s.dc.SetLineWidth(1)
	s.dc.MoveTo(x0+ux*shrink0, y0+uy*shrink0)
	s.dc.LineTo(x1-ux*shrink1, y1-uy*shrink1)
	s.dc.Stroke()
	s.dc.Pop()
}

// alignBox converts an anchor point and alignment into a top-left corner.
func alignBox(cx, cy, w, h float64, ha icon.HAlign, va icon.VAlign) (float64, float64) {
	x := cx
	switch ha {
	case icon.HCenter:
		x = cx - w/2
	case icon.HRight:
		x = cx - w
	}
	y := cy
	switch va {
	case icon.VCenter:
		y = cy - h/2
	case icon.VBottom:
		y = cy - h
	}
	return x, y
}

// anchorX maps horizontal alignment to gg's anchored-draw fraction.
func anchorX(ha icon.HAlign) float64 {
	switch ha {
	case icon.HLeft:
		return 0
	case icon.HRight:
		return 1
	default:
		return 0.5
	}
}

// anchorY maps vertical alignment to gg's anchored-draw fraction.
func anchorY(va icon.VAlign) float64 {
	switch va {
	case icon.VTop:
		return 0
	case icon.VBottom:
		return 1
	default:
		return 0.5
	}
}
