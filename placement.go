package icon

// PlaceOption configures a placement call.
//
// Example:
//
//	ic.PlaceAt(surface, 2.0, 0.5, icon.WithScale(0.4))
//	ic.TickLabel(surface, icon.XAxis, 3.0, icon.WithOffset(10))
type PlaceOption func(*placeOptions)

// placeOptions holds optional placement parameters.
type placeOptions struct {
	scale  float64
	offset float64
}

// defaultPlaceOptions returns the default placement parameters.
func defaultPlaceOptions() placeOptions {
	return placeOptions{
		scale:  1,
		offset: 7, // points between axis edge and tick label content
	}
}

// WithScale multiplies the icon image's natural size.
func WithScale(scale float64) PlaceOption {
	return func(o *placeOptions) {
		o.scale = scale
	}
}

// WithOffset sets the distance in points between an axis and its tick
// label content. Ignored by PlaceAt.
func WithOffset(points float64) PlaceOption {
	return func(o *placeOptions) {
		o.offset = points
	}
}

// anchorSpec is the resolved geometry shared by all placement modes:
// a point placement and both tick-label orientations differ only in
// anchor units, offsets, alignment, and the presence of a guide line.
type anchorSpec struct {
	anchor           Coord
	offsetX, offsetY float64
	hAlign           HAlign
	vAlign           VAlign
	guide            *GuideLine
}

// PlaceAt draws the icon centered at data coordinate (x, y): the image
// first, then the label strictly above it in draw order so the label
// stays legible. An icon with neither image nor label places nothing.
func (ic *Icon) PlaceAt(s Surface, x, y float64, opts ...PlaceOption) {
	o := defaultPlaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ic.place(s, anchorSpec{anchor: DataCoord(x, y)}, o.scale)
}

// TickLabel draws the icon as a tick label at position pos on the given
// axis. The content is offset perpendicular to the axis, outside the axes
// box, with a guide line from the tick to the content: flush at the tick
// end and backed off one point at the content end. X-axis labels hang
// below the axis, horizontally centered under the tick; y-axis labels sit
// left of the axis, right-aligned and vertically centered beside the tick.
func (ic *Icon) TickLabel(s Surface, axis Axis, pos float64, opts ...PlaceOption) {
	o := defaultPlaceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	guide := &GuideLine{ShrinkAnchor: 0, ShrinkContent: 1}
	spec := anchorSpec{guide: guide}
	switch axis {
	case YAxis:
		spec.anchor = Coord{X: 0, XUnit: UnitAxesFraction, Y: pos}
		spec.offsetX = -o.offset
		spec.hAlign = HRight
		spec.vAlign = VCenter
	default:
		spec.anchor = Coord{X: pos, Y: 0, YUnit: UnitAxesFraction}
		spec.offsetY = -o.offset
		spec.hAlign = HCenter
		spec.vAlign = VTop
	}
	ic.place(s, spec, o.scale)
}

// place is the single placement routine behind PlaceAt and TickLabel.
// The label's z-order is derived from the image's (image + 1), so adding
// an image keeps an existing label on top and removing the image keeps
// the label rendered.
func (ic *Icon) place(s Surface, spec anchorSpec, scale float64) {
	if ic.final == nil && ic.cfg.label == "" {
		return
	}

	zorder := 0
	if ic.final != nil {
		zorder = s.AddImage(ic.final, ImageOptions{
			Anchor:  spec.anchor,
			OffsetX: spec.offsetX,
			OffsetY: spec.offsetY,
			Scale:   scale,
			HAlign:  spec.hAlign,
			VAlign:  spec.vAlign,
			Guide:   spec.guide,
		})
	}
	if ic.cfg.label != "" {
		s.AddText(ic.cfg.label, TextOptions{
			Anchor:  spec.anchor,
			OffsetX: spec.offsetX,
			OffsetY: spec.offsetY,
			HAlign:  spec.hAlign,
			VAlign:  spec.vAlign,
			ZOrder:  zorder + 1,
			Guide:   spec.guide,
		})
	}
	Logger().Debug("icon placed",
		"anchor_x", spec.anchor.X, "anchor_y", spec.anchor.Y,
		"image", ic.final != nil, "label", ic.cfg.label != "")
}
