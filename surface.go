package icon

// Axis identifies a plot axis.
type Axis int

const (
	// XAxis is the horizontal axis.
	XAxis Axis = iota
	// YAxis is the vertical axis.
	YAxis
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	default:
		return "unknown"
	}
}

// CoordUnit selects the unit of one coordinate component.
type CoordUnit int

const (
	// UnitData interprets the component in data coordinates.
	UnitData CoordUnit = iota

	// UnitAxesFraction interprets the component as a fraction of the
	// axes box: 0 is the left/bottom edge, 1 the right/top edge.
	UnitAxesFraction
)

// Coord is an anchor point whose components may use different units.
// Tick labels mix units: the tick position is a data coordinate while the
// axis edge is an axes fraction.
type Coord struct {
	X, Y         float64
	XUnit, YUnit CoordUnit
}

// DataCoord builds a plain data-coordinate anchor.
func DataCoord(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// HAlign selects horizontal alignment of a box or text relative to its
// anchor point.
type HAlign int

const (
	// HCenter centers on the anchor.
	HCenter HAlign = iota
	// HLeft puts the left edge at the anchor.
	HLeft
	// HRight puts the right edge at the anchor.
	HRight
)

// VAlign selects vertical alignment of a box or text relative to its
// anchor point.
type VAlign int

const (
	// VCenter centers on the anchor.
	VCenter VAlign = iota
	// VTop puts the top edge at the anchor (content hangs below).
	VTop
	// VBottom puts the bottom edge at the anchor (content sits above).
	VBottom
)

// GuideLine describes a connector from the anchor to the offset content.
// Shrink values are in points and pull the line ends away from, respectively,
// the anchor and the content box.
type GuideLine struct {
	ShrinkAnchor  float64
	ShrinkContent float64
}

// ImageOptions carries placement parameters for an image artist.
type ImageOptions struct {
	// Anchor is the point the image is aligned against.
	Anchor Coord

	// OffsetX, OffsetY displace the image from the anchor, in points.
	OffsetX, OffsetY float64

	// Scale multiplies the image's natural size. Zero means 1.
	Scale float64

	// HAlign, VAlign align the image box on the (offset) anchor.
	HAlign HAlign
	VAlign VAlign

	// Guide, when non-nil, requests a connector line from the anchor to
	// the image box.
	Guide *GuideLine
}

// TextOptions carries placement parameters for a text annotation.
type TextOptions struct {
	// Anchor is the point the text is aligned against.
	Anchor Coord

	// OffsetX, OffsetY displace the text from the anchor, in points.
	OffsetX, OffsetY float64

	// HAlign, VAlign align the text on the (offset) anchor.
	HAlign HAlign
	VAlign VAlign

	// ZOrder is the requested stacking position. Larger draws later.
	ZOrder int

	// Guide, when non-nil, requests a connector line from the anchor to
	// the text.
	Guide *GuideLine
}

// Surface is the external graphics collaborator that icons draw onto.
// Implementations append artists in increasing z-order; AddImage returns
// the z-order assigned to the image so callers can stack annotations
// relative to it. The surface's lifetime and synchronization belong to
// the caller.
type Surface interface {
	// AddImage places an image artist and returns its z-order.
	AddImage(img *Pixmap, opts ImageOptions) int

	// AddText places a text annotation.
	AddText(text string, opts TextOptions)
}
