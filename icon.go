package icon

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New and Set.
var (
	// ErrInvalidParameter reports a configuration value outside its
	// allowed range, e.g. a numeric aperture cut outside [0, 1].
	ErrInvalidParameter = errors.New("icon: invalid parameter")

	// ErrUnsupportedImage reports image input the pipeline cannot
	// process: a malformed raw array or an unresolvable colormap name.
	ErrUnsupportedImage = errors.New("icon: unsupported image input")
)

// ImageSource is the tagged image input variant: either a raw numeric
// Array or a decoded Pixmap. Use FromImage to wrap an image.Image.
type ImageSource interface {
	imageSource()
}

// BorderType selects how the border color and width are applied.
type BorderType int

const (
	// BorderPad expands the canvas and fills the new ring with the
	// border color.
	BorderPad BorderType = iota
)

// ApertureCut configures the radial window applied to the icon image.
// The zero value means "not specified": New leaves masking off and Set
// keeps the previous setting.
type ApertureCut struct {
	set       bool
	threshold float64
}

// Symbolic aperture forms.
var (
	// ApertureHardCut clips to a circle with no taper (threshold 1).
	ApertureHardCut = ApertureCut{set: true, threshold: 1}

	// ApertureCosine applies a full-width raised-cosine taper from the
	// center to the edge (threshold 0).
	ApertureCosine = ApertureCut{set: true, threshold: 0}
)

// ApertureCutValue selects a Tukey window whose flat fraction is v.
// The mask is fully opaque inside normalized radius v and tapers with a
// raised cosine over (v, 1]. v must be in [0, 1]; validation happens at
// New or Set time. ApertureCutValue(0) equals ApertureCosine and
// ApertureCutValue(1) equals ApertureHardCut.
func ApertureCutValue(v float64) ApertureCut {
	return ApertureCut{set: true, threshold: v}
}

// Threshold returns the normalized flat radius and whether the cut is set.
func (a ApertureCut) Threshold() (float64, bool) {
	return a.threshold, a.set
}

// Config is a partial configuration update for an Icon. Zero-valued
// fields keep their previous value (or the default on New), so several
// fields can change in one Set call with a single recompute.
type Config struct {
	// Image is the icon's image source. Nil keeps the previous source;
	// an icon may have no image at all (text-only).
	Image ImageSource

	// Label is text drawn over the icon, independent of the image.
	Label string

	// Background is a fill color reserved for future border and
	// background use. Stored but not yet rendered.
	Background *RGBA

	// BorderColor enables border rendering when set.
	BorderColor *RGBA

	// Colormap maps single-channel array samples to colors. Ignored for
	// multi-channel input.
	Colormap Colormap

	// ColormapName resolves a registered colormap at Set time and takes
	// precedence over Colormap. See ColormapByName.
	ColormapName string

	// BorderType selects the border style. Defaults to BorderPad.
	BorderType *BorderType

	// BorderWidth is the border thickness in pixels. Defaults to 2.
	BorderWidth *int

	// MakeSquare resizes the image to max(width, height) on both axes
	// with nearest-neighbor sampling before masking.
	MakeSquare *bool

	// ApertureCut applies a radial alpha window to the image.
	ApertureCut ApertureCut
}

// settings is the resolved configuration owned by an Icon.
type settings struct {
	source      ImageSource
	label       string
	background  *RGBA
	borderColor *RGBA
	cmap        Colormap
	cmapName    string
	borderType  BorderType
	borderWidth int
	makeSquare  bool
	aperture    ApertureCut
}

// Icon is a labeled, optionally masked bitmap placeable at a plot
// coordinate or axis tick. It owns its configuration and a cached final
// image that is recomputed on every successful Set, so the cache is never
// stale. Icons are not safe for concurrent use.
type Icon struct {
	cfg   settings
	final *Pixmap
}

// New creates an Icon. Defaults: border type BorderPad, border width 2,
// everything else unset. The final image is computed before New returns.
func New(cfg Config) (*Icon, error) {
	ic := &Icon{
		cfg: settings{
			borderType:  BorderPad,
			borderWidth: 2,
		},
	}
	if err := ic.Set(cfg); err != nil {
		return nil, err
	}
	return ic, nil
}

// Set merges a partial configuration update and recomputes the final
// image. Set is transactional: on error the previous configuration and
// final image are left untouched. Calling Set twice with the same update
// is idempotent.
func (ic *Icon) Set(cfg Config) error {
	next := ic.cfg

	if cfg.Image != nil {
		next.source = cfg.Image
	}
	if cfg.Label != "" {
		next.label = cfg.Label
	}
	if cfg.Background != nil {
		next.background = cfg.Background
	}
	if cfg.BorderColor != nil {
		next.borderColor = cfg.BorderColor
	}
	if cfg.ColormapName != "" {
		cm, err := ColormapByName(cfg.ColormapName)
		if err != nil {
			return err
		}
		next.cmap = cm
		next.cmapName = cfg.ColormapName
	} else if cfg.Colormap != nil {
		next.cmap = cfg.Colormap
		next.cmapName = ""
	}
	if cfg.BorderType != nil {
		next.borderType = *cfg.BorderType
	}
	if cfg.BorderWidth != nil {
		if *cfg.BorderWidth < 0 {
			return fmt.Errorf("icon: border width %d must not be negative: %w",
				*cfg.BorderWidth, ErrInvalidParameter)
		}
		next.borderWidth = *cfg.BorderWidth
	}
	if cfg.MakeSquare != nil {
		next.makeSquare = *cfg.MakeSquare
	}
	if cfg.ApertureCut.set {
		if cfg.ApertureCut.threshold < 0 || cfg.ApertureCut.threshold > 1 {
			return fmt.Errorf("icon: aperture cut %v must be in [0,1]: %w",
				cfg.ApertureCut.threshold, ErrInvalidParameter)
		}
		next.aperture = cfg.ApertureCut
	}

	final, err := recompute(next)
	if err != nil {
		return err
	}

	ic.cfg = next
	ic.final = final
	if final != nil {
		Logger().Debug("icon recomputed",
			"width", final.Width(), "height", final.Height())
	}
	return nil
}

// FinalImage returns the cached final image, or nil for a text-only icon.
// The pixmap is owned by the Icon; callers must treat it as read-only.
func (ic *Icon) FinalImage() *Pixmap {
	return ic.final
}

// Label returns the icon's label text.
func (ic *Icon) Label() string {
	return ic.cfg.label
}

// recompute derives the final image from a resolved configuration. It is
// a pure function of its input: nothing is published on error.
func recompute(cfg settings) (*Pixmap, error) {
	if cfg.source == nil {
		return nil, nil
	}

	var img *Pixmap
	switch src := cfg.source.(type) {
	case *Array:
		img = src.pixmap(cfg.cmap)
	case *Pixmap:
		// Clone so the pipeline never mutates caller-owned pixels.
		img = src.Clone()
	default:
		return nil, fmt.Errorf("icon: image source %T: %w", cfg.source, ErrUnsupportedImage)
	}

	if cfg.makeSquare {
		if side := max(img.Width(), img.Height()); side != img.Width() || side != img.Height() {
			img = img.ResizeNearest(side, side)
		}
	}

	if t, ok := cfg.aperture.Threshold(); ok {
		img.MulAlpha(ApertureMask(img.Width(), img.Height(), t))
	}

	if cfg.borderColor != nil && cfg.borderType == BorderPad {
		fill := *cfg.borderColor
		fill.A = 1
		img = img.Pad(cfg.borderWidth, fill)
	}

	return img, nil
}
