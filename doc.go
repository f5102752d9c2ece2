// Package icon provides labeled image markers for 2D plotting surfaces.
//
// # Overview
//
// An Icon is a small RGBA bitmap, optionally combined with a text label,
// that is placed at a data coordinate or used in place of a numeric axis
// tick label. The package owns the full compositing pipeline that turns an
// arbitrary image source into the final bitmap: colormap application,
// square normalization, a radial aperture window (hard cut, raised cosine,
// or Tukey taper), and border padding. Actual drawing is delegated to an
// external Surface so the package works with any renderer.
//
// # Quick Start
//
//	import "github.com/gogpu/icon"
//
//	ic, err := icon.New(icon.Config{
//	    Image:        arr, // *icon.Array or *icon.Pixmap
//	    Label:        "V1",
//	    ColormapName: "viridis",
//	    ApertureCut:  icon.ApertureCosine,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ic.PlaceAt(surface, 3.5, 0.72)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Icon, Config, Pixmap, Array, Colormap, Mask, Surface
//   - recording: a Surface that captures placements as typed commands
//   - ggsurface: a Surface backed by a gogpu/gg drawing context
//
// # State Model
//
// Each Icon exclusively owns its configuration and its cached final image.
// Every successful Set recomputes the final image synchronously, so the
// cache is never stale. A failed Set leaves both untouched. Icons are not
// safe for concurrent use; the Surface passed to placement calls is assumed
// to be caller-synchronized.
package icon

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
