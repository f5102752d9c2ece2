package icon

import (
	"fmt"
	"sort"
)

// Colormap maps a scalar intensity in [0, 1] to a color.
// Inputs outside [0, 1] are clamped.
type Colormap func(v float64) RGBA

// ColorStop represents a color at a specific position in a colormap.
type ColorStop struct {
	Offset float64 // Position in colormap, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// StopsColormap builds a colormap from color stops by linear interpolation.
// Stops are sorted by offset; at least one stop is required, and a
// single-stop map is constant.
func StopsColormap(stops ...ColorStop) Colormap {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return func(v float64) RGBA {
		v = clamp01(v)
		if len(sorted) == 0 {
			return Black
		}
		if v <= sorted[0].Offset {
			return sorted[0].Color
		}
		last := sorted[len(sorted)-1]
		if v >= last.Offset {
			return last.Color
		}
		for i := 1; i < len(sorted); i++ {
			if v <= sorted[i].Offset {
				lo, hi := sorted[i-1], sorted[i]
				span := hi.Offset - lo.Offset
				if span == 0 {
					return hi.Color
				}
				return lo.Color.Lerp(hi.Color, (v-lo.Offset)/span)
			}
		}
		return last.Color
	}
}

// Built-in colormaps. Viridis and Magma use anchor colors sampled from the
// reference perceptually-uniform tables; the remaining maps are exact.
var (
	// Gray maps intensity to the matching gray level.
	Gray = StopsColormap(
		ColorStop{0, Black},
		ColorStop{1, White},
	)

	// Viridis is the perceptually-uniform purple-green-yellow map.
	Viridis = StopsColormap(
		ColorStop{0.00, Hex("440154")},
		ColorStop{0.25, Hex("3b528b")},
		ColorStop{0.50, Hex("21918c")},
		ColorStop{0.75, Hex("5ec962")},
		ColorStop{1.00, Hex("fde725")},
	)

	// Magma is the perceptually-uniform black-purple-yellow map.
	Magma = StopsColormap(
		ColorStop{0.00, Hex("000004")},
		ColorStop{0.25, Hex("51127c")},
		ColorStop{0.50, Hex("b73779")},
		ColorStop{0.75, Hex("fc8961")},
		ColorStop{1.00, Hex("fcfdbf")},
	)

	// Hot ramps black through red and yellow to white.
	Hot = StopsColormap(
		ColorStop{0.0, Black},
		ColorStop{1.0 / 3, Red},
		ColorStop{2.0 / 3, Yellow},
		ColorStop{1.0, White},
	)

	// Cool blends cyan to magenta.
	Cool = StopsColormap(
		ColorStop{0, Cyan},
		ColorStop{1, Magenta},
	)

	// Jet is the classic blue-cyan-yellow-red rainbow map.
	Jet = StopsColormap(
		ColorStop{0.000, Hex("000080")},
		ColorStop{0.125, Blue},
		ColorStop{0.375, Cyan},
		ColorStop{0.625, Yellow},
		ColorStop{0.875, Red},
		ColorStop{1.000, Hex("800000")},
	)
)

// colormaps is the registry behind ColormapByName.
var colormaps = map[string]Colormap{
	"gray":    Gray,
	"grey":    Gray,
	"viridis": Viridis,
	"magma":   Magma,
	"hot":     Hot,
	"cool":    Cool,
	"jet":     Jet,
}

// ColormapByName resolves a registered colormap by name.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("icon: unknown colormap %q: %w", name, ErrUnsupportedImage)
	}
	return cm, nil
}

// RegisterColormap adds or replaces a named colormap.
// Registration is meant for program initialization and is not synchronized.
func RegisterColormap(name string, cm Colormap) {
	colormaps[name] = cm
}
