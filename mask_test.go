package icon

import (
	"math"
	"testing"
)

func TestNewMask(t *testing.T) {
	m := NewMask(10, 10)
	if m.Width() != 10 || m.Height() != 10 {
		t.Errorf("expected 10x10, got %dx%d", m.Width(), m.Height())
	}
	if m.At(5, 5) != 0 {
		t.Errorf("expected 0, got %d", m.At(5, 5))
	}
}

func TestMaskBounds(t *testing.T) {
	m := NewMask(10, 10)
	if m.At(-1, 5) != 0 || m.At(10, 5) != 0 || m.At(5, -1) != 0 || m.At(5, 10) != 0 {
		t.Error("out-of-bounds At should return 0")
	}
	m.Set(-1, 5, 255) // ignored
	if m.At(-1, 5) != 0 {
		t.Error("out-of-bounds Set should be ignored")
	}
}

func TestApertureMask_FourByFour(t *testing.T) {
	// 4x4 grid, threshold 0.5: per-axis normalized centers are at
	// +/-1/3 and +/-1.
	m := ApertureMask(4, 4, 0.5)

	// Inner pixels sit at r = sqrt(2)/3 ~ 0.47 <= 0.5: fully opaque.
	for _, xy := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		if got := m.At(xy[0], xy[1]); got != 255 {
			t.Errorf("center pixel (%d,%d) = %d, want 255", xy[0], xy[1], got)
		}
	}

	// Corner pixels sit at r = sqrt(2) > 1: fully transparent.
	for _, xy := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}} {
		if got := m.At(xy[0], xy[1]); got != 0 {
			t.Errorf("corner pixel (%d,%d) = %d, want 0", xy[0], xy[1], got)
		}
	}
}

func TestApertureMask_TaperValue(t *testing.T) {
	// On a 9x1 grid the pixel at index 7 has normalized radius exactly
	// 0.75. With threshold 0.5 the raised cosine gives
	// 0.5 + 0.5*cos(pi*0.25/0.5) = 0.5.
	m := ApertureMask(9, 1, 0.5)
	want := uint8(math.Round(0.5 * 255))
	if got := m.At(7, 0); got != want {
		t.Errorf("taper value = %d, want %d", got, want)
	}
}

func TestApertureMask_MonotoneNonIncreasing(t *testing.T) {
	// Along a single row, the mask value must never increase as the
	// normalized radius grows, for any threshold.
	for _, threshold := range []float64{0, 0.25, 0.5, 0.75, 1} {
		m := ApertureMask(101, 1, threshold)
		// Walk outward from the center of the row.
		for x := 51; x < 101; x++ {
			if m.At(x, 0) > m.At(x-1, 0) {
				t.Fatalf("threshold %v: mask increased from x=%d (%d) to x=%d (%d)",
					threshold, x-1, m.At(x-1, 0), x, m.At(x, 0))
			}
		}
	}
}

func TestApertureMask_Endpoints(t *testing.T) {
	// r -> 0 gives full opacity, r = 1 gives full transparency for any
	// threshold below 1.
	for _, threshold := range []float64{0, 0.3, 0.99} {
		m := ApertureMask(101, 101, threshold)
		if got := m.At(50, 50); got != 255 {
			t.Errorf("threshold %v: center = %d, want 255", threshold, got)
		}
		// (0, 50) sits at exactly r = 1 on the x axis.
		edge := m.At(0, 50)
		want := 0.5 + 0.5*math.Cos(math.Pi)
		if math.Abs(float64(edge)/255-want) > 0.01 {
			t.Errorf("threshold %v: edge = %d, want ~0", threshold, edge)
		}
	}
}

func TestApertureMask_HardCut(t *testing.T) {
	// threshold == 1 degenerates to a step: everything with r <= 1 is
	// fully opaque, and nothing divides by zero.
	m := ApertureMask(9, 1, 1)
	for x := 0; x < 9; x++ {
		if got := m.At(x, 0); got != 255 {
			t.Errorf("pixel %d = %d, want 255", x, got)
		}
	}

	// On a square grid the corners are beyond r = 1 and drop to zero.
	sq := ApertureMask(8, 8, 1)
	if got := sq.At(0, 0); got != 0 {
		t.Errorf("corner = %d, want 0", got)
	}
	if got := sq.At(4, 4); got != 255 {
		t.Errorf("inner pixel = %d, want 255", got)
	}
}

func TestApertureMask_CutMatchesCosineLimits(t *testing.T) {
	// threshold 1 equals the hard-cut symbolic form and threshold 0 the
	// cosine form; spot-check that the two extremes differ inside the
	// taper band.
	hard := ApertureMask(16, 16, 1)
	cos := ApertureMask(16, 16, 0)
	if hard.At(8, 8) != 255 || cos.At(8, 8) == 0 {
		t.Error("unexpected center values")
	}
	// Halfway out, the cosine window is already well below the hard cut.
	if !(cos.At(10, 8) < hard.At(10, 8)) {
		t.Errorf("cosine (%d) should be below hard cut (%d) inside the taper",
			cos.At(10, 8), hard.At(10, 8))
	}
}

func TestApertureMask_OnePixelAxis(t *testing.T) {
	// A 1-pixel axis has no extent to normalize; it must not divide by
	// zero and its coordinate is treated as 0.
	m := ApertureMask(1, 1, 0.5)
	if got := m.At(0, 0); got != 255 {
		t.Errorf("1x1 mask = %d, want 255", got)
	}
}
