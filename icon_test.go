package icon

import (
	"bytes"
	"errors"
	"testing"
)

func solidPixmap(w, h int, c RGBA) *Pixmap {
	p := NewPixmap(w, h)
	p.Fill(c)
	return p
}

func TestNew_IdentityTransform(t *testing.T) {
	// An opaque square image with no squaring, masking or border must
	// pass through the pipeline unchanged.
	src := solidPixmap(4, 4, RGBA{0.2, 0.4, 0.6, 1})
	ic, err := New(Config{Image: src})
	if err != nil {
		t.Fatal(err)
	}
	final := ic.FinalImage()
	if final == nil {
		t.Fatal("FinalImage is nil")
	}
	if !bytes.Equal(final.Data(), src.Data()) {
		t.Error("final image differs from source")
	}
	// The cached image is a copy, not an alias of the caller's pixmap.
	src.Fill(Black)
	if bytes.Equal(final.Data(), src.Data()) {
		t.Error("final image aliases the caller's pixmap")
	}
}

func TestNew_TextOnly(t *testing.T) {
	ic, err := New(Config{Label: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if ic.FinalImage() != nil {
		t.Error("text-only icon should have no final image")
	}
	if ic.Label() != "A" {
		t.Errorf("label = %q, want %q", ic.Label(), "A")
	}
}

func TestSet_InvalidApertureIsTransactional(t *testing.T) {
	ic, err := New(Config{Image: solidPixmap(4, 4, White)})
	if err != nil {
		t.Fatal(err)
	}
	before := append([]uint8(nil), ic.FinalImage().Data()...)

	for _, v := range []float64{-0.1, 1.5} {
		err := ic.Set(Config{ApertureCut: ApertureCutValue(v)})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Set(aperture=%v) = %v, want ErrInvalidParameter", v, err)
		}
		if !bytes.Equal(ic.FinalImage().Data(), before) {
			t.Errorf("Set(aperture=%v) mutated the final image", v)
		}
	}
}

func TestSet_UnknownColormapKeepsPriorImage(t *testing.T) {
	ic, err := New(Config{Image: solidPixmap(3, 3, Red)})
	if err != nil {
		t.Fatal(err)
	}
	before := append([]uint8(nil), ic.FinalImage().Data()...)

	err = ic.Set(Config{ColormapName: "no-such-map"})
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Set = %v, want ErrUnsupportedImage", err)
	}
	if !bytes.Equal(ic.FinalImage().Data(), before) {
		t.Error("failed Set mutated the final image")
	}
}

func TestSet_NegativeBorderWidth(t *testing.T) {
	w := -1
	_, err := New(Config{Image: solidPixmap(2, 2, White), BorderWidth: &w})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("New = %v, want ErrInvalidParameter", err)
	}
}

func TestApertureSymbolicForms(t *testing.T) {
	build := func(cut ApertureCut) []uint8 {
		ic, err := New(Config{
			Image:       solidPixmap(8, 8, White),
			ApertureCut: cut,
		})
		if err != nil {
			t.Fatal(err)
		}
		return ic.FinalImage().Data()
	}

	if !bytes.Equal(build(ApertureHardCut), build(ApertureCutValue(1))) {
		t.Error("hard cut and numeric 1 produce different masks")
	}
	if !bytes.Equal(build(ApertureCosine), build(ApertureCutValue(0))) {
		t.Error("cosine and numeric 0 produce different masks")
	}
	if bytes.Equal(build(ApertureHardCut), build(ApertureCosine)) {
		t.Error("hard cut and cosine should differ")
	}
}

func TestAperturePreservesSourceTransparency(t *testing.T) {
	// A source pixel that is already half-transparent stays at half after
	// an opaque-mask region multiplies into it.
	src := solidPixmap(5, 5, RGBA{1, 1, 1, 0.5})
	ic, err := New(Config{
		Image:       src,
		ApertureCut: ApertureCutValue(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	if a := ic.FinalImage().GetPixel(2, 2).A; a > 0.51 || a < 0.49 {
		t.Errorf("center alpha = %v, want 0.5", a)
	}
}

func TestBorderPad(t *testing.T) {
	w := 3
	ic, err := New(Config{
		Image:       solidPixmap(4, 4, White),
		BorderColor: &Blue,
		BorderWidth: &w,
	})
	if err != nil {
		t.Fatal(err)
	}
	final := ic.FinalImage()
	if final.Width() != 10 || final.Height() != 10 {
		t.Fatalf("expected 10x10, got %dx%d", final.Width(), final.Height())
	}
	if got := final.GetPixel(0, 0); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("border pixel = %v, want blue", got)
	}
	if got := final.GetPixel(0, 0).A; got != 1 {
		t.Errorf("border alpha = %v, want 1", got)
	}
	if got := final.GetPixel(5, 5); !colorsEqual(got, White, colorEpsilon) {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestBorderPad_DefaultWidth(t *testing.T) {
	// Border width defaults to 2 when never specified.
	ic, err := New(Config{
		Image:       solidPixmap(4, 4, White),
		BorderColor: &Red,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := ic.FinalImage().Width(); got != 8 {
		t.Errorf("width = %d, want 8", got)
	}
}

func TestMakeSquare(t *testing.T) {
	p := NewPixmap(2, 6)
	for y := 0; y < 6; y++ {
		p.SetPixel(0, y, Black)
		p.SetPixel(1, y, White)
	}
	yes := true
	ic, err := New(Config{Image: p, MakeSquare: &yes})
	if err != nil {
		t.Fatal(err)
	}
	final := ic.FinalImage()
	if final.Width() != 6 || final.Height() != 6 {
		t.Fatalf("expected 6x6, got %dx%d", final.Width(), final.Height())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c := final.GetPixel(x, y)
			if c != Black && c != White {
				t.Fatalf("pixel (%d,%d) = %v outside source palette", x, y, c)
			}
		}
	}
}

func TestSet_PartialUpdateKeepsPreviousFields(t *testing.T) {
	ic, err := New(Config{
		Image: solidPixmap(4, 4, White),
		Label: "V1",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Updating an unrelated field keeps the label and the image.
	if err := ic.Set(Config{ApertureCut: ApertureCosine}); err != nil {
		t.Fatal(err)
	}
	if ic.Label() != "V1" {
		t.Errorf("label = %q, want %q", ic.Label(), "V1")
	}
	if ic.FinalImage() == nil {
		t.Error("image lost on partial update")
	}
}

func TestSet_Idempotent(t *testing.T) {
	ic, err := New(Config{
		Image:       solidPixmap(6, 6, White),
		ApertureCut: ApertureCutValue(0.5),
	})
	if err != nil {
		t.Fatal(err)
	}
	first := append([]uint8(nil), ic.FinalImage().Data()...)

	if err := ic.Set(Config{ApertureCut: ApertureCutValue(0.5)}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, ic.FinalImage().Data()) {
		t.Error("identical Set changed the final image")
	}
}

func TestSet_ArrayWithColormapName(t *testing.T) {
	a, err := GrayArray(2, 2, []float64{0, 0.25, 0.75, 1})
	if err != nil {
		t.Fatal(err)
	}
	ic, err := New(Config{Image: a, ColormapName: "cool"})
	if err != nil {
		t.Fatal(err)
	}
	final := ic.FinalImage()
	if got := final.GetPixel(0, 0); !colorsEqual(got, Cyan, colorEpsilon) {
		t.Errorf("pixel (0,0) = %v, want cyan", got)
	}
	if got := final.GetPixel(1, 1); !colorsEqual(got, Magenta, colorEpsilon) {
		t.Errorf("pixel (1,1) = %v, want magenta", got)
	}
}

func TestFullPipelineOrder(t *testing.T) {
	// Square resize happens before masking, border padding after: a 2x6
	// source with squaring, hard cut and a 1px border lands at 8x8 with
	// transparent corners just inside an opaque border ring.
	p := solidPixmap(2, 6, White)
	yes := true
	w := 1
	ic, err := New(Config{
		Image:       p,
		MakeSquare:  &yes,
		ApertureCut: ApertureHardCut,
		BorderColor: &Black,
		BorderWidth: &w,
	})
	if err != nil {
		t.Fatal(err)
	}
	final := ic.FinalImage()
	if final.Width() != 8 || final.Height() != 8 {
		t.Fatalf("expected 8x8, got %dx%d", final.Width(), final.Height())
	}
	// Border ring stays opaque even where the mask cut the image.
	if got := final.GetPixel(0, 0); !colorsEqual(got, Black, colorEpsilon) {
		t.Errorf("border pixel = %v, want black", got)
	}
	// The masked image corner inside the ring is fully transparent.
	if a := final.GetPixel(1, 1).A; a != 0 {
		t.Errorf("masked corner alpha = %v, want 0", a)
	}
	// The image center stays opaque white.
	if got := final.GetPixel(4, 4); !colorsEqual(got, White, colorEpsilon) {
		t.Errorf("center pixel = %v, want white", got)
	}
}
