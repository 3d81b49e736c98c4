package loom

import (
	"image/color"
	"testing"

	"github.com/golang/freetype/raster"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		style string
		want  color.RGBA
	}{
		{"#F00", color.RGBA{R: 0xFF, A: 0xFF}},
		{"#9999", color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x99}},
		{"#DAD2BC", color.RGBA{R: 0xDA, G: 0xD2, B: 0xBC, A: 0xFF}},
		{"#25232388", color.RGBA{R: 0x25, G: 0x23, B: 0x23, A: 0x88}},
		{"#FFFFFF70", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x70}},
		// Unparseable styles fall back to opaque black.
		{"bogus", color.RGBA{A: 0xFF}},
	}
	for _, c := range cases {
		if got := parseHexColor(c.style); got != c.want {
			t.Errorf("parseHexColor(%q) = %+v, want %+v", c.style, got, c.want)
		}
	}
}

func TestFixedPointConversion(t *testing.T) {
	if fix(1.5) != 96 {
		t.Errorf("fix(1.5) = %d, want 96", fix(1.5))
	}
	p := fixp(Pt(2, -1))
	if p.X != 128 || p.Y != -64 {
		t.Errorf("fixp(2,-1) = %v", p)
	}
}

func TestOffsetPath(t *testing.T) {
	var p raster.Path
	p.Start(fixp(Pt(1, 1)))
	p.Add1(fixp(Pt(5, 1)))
	p.Add2(fixp(Pt(7, 1)), fixp(Pt(7, 3)))

	out := offsetPath(p, fix(2), fix(3))

	var want raster.Path
	want.Start(fixp(Pt(3, 4)))
	want.Add1(fixp(Pt(7, 4)))
	want.Add2(fixp(Pt(9, 4)), fixp(Pt(9, 6)))

	if len(out) != len(want) {
		t.Fatalf("offset path length = %d, want %d", len(out), len(want))
	}
	for i := range out {
		if out[i] != want[i] {
			t.Errorf("path[%d] = %d, want %d", i, out[i], want[i])
		}
	}
	// The input is untouched.
	if p[1] != fix(1) {
		t.Error("offsetPath mutated its input")
	}
}

func TestPaintTransformRestore(t *testing.T) {
	pc := NewPaint(100, 100)
	m := Translation(Vec(30, 40)).Mul(Rotation(0.5, Pt(10, 10)))
	pc.Transform(m)
	pc.Transform(m.Inverse())
	if !pc.xform.ApproxEq(Identity, 1e-9) {
		t.Errorf("transform after restore = %+v", pc.xform)
	}

	pc.Translate(Vec(5, 6))
	pc.Scale(2)
	pc.Rotate(1)
	pc.Rotate(-1)
	pc.Scale(0.5)
	pc.Translate(Vec(-5, -6))
	if !pc.xform.ApproxEq(Identity, 1e-9) {
		t.Errorf("transform after paired ops = %+v", pc.xform)
	}
}

func TestStrokeWidthScalesWithTransform(t *testing.T) {
	pc := NewPaint(100, 100)
	pc.SetLineWidth(3)
	pc.Scale(2)
	if got := pc.strokeWidth(); got != fix(6) {
		t.Errorf("strokeWidth = %d, want %d", got, fix(6))
	}
}

func TestIsRectInScreen(t *testing.T) {
	pc := NewPaint(100, 100)

	if !pc.IsRectInScreen(NewRect(10, 10, 50, 50)) {
		t.Error("on-screen rect reported off screen")
	}
	if pc.IsRectInScreen(NewRect(200, 200, 300, 300)) {
		t.Error("off-screen rect reported on screen")
	}

	// The transform moves it into view.
	pc.Translate(Vec(-190, -190))
	if !pc.IsRectInScreen(NewRect(200, 200, 300, 300)) {
		t.Error("translated rect reported off screen")
	}
}

func TestStrokePaintsPixels(t *testing.T) {
	pc := NewPaint(50, 50)
	pc.Clear("#000")
	pc.SetStrokeStyle("#FFF")
	pc.SetLineWidth(4)

	pc.BeginPath()
	pc.MoveTo(Pt(10, 25))
	pc.LineTo(Pt(40, 25))
	pc.Stroke()

	if got := pc.Image().RGBAAt(25, 25); got.R == 0 {
		t.Errorf("pixel on the stroke = %+v, want bright", got)
	}
	if got := pc.Image().RGBAAt(25, 5); got.R != 0 {
		t.Errorf("pixel away from the stroke = %+v, want black", got)
	}
}

func TestFillClosesOpenSubpath(t *testing.T) {
	pc := NewPaint(50, 50)
	pc.Clear("#000")
	pc.SetFillStyle("#FFF")

	// Three edges of a square; the fill closes the fourth.
	pc.BeginPath()
	pc.MoveTo(Pt(10, 10))
	pc.LineTo(Pt(40, 10))
	pc.LineTo(Pt(40, 40))
	pc.LineTo(Pt(10, 40))
	pc.Fill()

	if got := pc.Image().RGBAAt(25, 25); got.R == 0 {
		t.Errorf("pixel inside the fill = %+v, want bright", got)
	}
	if got := pc.Image().RGBAAt(5, 25); got.R != 0 {
		t.Errorf("pixel outside the fill = %+v, want black", got)
	}
}

func TestShadowPaintFadesWithBlur(t *testing.T) {
	pc := NewPaint(10, 10)
	pc.SetShadowColor("#FFFFFF")
	pc.SetShadowBlur(4)
	got := pc.shadowPaint()
	if got.A != 127 {
		t.Errorf("shadow alpha = %d, want 127", got.A)
	}

	pc.SetShadowBlur(0)
	pc.SetShadowOffset(0, 0)
	if pc.shadowActive() {
		t.Error("shadow active with no blur and no offset")
	}
	pc.SetShadowOffset(0, 5)
	if !pc.shadowActive() {
		t.Error("shadow inactive with an offset set")
	}
}

func TestClearResetsFrameState(t *testing.T) {
	pc := NewPaint(20, 20)
	pc.Translate(Vec(5, 5))
	pc.BeginPath()
	pc.MoveTo(Pt(0, 0))
	pc.LineTo(Pt(10, 10))

	pc.Clear("#FF0000")

	if !pc.xform.ApproxEq(Identity, 1e-12) {
		t.Errorf("transform after Clear = %+v", pc.xform)
	}
	if len(pc.strokePath) != 0 || len(pc.fillPath) != 0 {
		t.Error("path survived Clear")
	}
	got := pc.Image().RGBAAt(10, 10)
	if got.R != 0xFF || got.G != 0 || got.B != 0 {
		t.Errorf("pixel after Clear = %+v, want red", got)
	}
}

func TestFillTextPaintsNearAnchor(t *testing.T) {
	pc := NewPaint(60, 40)
	pc.Clear("#000")
	pc.SetFillStyle("#FFF")
	pc.FillText("X", Pt(10, 20))

	found := false
	for y := 5; y < 25 && !found; y++ {
		for x := 8; x < 25 && !found; x++ {
			if pc.Image().RGBAAt(x, y).R > 0 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no pixels painted near the text anchor")
	}
}
