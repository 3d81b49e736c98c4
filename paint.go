package loom

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"strings"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Paint is the built-in software Canvas: it rasterizes paths into an RGBA
// image with the freetype rasterizer. Points are transformed into screen
// space as they are added to the path, so the current transform only needs
// to be right at emission time.
//
// Shadows are approximated as a single offset pass in the shadow color with
// blur-derived translucency; there is no gaussian blur.
type Paint struct {
	img    *image.RGBA
	bounds image.Rectangle

	strokePath raster.Path
	fillPath   raster.Path
	start      Point
	current    Point
	hasCurrent bool

	xform Matrix

	fillColor     color.RGBA
	strokeColor   color.RGBA
	shadowColor   color.RGBA
	lineWidth     float64
	lineCap       string
	shadowBlur    float64
	shadowOffsetX float64
	shadowOffsetY float64
	fontSpec      string
}

var _ Canvas = (*Paint)(nil)

// NewPaint returns a canvas rasterizing into a fresh width x height image.
func NewPaint(width, height int) *Paint {
	return &Paint{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		bounds:      image.Rect(0, 0, width, height),
		xform:       Identity,
		fillColor:   color.RGBA{A: 0xFF},
		strokeColor: color.RGBA{A: 0xFF},
		lineWidth:   1,
		lineCap:     "butt",
	}
}

// Image returns the backing image.
func (pc *Paint) Image() *image.RGBA {
	return pc.img
}

// Size returns the canvas dimensions in pixels.
func (pc *Paint) Size() (width, height int) {
	return pc.bounds.Dx(), pc.bounds.Dy()
}

// Clear fills the whole image with the given style and resets the path and
// transform for a new frame. Sticky paint state survives; frames set the
// styles they need anyway.
func (pc *Paint) Clear(style string) {
	draw.Draw(pc.img, pc.bounds, image.NewUniform(parseHexColor(style)), image.Point{}, draw.Src)
	pc.strokePath.Clear()
	pc.fillPath.Clear()
	pc.hasCurrent = false
	pc.xform = Identity
}

// --- Path building ---

// BeginPath implements Canvas.
func (pc *Paint) BeginPath() {
	pc.strokePath.Clear()
	pc.fillPath.Clear()
	pc.hasCurrent = false
}

// MoveTo implements Canvas.
func (pc *Paint) MoveTo(p Point) {
	if pc.hasCurrent {
		pc.fillPath.Add1(fixp(pc.start))
	}
	tp := p.Transform(pc.xform)
	pc.strokePath.Start(fixp(tp))
	pc.fillPath.Start(fixp(tp))
	pc.start = tp
	pc.current = tp
	pc.hasCurrent = true
}

// LineTo implements Canvas.
func (pc *Paint) LineTo(p Point) {
	if !pc.hasCurrent {
		pc.MoveTo(p)
		return
	}
	tp := p.Transform(pc.xform)
	pc.strokePath.Add1(fixp(tp))
	pc.fillPath.Add1(fixp(tp))
	pc.current = tp
}

// QuadraticCurveTo implements Canvas.
func (pc *Paint) QuadraticCurveTo(ctrl, end Point) {
	if !pc.hasCurrent {
		pc.MoveTo(ctrl)
	}
	p1 := ctrl.Transform(pc.xform)
	p2 := end.Transform(pc.xform)
	pc.strokePath.Add2(fixp(p1), fixp(p2))
	pc.fillPath.Add2(fixp(p1), fixp(p2))
	pc.current = p2
}

// ClosePath implements Canvas.
func (pc *Paint) ClosePath() {
	if pc.hasCurrent {
		pc.strokePath.Add1(fixp(pc.start))
		pc.fillPath.Add1(fixp(pc.start))
		pc.current = pc.start
	}
}

// --- Painting ---

func (pc *Paint) capper() raster.Capper {
	switch pc.lineCap {
	case "round":
		return raster.RoundCapper
	case "square":
		return raster.SquareCapper
	}
	return raster.ButtCapper
}

// strokeWidth is the device-space line width: the configured width scaled
// by the transform's average scale factor, so strokes thicken with zoom.
func (pc *Paint) strokeWidth() fixed.Int26_6 {
	scale := math.Sqrt(math.Abs(pc.xform.Determinant()))
	return fix(pc.lineWidth * scale)
}

// shadowActive reports whether the current shadow state paints anything.
func (pc *Paint) shadowActive() bool {
	return pc.shadowColor.A > 0 && (pc.shadowBlur > 0 || pc.shadowOffsetX != 0 || pc.shadowOffsetY != 0)
}

// shadowPaint derives the shadow pass color: heavier blur fades the pass.
func (pc *Paint) shadowPaint() color.RGBA {
	c := pc.shadowColor
	fade := 1 / (1 + pc.shadowBlur/4)
	c.A = uint8(float64(c.A) * fade)
	return c
}

func (pc *Paint) rasterizeStroke(path raster.Path, col color.RGBA) {
	painter := raster.NewRGBAPainter(pc.img)
	painter.SetColor(col)
	sz := pc.bounds.Size()
	r := raster.NewRasterizer(sz.X, sz.Y)
	r.UseNonZeroWinding = true
	r.AddStroke(path, pc.strokeWidth(), pc.capper(), raster.RoundJoiner)
	r.Rasterize(painter)
}

func (pc *Paint) rasterizeFill(path raster.Path, col color.RGBA) {
	if pc.hasCurrent {
		closed := make(raster.Path, len(path), len(path)+4)
		copy(closed, path)
		closed.Add1(fixp(pc.start))
		path = closed
	}
	painter := raster.NewRGBAPainter(pc.img)
	painter.SetColor(col)
	sz := pc.bounds.Size()
	r := raster.NewRasterizer(sz.X, sz.Y)
	r.UseNonZeroWinding = true
	r.AddPath(path)
	r.Rasterize(painter)
}

// Stroke implements Canvas. The path is preserved so a following Fill can
// reuse it.
func (pc *Paint) Stroke() {
	if pc.shadowActive() {
		shifted := offsetPath(pc.strokePath, fix(pc.shadowOffsetX), fix(pc.shadowOffsetY))
		pc.rasterizeStroke(shifted, pc.shadowPaint())
	}
	pc.rasterizeStroke(pc.strokePath, pc.strokeColor)
}

// Fill implements Canvas. Open subpaths are implicitly closed; the path is
// preserved.
func (pc *Paint) Fill() {
	if pc.shadowActive() {
		shifted := offsetPath(pc.fillPath, fix(pc.shadowOffsetX), fix(pc.shadowOffsetY))
		pc.rasterizeFill(shifted, pc.shadowPaint())
	}
	pc.rasterizeFill(pc.fillPath, pc.fillColor)
}

// FillText implements Canvas. The anchor is transformed; glyphs themselves
// are not scaled or rotated (fixed-size bitmap face).
func (pc *Paint) FillText(text string, p Point) {
	tp := p.Transform(pc.xform)
	d := font.Drawer{
		Dst:  pc.img,
		Src:  image.NewUniform(pc.fillColor),
		Face: basicfont.Face7x13,
		Dot:  fixp(tp),
	}
	d.DrawString(text)
}

// --- Style state ---

// SetFillStyle implements Canvas.
func (pc *Paint) SetFillStyle(style string) { pc.fillColor = parseHexColor(style) }

// SetStrokeStyle implements Canvas.
func (pc *Paint) SetStrokeStyle(style string) { pc.strokeColor = parseHexColor(style) }

// SetLineWidth implements Canvas.
func (pc *Paint) SetLineWidth(width float64) { pc.lineWidth = width }

// SetLineCap implements Canvas.
func (pc *Paint) SetLineCap(cap string) { pc.lineCap = cap }

// SetShadowColor implements Canvas.
func (pc *Paint) SetShadowColor(c string) { pc.shadowColor = parseHexColor(c) }

// SetShadowBlur implements Canvas.
func (pc *Paint) SetShadowBlur(blur float64) { pc.shadowBlur = blur }

// SetShadowOffset implements Canvas.
func (pc *Paint) SetShadowOffset(x, y float64) {
	pc.shadowOffsetX = x
	pc.shadowOffsetY = y
}

// SetFont implements Canvas. Only recorded; the bitmap face is fixed.
func (pc *Paint) SetFont(f string) { pc.fontSpec = f }

// --- Transform state ---

// Transform implements Canvas: m applies before the existing transform, so
// a later Transform with m's inverse restores the previous state exactly.
func (pc *Paint) Transform(m Matrix) {
	pc.xform = m.Mul(pc.xform)
}

// Translate implements Canvas.
func (pc *Paint) Translate(v Vec2) {
	pc.Transform(Translation(v))
}

// Scale implements Canvas.
func (pc *Paint) Scale(s float64) {
	pc.Transform(Scaling(s, s, Origin))
}

// Rotate implements Canvas.
func (pc *Paint) Rotate(angle float64) {
	pc.Transform(Rotation(angle, Origin))
}

// IsRectInScreen implements Canvas: the rect's corners go through the
// current transform and the resulting AABB is tested against the image
// bounds.
func (pc *Paint) IsRectInScreen(r Rect) bool {
	tl := Pt(r.Left, r.Top).Transform(pc.xform)
	tr := Pt(r.Right, r.Top).Transform(pc.xform)
	bl := Pt(r.Left, r.Bottom).Transform(pc.xform)
	br := Pt(r.Right, r.Bottom).Transform(pc.xform)

	aabb := RectFromPoints(tl, br).CombinedWith(RectFromPoints(tr, bl))
	screen := NewRect(0, 0, float64(pc.bounds.Dx()), float64(pc.bounds.Dy()))
	return aabb.Overlaps(screen)
}

// --- Helpers ---

func fixp(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(p.X), Y: fix(p.Y)}
}

func fix(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// offsetPath returns the path shifted by (dx, dy). The path encoding is
// {op, 2(op or 1) coords..., op} repeated, with op 0 start, 1 linear,
// 2 quadratic, 3 cubic.
func offsetPath(p raster.Path, dx, dy fixed.Int26_6) raster.Path {
	out := make(raster.Path, len(p))
	copy(out, p)
	for i := 0; i < len(out); {
		op := int(out[i])
		points := op
		if op == 0 {
			points = 1
		}
		for j := 0; j < points; j++ {
			out[i+1+2*j] += dx
			out[i+2+2*j] += dy
		}
		i += 2*points + 2
	}
	return out
}

// parseHexColor parses "#RGB", "#RGBA", "#RRGGBB", and "#RRGGBBAA" styles.
// Unparseable styles log and come out opaque black.
func parseHexColor(style string) color.RGBA {
	x := strings.TrimPrefix(style, "#")
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 4:
		fmt.Sscanf(x, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		log.Printf("loom: cannot parse color %q", style)
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}
