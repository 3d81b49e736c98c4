package loom

// Style wrappers set canvas paint state before drawing their inner widget.
// State is deliberately not restored afterwards: styles are sticky, and
// widget trees are written so every painted shape sits under the styles it
// needs. Fill and Stroke wrappers are the ones that actually put ink on the
// canvas.

// Filled draws inner, then fills the resulting path with the given style.
func Filled(inner Widget, style string) Widget {
	return filledWidget{inner: inner, style: style}
}

type filledWidget struct {
	inner Widget
	style string
}

func (f filledWidget) Draw(c Canvas) {
	c.SetFillStyle(f.style)
	f.inner.Draw(c)
	c.Fill()
}

// Stroked draws inner, then strokes the resulting path with the given style.
func Stroked(inner Widget, style string) Widget {
	return strokedWidget{inner: inner, style: style}
}

type strokedWidget struct {
	inner Widget
	style string
}

func (s strokedWidget) Draw(c Canvas) {
	c.SetStrokeStyle(s.style)
	s.inner.Draw(c)
	c.Stroke()
}

// FillStyle sets the fill style before drawing inner, without filling.
func FillStyle(inner Widget, style string) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetFillStyle(style)
		inner.Draw(c)
	})
}

// StrokeStyle sets the stroke style before drawing inner, without stroking.
func StrokeStyle(inner Widget, style string) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetStrokeStyle(style)
		inner.Draw(c)
	})
}

// LineWidth sets the stroke width before drawing inner.
func LineWidth(inner Widget, width float64) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetLineWidth(width)
		inner.Draw(c)
	})
}

// LineCapStyle sets the stroke cap ("butt", "round", "square") before
// drawing inner.
func LineCapStyle(inner Widget, cap string) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetLineCap(cap)
		inner.Draw(c)
	})
}

// ShadowColor sets the shadow color before drawing inner.
func ShadowColor(inner Widget, color string) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetShadowColor(color)
		inner.Draw(c)
	})
}

// ShadowBlur sets the shadow blur radius before drawing inner.
func ShadowBlur(inner Widget, blur float64) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetShadowBlur(blur)
		inner.Draw(c)
	})
}

// ShadowOffset sets the shadow offset before drawing inner.
func ShadowOffset(inner Widget, x, y float64) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetShadowOffset(x, y)
		inner.Draw(c)
	})
}

// NoShadow disables shadow painting for inner.
func NoShadow(inner Widget) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetShadowBlur(0)
		c.SetShadowOffset(0, 0)
		inner.Draw(c)
	})
}

// FontStyle sets the font before drawing inner.
func FontStyle(inner Widget, font string) Widget {
	return WidgetFunc(func(c Canvas) {
		c.SetFont(font)
		inner.Draw(c)
	})
}
