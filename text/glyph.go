package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/boxplay/render"
)

// Glyph is a cached, immutable character.
//
// Bearings follow the usual raster convention: Left is the horizontal offset
// from the pen position to the left edge of the bitmap, Top is the distance
// from the baseline up to the top edge.
type Glyph struct {
	// Code is the single-byte character code.
	Code byte

	// Rune is Code decoded with the cache's code page.
	Rune rune

	// Width and Height are the bitmap size in pixels.
	// Both are zero for advance-only entries.
	Width, Height int

	// Drawable is the uploaded bitmap. Zero for advance-only entries.
	Drawable render.DrawableID

	// Advance is the pen movement in 26.6 fixed point.
	Advance fixed.Point26_6

	// Left and Top are the bitmap bearings in pixels.
	Left, Top int

	// Metrics holds the unrounded glyph metrics.
	Metrics GlyphMetrics
}

// IsBlank reports whether the glyph only advances the pen.
func (g *Glyph) IsBlank() bool {
	return g.Drawable.IsZero()
}

// GlyphMetrics are the font-unit-derived metrics of one glyph at the cache
// pixel size.
type GlyphMetrics struct {
	// Bounds is the ink bounding box relative to the pen position, y down.
	Bounds fixed.Rectangle26_6

	// Advance is the horizontal advance.
	Advance fixed.Int26_6
}

// FontMetrics are the face-wide metrics at the cache pixel size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of a line, in
	// pixels (rounded up).
	Ascent int

	// Descent is the distance from the baseline to the bottom of a line, in
	// pixels (rounded up).
	Descent int

	// Height is the recommended line height in pixels (rounded up).
	Height int

	// Raw holds the 26.6 metrics as reported by the face.
	Raw font.Metrics
}

func fontMetricsFrom(m font.Metrics) FontMetrics {
	return FontMetrics{
		Ascent:  m.Ascent.Ceil(),
		Descent: m.Descent.Ceil(),
		Height:  m.Height.Ceil(),
		Raw:     m,
	}
}
