package text

import "math"

// GlyphRun is a string resolved to cached glyphs.
type GlyphRun struct {
	// Text is the resolved string.
	Text string

	// Glyphs holds one entry per rune of Text, blanks included.
	Glyphs []*Glyph

	// MaxTop is the largest top bearing of the visible glyphs, which may be
	// negative. Every glyph is placed so that its baseline sits MaxTop pixels
	// below the layout origin. Zero for runs without visible glyphs.
	MaxTop int
}

// NewGlyphRun resolves every rune of s against the cache.
// It fails with a *MissingGlyphError on the first rune without a glyph.
func NewGlyphRun(gc *GlyphCache, s string) (*GlyphRun, error) {
	if gc.closed {
		return nil, ErrCacheClosed
	}

	run := &GlyphRun{
		Text:   s,
		Glyphs: make([]*Glyph, 0, len(s)),
		MaxTop: math.MinInt,
	}
	for i, r := range s {
		g, ok := gc.Glyph(r)
		if !ok {
			return nil, &MissingGlyphError{Rune: r, Index: i}
		}
		if !g.IsBlank() && g.Top > run.MaxTop {
			run.MaxTop = g.Top
		}
		run.Glyphs = append(run.Glyphs, g)
	}
	if run.MaxTop == math.MinInt {
		run.MaxTop = 0
	}
	return run, nil
}

// Advance returns the total pen movement of the run in whole pixels.
func (run *GlyphRun) Advance() int {
	total := 0
	for _, g := range run.Glyphs {
		total += advancePixels(g)
	}
	return total
}

// advancePixels truncates the 26.6 advance to whole pixels.
func advancePixels(g *Glyph) int {
	return int(g.Advance.X) / 64
}
