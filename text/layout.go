package text

import (
	"fmt"
	"image"

	"github.com/gogpu/boxplay/render"
)

// Placement is one visible glyph positioned for drawing.
type Placement struct {
	Glyph *Glyph

	// Rect is the destination rectangle, top-left plus bitmap size.
	Rect image.Rectangle
}

// Layout positions s left to right starting at origin.
//
// For each glyph the destination top-left is
//
//	(cursor + Left, origin.Y + MaxTop - Top)
//
// and the cursor then moves by the whole-pixel advance. Blank entries move
// the cursor without producing a placement.
func Layout(gc *GlyphCache, s string, origin image.Point) ([]Placement, error) {
	run, err := NewGlyphRun(gc, s)
	if err != nil {
		return nil, err
	}
	return run.Layout(origin), nil
}

// Layout positions the run starting at origin.
func (run *GlyphRun) Layout(origin image.Point) []Placement {
	out := make([]Placement, 0, len(run.Glyphs))
	cursor := origin.X
	for _, g := range run.Glyphs {
		if !g.IsBlank() {
			x := cursor + g.Left
			y := origin.Y + run.MaxTop - g.Top
			out = append(out, Placement{
				Glyph: g,
				Rect:  image.Rect(x, y, x+g.Width, y+g.Height),
			})
		}
		cursor += advancePixels(g)
	}
	return out
}

// Draw lays out s and copies each glyph drawable through r.
func Draw(r render.Renderer, gc *GlyphCache, s string, origin image.Point) error {
	placements, err := Layout(gc, s, origin)
	if err != nil {
		return err
	}
	return DrawPlacements(r, placements)
}

// DrawPlacements copies precomputed placements through r.
func DrawPlacements(r render.Renderer, placements []Placement) error {
	for _, p := range placements {
		if err := r.CopyDrawable(p.Glyph.Drawable, p.Rect); err != nil {
			return fmt.Errorf("text: draw %q: %w", p.Glyph.Rune, err)
		}
	}
	return nil
}
