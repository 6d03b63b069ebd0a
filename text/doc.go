// Package text provides the glyph cache and text layout of the sandbox.
//
// A [GlyphCache] rasterizes every renderable single-byte character code of a
// font once, at a fixed pixel size, and uploads each bitmap through a
// [render.DrawableStore]. Layout then resolves a string to cached glyphs,
// aligns them on a shared baseline derived from the tallest top bearing, and
// emits one destination rectangle per visible glyph.
//
// # Quick Start
//
//	gc, err := text.BuildGlyphCache(backend, "/path/to/font.ttf", 50)
//	if err != nil {
//	    return err
//	}
//	defer gc.Close()
//
//	if err := text.Draw(backend, gc, "testing", image.Point{}); err != nil {
//	    return err
//	}
//
// # Character Codes
//
// Codes 1..255 are decoded to runes with a single-byte code page, ISO 8859-1
// by default (see [WithCodePage]). Codes the font does not map are skipped at
// build time and fail layout with a [*MissingGlyphError]. Whitespace has no
// bitmap; by default it gets an advance-only entry so that spaces move the
// cursor without drawing anything (see [WithWhitespaceAdvance]).
//
// # Shaping
//
// There is none. Glyphs advance left to right by their own advance width;
// kerning, ligatures and bidirectional text are out of scope.
//
// # Thread Safety
//
// GlyphCache is immutable after construction and safe for concurrent reads.
// Close must not race with lookups. LayoutCache is safe for concurrent use.
package text
