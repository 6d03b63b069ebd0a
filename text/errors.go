package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrFontNotFound is returned when the font file does not exist.
	// It wraps the underlying fs.ErrNotExist as well.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrFontParse is returned when the font data is not a usable
	// TrueType/OpenType font.
	ErrFontParse = errors.New("text: failed to parse font")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnsupportedPixelSize is returned for pixel sizes outside
	// 1..MaxPixelSize.
	ErrUnsupportedPixelSize = errors.New("text: unsupported pixel size")

	// ErrNilStore is returned when no drawable store is given.
	ErrNilStore = errors.New("text: nil drawable store")

	// ErrGlyphUpload wraps drawable store failures while building a cache.
	ErrGlyphUpload = errors.New("text: upload glyph")

	// ErrMissingGlyph is matched by every *MissingGlyphError.
	ErrMissingGlyph = errors.New("text: missing glyph")

	// ErrCacheClosed is returned when laying out with a closed cache.
	ErrCacheClosed = errors.New("text: glyph cache closed")
)

// MissingGlyphError is returned when a string contains a character that has
// no cached glyph.
type MissingGlyphError struct {
	// Rune is the character without a glyph.
	Rune rune
	// Index is the byte offset of Rune in the laid out string.
	Index int
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("text: missing glyph for %q (U+%04X) at offset %d", e.Rune, e.Rune, e.Index)
}

// Is reports whether target is ErrMissingGlyph.
func (e *MissingGlyphError) Is(target error) bool {
	return target == ErrMissingGlyph
}
