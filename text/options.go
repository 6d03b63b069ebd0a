package text

import "golang.org/x/text/encoding/charmap"

// MaxPixelSize is the largest accepted glyph cache pixel size.
const MaxPixelSize = 1024

// GlyphFormat selects how a coverage mask is expanded to 4-channel pixels.
type GlyphFormat int

const (
	// FormatOpaqueCoverage writes the coverage to R, G and B with A=255,
	// producing a white glyph on an opaque black box. This is the default.
	FormatOpaqueCoverage GlyphFormat = iota

	// FormatAlphaCoverage produces a white glyph on a transparent background:
	// every channel equals the coverage, which is white in premultiplied
	// RGBA. Glyphs blend over whatever is behind them.
	FormatAlphaCoverage
)

// String returns the format name.
func (f GlyphFormat) String() string {
	switch f {
	case FormatOpaqueCoverage:
		return "opaque"
	case FormatAlphaCoverage:
		return "alpha"
	default:
		return "unknown"
	}
}

// ParseGlyphFormat parses "opaque" or "alpha".
func ParseGlyphFormat(s string) (GlyphFormat, bool) {
	switch s {
	case "opaque":
		return FormatOpaqueCoverage, true
	case "alpha":
		return FormatAlphaCoverage, true
	default:
		return FormatOpaqueCoverage, false
	}
}

// CacheOption configures BuildGlyphCache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	codePage   *charmap.Charmap
	whitespace bool
	format     GlyphFormat
}

func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		codePage:   charmap.ISO8859_1,
		whitespace: true,
		format:     FormatOpaqueCoverage,
	}
}

// WithCodePage sets the single-byte code page used to decode character codes
// 1..255 to runes. Default: ISO 8859-1. A nil code page is ignored.
func WithCodePage(cm *charmap.Charmap) CacheOption {
	return func(o *cacheOptions) {
		if cm != nil {
			o.codePage = cm
		}
	}
}

// WithWhitespaceAdvance controls advance-only entries for whitespace.
// When disabled, whitespace is skipped like any other empty bitmap and
// fails layout. Default: true.
func WithWhitespaceAdvance(enabled bool) CacheOption {
	return func(o *cacheOptions) {
		o.whitespace = enabled
	}
}

// WithGlyphFormat sets the pixel expansion of glyph bitmaps.
// Default: FormatOpaqueCoverage.
func WithGlyphFormat(f GlyphFormat) CacheOption {
	return func(o *cacheOptions) {
		o.format = f
	}
}
