package text

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"unicode"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/boxplay/render"
)

// Character codes considered by the glyph cache. Code 0 is never cached.
const (
	firstCode = 1
	lastCode  = 255
)

// GlyphCache holds one pre-rasterized glyph per renderable character code of
// a font at a fixed pixel size.
//
// GlyphCache is built once and read-only afterwards. Drawables are owned by
// the cache and released by Close in reverse creation order.
type GlyphCache struct {
	store     render.DrawableStore
	face      font.Face
	name      string
	pixelSize int
	codePage  *charmap.Charmap
	format    GlyphFormat
	metrics   FontMetrics

	glyphs map[rune]*Glyph
	codes  []byte              // rasterized codes, ascending
	order  []render.DrawableID // creation order
	closed bool
}

// BuildGlyphCache reads the font at fontPath and builds a glyph cache at
// pixelSize pixels.
//
// Returns ErrFontNotFound if the file does not exist; the error also matches
// fs.ErrNotExist.
func BuildGlyphCache(store render.DrawableStore, fontPath string, pixelSize int, opts ...CacheOption) (*GlyphCache, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFontNotFound, err)
		}
		return nil, fmt.Errorf("text: read font: %w", err)
	}

	gc, err := BuildGlyphCacheFromData(store, data, pixelSize, opts...)
	if err != nil {
		return nil, err
	}
	if gc.name == "" {
		gc.name = filepath.Base(fontPath)
	}
	return gc, nil
}

// BuildGlyphCacheFromData builds a glyph cache from TrueType/OpenType data.
//
// For every code 1..255 the code is decoded with the code page, skipped if
// the font has no cmap entry for it, rasterized at pixelSize with full
// hinting, and uploaded through store if its bitmap is non-empty. Any upload
// failure releases the drawables created so far and fails the build.
func BuildGlyphCacheFromData(store render.DrawableStore, data []byte, pixelSize int, opts ...CacheOption) (*GlyphCache, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if pixelSize < 1 || pixelSize > MaxPixelSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrUnsupportedPixelSize, pixelSize, MaxPixelSize)
	}

	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontParse, err)
	}

	// cmap coverage comes from go-text so that codes mapped to .notdef are
	// never rasterized as a box glyph.
	coverage, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontParse, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontParse, err)
	}

	gc := &GlyphCache{
		store:     store,
		face:      face,
		name:      fontName(parsed),
		pixelSize: pixelSize,
		codePage:  o.codePage,
		format:    o.format,
		metrics:   fontMetricsFrom(face.Metrics()),
		glyphs:    make(map[rune]*Glyph),
	}

	var unmapped, blank int
	for code := firstCode; code <= lastCode; code++ {
		b := byte(code)
		r := o.codePage.DecodeByte(b)
		if r == unicode.ReplacementChar {
			unmapped++
			continue
		}
		if _, ok := coverage.NominalGlyph(r); !ok {
			unmapped++
			continue
		}

		added, err := gc.add(b, r, o.whitespace)
		if err != nil {
			_ = gc.Close()
			return nil, err
		}
		if added == addedBlank {
			blank++
		}
	}

	slogger().Debug("text: glyph cache built",
		"font", gc.name,
		"size", pixelSize,
		"format", o.format.String(),
		"glyphs", len(gc.codes),
		"blank", blank,
		"unmapped", unmapped)

	return gc, nil
}

type addResult int

const (
	addedNone addResult = iota
	addedGlyph
	addedBlank
)

// add rasterizes one code and stores the resulting glyph.
func (gc *GlyphCache) add(code byte, r rune, whitespace bool) (addResult, error) {
	dr, mask, mp, advance, ok := gc.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return addedNone, nil
	}
	bounds, _, _ := gc.face.GlyphBounds(r)

	g := &Glyph{
		Code:    code,
		Rune:    r,
		Advance: fixed.Point26_6{X: advance},
		Metrics: GlyphMetrics{Bounds: bounds, Advance: advance},
	}

	if dr.Empty() {
		if !whitespace || !unicode.IsSpace(r) {
			return addedNone, nil
		}
		gc.glyphs[r] = g
		return addedBlank, nil
	}

	img := expandCoverage(mask, mp, dr.Dx(), dr.Dy(), gc.format)
	id, err := gc.store.CreateDrawable(img)
	if err != nil {
		return addedNone, fmt.Errorf("%w %#02x: %w", ErrGlyphUpload, code, err)
	}

	g.Width = dr.Dx()
	g.Height = dr.Dy()
	g.Drawable = id
	g.Left = dr.Min.X
	g.Top = -dr.Min.Y

	gc.glyphs[r] = g
	gc.codes = append(gc.codes, code)
	gc.order = append(gc.order, id)
	return addedGlyph, nil
}

func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}

// Glyph returns the cached glyph for r. Advance-only whitespace entries are
// returned too; check IsBlank before drawing.
func (gc *GlyphCache) Glyph(r rune) (*Glyph, bool) {
	g, ok := gc.glyphs[r]
	return g, ok
}

// GlyphForCode returns the cached glyph for a character code.
func (gc *GlyphCache) GlyphForCode(code byte) (*Glyph, bool) {
	if code < firstCode {
		return nil, false
	}
	return gc.Glyph(gc.codePage.DecodeByte(code))
}

// Len returns the number of rasterized glyphs. Advance-only entries are not
// counted.
func (gc *GlyphCache) Len() int {
	return len(gc.codes)
}

// Codes returns the rasterized character codes in ascending order.
func (gc *GlyphCache) Codes() []byte {
	return slices.Clone(gc.codes)
}

// PixelSize returns the pixel size the cache was built at.
func (gc *GlyphCache) PixelSize() int {
	return gc.pixelSize
}

// FontName returns the full name of the font, or the file name when the
// font has no name table entry.
func (gc *GlyphCache) FontName() string {
	return gc.name
}

// Format returns the pixel expansion used for the bitmaps.
func (gc *GlyphCache) Format() GlyphFormat {
	return gc.format
}

// Metrics returns the face metrics at the cache pixel size.
func (gc *GlyphCache) Metrics() FontMetrics {
	return gc.metrics
}

// Closed reports whether Close has been called.
func (gc *GlyphCache) Closed() bool {
	return gc.closed
}

// Close releases every drawable in reverse creation order, then the font
// face. Close is idempotent; release failures are joined into the result.
func (gc *GlyphCache) Close() error {
	if gc.closed {
		return nil
	}
	gc.closed = true

	var errs []error
	for i := len(gc.order) - 1; i >= 0; i-- {
		if err := gc.store.ReleaseDrawable(gc.order[i]); err != nil {
			slogger().Warn("text: release glyph drawable", "drawable", uint64(gc.order[i]), "err", err)
			errs = append(errs, err)
		}
	}
	gc.order = nil

	if err := gc.face.Close(); err != nil {
		errs = append(errs, fmt.Errorf("text: close face: %w", err))
	}
	return errors.Join(errs...)
}
