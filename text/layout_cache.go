package text

import (
	"image"

	"github.com/gogpu/boxplay/internal/cache"
	"github.com/gogpu/boxplay/render"
)

// DefaultLayoutCacheSize is the soft limit used when NewLayoutCache gets a
// non-positive size.
const DefaultLayoutCacheSize = 64

type layoutKey struct {
	text   string
	origin image.Point
}

// LayoutCache memoizes Layout results for one glyph cache. The frame loop
// draws the same overlay every frame; the memo turns that into a map lookup.
//
// Failed layouts are not cached.
type LayoutCache struct {
	glyphs *GlyphCache
	memo   *cache.Cache[layoutKey, []Placement]
}

// NewLayoutCache creates a layout memo over gc holding about size entries.
func NewLayoutCache(gc *GlyphCache, size int) *LayoutCache {
	if size <= 0 {
		size = DefaultLayoutCacheSize
	}
	return &LayoutCache{
		glyphs: gc,
		memo:   cache.New[layoutKey, []Placement](size),
	}
}

// Layout returns the placements of s at origin. The returned slice is shared
// and must not be modified.
func (lc *LayoutCache) Layout(s string, origin image.Point) ([]Placement, error) {
	key := layoutKey{text: s, origin: origin}
	if p, ok := lc.memo.Get(key); ok {
		return p, nil
	}
	p, err := Layout(lc.glyphs, s, origin)
	if err != nil {
		return nil, err
	}
	lc.memo.Set(key, p)
	return p, nil
}

// Draw lays out s at origin through the memo and copies it through r.
func (lc *LayoutCache) Draw(r render.Renderer, s string, origin image.Point) error {
	p, err := lc.Layout(s, origin)
	if err != nil {
		return err
	}
	return DrawPlacements(r, p)
}

// Len returns the number of memoized layouts.
func (lc *LayoutCache) Len() int {
	return lc.memo.Len()
}

// Stats returns the memo statistics.
func (lc *LayoutCache) Stats() cache.Stats {
	return lc.memo.Stats()
}

// Clear drops every memoized layout.
func (lc *LayoutCache) Clear() {
	lc.memo.Clear()
}
