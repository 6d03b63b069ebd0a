package text

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/boxplay/render"
)

const testPixelSize = 50

// writeTestFont writes Go Regular to a temporary file and returns its path.
func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// buildTestCache builds a Go Regular cache backed by a fresh recorder.
func buildTestCache(t *testing.T, opts ...CacheOption) (*GlyphCache, *render.Recorder) {
	t.Helper()
	rec := render.NewRecorder(640, 480)
	gc, err := BuildGlyphCacheFromData(rec, goregular.TTF, testPixelSize, opts...)
	if err != nil {
		t.Fatalf("BuildGlyphCacheFromData: %v", err)
	}
	t.Cleanup(func() { _ = gc.Close() })
	return gc, rec
}

func mustGlyph(t *testing.T, gc *GlyphCache, r rune) *Glyph {
	t.Helper()
	g, ok := gc.Glyph(r)
	if !ok {
		t.Fatalf("no glyph for %q", r)
	}
	return g
}
