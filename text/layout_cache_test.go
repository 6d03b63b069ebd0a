package text

import (
	"errors"
	"image"
	"testing"
)

func TestLayoutCache_Memoizes(t *testing.T) {
	gc, rec := buildTestCache(t)
	lc := NewLayoutCache(gc, 0)

	first, err := lc.Layout("testing", origin0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := lc.Layout("testing", origin0)
	if err != nil {
		t.Fatal(err)
	}
	if &first[0] != &second[0] {
		t.Error("second layout was recomputed")
	}
	if s := lc.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", s)
	}

	// A different origin is a different entry.
	moved, err := lc.Layout("testing", image.Pt(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if moved[0].Rect.Min.X != first[0].Rect.Min.X+5 {
		t.Error("origin ignored by the memo key")
	}
	if lc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lc.Len())
	}

	if err := lc.Draw(rec, "testing", origin0); err != nil {
		t.Fatal(err)
	}
	lc.Clear()
	if lc.Len() != 0 {
		t.Error("Clear kept entries")
	}
}

func TestLayoutCache_DoesNotCacheErrors(t *testing.T) {
	gc, _ := buildTestCache(t)
	lc := NewLayoutCache(gc, 4)

	for i := 0; i < 2; i++ {
		if _, err := lc.Layout("\x01", origin0); !errors.Is(err, ErrMissingGlyph) {
			t.Fatalf("err = %v, want ErrMissingGlyph", err)
		}
	}
	if lc.Len() != 0 {
		t.Errorf("failed layout cached: Len() = %d", lc.Len())
	}
}
