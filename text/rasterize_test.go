package text

import (
	"image"
	"image/color"
	"testing"
)

func TestExpandCoverage(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	mask.SetAlpha(2, 1, color.Alpha{A: 0x80})
	mask.SetAlpha(3, 2, color.Alpha{A: 0xff})

	// Copy the 2x2 region starting at (2,1).
	mp := image.Pt(2, 1)

	alpha := expandCoverage(mask, mp, 2, 2, FormatAlphaCoverage)
	if got := alpha.RGBAAt(0, 0); got != (color.RGBA{0x80, 0x80, 0x80, 0x80}) {
		t.Errorf("alpha (0,0) = %v", got)
	}
	if got := alpha.RGBAAt(1, 1); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("alpha (1,1) = %v", got)
	}
	if got := alpha.RGBAAt(1, 0); got != (color.RGBA{}) {
		t.Errorf("alpha (1,0) = %v, want transparent", got)
	}

	opaque := expandCoverage(mask, mp, 2, 2, FormatOpaqueCoverage)
	if got := opaque.RGBAAt(0, 0); got != (color.RGBA{0x80, 0x80, 0x80, 0xff}) {
		t.Errorf("opaque (0,0) = %v", got)
	}
	if got := opaque.RGBAAt(1, 0); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("opaque (1,0) = %v, want black", got)
	}

	// The result must not alias the scratch mask.
	mask.SetAlpha(2, 1, color.Alpha{})
	if alpha.RGBAAt(0, 0).A != 0x80 {
		t.Error("expanded glyph aliases the mask")
	}
}

func TestExpandCoverage_GenericMask(t *testing.T) {
	mask := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	mask.SetNRGBA(0, 0, color.NRGBA{A: 0x40})

	got := expandCoverage(mask, image.Point{}, 1, 1, FormatAlphaCoverage).RGBAAt(0, 0)
	if got.A != 0x40 || got.R != 0x40 {
		t.Errorf("generic mask expanded to %v", got)
	}
}
