package text

import (
	"image"
	"image/color"
)

// expandCoverage copies a w x h region of a coverage mask, starting at mp, into
// a new 4-channel image. The mask is typically a scratch buffer owned by the
// font face and reused by the next Glyph call, so it must be copied before
// rasterizing another glyph.
func expandCoverage(mask image.Image, mp image.Point, w, h int, format GlyphFormat) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	alpha, isAlpha := mask.(*image.Alpha)

	for y := 0; y < h; y++ {
		i := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			var cov uint8
			if isAlpha {
				cov = alpha.AlphaAt(mp.X+x, mp.Y+y).A
			} else {
				cov = color.AlphaModel.Convert(mask.At(mp.X+x, mp.Y+y)).(color.Alpha).A
			}

			p := dst.Pix[i : i+4 : i+4]
			p[0], p[1], p[2] = cov, cov, cov
			if format == FormatOpaqueCoverage {
				p[3] = 0xff
			} else {
				p[3] = cov
			}
			i += 4
		}
	}
	return dst
}
