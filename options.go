package boxplay

import (
	"image"

	"github.com/gogpu/boxplay/control"
	"github.com/gogpu/boxplay/entity"
	"github.com/gogpu/boxplay/text"
)

// Option configures a Sandbox during creation.
//
// Example:
//
//	sb, err := boxplay.New(backend,
//	    boxplay.WithController(entity.Anchored),
//	    boxplay.WithInputModel(control.InputHeld),
//	    boxplay.WithFont("/usr/share/fonts/TTF/DejaVuSans.ttf", 32),
//	)
type Option func(*Config)

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithFont sets the overlay font file and pixel size. An empty path keeps
// the embedded Go Mono font.
func WithFont(path string, pixelSize int) Option {
	return func(c *Config) {
		c.FontPath = path
		c.PixelSize = pixelSize
	}
}

// WithPixelSize sets the glyph cache pixel size.
func WithPixelSize(px int) Option {
	return func(c *Config) {
		c.PixelSize = px
	}
}

// WithGlyphFormat sets the glyph bitmap expansion.
func WithGlyphFormat(f text.GlyphFormat) Option {
	return func(c *Config) {
		c.GlyphFormat = f
	}
}

// WithController selects the direct or anchored player design.
func WithController(d entity.Design) Option {
	return func(c *Config) {
		c.Controller = d
	}
}

// WithInputModel selects discrete or held-key input.
func WithInputModel(m control.InputModel) Option {
	return func(c *Config) {
		c.InputModel = m
	}
}

// WithAnchoredSpeed sets the anchor speed in pixels per second.
func WithAnchoredSpeed(pxPerSec float64) Option {
	return func(c *Config) {
		c.AnchoredSpeed = pxPerSec
	}
}

// WithOverlay sets the overlay text and its top-left position.
func WithOverlay(s string, origin image.Point) Option {
	return func(c *Config) {
		c.Overlay = s
		c.OverlayOrigin = origin
	}
}

// WithBoxCount sets the number of boxes, player included.
func WithBoxCount(n int) Option {
	return func(c *Config) {
		c.BoxCount = n
	}
}

// WithUnitScale sets the pixel to world unit factor.
func WithUnitScale(s float64) Option {
	return func(c *Config) {
		c.UnitScale = s
	}
}

// WithSize sets the window size in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithSound enables or disables the collision click.
func WithSound(enabled bool) Option {
	return func(c *Config) {
		c.Sound = enabled
	}
}
