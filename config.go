package boxplay

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/boxplay/control"
	"github.com/gogpu/boxplay/entity"
	"github.com/gogpu/boxplay/text"
)

// Config holds the sandbox settings. Obtain it with DefaultConfig and adjust
// it with options.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the window size in pixels.
	Width, Height int

	// BoxCount is the number of boxes. The last one is the player.
	BoxCount int

	// BoxSize is the box edge length in pixels.
	BoxSize float64

	// UnitScale converts pixels to world units.
	UnitScale float64

	// Mass is the mass of the player box.
	Mass float64

	// Friction is the friction of every box.
	Friction float64

	// Controller selects the player design.
	Controller entity.Design

	// InputModel selects how key events become directions.
	InputModel control.InputModel

	// AnchoredSpeed is the anchor speed in pixels per second.
	AnchoredSpeed float64

	// Iterations is the constraint solver iteration count.
	Iterations int

	// FontPath is the overlay font. Empty selects the embedded Go Mono.
	FontPath string

	// PixelSize is the glyph cache size in pixels.
	PixelSize int

	// GlyphFormat is the pixel expansion of glyph bitmaps.
	GlyphFormat text.GlyphFormat

	// Overlay is the text drawn every frame. Empty disables the overlay.
	Overlay string

	// OverlayOrigin is the top-left of the overlay line.
	OverlayOrigin image.Point

	// ClearColor is the background color.
	ClearColor color.RGBA

	// Sound enables the collision click.
	Sound bool
}

// DefaultConfig returns the default settings: six 40 px boxes on a diagonal,
// the direct controller with discrete input, and the "testing" overlay in Go
// Mono at 50 px.
func DefaultConfig() Config {
	return Config{
		Title:         "boxplay",
		Width:         800,
		Height:        600,
		BoxCount:      6,
		BoxSize:       40,
		UnitScale:     1000,
		Mass:          0.25,
		Friction:      1,
		Controller:    entity.Direct,
		InputModel:    control.InputDiscrete,
		AnchoredSpeed: control.AnchoredSpeed,
		Iterations:    10,
		PixelSize:     50,
		GlyphFormat:   text.FormatOpaqueCoverage,
		Overlay:       "testing",
		ClearColor:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.BoxCount < 1:
		return fmt.Errorf("%w: box count %d (need at least the player)", ErrInvalidConfig, c.BoxCount)
	case c.BoxSize <= 0:
		return fmt.Errorf("%w: box size %g", ErrInvalidConfig, c.BoxSize)
	case c.UnitScale <= 0:
		return fmt.Errorf("%w: unit scale %g", ErrInvalidConfig, c.UnitScale)
	case c.Mass <= 0:
		return fmt.Errorf("%w: mass %g", ErrInvalidConfig, c.Mass)
	case c.AnchoredSpeed <= 0:
		return fmt.Errorf("%w: anchored speed %g", ErrInvalidConfig, c.AnchoredSpeed)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations %d", ErrInvalidConfig, c.Iterations)
	case c.PixelSize < 1 || c.PixelSize > text.MaxPixelSize:
		return fmt.Errorf("%w: pixel size %d", ErrInvalidConfig, c.PixelSize)
	}
	return nil
}

// controlTuning derives the controller constants from the config.
func (c Config) controlTuning() control.Tuning {
	t := control.DefaultTuning(c.UnitScale)
	t.AnchoredSpeed = c.AnchoredSpeed
	return t
}
