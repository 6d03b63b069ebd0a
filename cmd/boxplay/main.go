// Command boxplay runs the box physics sandbox.
//
// Usage:
//
//	boxplay [flags]
//
// The default backend opens a window. -backend terminal draws the world with
// terminal cells; -backend headless runs without any display, optionally
// driven by -script, and can write the last frame to -out.
//
// Exit status is 0 on a clean quit, 1 when startup or the frame loop fails
// and 2 for invalid flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/boxplay"
	"github.com/gogpu/boxplay/control"
	"github.com/gogpu/boxplay/entity"
	"github.com/gogpu/boxplay/integration/term"
	"github.com/gogpu/boxplay/integration/window"
	"github.com/gogpu/boxplay/render"
	"github.com/gogpu/boxplay/text"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the parsed command line.
type flags struct {
	backend    string
	font       string
	size       int
	controller string
	input      string
	format     string
	overlay    string
	frames     uint64
	out        string
	script     string
	sound      bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []boxplay.Option, error) {
	fs := flag.NewFlagSet("boxplay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &flags{}
	fs.StringVar(&f.backend, "backend", "window", "display backend: window, terminal or headless")
	fs.StringVar(&f.font, "font", "", "overlay font file (default embedded Go Mono)")
	fs.IntVar(&f.size, "size", 50, "overlay pixel size")
	fs.StringVar(&f.controller, "controller", "direct", "player design: direct or anchored")
	fs.StringVar(&f.input, "input", "discrete", "input model: discrete or held")
	fs.StringVar(&f.format, "format", "opaque", "glyph format: opaque or alpha")
	fs.StringVar(&f.overlay, "overlay", "testing", "overlay text")
	fs.Uint64Var(&f.frames, "frames", 0, "stop after n frames (0 = until quit; headless default 120)")
	fs.StringVar(&f.out, "out", "", "headless: write the last frame to this PNG file")
	fs.StringVar(&f.script, "script", "", `headless: key script, e.g. "d*30,-*60,q"`)
	fs.BoolVar(&f.sound, "sound", false, "play a click on player collisions")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	design, ok := entity.ParseDesign(f.controller)
	if !ok {
		return nil, nil, fmt.Errorf("invalid -controller %q", f.controller)
	}
	model, ok := control.ParseInputModel(f.input)
	if !ok {
		return nil, nil, fmt.Errorf("invalid -input %q", f.input)
	}
	format, ok := text.ParseGlyphFormat(f.format)
	if !ok {
		return nil, nil, fmt.Errorf("invalid -format %q", f.format)
	}
	switch f.backend {
	case "window", "terminal", "headless":
	default:
		return nil, nil, fmt.Errorf("invalid -backend %q", f.backend)
	}

	opts := []boxplay.Option{
		boxplay.WithFont(f.font, f.size),
		boxplay.WithController(design),
		boxplay.WithInputModel(model),
		boxplay.WithGlyphFormat(format),
		boxplay.WithOverlay(f.overlay, image.Point{}),
		boxplay.WithSound(f.sound),
	}
	return f, opts, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	f, opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "boxplay: %v\n", err)
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	boxplay.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	switch f.backend {
	case "terminal":
		err = term.Run(ctx, opts, frameLimit(f.frames)...)
	case "headless":
		err = runHeadless(ctx, f, opts)
	default:
		err = window.Run(opts...)
	}

	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}
	return exitOK
}

func frameLimit(n uint64) []boxplay.RunOption {
	if n == 0 {
		return nil
	}
	return []boxplay.RunOption{boxplay.WithMaxFrames(n)}
}

// runHeadless drives the sandbox on an offscreen canvas as fast as possible.
func runHeadless(ctx context.Context, f *flags, opts []boxplay.Option) error {
	var src boxplay.EventSource
	if f.script != "" {
		script, err := boxplay.ParseScript(f.script)
		if err != nil {
			return err
		}
		src = script
	}
	frames := f.frames
	if frames == 0 {
		frames = 120
	}

	cfg := boxplay.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	defer canvas.Close()

	sb, err := boxplay.New(canvas, opts...)
	if err != nil {
		return err
	}
	defer sb.Close()

	if err := sb.Run(ctx, src, boxplay.WithFrameInterval(0), boxplay.WithMaxFrames(frames)); err != nil {
		return err
	}
	boxplay.Logger().Info("boxplay: headless run finished", "frames", sb.Frames(), "contacts", sb.Contacts())

	if f.out != "" {
		if err := canvas.SavePNG(f.out); err != nil {
			return fmt.Errorf("boxplay: write %s: %w", f.out, err)
		}
	}
	return nil
}
