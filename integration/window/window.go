// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/boxplay"
	"github.com/gogpu/boxplay/render"
)

// Run opens a window, runs a sandbox configured by opts until the window is
// closed or the sandbox stops, and releases every resource.
//
// Configuration and font failures are returned as *boxplay.StartupError
// before the window opens. Failing to create the GPU canvas is reported
// with the window resource.
func Run(opts ...boxplay.Option) error {
	cfg := boxplay.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	target := render.NewCanvas(cfg.Width, cfg.Height)
	defer target.Close()

	sb, err := boxplay.New(target, opts...)
	if err != nil {
		return err
	}
	defer sb.Close()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height))

	d := &driver{app: app, sb: sb, target: target}
	app.OnDraw(d.draw)
	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if ev, ok := pressEvent(key); ok {
			sb.Post(ev)
		}
	})
	app.EventSource().OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if ev, ok := releaseEvent(key); ok {
			sb.Post(ev)
		}
	})
	app.OnClose(func() {
		if d.canvas != nil {
			_ = d.canvas.Close()
		}
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return &boxplay.StartupError{Resource: boxplay.ResourceWindow, Err: err}
	}
	return d.err
}

// driver connects the gogpu draw callback to the sandbox.
type driver struct {
	app    *gogpu.App
	sb     *boxplay.Sandbox
	target *render.Canvas
	canvas *ggcanvas.Canvas
	err    error
}

func (d *driver) draw(dc *gogpu.Context) {
	if d.err != nil {
		return
	}
	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}

	if d.canvas == nil {
		provider := d.app.GPUContextProvider()
		if provider == nil {
			return
		}
		canvas, err := ggcanvas.New(provider, w, h)
		if err != nil {
			d.fail(&boxplay.StartupError{Resource: boxplay.ResourceWindow, Err: err})
			return
		}
		d.canvas = canvas
		boxplay.Logger().Info("window: canvas created", "width", w, "height", h, "backend", dc.Backend())
	}

	if cw, ch := d.canvas.Size(); cw != w || ch != h {
		if err := d.canvas.Resize(w, h); err != nil {
			boxplay.Logger().Warn("window: resize", "err", err)
		}
	}
	if err := d.target.Retarget(d.canvas.Context()); err != nil {
		d.fail(fmt.Errorf("window: retarget: %w", err))
		return
	}

	if err := d.sb.Frame(); err != nil {
		if !errors.Is(err, boxplay.ErrStopped) {
			d.fail(err)
		}
		d.app.Quit()
		return
	}
	d.canvas.MarkDirty()

	if err := d.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		boxplay.Logger().Warn("window: render", "frame", d.sb.Frames(), "err", err)
	}

	if d.sb.State() == boxplay.Stopped {
		d.app.Quit()
	}
}

// fail records the first fatal error and closes the window.
func (d *driver) fail(err error) {
	d.err = err
	boxplay.Logger().Error("window: stopping", "err", err)
	d.app.Quit()
}
