// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window runs a boxplay sandbox in a gogpu window.
//
// The sandbox is created before the window opens, drawing into a standalone
// render.Canvas, so font and configuration errors are reported without a
// window flashing up. On the first draw callback the canvas is retargeted to
// the context of a ggcanvas.Canvas, which uploads each frame to the GPU and
// renders it onto the window surface.
//
// The data flow is:
//
//	Sandbox.Frame -> render.Canvas -> gg.Context -> ggcanvas -> window
//
// Key presses and releases are forwarded as they arrive, so both the discrete
// and the held input model work. Escape quits.
package window
