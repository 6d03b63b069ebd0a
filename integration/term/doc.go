// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term runs a boxplay sandbox inside a terminal using tcell.
//
// The sandbox keeps drawing in window pixels. Backend maps those pixels onto
// the character grid: every cell shows the color found at its center, drawn
// as the cell background. Glyph drawables are blended over the cell color the
// same way the GPU path composites them, so the overlay stays readable at
// coarse resolutions.
//
// # Input
//
// Terminals report key presses only, never releases. Run therefore always uses
// the discrete input model and logs a warning if held input was requested.
// W/A/S/D and the arrow keys steer; q, Escape and Ctrl+C quit.
//
// # Usage
//
//	err := term.Run(ctx, []boxplay.Option{
//	    boxplay.WithController(entity.Anchored),
//	})
package term
