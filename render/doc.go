// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the drawing boundary of the sandbox.
//
// The frame loop only ever asks a backend for two primitives: fill an
// axis-aligned rectangle with a color, and copy a previously uploaded
// drawable into a destination rectangle. Everything else (windows, surfaces,
// terminals, GPU textures) lives behind that boundary.
//
// # Core Interfaces
//
//   - Renderer: Clear, FillRect, CopyDrawable, Present
//   - DrawableStore: CreateDrawable, ReleaseDrawable
//   - Backend: both of the above plus the target size
//
// # Backends
//
//   - Canvas: draws through a gg.Context, either standalone (headless PNG
//     snapshots) or wrapping the context of a ggcanvas window canvas
//   - Recorder: records every call for tests and headless inspection
//
// Drawables are kept in a [DrawableTable]. Identifiers are generation
// checked, so a released drawable can never be resolved again even when its
// slot is reused.
//
// # Thread Safety
//
// Backends are NOT thread-safe. They are owned by the goroutine running the
// frame loop.
package render
