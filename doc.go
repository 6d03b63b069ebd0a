// Package boxplay is an interactive 2D physics sandbox.
//
// # Overview
//
// A fixed-timestep loop advances a rigid-body world of axis-aligned boxes.
// The player steers one distinguished box with W/A/S/D, every frame renders
// the boxes plus a short text overlay, and the overlay text comes from a
// glyph cache that is rasterized once at startup.
//
// # Quick Start
//
//	backend := render.NewCanvas(800, 600)
//	defer backend.Close()
//
//	sb, err := boxplay.New(backend, boxplay.WithController(entity.Anchored))
//	if err != nil {
//	    return err // *boxplay.StartupError names the failed resource
//	}
//	defer sb.Close()
//
//	sb.KeyDown(control.KeyRight)
//	if err := sb.Frame(); err != nil {
//	    return err
//	}
//
// # Frame Order
//
// Each Frame drains queued input events, steers the first playable
// controller, applies the held-key tick, damps every playable velocity, steps
// the world by [physics.FixedStep] and renders. A quit event lets the frame
// in flight finish and moves the sandbox to [Stopped].
//
// # Drivers
//
// Window and terminal front ends live in integration/window and
// integration/term. Pull-style drivers feed an [EventSource] to [Sandbox.Run];
// the window driver pushes events from its callbacks and calls Frame from
// its draw callback.
//
// # Thread Safety
//
// A Sandbox is owned by one goroutine. Event posting from other goroutines
// must go through a channel ([ChannelSource]).
package boxplay
