// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"

	"github.com/gogpu/boxplay"
	"github.com/gogpu/boxplay/control"
)

// Run opens the terminal, runs a sandbox configured by opts until quit or
// ctx is done, and restores the terminal.
//
// A terminal that cannot be opened is reported as a *boxplay.StartupError
// naming the terminal resource.
func Run(ctx context.Context, opts []boxplay.Option, runOpts ...boxplay.RunOption) error {
	cfg := boxplay.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.InputModel == control.InputHeld {
		boxplay.Logger().Warn("term: no key release events, using discrete input")
		opts = append(opts[:len(opts):len(opts)], boxplay.WithInputModel(control.InputDiscrete))
	}

	b, err := Open(cfg.Width, cfg.Height)
	if err != nil {
		return &boxplay.StartupError{Resource: boxplay.ResourceTerminal, Err: err}
	}
	defer b.Close()

	sb, err := boxplay.New(b, opts...)
	if err != nil {
		return err
	}
	defer sb.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return sb.Run(ctx, boxplay.ChannelSource(Pump(ctx, b.Screen())), runOpts...)
}
