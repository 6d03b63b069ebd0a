package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Headless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	var stderr bytes.Buffer

	code := run(context.Background(), []string{
		"-backend", "headless",
		"-frames", "10",
		"-script", "d*3,-*3",
		"-out", out,
	}, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("PNG not written: %v", err)
	}
}

func TestRun_ScriptQuit(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-backend", "headless", "-script", "w,q"}, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
}

func TestRun_StartupFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-backend", "headless",
		"-font", filepath.Join(t.TempDir(), "missing.ttf"),
	}, &stderr)
	if code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), "font face") {
		t.Errorf("stderr does not name the resource: %q", stderr.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := [][]string{
		{"-backend", "vulkan"},
		{"-controller", "mouse"},
		{"-input", "sticky"},
		{"-format", "rgb"},
		{"-nope"},
	}
	for _, args := range tests {
		var stderr bytes.Buffer
		if code := run(context.Background(), args, &stderr); code != exitUsage {
			t.Errorf("run(%v) = %d, want %d", args, code, exitUsage)
		}
	}
}

func TestRun_BadScript(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-backend", "headless", "-script", "z"}, &stderr)
	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
}
