package main

import (
	"io"
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
)

// newLogger returns the logger shared by every command. Library packages do
// not log; only the command line does.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slogx.Child(slogx.NewLogger(
		slogx.WithLevel(level),
		slogx.WithFormat(slogx.TextWithoutTimeFormat),
		slogx.WithWriter(w),
	), "valutil")
}
