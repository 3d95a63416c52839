package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages to stderr'"`
	Color   bool `cli:"name=color desc='colour verdicts and diffs'"`
	Indent  bool `cli:"name=i aliases=indent desc='indent JSON output'"`

	Out      string
	CloseOut func() error

	Log  *slog.Logger
	Main *cli.Command
}

// colorize reports whether output to w should be coloured: always with
// -color, never with an explicit -color=false, otherwise when w is a
// terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Log == nil {
		cfg.Log = newLogger(os.Stderr, cfg.Verbose)
	}
	return cfg.Log
}

type EqualConfig struct {
	*MainConfig
	Diff bool `cli:"name=d aliases=diff desc='show a line diff when not equal'"`

	Equal *cli.Command
}

type DigConfig struct {
	*MainConfig

	Dig *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ChunkConfig struct {
	*MainConfig
	Size int `cli:"name=n aliases=size desc='number of elements per group'"`

	Chunk *cli.Command
}

type UniqueConfig struct {
	*MainConfig
	Dups     bool `cli:"name=dups desc='print elements occurring more than once'"`
	Check    bool `cli:"name=check desc='print whether all elements are unique'"`
	Distinct bool `cli:"name=distinct desc='print every element once'"`

	Unique *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Intersect bool `cli:"name=x aliases=intersect desc='print elements of a also in b'"`

	Diff *cli.Command
}

type FingerprintConfig struct {
	*MainConfig

	Fingerprint *cli.Command
}

type AccumulateConfig struct {
	*MainConfig

	Accumulate *cli.Command
}
