package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hasbyte1/go-value-utils/deep"
	"github.com/hasbyte1/go-value-utils/value"
)

func equal(cfg *EqualConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equal.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: equal requires exactly two documents", cli.ErrUsage)
	}
	a, err := readDoc(cfg.logger(), args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg.logger(), args[1])
	if err != nil {
		return err
	}
	eq, err := writeVerdict(cc.Out, a, b, cfg.colorize(cc.Out), cfg.Diff)
	if err != nil {
		return err
	}
	if !eq {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeVerdict compares a and b with deep.Equal and writes "equal" or "not
// equal", followed by a line diff of their indented JSON when showDiff is
// set and they differ.
func writeVerdict(w io.Writer, a, b value.Value, colored, showDiff bool) (bool, error) {
	eq := deep.Equal(a, b)
	verdict := paint(colored, color.FgGreen, "equal")
	if !eq {
		verdict = paint(colored, color.FgRed, "not equal")
	}
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return eq, err
	}
	if eq || !showDiff {
		return eq, nil
	}
	return eq, writeLineDiff(w, render(a), render(b), colored)
}

// render is the indented JSON of v, or its Format when v has no JSON form.
func render(v value.Value) string {
	b, err := value.MarshalJSONIndent(v, "", "  ")
	if err != nil {
		return value.Format(v)
	}
	return string(b)
}

// writeLineDiff writes a unified-style listing of the lines removed from
// from ("-"), added in to ("+") and kept ("  ").
func writeLineDiff(w io.Writer, from, to string, colored bool) error {
	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from+"\n", to+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix, attr := "  ", color.Reset
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, attr = "- ", color.FgRed
		case diffpatch.DiffInsert:
			prefix, attr = "+ ", color.FgGreen
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			text := prefix + strings.TrimSuffix(line, "\n")
			if attr != color.Reset {
				text = paint(colored, attr, text)
			}
			sb.WriteString(text)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func paint(on bool, attr color.Attribute, s string) string {
	if !on {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
