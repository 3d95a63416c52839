package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/hasbyte1/go-value-utils/arr"
	"github.com/hasbyte1/go-value-utils/value"
)

type uniqueMode int

const (
	uniqueOnly uniqueMode = iota
	uniqueDups
	uniqueCheck
	uniqueDistinct
)

func (cfg *UniqueConfig) mode() (uniqueMode, error) {
	if count(cfg.Dups, cfg.Check, cfg.Distinct) > 1 {
		return 0, fmt.Errorf("%w: specify at most one of -dups -check -distinct", cli.ErrUsage)
	}
	switch {
	case cfg.Dups:
		return uniqueDups, nil
	case cfg.Check:
		return uniqueCheck, nil
	case cfg.Distinct:
		return uniqueDistinct, nil
	}
	return uniqueOnly, nil
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func unique(cfg *UniqueConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unique.Parse(cc, args)
	if err != nil {
		return err
	}
	mode, err := cfg.mode()
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		seq, err := readSequence(cfg.logger(), file)
		if err != nil {
			return err
		}
		if err := writeUnique(cc.Out, seq, mode, cfg.Indent); err != nil {
			return err
		}
	}
	return nil
}

// writeUnique classifies the elements of seq with strict equality: scalars
// compare by value, containers by reference.
func writeUnique(w io.Writer, seq *value.Sequence, mode uniqueMode, indent bool) error {
	items := seq.Items()
	switch mode {
	case uniqueDups:
		return writeValue(w, value.NewSequence(arr.FilterNonUnique(items)...), indent)
	case uniqueCheck:
		return writeValue(w, value.Bool(arr.AllUnique(items)), indent)
	case uniqueDistinct:
		return writeValue(w, value.NewSequence(arr.Unique(items)...), indent)
	}
	return writeValue(w, value.NewSequence(arr.FilterUnique(items)...), indent)
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two documents", cli.ErrUsage)
	}
	a, err := readSequence(cfg.logger(), args[0])
	if err != nil {
		return err
	}
	b, err := readSequence(cfg.logger(), args[1])
	if err != nil {
		return err
	}
	return writeDifference(cc.Out, a, b, cfg.Intersect, cfg.Indent)
}

// writeDifference writes the elements of a missing from b, or present in b
// when intersect is set.
func writeDifference(w io.Writer, a, b *value.Sequence, intersect, indent bool) error {
	op := arr.Difference[value.Value]
	if intersect {
		op = arr.Intersect[value.Value]
	}
	return writeValue(w, value.NewSequence(op(a.Items(), b.Items())...), indent)
}
