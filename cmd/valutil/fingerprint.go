package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/scott-cotton/cli"

	"github.com/hasbyte1/go-value-utils/arr"
	"github.com/hasbyte1/go-value-utils/deep"
	"github.com/hasbyte1/go-value-utils/value"
)

func fingerprint(cfg *FingerprintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fingerprint.Parse(cc, args)
	if err != nil {
		return err
	}
	log := cfg.logger()
	failed := 0
	for _, file := range inputs(args) {
		doc, err := readDoc(log, file)
		if err == nil {
			err = writeFingerprint(cc.Out, file, doc)
		}
		if err != nil {
			log.Error("cannot fingerprint document", slogx.String("file", file), slogx.Error(err))
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeFingerprint writes "<hex digest>  <name>", like sha256sum.
func writeFingerprint(w io.Writer, name string, doc value.Value) error {
	sum, err := deep.Fingerprint(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum[:]), name)
	return err
}

func accumulate(cfg *AccumulateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Accumulate.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		seq, err := readSequence(cfg.logger(), file)
		if err != nil {
			return err
		}
		if err := writeAccumulated(cc.Out, seq, cfg.Indent); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

// writeAccumulated writes the running totals of a sequence of numbers.
func writeAccumulated(w io.Writer, seq *value.Sequence, indent bool) error {
	nums := make([]float64, 0, seq.Len())
	for i, item := range seq.All() {
		n, ok := item.(value.Number)
		if !ok {
			return fmt.Errorf("element %d is a %s, not a number", i, value.KindOf(item))
		}
		nums = append(nums, float64(n))
	}
	totals := value.NewSequence()
	for _, t := range arr.Accumulate(nums...) {
		totals.Append(value.Number(t))
	}
	return writeValue(w, totals, indent)
}
