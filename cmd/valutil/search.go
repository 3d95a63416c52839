package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/hasbyte1/go-value-utils/deep"
	"github.com/hasbyte1/go-value-utils/value"
)

func dig(cfg *DigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dig.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dig requires a key", cli.ErrUsage)
	}
	key := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := readDoc(cfg.logger(), file)
		if err != nil {
			return err
		}
		if err := writeDig(cc.Out, doc, key, cfg.Indent); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

// writeDig writes deep.Dig(doc, key). doc must be a Mapping.
func writeDig(w io.Writer, doc value.Value, key string, indent bool) error {
	root, ok := doc.(*value.Mapping)
	if !ok {
		return fmt.Errorf("document is a %s, not a mapping", value.KindOf(doc))
	}
	return writeValue(w, deep.Dig(root, key), indent)
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a dot path", cli.ErrUsage)
	}
	path := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := readDoc(cfg.logger(), file)
		if err != nil {
			return err
		}
		if err := writeValue(cc.Out, deep.Get(doc, path), cfg.Indent); err != nil {
			return err
		}
	}
	return nil
}
