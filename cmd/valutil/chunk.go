package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/hasbyte1/go-value-utils/chunk"
	"github.com/hasbyte1/go-value-utils/value"
)

func chunkDocs(cfg *ChunkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Chunk.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		seq, err := readSequence(cfg.logger(), file)
		if err != nil {
			return err
		}
		err = writeChunks(cc.Out, seq, cfg.Size, cfg.Indent)
		if errors.Is(err, chunk.ErrInvalidSize) {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeChunks writes each group of size elements of seq as a JSON array.
func writeChunks(w io.Writer, seq *value.Sequence, size int, indent bool) error {
	c, err := chunk.New(seq.Values(), size)
	if err != nil {
		return err
	}
	defer c.Stop()
	for group := range c.All() {
		if err := writeValue(w, value.NewSequence(group...), indent); err != nil {
			return err
		}
	}
	return nil
}
