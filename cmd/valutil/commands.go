package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "valutil").
		WithSynopsis("valutil [opts] command [opts]").
		WithDescription("valutil compares, searches, chunks and deduplicates JSON and YAML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return valutilMain(cfg, cc, args)
		}).
		WithSubs(
			EqualCommand(cfg),
			DigCommand(cfg),
			GetCommand(cfg),
			ChunkCommand(cfg),
			UniqueCommand(cfg),
			DiffCommand(cfg),
			FingerprintCommand(cfg),
			AccumulateCommand(cfg))
}

func EqualCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqualConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Equal, "equal").
		WithAliases("eq").
		WithSynopsis("equal [-d] a b").
		WithDescription("report whether two documents are deeply equal; exits 1 when they are not").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return equal(cfg, cc, args)
		})
}

func DigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DigConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dig, "dig").
		WithSynopsis("dig <key> [files]").
		WithDescription("find the first value stored under key at any depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return dig(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <dot.path> [files]").
		WithDescription("get the value at a dot-separated path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ChunkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChunkConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Chunk, "chunk").
		WithSynopsis("chunk -n <size> [files]").
		WithDescription("split a sequence document into groups of size elements, one group per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return chunkDocs(cfg, cc, args)
		})
}

func UniqueCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UniqueConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unique, "unique").
		WithAliases("u").
		WithSynopsis("unique [-dups | -check | -distinct] [files]").
		WithDescription("print the elements of a sequence document that occur exactly once").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unique(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-x] a b").
		WithDescription("print the elements of sequence a that do not occur in sequence b").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FingerprintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FingerprintConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fingerprint, "fingerprint").
		WithAliases("fp").
		WithSynopsis("fingerprint [files]").
		WithDescription("print a key-order independent blake2b-256 digest of each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return fingerprint(cfg, cc, args)
		})
}

func AccumulateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AccumulateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Accumulate, "accumulate").
		WithAliases("acc").
		WithSynopsis("accumulate [files]").
		WithDescription("print the running totals of a sequence of numbers").
		WithRun(func(cc *cli.Context, args []string) error {
			return accumulate(cfg, cc, args)
		})
}
