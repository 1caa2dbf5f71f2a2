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

	return cli.NewCommandAt(&cfg.Main, "packview").
		WithSynopsis("packview [opts] command [opts]").
		WithDescription("packview is a tool for viewing MessagePack data as JSON and back.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pvMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			PackCommand(cfg),
			ConvertCommand(cfg),
			MapCommand(cfg),
			CheckCommand(cfg),
			ServeCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view MessagePack files as JSON text in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Pack, "pack").
		WithAliases("p").
		WithSynopsis("pack [files]").
		WithDescription("pack JSON text files into MessagePack").
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Map, "map").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("map [-sel start:end] [file]").
		WithDescription("correlate JSON text positions with wire byte ranges").
		WithRun(func(cc *cli.Context, args []string) error {
			return mapCmd(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("check JSON files against their canonical round-trip rendering").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithOpts(opts...).
		WithSynopsis("serve [-gops]").
		WithDescription("serve conversions and mappings over JSON-RPC on stdio").
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
