package main

import "github.com/scott-cotton/cli"

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jf").
		WithSynopsis("jf [opts] command [opts]").
		WithDescription("jf reads typed fields out of JSON and YAML documents.").
		WithOpts(opts...).
		WithSubs(
			GetCommand(cfg),
			ValidCommand(cfg),
			KeysCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-t type] [-d default] [-s] file key").
		WithDescription("Extract a typed top-level field, falling back to a default").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ValidCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Valid, "valid").
		WithAliases("v").
		WithSynopsis("valid [-t type] file key").
		WithDescription("Check that a top-level field exists and matches a type").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return valid(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [-r] file").
		WithDescription("List a document's keys with their kinds").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}
