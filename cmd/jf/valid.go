package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/jfield/jfield"
	"github.com/jfield/jfield/load"
)

func valid(cfg *ValidConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Valid.Parse(cc, args)
	if err != nil {
		cfg.Valid.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: valid requires a file and a key", cli.ErrUsage)
	}
	cfg.setupColor()
	doc, err := load.File(args[0])
	if err != nil {
		return err
	}
	key := args[1]
	typ := cfg.Type
	if typ == "" {
		typ = "string"
	}

	var ok bool
	switch typ {
	case "array":
		ok = jfield.ValidArray(doc, key)
	case "object":
		ok = jfield.ValidObject(doc, key)
	case "int32":
		ok = jfield.Valid[int32](doc, key)
	case "uint32":
		ok = jfield.Valid[uint32](doc, key)
	case "int64":
		ok = jfield.Valid[int64](doc, key)
	case "uint64":
		ok = jfield.Valid[uint64](doc, key)
	case "float32":
		ok = jfield.Valid[float32](doc, key)
	case "float64":
		ok = jfield.Valid[float64](doc, key)
	case "bool":
		ok = jfield.Valid[bool](doc, key)
	case "string":
		ok = jfield.Valid[string](doc, key)
	default:
		return fmt.Errorf("%w: unknown type %q", cli.ErrUsage, typ)
	}
	if !ok {
		fmt.Fprintln(cc.Out, color.RedString("invalid"))
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, color.GreenString("valid"))
	return nil
}
