package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/jfield/jfield/ir"
	"github.com/jfield/jfield/load"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: keys requires a file", cli.ErrUsage)
	}
	cfg.setupColor()
	doc, err := load.File(args[0])
	if err != nil {
		return err
	}
	if doc.Type != ir.ObjectType {
		return fmt.Errorf("%s: top level is %s, not an object", args[0], doc.Type)
	}
	if !cfg.Recursive {
		for i, f := range doc.Fields {
			fmt.Fprintf(cc.Out, "%s: %s\n", f.String, color.CyanString(kindString(doc.Values[i])))
		}
		return nil
	}
	return doc.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Parent == nil {
			return true, nil
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", y.Path(), color.CyanString(kindString(y)))
		return true, nil
	})
}

func kindString(y *ir.Node) string {
	if y.Type != ir.NumberType {
		return y.Type.String()
	}
	switch {
	case y.Float64 != nil:
		return "Number (float)"
	case y.Uint64 != nil:
		return "Number (uint)"
	default:
		return "Number (int)"
	}
}
