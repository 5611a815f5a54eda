package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/jfield/jfield"
	"github.com/jfield/jfield/ir"
	"github.com/jfield/jfield/load"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a file and a key", cli.ErrUsage)
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

	var out any
	switch typ {
	case "int32":
		def, err := intDefault(cfg.Default, 32)
		if err != nil {
			return err
		}
		out = num(cfg, doc, key, int32(def))
	case "uint32":
		def, err := uintDefault(cfg.Default, 32)
		if err != nil {
			return err
		}
		out = num(cfg, doc, key, uint32(def))
	case "int64":
		def, err := intDefault(cfg.Default, 64)
		if err != nil {
			return err
		}
		out = num(cfg, doc, key, def)
	case "uint64":
		def, err := uintDefault(cfg.Default, 64)
		if err != nil {
			return err
		}
		out = num(cfg, doc, key, def)
	case "float32":
		def, err := floatDefault(cfg.Default, 32)
		if err != nil {
			return err
		}
		out = num(cfg, doc, key, float32(def))
	case "float64":
		def, err := floatDefault(cfg.Default, 64)
		if err != nil {
			return err
		}
		out = num(cfg, doc, key, def)
	case "bool":
		if cfg.Coerce {
			return fmt.Errorf("%w: -s does not apply to bool", cli.ErrUsage)
		}
		def := false
		if cfg.Default != "" {
			def, err = strconv.ParseBool(cfg.Default)
			if err != nil {
				return fmt.Errorf("%w: bad default %q", cli.ErrUsage, cfg.Default)
			}
		}
		out = jfield.Extract(doc, key, def)
	case "string":
		if cfg.Coerce {
			return fmt.Errorf("%w: -s does not apply to string", cli.ErrUsage)
		}
		out = jfield.Extract(doc, key, cfg.Default)
	default:
		return fmt.Errorf("%w: unknown type %q", cli.ErrUsage, typ)
	}
	fmt.Fprintln(cc.Out, out)
	return nil
}

func num[T jfield.Numeric](cfg *GetConfig, doc *ir.Node, key string, def T) T {
	if cfg.Coerce {
		return jfield.ExtractNumeric(doc, key, def)
	}
	return jfield.Extract(doc, key, def)
}

func intDefault(s string, bits int) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: bad default %q", cli.ErrUsage, s)
	}
	return v, nil
}

func uintDefault(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: bad default %q", cli.ErrUsage, s)
	}
	return v, nil
}

func floatDefault(s string, bits int) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: bad default %q", cli.ErrUsage, s)
	}
	return v, nil
}
