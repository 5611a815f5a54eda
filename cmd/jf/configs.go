package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// setupColor disables color on pipes unless -color forces it.
func (cfg *MainConfig) setupColor() {
	if cfg.Color {
		color.NoColor = false
		return
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

type GetConfig struct {
	*MainConfig
	Type    string `cli:"name=t desc='field type: int32 uint32 int64 uint64 float32 float64 bool string'"`
	Default string `cli:"name=d desc='default value when absent or mismatched'"`
	Coerce  bool   `cli:"name=s desc='accept numbers stored as strings'"`

	Get *cli.Command
}

type ValidConfig struct {
	*MainConfig
	Type string `cli:"name=t desc='field type, also: array, object'"`

	Valid *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Recursive bool `cli:"name=r desc='list nested paths too'"`

	Keys *cli.Command
}
