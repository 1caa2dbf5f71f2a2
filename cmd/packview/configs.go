package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/packview/packview/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Hex   bool `cli:"name=x aliases=hex desc='wire i/o as space-separated hex text'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
	Maps bool `cli:"name=maps desc='print token to byte-range mappings after the text'"`
}

type PackConfig struct {
	*MainConfig
	Pack *cli.Command
}

type MapConfig struct {
	*MainConfig
	Map *cli.Command
	Sel string `cli:"name=sel desc='text selection start:end to resolve to a byte range'"`
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Serve *cli.Command
	Gops  bool `cli:"name=gops desc='start a gops debug agent'"`
}
