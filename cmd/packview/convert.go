package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/packview/packview"
	"github.com/packview/packview/format"
)

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command

	InFormat, OutFormat *format.Format
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, wire/w/msgpack",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, wire/w/msgpack",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("co").
		WithOpts(opts...).
		WithSynopsis("convert [-I fmt] [-O fmt] [files]").
		WithDescription("convert between JSON text and MessagePack").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func (cfg *ConvertConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := convertFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, w io.Writer, file string) error {
	in := formatOf(cfg.InFormat, file, format.JSONFormat)
	out := format.WireFormat
	if cfg.OutFormat != nil {
		out = *cfg.OutFormat
	} else if in.IsWire() {
		out = format.JSONFormat
	}

	var (
		data []byte
		err  error
	)
	if in.IsWire() {
		data, err = readWireFile(cfg.MainConfig, cc, file)
	} else {
		data, err = readFileOrStdin(cc, file)
	}
	if err != nil {
		return err
	}
	if in.IsJSON() {
		data, err = packview.JSONToWire(data)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	if out.IsWire() {
		if cfg.Hex {
			_, err = fmt.Fprintf(w, "%s\n", packview.HexDump(data))
			return err
		}
		_, err = w.Write(data)
		return err
	}
	text, err := packview.WireToJSON(data)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", file, err)
	}
	_, err = fmt.Fprintf(w, "%s\n", text)
	return err
}

// formatOf picks a format from an explicit flag, then the file suffix,
// then the fallback.
func formatOf(flag *format.Format, file string, fallback format.Format) format.Format {
	if flag != nil {
		return *flag
	}
	ext := filepath.Ext(file)
	for _, f := range format.AllFormats() {
		if f.Suffix() == ext {
			return f
		}
	}
	return fallback
}
