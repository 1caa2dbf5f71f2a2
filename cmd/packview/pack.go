package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/packview/packview"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := packFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func packFile(cfg *PackConfig, cc *cli.Context, w io.Writer, file string) error {
	text, err := readFileOrStdin(cc, file)
	if err != nil {
		return err
	}
	data, err := packview.JSONToWire(text)
	if err != nil {
		return fmt.Errorf("error packing %s: %w", file, err)
	}
	if cfg.Hex {
		_, err = fmt.Fprintf(w, "%s\n", packview.HexDump(data))
		return err
	}
	_, err = w.Write(data)
	return err
}
