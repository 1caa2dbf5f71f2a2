package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/packview/packview"
	"github.com/packview/packview/encode"
	"github.com/packview/packview/msgpack"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	data, err := readWireFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	node, err := msgpack.Decode(data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	if !cfg.Maps {
		return nil
	}
	_, maps, err := packview.BuildMappings(data)
	if err != nil {
		return err
	}
	for _, m := range maps {
		if _, err := fmt.Fprintf(w, "%s\n", m); err != nil {
			return err
		}
	}
	return nil
}
