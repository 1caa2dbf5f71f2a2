package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/packview/packview"
	"github.com/packview/packview/posmap"
)

func mapCmd(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		return err
	}
	file := "-"
	switch len(args) {
	case 0:
	case 1:
		file = args[0]
	default:
		return fmt.Errorf("%w: map takes at most one file", cli.ErrUsage)
	}
	data, err := readWireFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	text, maps, err := packview.BuildMappings(data)
	if err != nil {
		return err
	}
	if cfg.Sel == "" {
		fmt.Fprintf(cc.Out, "%s\n", text)
		for _, m := range maps {
			fmt.Fprintf(cc.Out, "%s\n", m)
		}
		return nil
	}
	selStart, selEnd, err := parseSel(cfg.Sel)
	if err != nil {
		return err
	}
	start, end, ok := posmap.ByteRangeForTextRange(maps, selStart, selEnd)
	if !ok {
		fmt.Fprintf(cc.Out, "no bytes for text %d..%d\n", selStart, selEnd)
		return nil
	}
	hexStart, hexEnd := posmap.HexCharRange(start, end)
	fmt.Fprintf(cc.Out, "text %d..%d maps to bytes %d..%d (hex chars %d..%d)\n",
		selStart, selEnd, start, end, hexStart, hexEnd)
	return nil
}

func parseSel(sel string) (int, int, error) {
	lo, hi, ok := strings.Cut(sel, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: -sel wants start:end, got %q", cli.ErrUsage, sel)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad selection start %q", cli.ErrUsage, lo)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad selection end %q", cli.ErrUsage, hi)
	}
	return start, end, nil
}
