package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/packview/packview"
	"github.com/packview/packview/encode"
	"github.com/packview/packview/msgpack"
)

// check reparses each file through the wire format and compares the
// canonical rendering against the input, showing a diff on mismatch.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	dirty := 0
	for _, file := range args {
		ok, err := checkFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if !ok {
			dirty++
		}
	}
	if dirty > 0 {
		return fmt.Errorf("%d of %d files not canonical", dirty, len(args))
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (bool, error) {
	text, err := readFileOrStdin(cc, file)
	if err != nil {
		return false, err
	}
	data, err := packview.JSONToWire(text)
	if err != nil {
		return false, fmt.Errorf("error packing %s: %w", file, err)
	}
	node, err := msgpack.Decode(data)
	if err != nil {
		return false, fmt.Errorf("error unpacking %s: %w", file, err)
	}
	canonical := encode.MustString(node)
	got := strings.TrimRight(string(text), "\n")
	if got == canonical {
		return true, nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(got, canonical, false)
	fmt.Fprintf(cc.Out, "%s:\n%s\n", file, dmp.DiffPrettyText(diffs))
	return false, nil
}
