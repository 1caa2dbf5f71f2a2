package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

func readFileOrStdin(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// readWireFile reads MessagePack bytes, decoding hex text first when
// the -x flag is set.
func readWireFile(cfg *MainConfig, cc *cli.Context, path string) ([]byte, error) {
	d, err := readFileOrStdin(cc, path)
	if err != nil {
		return nil, err
	}
	if !cfg.Hex {
		return d, nil
	}
	return parseHex(d)
}

func parseHex(d []byte) ([]byte, error) {
	fields := strings.Fields(string(d))
	raw, err := hex.DecodeString(strings.Join(fields, ""))
	if err != nil {
		return nil, fmt.Errorf("bad hex input: %w", err)
	}
	return raw, nil
}
