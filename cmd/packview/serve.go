package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"

	"github.com/packview/packview"
	"github.com/packview/packview/posmap"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, handle)
	theLog.Info("serving on stdio")
	<-conn.Done()
	return conn.Err()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type wireParams struct {
	Data []byte `json:"data"`
}

type textParams struct {
	Text string `json:"text"`
}

type rangeParams struct {
	Data  []byte `json:"data"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type textResult struct {
	Text string `json:"text"`
}

type wireResult struct {
	Data []byte `json:"data"`
}

type mappingResult struct {
	Text     string       `json:"text"`
	Mappings []rpcMapping `json:"mappings"`
}

type rpcMapping struct {
	TextStart int    `json:"textStart"`
	TextEnd   int    `json:"textEnd"`
	ByteStart int    `json:"byteStart"`
	ByteEnd   int    `json:"byteEnd"`
	Kind      string `json:"kind"`
}

type rangeResult struct {
	Found     bool `json:"found"`
	ByteStart int  `json:"byteStart"`
	ByteEnd   int  `json:"byteEnd"`
	HexStart  int  `json:"hexStart"`
	HexEnd    int  `json:"hexEnd"`
}

func handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	theLog.Info("request", "method", req.Method())
	switch req.Method() {
	case "packview/toJSON":
		var p wireParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
		}
		text, err := packview.WireToJSON(p.Data)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, textResult{Text: text}, nil)

	case "packview/toWire":
		var p textParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
		}
		data, err := packview.JSONToWire([]byte(p.Text))
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, wireResult{Data: data}, nil)

	case "packview/mappings":
		var p wireParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
		}
		text, maps, err := packview.BuildMappings(p.Data)
		if err != nil {
			return reply(ctx, nil, err)
		}
		res := mappingResult{Text: text, Mappings: make([]rpcMapping, 0, len(maps))}
		for _, m := range maps {
			res.Mappings = append(res.Mappings, rpcMapping{
				TextStart: m.TextStart,
				TextEnd:   m.TextEnd,
				ByteStart: m.ByteStart,
				ByteEnd:   m.ByteEnd,
				Kind:      m.Kind.String(),
			})
		}
		return reply(ctx, res, nil)

	case "packview/byteRange":
		var p rangeParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
		}
		_, maps, err := packview.BuildMappings(p.Data)
		if err != nil {
			return reply(ctx, nil, err)
		}
		start, end, ok := posmap.ByteRangeForTextRange(maps, p.Start, p.End)
		if !ok {
			return reply(ctx, rangeResult{}, nil)
		}
		hexStart, hexEnd := posmap.HexCharRange(start, end)
		return reply(ctx, rangeResult{
			Found:     true,
			ByteStart: start,
			ByteEnd:   end,
			HexStart:  hexStart,
			HexEnd:    hexEnd,
		}, nil)

	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}
