// Package parse provides JSON parsing support.
package parse

import (
	"fmt"
	"strconv"

	"github.com/packview/packview/ir"
	"github.com/packview/packview/token"
)

func Parse(d []byte) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	off := 0
	res, err := parseValue(toks, nil, &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, fmt.Errorf("%w: trailing %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	return res, nil
}

func parseValue(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: premature end of input", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		objY := &ir.Node{Type: ir.ObjectType, Parent: p}
		return parseObj(toks, objY, pi)
	case token.TLSquare:
		*pi++
		arrY := &ir.Node{Type: ir.ArrayType, Parent: p}
		return parseArr(toks, arrY, pi)
	case token.TString:
		*pi++
		sy := ir.FromString(t.String())
		sy.Parent = p
		return sy, nil
	case token.TInteger:
		*pi++
		iy, err := integerNode(t)
		if err != nil {
			return nil, err
		}
		iy.Parent = p
		return iy, nil
	case token.TFloat:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float (%w) %s", ErrParse, err, t.Pos)
		}
		fy := ir.FromFloat(f)
		fy.Parent = p
		return fy, nil
	case token.TTrue:
		*pi++
		b := ir.FromBool(true)
		b.Parent = p
		return b, nil
	case token.TFalse:
		*pi++
		b := ir.FromBool(false)
		b.Parent = p
		return b, nil
	case token.TNull:
		*pi++
		res := ir.Null()
		res.Parent = p
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s (%s)",
			ErrParse, string(t.Bytes), t.Pos, t.Type)
	}
}

// integerNode builds a number node from an integer token. The literal's
// width class decides the representation: non-negative values keep an
// unsigned magnitude, negatives a signed one, and values outside 64-bit
// range keep their exact digit sequence.
func integerNode(t *token.Token) (*ir.Node, error) {
	cls, err := token.Classify(t.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, err, t.Pos)
	}
	if cls == token.BigIntClass {
		return ir.FromDigits(string(t.Bytes)), nil
	}
	if t.Bytes[0] == '-' {
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer (%w) %s", ErrParse, err, t.Pos)
		}
		return ir.FromInt(i), nil
	}
	u, err := strconv.ParseUint(string(t.Bytes), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid integer (%w) %s", ErrParse, err, t.Pos)
	}
	return ir.FromUint(u), nil
}

func parseObj(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return ir.FromKeyValsAt(p, kvs), nil
	}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: premature end of object", ErrParse)
		}
		tok := &toks[*pi]
		if tok.Type != token.TString {
			return nil, fmt.Errorf("%w: expected object key, got %q %s",
				ErrParse, string(tok.Bytes), tok.Pos)
		}
		key := ir.FromString(tok.String())
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':' after key %s", ErrParse, tok.Pos)
		}
		*pi++
		val, err := parseValue(toks, p, pi)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: premature end of object %s", ErrParse, tok.Pos)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return ir.FromKeyValsAt(p, kvs), nil
		default:
			sep := &toks[*pi]
			return nil, fmt.Errorf("%w: expected ',' or '}', got %q %s",
				ErrParse, string(sep.Bytes), sep.Pos)
		}
	}
}

func parseArr(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return p, nil
	}
	for {
		elt, err := parseValue(toks, p, pi)
		if err != nil {
			return nil, err
		}
		elt.ParentIndex = len(p.Values)
		p.Values = append(p.Values, elt)
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: premature end of array", ErrParse)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return p, nil
		default:
			sep := &toks[*pi]
			return nil, fmt.Errorf("%w: expected ',' or ']', got %q %s",
				ErrParse, string(sep.Bytes), sep.Pos)
		}
	}
}
