package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/packview/packview/ir"
	"github.com/packview/packview/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode renders node as indented JSON text. The output carries no
// trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	case ir.BinaryType, ir.ExtType:
		return encodeBytes(node, w, es)
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}

// encodeObject renders fields in stored order; keys are never sorted or
// deduplicated.
func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object with %d fields, %d values",
			ErrEncoding, len(node.Fields), len(node.Values))
	}
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, yField, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeComma(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeComma(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

// encodeBytes renders binary and ext payloads as arrays of byte values,
// an opaque passthrough of the raw bytes.
func encodeBytes(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Bytes) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, b := range node.Bytes {
		if err := writeNL(w, es); err != nil {
			return err
		}
		v := applyValueColor(es, ir.NumberType, strconv.Itoa(int(b)))
		if err := writeString(w, v); err != nil {
			return err
		}
		if i < len(node.Bytes)-1 {
			if err := writeComma(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.Quote(node.String)
	v = applyValueColor(es, ir.StringType, v)
	return writeString(w, v)
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := NumberText(node)
	if err != nil {
		return err
	}
	v = applyValueColor(es, ir.NumberType, v)
	return writeString(w, v)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	v = applyValueColor(es, ir.BoolType, v)
	return writeString(w, v)
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := applyValueColor(es, ir.NullType, "null")
	return writeString(w, v)
}

func writeField(w io.Writer, yField *ir.Node, es *EncState) error {
	if yField.Type != ir.StringType {
		return fmt.Errorf("%w: object key of type %s", ErrEncoding, yField.Type)
	}
	f := token.Quote(yField.String)
	sep := ":"
	if es.Color != nil {
		f = applyColor(es, ir.ObjectType, FieldColor, f)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+sep+" ")
}

func writeComma(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ","
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

// NumberText returns the token text for a number node. Integers print
// their exact digit sequence at any magnitude. Floats print the shortest
// decimal that round-trips to the identical IEEE-754 bits, with a forced
// ".0" suffix when that form has neither fraction nor exponent, so a
// float-origin whole number is never reparsed as an integer.
func NumberText(node *ir.Node) (string, error) {
	switch {
	case node.Uint64 != nil:
		return strconv.FormatUint(*node.Uint64, 10), nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		return FloatText(*node.Float64), nil
	case node.Digits != "":
		return node.Digits, nil
	default:
		return "", fmt.Errorf("%w: number node without value", ErrEncoding)
	}
}

// FloatText renders f as a JSON float token. JSON has no NaN or
// infinities; those render as "0.0", keeping float kind.
func FloatText(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.0"
	}
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

// ScalarText returns the rendered token for a leaf node: digits, a quoted
// string including quotes, or true/false/null. Container, binary and ext
// nodes have no single token.
func ScalarText(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.StringType:
		return token.Quote(node.String), nil
	case ir.NumberType:
		return NumberText(node)
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NullType:
		return "null", nil
	default:
		return "", fmt.Errorf("%w: %s is not a scalar", ErrEncoding, node.Type)
	}
}
