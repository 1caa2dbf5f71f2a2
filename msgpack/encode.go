package msgpack

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/packview/packview/format"
	"github.com/packview/packview/ir"
)

// Encode serializes a value tree to MessagePack bytes, always choosing
// the shortest marker that represents each scalar exactly.
func Encode(node *ir.Node) ([]byte, error) {
	return Append(nil, node)
}

func Append(dst []byte, node *ir.Node) ([]byte, error) {
	switch node.Type {
	case ir.NullType:
		return append(dst, byte(format.Nil)), nil
	case ir.BoolType:
		if node.Bool {
			return append(dst, byte(format.True)), nil
		}
		return append(dst, byte(format.False)), nil
	case ir.NumberType:
		return appendNumber(dst, node)
	case ir.StringType:
		return appendString(dst, node.String), nil
	case ir.BinaryType:
		return appendBin(dst, node.Bytes)
	case ir.ExtType:
		return appendExt(dst, node.ExtKind, node.Bytes)
	case ir.ArrayType:
		return appendArray(dst, node)
	case ir.ObjectType:
		return appendMap(dst, node)
	default:
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}

func appendNumber(dst []byte, node *ir.Node) ([]byte, error) {
	switch {
	case node.Uint64 != nil:
		return appendUint(dst, *node.Uint64), nil
	case node.Int64 != nil:
		i := *node.Int64
		if i >= 0 {
			return appendUint(dst, uint64(i)), nil
		}
		return appendNegInt(dst, i), nil
	case node.Float64 != nil:
		// only ever the 64-bit float marker, so round-trips stay exact
		dst = append(dst, byte(format.Float64))
		return binary.BigEndian.AppendUint64(dst, math.Float64bits(*node.Float64)), nil
	case node.Digits != "":
		return nil, fmt.Errorf("%w: integer %s exceeds 64-bit range",
			ErrEncoding, node.Digits)
	default:
		return nil, fmt.Errorf("%w: number node without value", ErrEncoding)
	}
}

func appendUint(dst []byte, u uint64) []byte {
	switch {
	case u <= 0x7f:
		return append(dst, byte(u))
	case u <= math.MaxUint8:
		return append(dst, byte(format.Uint8), byte(u))
	case u <= math.MaxUint16:
		dst = append(dst, byte(format.Uint16))
		return binary.BigEndian.AppendUint16(dst, uint16(u))
	case u <= math.MaxUint32:
		dst = append(dst, byte(format.Uint32))
		return binary.BigEndian.AppendUint32(dst, uint32(u))
	default:
		dst = append(dst, byte(format.Uint64))
		return binary.BigEndian.AppendUint64(dst, u)
	}
}

func appendNegInt(dst []byte, i int64) []byte {
	switch {
	case i >= -32:
		return append(dst, byte(int8(i)))
	case i >= math.MinInt8:
		return append(dst, byte(format.Int8), byte(int8(i)))
	case i >= math.MinInt16:
		dst = append(dst, byte(format.Int16))
		return binary.BigEndian.AppendUint16(dst, uint16(int16(i)))
	case i >= math.MinInt32:
		dst = append(dst, byte(format.Int32))
		return binary.BigEndian.AppendUint32(dst, uint32(int32(i)))
	default:
		dst = append(dst, byte(format.Int64))
		return binary.BigEndian.AppendUint64(dst, uint64(i))
	}
}

func appendString(dst []byte, s string) []byte {
	n := len(s)
	switch {
	case n < 32:
		dst = append(dst, byte(format.FixstrLow)|byte(n))
	case n <= math.MaxUint8:
		dst = append(dst, byte(format.Str8), byte(n))
	case n <= math.MaxUint16:
		dst = append(dst, byte(format.Str16))
		dst = binary.BigEndian.AppendUint16(dst, uint16(n))
	default:
		dst = append(dst, byte(format.Str32))
		dst = binary.BigEndian.AppendUint32(dst, uint32(n))
	}
	return append(dst, s...)
}

func appendBin(dst []byte, d []byte) ([]byte, error) {
	n := len(d)
	switch {
	case n <= math.MaxUint8:
		dst = append(dst, byte(format.Bin8), byte(n))
	case n <= math.MaxUint16:
		dst = append(dst, byte(format.Bin16))
		dst = binary.BigEndian.AppendUint16(dst, uint16(n))
	default:
		dst = append(dst, byte(format.Bin32))
		dst = binary.BigEndian.AppendUint32(dst, uint32(n))
	}
	return append(dst, d...), nil
}

func appendExt(dst []byte, kind int8, d []byte) ([]byte, error) {
	switch len(d) {
	case 1:
		dst = append(dst, byte(format.Fixext1))
	case 2:
		dst = append(dst, byte(format.Fixext2))
	case 4:
		dst = append(dst, byte(format.Fixext4))
	case 8:
		dst = append(dst, byte(format.Fixext8))
	case 16:
		dst = append(dst, byte(format.Fixext16))
	default:
		n := len(d)
		switch {
		case n <= math.MaxUint8:
			dst = append(dst, byte(format.Ext8), byte(n))
		case n <= math.MaxUint16:
			dst = append(dst, byte(format.Ext16))
			dst = binary.BigEndian.AppendUint16(dst, uint16(n))
		default:
			dst = append(dst, byte(format.Ext32))
			dst = binary.BigEndian.AppendUint32(dst, uint32(n))
		}
	}
	dst = append(dst, byte(kind))
	return append(dst, d...), nil
}

func appendArray(dst []byte, node *ir.Node) ([]byte, error) {
	n := len(node.Values)
	switch {
	case n < 16:
		dst = append(dst, byte(format.FixarrLow)|byte(n))
	case n <= math.MaxUint16:
		dst = append(dst, byte(format.Array16))
		dst = binary.BigEndian.AppendUint16(dst, uint16(n))
	default:
		dst = append(dst, byte(format.Array32))
		dst = binary.BigEndian.AppendUint32(dst, uint32(n))
	}
	var err error
	for _, v := range node.Values {
		dst, err = Append(dst, v)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// appendMap writes entries key-then-value in stored order, with no
// reordering or deduplication.
func appendMap(dst []byte, node *ir.Node) ([]byte, error) {
	if len(node.Fields) != len(node.Values) {
		return nil, fmt.Errorf("%w: object with %d fields, %d values",
			ErrEncoding, len(node.Fields), len(node.Values))
	}
	n := len(node.Fields)
	switch {
	case n < 16:
		dst = append(dst, byte(format.FixmapLow)|byte(n))
	case n <= math.MaxUint16:
		dst = append(dst, byte(format.Map16))
		dst = binary.BigEndian.AppendUint16(dst, uint16(n))
	default:
		dst = append(dst, byte(format.Map32))
		dst = binary.BigEndian.AppendUint32(dst, uint32(n))
	}
	var err error
	for i, f := range node.Fields {
		if f.Type != ir.StringType {
			return nil, fmt.Errorf("%w: map key of type %s", ErrEncoding, f.Type)
		}
		dst = appendString(dst, f.String)
		dst, err = Append(dst, node.Values[i])
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
