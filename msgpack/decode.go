package msgpack

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/packview/packview/encode"
	"github.com/packview/packview/format"
	"github.com/packview/packview/ir"
)

// Decode parses a complete MessagePack buffer into a value tree. Input
// with bytes remaining after the root value fails with ErrTrailing.
func Decode(d []byte) (*ir.Node, error) {
	node, pos, err := ReadValue(d, 0)
	if err != nil {
		return nil, err
	}
	if pos != len(d) {
		return nil, decodeErr(ErrTrailing, pos, format.Marker(d[pos]))
	}
	return node, nil
}

// ReadValue reads one value starting at pos and returns it with the
// position one past its encoding. Dispatch is strictly on the leading
// marker byte; reserved or unknown markers fail with a DecodeErr naming
// the offset and marker.
func ReadValue(d []byte, pos int) (*ir.Node, int, error) {
	if pos >= len(d) {
		return nil, 0, decodeErr(ErrTruncated, pos, 0)
	}
	c := d[pos]
	m := format.Marker(c)
	switch {
	case m.IsPosFixint():
		return ir.FromUint(uint64(c)), pos + 1, nil
	case m.IsNegFixint():
		return ir.FromInt(int64(int8(c))), pos + 1, nil
	case m.IsFixmap():
		return readMap(d, pos+1, int(c&format.FixmapMask))
	case m.IsFixarr():
		return readArray(d, pos+1, int(c&format.FixarrMask))
	case m.IsFixstr():
		return readStr(d, pos, 1, int(c&format.FixstrMask))
	}

	switch m {
	case format.Nil:
		return ir.Null(), pos + 1, nil
	case format.False:
		return ir.FromBool(false), pos + 1, nil
	case format.True:
		return ir.FromBool(true), pos + 1, nil

	case format.Float32:
		if err := need(d, pos, 1, 4, m); err != nil {
			return nil, 0, err
		}
		f := float64(math.Float32frombits(binary.BigEndian.Uint32(d[pos+1:])))
		return ir.FromWireFloat(f), pos + 5, nil
	case format.Float64:
		if err := need(d, pos, 1, 8, m); err != nil {
			return nil, 0, err
		}
		f := math.Float64frombits(binary.BigEndian.Uint64(d[pos+1:]))
		return ir.FromWireFloat(f), pos + 9, nil

	case format.Uint8:
		if err := need(d, pos, 1, 1, m); err != nil {
			return nil, 0, err
		}
		return ir.FromUint(uint64(d[pos+1])), pos + 2, nil
	case format.Uint16:
		if err := need(d, pos, 1, 2, m); err != nil {
			return nil, 0, err
		}
		return ir.FromUint(uint64(binary.BigEndian.Uint16(d[pos+1:]))), pos + 3, nil
	case format.Uint32:
		if err := need(d, pos, 1, 4, m); err != nil {
			return nil, 0, err
		}
		return ir.FromUint(uint64(binary.BigEndian.Uint32(d[pos+1:]))), pos + 5, nil
	case format.Uint64:
		if err := need(d, pos, 1, 8, m); err != nil {
			return nil, 0, err
		}
		return ir.FromUint(binary.BigEndian.Uint64(d[pos+1:])), pos + 9, nil

	case format.Int8:
		if err := need(d, pos, 1, 1, m); err != nil {
			return nil, 0, err
		}
		return ir.FromInt(int64(int8(d[pos+1]))), pos + 2, nil
	case format.Int16:
		if err := need(d, pos, 1, 2, m); err != nil {
			return nil, 0, err
		}
		return ir.FromInt(int64(int16(binary.BigEndian.Uint16(d[pos+1:])))), pos + 3, nil
	case format.Int32:
		if err := need(d, pos, 1, 4, m); err != nil {
			return nil, 0, err
		}
		return ir.FromInt(int64(int32(binary.BigEndian.Uint32(d[pos+1:])))), pos + 5, nil
	case format.Int64:
		if err := need(d, pos, 1, 8, m); err != nil {
			return nil, 0, err
		}
		return ir.FromInt(int64(binary.BigEndian.Uint64(d[pos+1:]))), pos + 9, nil

	case format.Str8:
		n, err := lenPrefix(d, pos, 1, m)
		if err != nil {
			return nil, 0, err
		}
		return readStr(d, pos, 2, n)
	case format.Str16:
		n, err := lenPrefix(d, pos, 2, m)
		if err != nil {
			return nil, 0, err
		}
		return readStr(d, pos, 3, n)
	case format.Str32:
		n, err := lenPrefix(d, pos, 4, m)
		if err != nil {
			return nil, 0, err
		}
		return readStr(d, pos, 5, n)

	case format.Bin8:
		n, err := lenPrefix(d, pos, 1, m)
		if err != nil {
			return nil, 0, err
		}
		return readBin(d, pos, 2, n)
	case format.Bin16:
		n, err := lenPrefix(d, pos, 2, m)
		if err != nil {
			return nil, 0, err
		}
		return readBin(d, pos, 3, n)
	case format.Bin32:
		n, err := lenPrefix(d, pos, 4, m)
		if err != nil {
			return nil, 0, err
		}
		return readBin(d, pos, 5, n)

	case format.Fixext1:
		return readExt(d, pos, 2, 1)
	case format.Fixext2:
		return readExt(d, pos, 2, 2)
	case format.Fixext4:
		return readExt(d, pos, 2, 4)
	case format.Fixext8:
		return readExt(d, pos, 2, 8)
	case format.Fixext16:
		return readExt(d, pos, 2, 16)
	case format.Ext8:
		n, err := lenPrefix(d, pos, 1, m)
		if err != nil {
			return nil, 0, err
		}
		return readExt(d, pos, 3, n)
	case format.Ext16:
		n, err := lenPrefix(d, pos, 2, m)
		if err != nil {
			return nil, 0, err
		}
		return readExt(d, pos, 4, n)
	case format.Ext32:
		n, err := lenPrefix(d, pos, 4, m)
		if err != nil {
			return nil, 0, err
		}
		return readExt(d, pos, 6, n)

	case format.Array16:
		n, err := lenPrefix(d, pos, 2, m)
		if err != nil {
			return nil, 0, err
		}
		return readArray(d, pos+3, n)
	case format.Array32:
		n, err := lenPrefix(d, pos, 4, m)
		if err != nil {
			return nil, 0, err
		}
		return readArray(d, pos+5, n)
	case format.Map16:
		n, err := lenPrefix(d, pos, 2, m)
		if err != nil {
			return nil, 0, err
		}
		return readMap(d, pos+3, n)
	case format.Map32:
		n, err := lenPrefix(d, pos, 4, m)
		if err != nil {
			return nil, 0, err
		}
		return readMap(d, pos+5, n)

	default:
		return nil, 0, decodeErr(ErrMarker, pos, m)
	}
}

// need checks that skip header bytes plus n payload bytes follow pos.
func need(d []byte, pos, skip, n int, m format.Marker) error {
	if pos+skip+n > len(d) {
		return decodeErr(ErrTruncated, pos, m)
	}
	return nil
}

// lenPrefix reads a big-endian length of w bytes following the marker.
func lenPrefix(d []byte, pos, w int, m format.Marker) (int, error) {
	if err := need(d, pos, 1, w, m); err != nil {
		return 0, err
	}
	switch w {
	case 1:
		return int(d[pos+1]), nil
	case 2:
		return int(binary.BigEndian.Uint16(d[pos+1:])), nil
	default:
		return int(binary.BigEndian.Uint32(d[pos+1:])), nil
	}
}

func readStr(d []byte, pos, hdr, n int) (*ir.Node, int, error) {
	if err := need(d, pos, hdr, n, format.Marker(d[pos])); err != nil {
		return nil, 0, err
	}
	s := string(d[pos+hdr : pos+hdr+n])
	// lossy: invalid UTF-8 sequences are replaced, never dropped
	s = strings.ToValidUTF8(s, "�")
	return ir.FromString(s), pos + hdr + n, nil
}

func readBin(d []byte, pos, hdr, n int) (*ir.Node, int, error) {
	if err := need(d, pos, hdr, n, format.Marker(d[pos])); err != nil {
		return nil, 0, err
	}
	raw := make([]byte, n)
	copy(raw, d[pos+hdr:])
	return ir.FromBytes(raw), pos + hdr + n, nil
}

// readExt reads an ext payload; the type tag is the byte just before the
// payload.
func readExt(d []byte, pos, hdr, n int) (*ir.Node, int, error) {
	if err := need(d, pos, hdr, n, format.Marker(d[pos])); err != nil {
		return nil, 0, err
	}
	kind := int8(d[pos+hdr-1])
	raw := make([]byte, n)
	copy(raw, d[pos+hdr:])
	return ir.FromExt(kind, raw), pos + hdr + n, nil
}

func readArray(d []byte, pos, count int) (*ir.Node, int, error) {
	values := make([]*ir.Node, 0, min(count, 1024))
	for range count {
		v, end, err := ReadValue(d, pos)
		if err != nil {
			return nil, 0, err
		}
		values = append(values, v)
		pos = end
	}
	return ir.FromSlice(values), pos, nil
}

func readMap(d []byte, pos, count int) (*ir.Node, int, error) {
	kvs := make([]ir.KeyVal, 0, min(count, 1024))
	for range count {
		keyPos := pos
		key, end, err := ReadValue(d, pos)
		if err != nil {
			return nil, 0, err
		}
		pos = end
		field, err := KeyString(key)
		if err != nil {
			return nil, 0, decodeErr(err, keyPos, format.Marker(d[keyPos]))
		}
		val, end, err := ReadValue(d, pos)
		if err != nil {
			return nil, 0, err
		}
		pos = end
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(field), Val: val})
	}
	return ir.FromKeyVals(kvs), pos, nil
}

// KeyString converts a decoded map key to its JSON field string. String
// keys pass through; other scalar keys keep their token text, the way
// the JSON rendering prints them. Container, binary and ext keys are
// not representable as JSON fields.
func KeyString(key *ir.Node) (string, error) {
	switch key.Type {
	case ir.StringType:
		return key.String, nil
	case ir.NumberType, ir.BoolType, ir.NullType:
		s, err := encode.ScalarText(key)
		if err != nil {
			return "", ErrKey
		}
		return s, nil
	default:
		return "", ErrKey
	}
}
