package format

import "fmt"

// Marker is a MessagePack format marker byte. For the fix* families the
// value kind is selected by a bit prefix and the low bits carry the value
// or length directly.
type Marker byte

const (
	PosFixintHigh Marker = 0x7f
	NegFixintLow  Marker = 0xe0

	FixmapLow  Marker = 0x80
	FixmapHigh Marker = 0x8f
	FixmapMask byte   = 0x0f
	FixarrLow  Marker = 0x90
	FixarrHigh Marker = 0x9f
	FixarrMask byte   = 0x0f
	FixstrLow  Marker = 0xa0
	FixstrHigh Marker = 0xbf
	FixstrMask byte   = 0x1f

	Nil      Marker = 0xc0
	Reserved Marker = 0xc1
	False    Marker = 0xc2
	True     Marker = 0xc3

	Bin8  Marker = 0xc4
	Bin16 Marker = 0xc5
	Bin32 Marker = 0xc6

	Ext8  Marker = 0xc7
	Ext16 Marker = 0xc8
	Ext32 Marker = 0xc9

	Float32 Marker = 0xca
	Float64 Marker = 0xcb

	Uint8  Marker = 0xcc
	Uint16 Marker = 0xcd
	Uint32 Marker = 0xce
	Uint64 Marker = 0xcf

	Int8  Marker = 0xd0
	Int16 Marker = 0xd1
	Int32 Marker = 0xd2
	Int64 Marker = 0xd3

	Fixext1  Marker = 0xd4
	Fixext2  Marker = 0xd5
	Fixext4  Marker = 0xd6
	Fixext8  Marker = 0xd7
	Fixext16 Marker = 0xd8

	Str8  Marker = 0xd9
	Str16 Marker = 0xda
	Str32 Marker = 0xdb

	Array16 Marker = 0xdc
	Array32 Marker = 0xdd

	Map16 Marker = 0xde
	Map32 Marker = 0xdf
)

func (m Marker) IsPosFixint() bool { return m <= PosFixintHigh }
func (m Marker) IsNegFixint() bool { return m >= NegFixintLow }
func (m Marker) IsFixmap() bool    { return m >= FixmapLow && m <= FixmapHigh }
func (m Marker) IsFixarr() bool    { return m >= FixarrLow && m <= FixarrHigh }
func (m Marker) IsFixstr() bool    { return m >= FixstrLow && m <= FixstrHigh }

func (m Marker) String() string {
	switch {
	case m.IsPosFixint():
		return fmt.Sprintf("positive fixint (0x%02x)", byte(m))
	case m.IsNegFixint():
		return fmt.Sprintf("negative fixint (0x%02x)", byte(m))
	case m.IsFixmap():
		return fmt.Sprintf("fixmap (0x%02x)", byte(m))
	case m.IsFixarr():
		return fmt.Sprintf("fixarray (0x%02x)", byte(m))
	case m.IsFixstr():
		return fmt.Sprintf("fixstr (0x%02x)", byte(m))
	}
	name, ok := map[Marker]string{
		Nil:      "nil",
		Reserved: "reserved",
		False:    "false",
		True:     "true",
		Bin8:     "bin8",
		Bin16:    "bin16",
		Bin32:    "bin32",
		Ext8:     "ext8",
		Ext16:    "ext16",
		Ext32:    "ext32",
		Float32:  "float32",
		Float64:  "float64",
		Uint8:    "uint8",
		Uint16:   "uint16",
		Uint32:   "uint32",
		Uint64:   "uint64",
		Int8:     "int8",
		Int16:    "int16",
		Int32:    "int32",
		Int64:    "int64",
		Fixext1:  "fixext1",
		Fixext2:  "fixext2",
		Fixext4:  "fixext4",
		Fixext8:  "fixext8",
		Fixext16: "fixext16",
		Str8:     "str8",
		Str16:    "str16",
		Str32:    "str32",
		Array16:  "array16",
		Array32:  "array32",
		Map16:    "map16",
		Map32:    "map32",
	}[m]
	if !ok {
		return fmt.Sprintf("<unknown marker 0x%02x>", byte(m))
	}
	return fmt.Sprintf("%s (0x%02x)", name, byte(m))
}
