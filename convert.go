package packview

import (
	"strings"

	"github.com/packview/packview/encode"
	"github.com/packview/packview/msgpack"
	"github.com/packview/packview/parse"
	"github.com/packview/packview/posmap"
)

// JSONToWire converts JSON text to MessagePack bytes. Numeric kind in
// the source is preserved: a literal with a fraction or exponent
// travels as a float, anything else as an integer of its exact
// magnitude and sign.
func JSONToWire(text []byte) ([]byte, error) {
	node, err := parse.Parse(text)
	if err != nil {
		return nil, err
	}
	return msgpack.Encode(node)
}

// WireToJSON converts MessagePack bytes to indented JSON text.
func WireToJSON(data []byte, opts ...encode.EncodeOption) (string, error) {
	node, err := msgpack.Decode(data)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := encode.Encode(node, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// BuildMappings renders data as JSON and correlates every key and
// scalar token with its wire byte span. The mappings refer to the
// returned text.
func BuildMappings(data []byte) (string, []posmap.Mapping, error) {
	text, err := WireToJSON(data)
	if err != nil {
		return "", nil, err
	}
	return text, posmap.Build(data, text), nil
}

// ByteRangeForTextRange resolves a half-open selection in mapped JSON
// text to the smallest wire byte range covering every overlapped token.
func ByteRangeForTextRange(maps []posmap.Mapping, textStart, textEnd int) (int, int, bool) {
	return posmap.ByteRangeForTextRange(maps, textStart, textEnd)
}

// HexDump renders data as space-separated uppercase hex, the layout
// posmap.HexCharRange indexes into.
func HexDump(data []byte) string {
	const digits = "0123456789ABCDEF"
	if len(data) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(data)*3 - 1)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0x0f])
	}
	return sb.String()
}
