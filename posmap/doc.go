// Package posmap correlates positions between a MessagePack buffer and
// its rendered JSON text.
//
// Build produces one Mapping per key and scalar token; selections in
// the text are resolved back to wire byte ranges with
// ByteRangeForTextRange, and HexCharRange places a byte range inside a
// space-separated hex dump.
//
// # Usage
//
//	maps := posmap.Build(data, text)
//	start, end, ok := posmap.ByteRangeForTextRange(maps, selStart, selEnd)
//
// # Related Packages
//
// [github.com/packview/packview/msgpack] decodes the wire values the
// mappings point at.
package posmap
