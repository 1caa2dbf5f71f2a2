// Package msgpack reads and writes the MessagePack binary format.
//
// Decode turns a byte slice into an ir value tree, recording the byte
// offset and marker of anything it rejects.  Encode does the reverse,
// picking the shortest marker for every scalar it writes.  Floats are
// always written with the 64-bit float marker so that a decode/encode
// pair reproduces the value bit for bit.
//
// # Usage
//
//	node, err := msgpack.Decode(data)
//	...
//	out, err := msgpack.Encode(node)
//
// # Related Packages
//
// [github.com/packview/packview/ir] defines the value trees this
// package produces and consumes.
// [github.com/packview/packview/format] defines the marker constants.
package msgpack
