// Package ir provides the intermediate representation for packview
// documents: the value tree shared by the JSON parser, the JSON encoder
// and the MessagePack wire codec.
//
// # Node Structure
//
// A Node represents a single value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string, binary, ext
//   - Composite types: object (key-value pairs), array (ordered list)
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Numbers
//
// Numbers never lose kind or magnitude. Exactly one of these is set:
//
//   - Uint64: non-negative integer (unsigned kind)
//   - Int64: negative integer (signed kind)
//   - Float64: 64-bit IEEE float, with FloatSrc recording whether the
//     value came from a source literal with a decimal point or exponent,
//     or from a wire float marker
//   - Digits: exact digit string for integers outside 64-bit range
//
// A decoded float stays a float all the way back to text: FloatFromWire
// values render with a forced ".0" so a whole-valued float is never
// reparsed as an integer.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there will always be the same number of fields as values. Keys keep
// insertion order; duplicate keys are preserved, never merged.
//
// # Binary and Ext
//
// BinaryType holds raw bytes from bin markers. ExtType additionally holds
// the extension type tag in ExtKind. Both are opaque: packview never
// interprets their payloads.
//
// # Related Packages
//
//   - github.com/packview/packview/parse - Parses JSON text into IR nodes
//   - github.com/packview/packview/encode - Encodes IR nodes to JSON text
//   - github.com/packview/packview/msgpack - Wire codec for IR nodes
package ir
