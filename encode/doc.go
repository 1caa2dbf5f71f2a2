// Package encode renders IR nodes as indented JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, w)
//
//	// With terminal colors
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// The reference format is 2-space indent, one value per line, keys in
// stored order. Numeric rendering never loses precision or kind: see
// NumberText and FloatText.
//
// # Related Packages
//
//   - github.com/packview/packview/ir - IR representation
//   - github.com/packview/packview/parse - Parse JSON text to IR
package encode
