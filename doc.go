// Package packview converts losslessly between MessagePack and JSON
// text and correlates positions across the two representations.
//
// # Usage
//
//	data, err := packview.JSONToWire([]byte(`{"a": 1}`))
//	text, err := packview.WireToJSON(data)
//	text, maps, err := packview.BuildMappings(data)
//
// # Related Packages
//
//   - github.com/packview/packview/msgpack - wire codec
//   - github.com/packview/packview/parse - JSON text parsing
//   - github.com/packview/packview/encode - JSON text rendering
//   - github.com/packview/packview/posmap - position correlation
package packview
