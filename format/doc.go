// Package format defines the MessagePack wire marker table and the
// surface formats packview converts between.
//
// # Related Packages
//
//   - github.com/packview/packview/msgpack - wire codec using these markers
//   - github.com/packview/packview/encode - JSON text rendering
package format
