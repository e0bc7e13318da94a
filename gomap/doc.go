// Package gomap converts between Go values and RON values.
//
// # Usage
//
//	type Material struct {
//	    Reflectivity float64 `ron:"reflectivity"`
//	    Layers       []int   `ron:"layers"`
//	}
//
//	node, err := gomap.ToIR(Material{Reflectivity: 1.0})
//	// Material(reflectivity: 1.0, layers: [])
//
//	var m Material
//	err = gomap.Unmarshal([]byte(`Material(reflectivity: 0.5, layers: [1])`), &m)
//
// Go structs map to named-field structs carrying the Go type name,
// slices to arrays, maps to maps with keys in sorted order, and a nil
// pointer to the unit value ().  Types implementing Marshaler or
// Unmarshaler take over their own conversion.
//
// # Related Packages
//
//   - github.com/ron-format/go-ron/ir - value representation
package gomap
