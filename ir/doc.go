// Package ir provides the value representation for RON documents.
//
// # Overview
//
// All RON documents, whether parsed from text or created
// programmatically, are represented as ir.Node trees.  The Node is a
// recursive tagged union: the Type field says which of the other fields
// carry the value.
//
// # Node Types
//
//   - BoolType: true/false
//   - IntType: signed 64-bit integer
//   - FloatType: IEEE-754 double
//   - StringType: escape-decoded UTF-8 text
//   - ArrayType: ordered values, all of one shape
//   - MapType: ordered key/value pairs; keys are constants of one type,
//     values all of one shape
//   - StructType: optionally named, with positional or named fields of
//     arbitrary, possibly differing shapes
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	opt := ir.Positional("Some", ir.FromFloat(0.5))
//	vec := ir.Named("Vec2", ir.Field{"x", ir.FromFloat(1)}, ir.Field{"y", ir.FromFloat(2)})
//
// # Structure Constraints
//
// For MapType nodes, Keys[i] is the key for the value at Values[i], so
// there are always as many keys as values.  Keys must be constants
// (bool, int, float or string) and all of the same type; values must all
// share one Shape.  Array elements must likewise share one Shape.
// Struct fields are exempt from shape homogeneity.  The parse package
// enforces these constraints; constructors do not.
//
// Insertion order of map pairs and struct fields is preserved and is the
// order used when encoding.  Node.Get provides hash-indexed map lookup.
//
// # Shapes
//
// ShapeOf computes the equivalence class used for homogeneity checks.
// Primitive kinds, arrays and maps each form a single class; structs are
// classified by name, field style and field list, so a [Vec2(x:,y:)]
// array cannot also hold a Vec3.
//
// # Immutability
//
// A tree produced by one parse call is never shared with another and is
// not mutated by this module after construction.  Callers that want to
// edit a tree should Clone it first; Node structures are not otherwise
// safe for concurrent mutation.
//
// # Related Packages
//
//   - github.com/ron-format/go-ron/parse - Parses text into IR nodes
//   - github.com/ron-format/go-ron/encode - Encodes IR nodes to text
//   - github.com/ron-format/go-ron/libdiff - Structural diffs of IR nodes
package ir
