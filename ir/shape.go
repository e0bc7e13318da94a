package ir

import "strings"

// Shape is the equivalence class used for homogeneity checks on array
// elements, map keys and map values.  Primitive kinds, arrays and maps
// each map to a single shape regardless of their contents; structs are
// distinguished by name, field style and field list.
type Shape string

const (
	BoolShape   Shape = "bool"
	IntShape    Shape = "int"
	FloatShape  Shape = "float"
	StringShape Shape = "string"
	ArrayShape  Shape = "array"
	MapShape    Shape = "map"
)

// ShapeOf returns the shape of a node.  Struct shapes render as
// Name(_,_) for positional structs and Name(a:,b:) for named ones, so
// they double as readable descriptions in error messages.
func ShapeOf(y *Node) Shape {
	switch y.Type {
	case BoolType:
		return BoolShape
	case IntType:
		return IntShape
	case FloatType:
		return FloatShape
	case StringType:
		return StringShape
	case ArrayType:
		return ArrayShape
	case MapType:
		return MapShape
	case StructType:
		var sb strings.Builder
		sb.WriteString(y.Name)
		sb.WriteByte('(')
		for i := range y.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			if y.Named {
				sb.WriteString(y.FieldNames[i])
				sb.WriteByte(':')
			} else {
				sb.WriteByte('_')
			}
		}
		sb.WriteByte(')')
		return Shape(sb.String())
	default:
		panic("type")
	}
}
