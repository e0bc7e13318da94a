package ir

type Type int

const (
	BoolType Type = iota
	IntType
	FloatType
	StringType
	ArrayType
	MapType
	StructType
)

func (t Type) String() string {
	return map[Type]string{
		BoolType:   "bool",
		IntType:    "int",
		FloatType:  "float",
		StringType: "string",
		ArrayType:  "array",
		MapType:    "map",
		StructType: "struct",
	}[t]
}

func Types() []Type {
	return []Type{
		BoolType,
		IntType,
		FloatType,
		StringType,
		ArrayType,
		MapType,
		StructType,
	}
}

// Constant reports whether t is a constant kind, the only kinds
// permitted as map keys.
func (t Type) Constant() bool {
	switch t {
	case BoolType, IntType, FloatType, StringType:
		return true
	default:
		return false
	}
}
