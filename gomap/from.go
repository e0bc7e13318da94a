package gomap

import (
	"fmt"
	"reflect"

	"github.com/ron-format/go-ron/ir"
)

// Unmarshaler lets a type control its own conversion from RON.
type Unmarshaler interface {
	UnmarshalRON(*ir.Node) error
}

// FromIR fills the Go value pointed to by v from a RON value.
func FromIR(node *ir.Node, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &UnmarshalError{Message: fmt.Sprintf("target must be a non-nil pointer, got %T", v)}
	}
	return fromIR(node, val.Elem(), "")
}

func fromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.CanAddr() {
		if u, ok := val.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalRON(node)
		}
	}
	switch val.Kind() {
	case reflect.Bool:
		if node.Type != ir.BoolType {
			return typeErr(node, "bool", fieldPath)
		}
		val.SetBool(node.Bool)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if node.Type != ir.IntType {
			return typeErr(node, "int", fieldPath)
		}
		if val.OverflowInt(node.Int64) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", node.Int64, val.Type())}
		}
		val.SetInt(node.Int64)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if node.Type != ir.IntType {
			return typeErr(node, "int", fieldPath)
		}
		if node.Int64 < 0 || val.OverflowUint(uint64(node.Int64)) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", node.Int64, val.Type())}
		}
		val.SetUint(uint64(node.Int64))
		return nil
	case reflect.Float32, reflect.Float64:
		switch node.Type {
		case ir.FloatType:
			val.SetFloat(node.Float64)
		case ir.IntType:
			val.SetFloat(float64(node.Int64))
		default:
			return typeErr(node, "float", fieldPath)
		}
		return nil
	case reflect.String:
		if node.Type != ir.StringType {
			return typeErr(node, "string", fieldPath)
		}
		val.SetString(node.String)
		return nil
	case reflect.Ptr:
		if ir.Equal(node, ir.Unit()) {
			val.SetZero()
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIR(node, val.Elem(), fieldPath)
	case reflect.Interface:
		if val.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("cannot unmarshal into %s", val.Type())}
		}
		val.Set(reflect.ValueOf(ir.ToAny(node)))
		return nil
	case reflect.Slice:
		return sliceFromIR(node, val, fieldPath)
	case reflect.Map:
		return mapFromIR(node, val, fieldPath)
	case reflect.Struct:
		return structFromIR(node, val, fieldPath)
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type %s", val.Type())}
	}
}

func typeErr(node *ir.Node, want, fieldPath string) error {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("expected %s, got %s", want, ir.ShapeOf(node)),
	}
}

func sliceFromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	// anonymous positional structs carry heterogeneous sequences
	seq := node.Type == ir.ArrayType ||
		node.Type == ir.StructType && !node.Named && node.Name == ""
	if !seq {
		return typeErr(node, "array", fieldPath)
	}
	n := len(node.Values)
	out := reflect.MakeSlice(val.Type(), n, n)
	for i, elt := range node.Values {
		if err := fromIR(elt, out.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(out)
	return nil
}

func mapFromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.MapType {
		return typeErr(node, "map", fieldPath)
	}
	out := reflect.MakeMapWithSize(val.Type(), len(node.Keys))
	keyType := val.Type().Key()
	eltType := val.Type().Elem()
	for i, k := range node.Keys {
		key := reflect.New(keyType).Elem()
		if err := fromIR(k, key, fieldPath); err != nil {
			return err
		}
		elt := reflect.New(eltType).Elem()
		if err := fromIR(node.Values[i], elt, fmt.Sprintf("%s[%v]", fieldPath, key)); err != nil {
			return err
		}
		out.SetMapIndex(key, elt)
	}
	val.Set(out)
	return nil
}

func structFromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.StructType {
		return typeErr(node, "struct", fieldPath)
	}
	infos := structFields(val.Type())
	if !node.Named {
		// positional: fields in declaration order
		if len(node.Values) != len(infos) {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d positional fields for %d struct fields", len(node.Values), len(infos)),
			}
		}
		for i, info := range infos {
			fp := joinPath(fieldPath, info.name)
			if err := fromIR(node.Values[i], val.Field(info.index), fp); err != nil {
				return err
			}
		}
		return nil
	}
	byName := make(map[string]fieldInfo, len(infos))
	for _, info := range infos {
		byName[info.name] = info
	}
	for i, name := range node.FieldNames {
		info, ok := byName[name]
		if !ok {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("no field %q in %s", name, val.Type()),
			}
		}
		fp := joinPath(fieldPath, info.name)
		if err := fromIR(node.Values[i], val.Field(info.index), fp); err != nil {
			return err
		}
	}
	return nil
}
