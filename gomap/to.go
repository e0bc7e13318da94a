package gomap

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/ron-format/go-ron/debug"
	"github.com/ron-format/go-ron/encode"
	"github.com/ron-format/go-ron/ir"
)

// Marshaler lets a type control its own RON representation.
type Marshaler interface {
	MarshalRON() (*ir.Node, error)
}

// ToIR converts a Go value to a RON value.  Types implementing
// Marshaler are used directly; everything else goes through reflection.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Unit(), nil
	}
	if m, ok := v.(Marshaler); ok {
		return m.MarshalRON()
	}
	node, err := toIR(reflect.ValueOf(v), "")
	if err != nil {
		return nil, err
	}
	if debug.Gomap() {
		debug.Logf("gomap %T gave %s\n", v, debugForm(node))
	}
	return node, nil
}

func toIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.CanInterface() {
		if m, ok := val.Interface().(Marshaler); ok && (val.Kind() != reflect.Ptr || !val.IsNil()) {
			return m.MarshalRON()
		}
	}
	switch val.Kind() {
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows int64", u)}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return ir.Unit(), nil
		}
		return toIR(val.Elem(), fieldPath)
	case reflect.Slice, reflect.Array:
		return sliceToIR(val, fieldPath)
	case reflect.Map:
		return mapToIR(val, fieldPath)
	case reflect.Struct:
		return structToIR(val, fieldPath)
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
}

func sliceToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	n := val.Len()
	elts := make([]*ir.Node, n)
	for i := 0; i < n; i++ {
		elt, err := toIR(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		elts[i] = elt
	}
	// dynamic element types can produce mixed shapes, which arrays do
	// not admit; fall back to an anonymous positional struct
	for i := 1; i < n; i++ {
		if ir.ShapeOf(elts[i]) != ir.ShapeOf(elts[0]) {
			return ir.Positional("", elts...), nil
		}
	}
	return ir.FromSlice(elts), nil
}

func mapToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, err := toIR(iter.Key(), fieldPath)
		if err != nil {
			return nil, err
		}
		if !key.Type.Constant() {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("map key type %s is not a constant", iter.Key().Type()),
			}
		}
		v, err := toIR(iter.Value(), fmt.Sprintf("%s[%v]", fieldPath, iter.Key()))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
	}
	// Go map iteration order is random; sort for stable output
	sort.Slice(kvs, func(i, j int) bool {
		return ir.Compare(kvs[i].Key, kvs[j].Key) < 0
	})
	return ir.FromKeyVals(kvs), nil
}

func structToIR(val reflect.Value, fieldPath string) (*ir.Node, error) {
	t := val.Type()
	infos := structFields(t)
	fields := make([]ir.Field, 0, len(infos))
	for _, info := range infos {
		fv, err := toIR(val.Field(info.index), joinPath(fieldPath, info.name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, ir.Field{Name: info.name, Value: fv})
	}
	return ir.Named(t.Name(), fields...), nil
}

// debugForm renders a node for log lines.  Values that cannot be
// encoded, such as NaN floats, fall back to their shape.
func debugForm(node *ir.Node) string {
	s, err := encode.String(node)
	if err != nil {
		return string(ir.ShapeOf(node))
	}
	return s
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}
