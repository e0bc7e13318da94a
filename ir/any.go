package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// ToAny converts a node to plain Go values (bool, int64, float64,
// string, []any, map[string]any), suitable for encoding/json, YAML
// marshalling or expression environments.
//
// The conversion is lossy for structs: positional structs become []any,
// named structs become map[string]any, and the struct name is dropped.
// The unit value () becomes nil.  Non-string map keys are formatted as
// their literal spelling.
func ToAny(node *Node) any {
	switch node.Type {
	case BoolType:
		return node.Bool
	case IntType:
		return node.Int64
	case FloatType:
		return node.Float64
	case StringType:
		return node.String
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case MapType:
		res := make(map[string]any, len(node.Keys))
		for i, key := range node.Keys {
			res[keyLiteral(key)] = ToAny(node.Values[i])
		}
		return res
	case StructType:
		if !node.Named {
			if len(node.Values) == 0 {
				return nil
			}
			res := make([]any, len(node.Values))
			for i, elt := range node.Values {
				res[i] = ToAny(elt)
			}
			return res
		}
		res := make(map[string]any, len(node.Values))
		for i, f := range node.FieldNames {
			res[f] = ToAny(node.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

// FromAny converts plain Go values to a node.  nil becomes the unit
// value ().  Slices whose elements share one shape become arrays,
// heterogeneous slices become anonymous positional structs.  Maps with
// identifier keys whose values disagree in shape become anonymous named
// structs; otherwise they become maps.  Map entries are ordered by key.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Unit(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return FromInt(i), nil
		}
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrConvert, string(x))
		}
		return FromFloat(f), nil
	case []any:
		return fromAnySlice(x)
	case map[string]any:
		return fromAnyMap(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrConvert, v)
	}
}

func fromUint(x uint64) (*Node, error) {
	if x > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrConvert, x)
	}
	return FromInt(int64(x)), nil
}

func fromAnySlice(x []any) (*Node, error) {
	elts := make([]*Node, len(x))
	for i, e := range x {
		var err error
		elts[i], err = FromAny(e)
		if err != nil {
			return nil, err
		}
	}
	if homogeneous(elts) {
		return FromSlice(elts), nil
	}
	return Positional("", elts...), nil
}

func fromAnyMap(x map[string]any) (*Node, error) {
	keys := make([]string, 0, len(x))
	for k := range x {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	vals := make([]*Node, len(keys))
	for i, k := range keys {
		var err error
		vals[i], err = FromAny(x[k])
		if err != nil {
			return nil, err
		}
	}
	if homogeneous(vals) {
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			kvs[i] = KeyVal{Key: FromString(k), Val: vals[i]}
		}
		return FromKeyVals(kvs), nil
	}
	for _, k := range keys {
		if !identLike(k) {
			return nil, fmt.Errorf("%w: mixed value shapes under non-identifier key %q", ErrConvert, k)
		}
	}
	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Name: k, Value: vals[i]}
	}
	return Named("", fields...), nil
}

func homogeneous(elts []*Node) bool {
	if len(elts) == 0 {
		return true
	}
	want := ShapeOf(elts[0])
	for _, e := range elts[1:] {
		if ShapeOf(e) != want {
			return false
		}
	}
	return true
}
