package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// StructType
	Name       string   // struct identifier, "" when anonymous
	Named      bool     // named field style; FieldNames aligns with Values
	FieldNames []string

	// MapType: Keys[i] is the key for the value at Values[i]
	Keys []*Node

	// ArrayType, MapType, StructType
	Values []*Node

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	keyIdx map[uint64][]int
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(v float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(elts []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(elts))
	for i, y := range elts {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MapType}
	res.Keys = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		if kv.Key.Type == StringType {
			kv.Key.ParentField = kv.Key.String
			kv.Val.ParentField = kv.Key.String
		}
		res.Keys[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Positional creates a positional struct.  Positional("") with no values
// is the unit value ().
func Positional(name string, values ...*Node) *Node {
	res := &Node{
		Type: StructType,
		Name: name,
	}
	res.Values = make([]*Node, len(values))
	for i, v := range values {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

type Field struct {
	Name  string
	Value *Node
}

// Named creates a named-field struct.
func Named(name string, fields ...Field) *Node {
	res := &Node{
		Type:  StructType,
		Name:  name,
		Named: true,
	}
	res.FieldNames = make([]string, len(fields))
	res.Values = make([]*Node, len(fields))
	for i, f := range fields {
		res.FieldNames[i] = f.Name
		res.Values[i] = f.Value
		f.Value.Parent = res
		f.Value.ParentIndex = i
		f.Value.ParentField = f.Name
	}
	return res
}

// Unit returns the unit value ().
func Unit() *Node {
	return Positional("")
}

// Get returns the map value stored under key, or nil.  The first call
// builds a hash index over the keys, so repeated lookups are O(1)-ish.
func (y *Node) Get(key *Node) *Node {
	if y.Type != MapType {
		return nil
	}
	if y.keyIdx == nil {
		y.keyIdx = make(map[uint64][]int, len(y.Keys))
		for i, k := range y.Keys {
			h := k.Hash()
			y.keyIdx[h] = append(y.keyIdx[h], i)
		}
	}
	for _, i := range y.keyIdx[key.Hash()] {
		if Compare(y.Keys[i], key) == 0 {
			return y.Values[i]
		}
	}
	return nil
}

// Get returns the value under a string key of a map, or the value of a
// named struct field.
func Get(y *Node, field string) *Node {
	switch y.Type {
	case MapType:
		return y.Get(FromString(field))
	case StructType:
		if !y.Named {
			return nil
		}
		for i, name := range y.FieldNames {
			if name == field {
				return y.Values[i]
			}
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Name = y.Name
	dst.Named = y.Named
	if y.FieldNames != nil {
		dst.FieldNames = append([]string(nil), y.FieldNames...)
	}
	if y.Keys != nil {
		dst.Keys = make([]*Node, len(y.Keys))
		for i, k := range y.Keys {
			dstK := &Node{}
			k.CloneTo(dstK)
			dstK.Parent = dst
			dstK.ParentIndex = i
			dst.Keys[i] = dstK
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dstV := &Node{}
			v.CloneTo(dstV)
			dstV.Parent = dst
			dstV.ParentIndex = i
			dstV.ParentField = v.ParentField
			dst.Values[i] = dstV
		}
	}
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.String = y.String
	return dst
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the tree pre- and post-order.  f is called with
// isPost=false before children and isPost=true after; returning false
// from the pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
