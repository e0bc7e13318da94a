package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// One seed per process so hashes of independently built nodes agree.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Compare:
// nodes that compare equal hash equal.  It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case FloatType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Float64))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case MapType:
		for i, k := range n.Keys {
			k.hashTo(h)
			n.Values[i].hashTo(h)
		}
	case StructType:
		h.WriteString(n.Name)
		if n.Named {
			h.WriteByte(1)
			for _, f := range n.FieldNames {
				h.WriteString(f)
				h.WriteByte(0)
			}
		} else {
			h.WriteByte(0)
		}
		for _, v := range n.Values {
			v.hashTo(h)
		}
	}
}
