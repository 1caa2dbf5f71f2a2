package ir

import "strconv"

// Node is a single value in a document tree. It is a tagged union: Type
// selects which fields are meaningful.
//
// Numbers are pointer-discriminated and exactly one of Uint64, Int64,
// Float64 or Digits is set:
//
//   - Uint64: non-negative integer magnitude (unsigned kind)
//   - Int64: negative integer (signed kind)
//   - Float64: IEEE-754 double, with FloatSrc recording its origin
//   - Digits: exact digit sequence for integers outside 64-bit range
//
// Integers never pass through Float64. Object Fields and Values are kept
// in insertion order, aligned by index, with no deduplication.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String   string
	Bool     bool
	Uint64   *uint64
	Int64    *int64
	Float64  *float64
	FloatSrc FloatSrc
	Digits   string

	Bytes   []byte
	ExtKind int8
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
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Uint64 != nil {
		u := *y.Uint64
		dst.Uint64 = &u
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.FloatSrc = y.FloatSrc
	dst.Digits = y.Digits
	if y.Bytes != nil {
		dst.Bytes = make([]byte, len(y.Bytes))
		copy(dst.Bytes, y.Bytes)
	}
	dst.ExtKind = y.ExtKind
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromUint(v uint64) *Node {
	return &Node{Type: NumberType, Uint64: &v}
}

func FromInt(v int64) *Node {
	if v >= 0 {
		u := uint64(v)
		return &Node{Type: NumberType, Uint64: &u}
	}
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromWireFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f, FloatSrc: FloatFromWire}
}

func FromDigits(digits string) *Node {
	return &Node{Type: NumberType, Digits: digits}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromBytes(d []byte) *Node {
	return &Node{Type: BinaryType, Bytes: d}
}

func FromExt(kind int8, d []byte) *Node {
	return &Node{Type: ExtType, ExtKind: kind, Bytes: d}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// IsNegative reports whether a number node denotes a negative value.
func (y *Node) IsNegative() bool {
	switch {
	case y.Int64 != nil:
		return *y.Int64 < 0
	case y.Float64 != nil:
		return *y.Float64 < 0
	case y.Digits != "":
		return y.Digits[0] == '-'
	default:
		return false
	}
}

// NumberText returns the decimal rendering of a number node's integer
// value. Float nodes are not covered here; the encode package owns float
// rendering.
func (y *Node) NumberText() string {
	switch {
	case y.Uint64 != nil:
		return strconv.FormatUint(*y.Uint64, 10)
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	default:
		return y.Digits
	}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key.Type == StringType {
			kv.Key.ParentField = kv.Key.String
			kv.Val.ParentField = kv.Key.ParentField
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

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

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
