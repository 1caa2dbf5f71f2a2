package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	BinaryType
	ObjectType
	ArrayType
	ExtType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		NumberType: "Number",
		StringType: "String",
		BoolType:   "Bool",
		BinaryType: "Binary",
		ObjectType: "Object",
		ArrayType:  "Array",
		ExtType:    "Ext",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Number": NumberType,
		"String": StringType,
		"Bool":   BoolType,
		"Binary": BinaryType,
		"Object": ObjectType,
		"Array":  ArrayType,
		"Ext":    ExtType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		BinaryType,
		ObjectType,
		ArrayType,
		ExtType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// FloatSrc records where a float value came from. A value decoded from a
// wire float marker stays a float even when numerically whole, so a decoded
// 1.0 renders as "1.0", never "1".
type FloatSrc int

const (
	FloatFromLiteral FloatSrc = iota
	FloatFromWire
)
