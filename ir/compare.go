package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case BinaryType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case ExtType:
		if a.ExtKind != b.ExtKind {
			return cmp.Compare(a.ExtKind, b.ExtKind)
		}
		return bytes.Compare(a.Bytes, b.Bytes)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case BinaryType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	case ExtType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: integer < float < digit string. Integers compare across
	// the Uint64/Int64 split: negative integers sort before unsigned ones.
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	switch subRankA {
	case 0:
		aNeg, bNeg := a.Int64 != nil, b.Int64 != nil
		switch {
		case aNeg && bNeg:
			return cmp.Compare(*a.Int64, *b.Int64)
		case aNeg:
			return -1
		case bNeg:
			return 1
		default:
			return cmp.Compare(*a.Uint64, *b.Uint64)
		}
	case 1:
		return cmp.Compare(*a.Float64, *b.Float64)
	default:
		return strings.Compare(a.Digits, b.Digits)
	}
}

func numberSubRank(y *Node) int {
	switch {
	case y.Uint64 != nil || y.Int64 != nil:
		return 0
	case y.Float64 != nil:
		return 1
	default:
		return 2
	}
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Node) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
