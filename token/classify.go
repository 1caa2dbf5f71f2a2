package token

import (
	"fmt"
	"math"
	"strconv"
)

// NumberClass is the result of classifying a numeric literal from its
// exact source text. FloatClass means the literal had a decimal point or
// exponent marker. Integer classes name the minimal signed/unsigned width
// covering the value; BigIntClass means the value is outside 64-bit range
// and only its digit sequence can represent it exactly.
type NumberClass int

const (
	FloatClass NumberClass = iota
	Int32Class
	Uint32Class
	Int64Class
	Uint64Class
	BigIntClass
)

func (c NumberClass) String() string {
	return map[NumberClass]string{
		FloatClass:  "Float",
		Int32Class:  "Int32",
		Uint32Class: "Uint32",
		Int64Class:  "Int64",
		Uint64Class: "Uint64",
		BigIntClass: "BigInt",
	}[c]
}

// Signed reports whether the class denotes a signed integer width.
func (c NumberClass) Signed() bool {
	switch c {
	case Int32Class, Int64Class:
		return true
	default:
		return false
	}
}

// Classify decides, from a number literal's exact source text, whether it
// denotes a float or an integer, and for integers the minimal width class
// needed. It is a pure function over the literal bytes; malformed input
// fails with the offending byte offset.
func Classify(d []byte) (NumberClass, error) {
	n, isFloat, err := number(d)
	if err != nil {
		return 0, fmt.Errorf("%w: bad literal at offset 0", err)
	}
	if n != len(d) {
		return 0, fmt.Errorf("%w: trailing %q at offset %d", ErrNumber, d[n:], n)
	}
	if isFloat {
		return FloatClass, nil
	}
	if d[0] == '-' {
		i, err := strconv.ParseInt(string(d), 10, 64)
		if err != nil {
			return BigIntClass, nil
		}
		if i >= math.MinInt32 {
			return Int32Class, nil
		}
		return Int64Class, nil
	}
	u, err := strconv.ParseUint(string(d), 10, 64)
	if err != nil {
		return BigIntClass, nil
	}
	switch {
	case u <= math.MaxInt32:
		return Int32Class, nil
	case u <= math.MaxUint32:
		return Uint32Class, nil
	case u <= math.MaxInt64:
		return Int64Class, nil
	default:
		return Uint64Class, nil
	}
}
