// Package value defines the dynamic value union used to move data across
// the static/dynamic boundary of the accessor protocol.
//
// A Value holds exactly one of the supported primitive kinds at a time.
// The active kind is queryable in O(1) and survives copies; conversion
// from each native primitive is total and lossless.
package value

import (
	"fmt"
	"strconv"
)

// Value is a dynamically typed value: a closed tagged union over int64,
// float64 and string. The zero Value holds no variant and is invalid;
// construct values with FromInt64, FromFloat64 or FromString.
type Value struct {
	kind KindEnum
	i    int64
	d    float64
	s    string
}

func FromInt64(v int64) Value {
	return Value{kind: KindInteger, i: v}
}

func FromFloat64(v float64) Value {
	return Value{kind: KindDouble, d: v}
}

func FromString(v string) Value {
	return Value{kind: KindString, s: v}
}

// Kind returns the active variant's kind, or the invalid zero kind for
// the zero Value.
func (v Value) Kind() KindEnum {
	return v.kind
}

// TypeName returns the type tag of the active variant ("integer",
// "double" or "string"). Panics on the zero Value.
func (v Value) TypeName() string {
	return v.kind.TypeName()
}

// Int64 returns the integer payload and whether the integer variant is active.
func (v Value) Int64() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// Float64 returns the double payload and whether the double variant is active.
func (v Value) Float64() (float64, bool) {
	return v.d, v.kind == KindDouble
}

// Str returns the string payload and whether the string variant is active.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// String renders the value for debug output, e.g. "integer(42)".
func (v Value) String() string {
	switch v.kind {
	default:
		return InvalidType
	case KindInteger:
		return fmt.Sprintf("%s(%d)", IntegerType, v.i)
	case KindDouble:
		return fmt.Sprintf("%s(%s)", DoubleType, strconv.FormatFloat(v.d, 'g', -1, 64))
	case KindString:
		return fmt.Sprintf("%s(%q)", StringType, v.s)
	}
}
