// File: value.go
// Title: Lox Literal Values
// Description: Implements the tagged union of literal values a token or
//              AST literal can carry: string, number, boolean or none.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-20
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-20 v0.1.1: Encodable for non-finite numbers

package token

import (
	"math"
	"strconv"
)

// ValueType identifies which alternative a Value holds
type ValueType int

const (
	// NoneType is the absent literal, rendered as nil
	NoneType ValueType = iota
	StringType
	NumberType
	BooleanType
)

// String returns the name of the value type
func (t ValueType) String() string {
	switch t {
	case StringType:
		return "string"
	case NumberType:
		return "number"
	case BooleanType:
		return "boolean"
	default:
		return "nil"
	}
}

// Value is a literal value. The zero Value is None.
type Value struct {
	typ ValueType
	str string
	num float64
	b   bool
}

// None returns the absent value
func None() Value {
	return Value{}
}

// StringValue wraps s
func StringValue(s string) Value {
	return Value{typ: StringType, str: s}
}

// NumberValue wraps n
func NumberValue(n float64) Value {
	return Value{typ: NumberType, num: n}
}

// BoolValue wraps b
func BoolValue(b bool) Value {
	return Value{typ: BooleanType, b: b}
}

// Type returns the alternative held by v
func (v Value) Type() ValueType {
	return v.typ
}

// IsNone reports whether v is the absent value
func (v Value) IsNone() bool {
	return v.typ == NoneType
}

// AsString returns the string and whether v holds one
func (v Value) AsString() (string, bool) {
	return v.str, v.typ == StringType
}

// AsNumber returns the number and whether v holds one
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.typ == NumberType
}

// AsBool returns the boolean and whether v holds one
func (v Value) AsBool() (bool, bool) {
	return v.b, v.typ == BooleanType
}

// Interface returns v as a plain Go value: string, float64, bool or nil
func (v Value) Interface() interface{} {
	switch v.typ {
	case StringType:
		return v.str
	case NumberType:
		return v.num
	case BooleanType:
		return v.b
	default:
		return nil
	}
}

// Encodable is Interface with non-finite numbers rendered as "+Inf", "-Inf"
// or "NaN", since JSON has no representation for them
func (v Value) Encodable() interface{} {
	if v.typ == NumberType && (math.IsInf(v.num, 0) || math.IsNaN(v.num)) {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.Interface()
}

// Equal reports structural equality. Numbers compare with ==, so NaN is
// not equal to itself.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case StringType:
		return v.str == other.str
	case NumberType:
		return v.num == other.num
	case BooleanType:
		return v.b == other.b
	default:
		return true
	}
}

// String renders the value as source-like text. Numbers use the shortest
// representation that round-trips, so 123.0 prints as 123.
func (v Value) String() string {
	switch v.typ {
	case StringType:
		return v.str
	case NumberType:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case BooleanType:
		return strconv.FormatBool(v.b)
	default:
		return "nil"
	}
}
