// Package value defines the runtime values of the ZR# language.
//
// Error is an ordinary value, not a Go error: any operation that would
// otherwise fail produces an Error value, and every evaluation step checks
// its operands for Error before doing further work. This is the sole
// runtime-failure mechanism of the evaluator.
package value

import (
	"fmt"
	"strconv"
)

// Kind is the type tag of a runtime value.
type Kind int

// Value kinds. The numeric kinds form the promotion lattice
// Int32 < Int64 < Float.
const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat
	KindBool
	KindString
	KindVoid
	KindError
)

// String returns the kind's name as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindVoid:
		return "void"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Value is a tagged union over the runtime types. Int32 values are carried
// in the int64 payload; the kind is what distinguishes them.
type Value struct {
	Kind Kind
	Int  int64
	Flt  float64
	Bit  bool
	Str  string // string payload, or the message for Error
}

// Int32 returns an int32-kinded value.
func Int32(v int32) Value {
	return Value{Kind: KindInt32, Int: int64(v)}
}

// Int64 returns an int64-kinded value.
func Int64(v int64) Value {
	return Value{Kind: KindInt64, Int: v}
}

// Float returns a float-kinded value.
func Float(v float64) Value {
	return Value{Kind: KindFloat, Flt: v}
}

// Bool returns a bool-kinded value.
func Bool(v bool) Value {
	return Value{Kind: KindBool, Bit: v}
}

// String returns a string-kinded value.
func String(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// Void returns the void value.
func Void() Value {
	return Value{Kind: KindVoid}
}

// Errorf returns an Error value carrying a formatted message.
func Errorf(format string, args ...any) Value {
	return Value{Kind: KindError, Str: fmt.Sprintf(format, args...)}
}

// Absent returns the Error value used as the result of an if statement
// whose condition is false and which has no else branch. It carries no
// message and is the unit of error/void rather than a real failure.
func Absent() Value {
	return Value{Kind: KindError}
}

// IsError reports whether the value is Error-kinded.
func (v Value) IsError() bool {
	return v.Kind == KindError
}

// IsAbsent reports whether the value is the absent-value sentinel.
func (v Value) IsAbsent() bool {
	return v.Kind == KindError && v.Str == ""
}

// IsNumeric reports whether the value is on the numeric lattice.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt32 || v.Kind == KindInt64 || v.Kind == KindFloat
}

// AsInt64 returns the integer payload widened to int64. Valid only for
// Int32 and Int64 kinds.
func (v Value) AsInt64() int64 {
	return v.Int
}

// AsFloat returns the value widened to float64. Valid only for numeric
// kinds.
func (v Value) AsFloat() float64 {
	if v.Kind == KindFloat {
		return v.Flt
	}
	return float64(v.Int)
}

// Render returns the value as `print` writes it: floats with exactly two
// decimal digits, bools as true/false, strings verbatim, integers in
// decimal, void as a fixed placeholder.
func (v Value) Render() string {
	switch v.Kind {
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Flt, 'f', 2, 64)
	case KindBool:
		return strconv.FormatBool(v.Bit)
	case KindString:
		return v.Str
	case KindVoid:
		return "void"
	case KindError:
		return "error: " + v.Str
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}
