package interp

import (
	"math"

	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
	"github.com/adriyanbasu0/zr-sharp/pkg/value"
)

// applyBinary applies a binary operator under the fixed promotion policy:
// Int32 widens to Int64; if either operand is Float both widen to Float;
// strings support only == and !=; && and || require Bool on both sides
// with no truthiness coercion. Everything else is a type Error.
func applyBinary(op string, left, right value.Value) value.Value {
	switch op {
	case "&&", "||":
		return applyLogical(op, left, right)
	}

	if left.Kind == value.KindString && right.Kind == value.KindString {
		switch op {
		case "==":
			return value.Bool(left.Str == right.Str)
		case "!=":
			return value.Bool(left.Str != right.Str)
		}
		return value.Errorf("operator %q is not defined for string operands", op)
	}

	if left.IsNumeric() && right.IsNumeric() {
		if left.Kind == value.KindFloat || right.Kind == value.KindFloat {
			return applyFloat(op, left.AsFloat(), right.AsFloat())
		}
		return applyInt(op, left.AsInt64(), right.AsInt64())
	}

	return value.Errorf("operator %q is not defined for %s and %s", op, left.Kind, right.Kind)
}

// applyLogical applies && or ||. Both operands must already be Bool.
func applyLogical(op string, left, right value.Value) value.Value {
	if left.Kind != value.KindBool || right.Kind != value.KindBool {
		return value.Errorf("operator %q requires bool operands, got %s and %s", op, left.Kind, right.Kind)
	}
	if op == "&&" {
		return value.Bool(left.Bit && right.Bit)
	}
	return value.Bool(left.Bit || right.Bit)
}

// applyInt runs the operator in 64-bit integer arithmetic.
func applyInt(op string, l, r int64) value.Value {
	switch op {
	case "+":
		return value.Int64(l + r)
	case "-":
		return value.Int64(l - r)
	case "*":
		return value.Int64(l * r)
	case "/":
		if r == 0 {
			return value.Errorf("division by zero")
		}
		return value.Int64(l / r)
	case "==":
		return value.Bool(l == r)
	case "!=":
		return value.Bool(l != r)
	case "<":
		return value.Bool(l < r)
	case "<=":
		return value.Bool(l <= r)
	case ">":
		return value.Bool(l > r)
	case ">=":
		return value.Bool(l >= r)
	default:
		return value.Errorf("unknown operator %q", op)
	}
}

// applyFloat runs the operator in floating point.
func applyFloat(op string, l, r float64) value.Value {
	switch op {
	case "+":
		return value.Float(l + r)
	case "-":
		return value.Float(l - r)
	case "*":
		return value.Float(l * r)
	case "/":
		if r == 0 {
			return value.Errorf("division by zero")
		}
		return value.Float(l / r)
	case "==":
		return value.Bool(l == r)
	case "!=":
		return value.Bool(l != r)
	case "<":
		return value.Bool(l < r)
	case "<=":
		return value.Bool(l <= r)
	case ">":
		return value.Bool(l > r)
	case ">=":
		return value.Bool(l >= r)
	default:
		return value.Errorf("unknown operator %q", op)
	}
}

// convertDeclared converts a runtime value to the declared type of a let
// statement. An already-matching type is stored unchanged. Widening along
// the lattice is permitted; narrowing Int64 to Int32 is permitted only if
// the value fits the signed 32-bit range. Bool and String accept only an
// already-matching value. Every other mismatch is a runtime Error.
func convertDeclared(v value.Value, declared parser.DeclaredType) value.Value {
	switch declared {
	case parser.TypeNone:
		return v

	case parser.TypeInt32:
		switch v.Kind {
		case value.KindInt32:
			return v
		case value.KindInt64:
			if v.Int < math.MinInt32 || v.Int > math.MaxInt32 {
				return value.Errorf("value %d overflows int32", v.Int)
			}
			return value.Int32(int32(v.Int))
		}

	case parser.TypeInt64:
		switch v.Kind {
		case value.KindInt64:
			return v
		case value.KindInt32:
			return value.Int64(v.Int)
		}

	case parser.TypeFloat:
		switch v.Kind {
		case value.KindFloat:
			return v
		case value.KindInt32, value.KindInt64:
			return value.Float(v.AsFloat())
		}

	case parser.TypeBool:
		if v.Kind == value.KindBool {
			return v
		}

	case parser.TypeString:
		if v.Kind == value.KindString {
			return v
		}
	}

	return value.Errorf("cannot convert %s to declared type %s", v.Kind, declared)
}
