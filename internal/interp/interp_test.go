package interp

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriyanbasu0/zr-sharp/internal/testutil"
	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
	"github.com/adriyanbasu0/zr-sharp/pkg/value"
)

// evalSource parses and evaluates src against a fresh session, returning
// the captured stdout and any top-level runtime errors.
func evalSource(t *testing.T, src string) (string, []RuntimeError) {
	t.Helper()

	program, err := parser.Parse(src)
	require.NoError(t, err)

	var out bytes.Buffer
	e := New(Config{Stdout: &out, Logger: testutil.NewTestLogger(t)})
	errs, err := e.EvalProgram(program)
	require.NoError(t, err)
	return out.String(), errs
}

func TestEval_PrintLiterals(t *testing.T) {
	out, errs := evalSource(t, `
print 42;
print 2.5;
print true;
print false;
print "hello";
`)
	assert.Empty(t, errs)
	assert.Equal(t, "42\n2.50\ntrue\nfalse\nhello\n", out)
}

func TestEval_LetAndIdent(t *testing.T) {
	out, errs := evalSource(t, `
let x = 10;
let y = x + 5;
print y;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "15\n", out)
}

func TestEval_Rebinding(t *testing.T) {
	out, errs := evalSource(t, `
let x = 1;
let x = "replaced";
print x;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "replaced\n", out)
}

func TestEval_FloatPromotion(t *testing.T) {
	// Int64 widens to Float when either operand is Float; floats render
	// with exactly two decimal digits.
	out, errs := evalSource(t, `
let y = 3 + 2.5;
print y;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "5.50\n", out)
}

func TestEval_IntegerArithmeticStaysInteger(t *testing.T) {
	out, errs := evalSource(t, `
print 7 / 2;
print 3 * 4;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "3\n12\n", out)
}

func TestEval_DivisionByZero(t *testing.T) {
	out, errs := evalSource(t, `print 1/0;`)
	assert.Empty(t, out, "nothing may be printed")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "division by zero")
}

func TestEval_FloatDivisionByZero(t *testing.T) {
	out, errs := evalSource(t, `print 1.5 / 0;`)
	assert.Empty(t, out)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "division by zero")
}

func TestEval_Comparisons(t *testing.T) {
	out, errs := evalSource(t, `
print 1 < 2;
print 2 <= 1;
print 3 == 3;
print 3 != 3;
print 2.5 > 2;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "true\nfalse\ntrue\nfalse\ntrue\n", out)
}

func TestEval_StringEquality(t *testing.T) {
	out, errs := evalSource(t, `
print "a" == "a";
print "a" != "b";
`)
	assert.Empty(t, errs)
	assert.Equal(t, "true\ntrue\n", out)
}

func TestEval_StringArithmeticIsTypeError(t *testing.T) {
	_, errs := evalSource(t, `print "a" + "b";`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, `"+"`)
}

func TestEval_MixedStringNumberIsTypeError(t *testing.T) {
	_, errs := evalSource(t, `print "a" == 1;`)
	require.Len(t, errs, 1)
}

func TestEval_LogicalOperators(t *testing.T) {
	out, errs := evalSource(t, `
print true && false;
print true || false;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestEval_LogicalRequiresBool(t *testing.T) {
	// No truthiness coercion: 1 && true is a type error.
	_, errs := evalSource(t, `print 1 && true;`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "bool operands")
}

func TestEval_IfTakesOnlyOneBranch(t *testing.T) {
	out, errs := evalSource(t, `if (true) { print "a"; } else { print "b"; }`)
	assert.Empty(t, errs)
	assert.Equal(t, "a\n", out)

	out, errs = evalSource(t, `if (false) { print "a"; } else { print "b"; }`)
	assert.Empty(t, errs)
	assert.Equal(t, "b\n", out)
}

func TestEval_IfConditionMustBeBool(t *testing.T) {
	_, errs := evalSource(t, `if (1) { print "a"; }`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "must be bool")
}

func TestEval_IfFalseWithoutElseIsAbsentNotFailure(t *testing.T) {
	// The untaken if yields the absent-value sentinel; it is not reported
	// as a top-level runtime error and does not stop later statements.
	out, errs := evalSource(t, `
if (false) { print "skipped"; }
print "after";
`)
	assert.Empty(t, errs)
	assert.Equal(t, "after\n", out)
}

func TestEval_ErrorStopsEnclosingBlockOnly(t *testing.T) {
	// The division error stops the if block (the second print is skipped)
	// but the top-level statement after it still runs.
	out, errs := evalSource(t, `
if (true) {
    print 1/0;
    print "unreachable";
}
print "alive";
`)
	assert.Equal(t, "alive\n", out)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "division by zero")
}

func TestEval_TopLevelSiblingsProceedAfterError(t *testing.T) {
	out, errs := evalSource(t, `
print unknown_var;
print "still running";
`)
	assert.Equal(t, "still running\n", out)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "undefined variable")
}

func TestEval_DeclaredTypeConversions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"int is int64", `let x: int = 7; print x;`, "7\n"},
		{"int64 to float widening", `let x: float = 3; print x;`, "3.00\n"},
		{"int32 narrowing in range", `let x: int32 = 100; print x;`, "100\n"},
		{"matching bool", `let x: bool = true; print x;`, "true\n"},
		{"matching string", `let x: string = "s"; print x;`, "s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errs := evalSource(t, tt.src)
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEval_Int32NarrowingOverflow(t *testing.T) {
	// 40,000,000,000 exceeds the signed 32-bit range.
	out, errs := evalSource(t, `let x: int32 = 40000000000;`)
	assert.Empty(t, out)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "overflows int32")
}

func TestEval_Int32NarrowingBoundaries(t *testing.T) {
	out, errs := evalSource(t, `
let lo: int32 = 0 - 2147483648;
let hi: int32 = 2147483647;
print lo;
print hi;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "-2147483648\n2147483647\n", out)

	_, errs = evalSource(t, `let over: int32 = 2147483648;`)
	require.Len(t, errs, 1)
}

func TestEval_DeclaredTypeMismatch(t *testing.T) {
	tests := []string{
		`let x: bool = 1;`,
		`let x: string = 1;`,
		`let x: int64 = "s";`,
		`let x: int64 = 2.5;`, // no float-to-int conversion
		`let x: int32 = true;`,
	}

	for _, src := range tests {
		_, errs := evalSource(t, src)
		require.Len(t, errs, 1, "src %q", src)
		assert.Contains(t, errs[0].Message, "declared type", "src %q", src)
	}
}

func TestEval_Int32WidensInArithmetic(t *testing.T) {
	out, errs := evalSource(t, `
let a: int32 = 5;
let b = a + 10;
print b;
`)
	assert.Empty(t, errs)
	assert.Equal(t, "15\n", out)
}

func TestEval_RightLeaningGrouping(t *testing.T) {
	// No operator precedence: 2 * 3 + 4 evaluates as 2 * (3 + 4).
	out, errs := evalSource(t, `print 2 * 3 + 4;`)
	assert.Empty(t, errs)
	assert.Equal(t, "14\n", out)
}

func TestEval_Determinism(t *testing.T) {
	src := `
let a = 6;
let b = 7;
print a * b;
print a + b;
`
	first, errs := evalSource(t, src)
	assert.Empty(t, errs)
	second, errs := evalSource(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, first, second, "independent runs must produce byte-identical output")
}

func TestEval_LoadinOutsideFileScope(t *testing.T) {
	_, errs := evalSource(t, `loadin "mod";`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "file scope")
}

func TestSymbolTable_Capacity(t *testing.T) {
	s := NewSymbolTable()
	for i := 0; i < MaxSymbols; i++ {
		require.NoError(t, s.Define(fmt.Sprintf("v%d", i), value.Int64(int64(i))))
	}

	// Rebinding an existing name is fine at capacity.
	require.NoError(t, s.Define("v0", value.Int64(-1)))

	// A new name is not.
	err := s.Define("one_too_many", value.Int64(0))
	require.Error(t, err)
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
}

func TestSymbolTable_CapacityIsFatal(t *testing.T) {
	var src bytes.Buffer
	for i := 0; i <= MaxSymbols; i++ {
		fmt.Fprintf(&src, "let v%d = %d;\n", i, i)
	}

	program, err := parser.Parse(src.String())
	require.NoError(t, err)

	e := New(Config{Stdout: &bytes.Buffer{}, Logger: testutil.NewTestLogger(t)})
	_, err = e.EvalProgram(program)
	require.Error(t, err)
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
}
