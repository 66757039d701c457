// Package interp provides the tree-walking evaluator for the ZR# language.
//
// Runtime failures are Error values (see pkg/value) and short-circuit only
// the smallest enclosing block. The one exception is CapacityError, which
// is fatal and returned as a Go error up to the driver.
package interp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
	"github.com/adriyanbasu0/zr-sharp/pkg/token"
	"github.com/adriyanbasu0/zr-sharp/pkg/value"
)

// RuntimeError is a runtime Error value that reached the top-level block
// of a file, captured for diagnostic reporting.
type RuntimeError struct {
	Pos     token.Position
	Message string
}

func (e RuntimeError) String() string {
	return fmt.Sprintf("runtime error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Evaluator walks the AST against a session-owned symbol table.
type Evaluator struct {
	symbols *SymbolTable
	stdout  io.Writer
	logger  *slog.Logger
}

// Config holds evaluator configuration.
type Config struct {
	// Symbols is the session symbol table. A fresh table is created if nil.
	Symbols *SymbolTable
	// Stdout receives print output.
	Stdout io.Writer
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an evaluator.
func New(cfg Config) *Evaluator {
	symbols := cfg.Symbols
	if symbols == nil {
		symbols = NewSymbolTable()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Evaluator{
		symbols: symbols,
		stdout:  stdout,
		logger:  logger,
	}
}

// Symbols returns the evaluator's symbol table.
func (e *Evaluator) Symbols() *SymbolTable {
	return e.symbols
}

// EvalProgram evaluates a file's top-level block. Unlike a nested block,
// the top level does not short-circuit: a statement whose result is an
// Error value is recorded and its siblings still run. The absent-value
// sentinel from an untaken if is not a failure and is not recorded.
// The returned error is non-nil only for fatal capacity faults.
func (e *Evaluator) EvalProgram(program *parser.Block) ([]RuntimeError, error) {
	e.logger.Debug("evaluating program", "statements", len(program.Statements))

	var errs []RuntimeError
	for _, stmt := range program.Statements {
		v, err := e.Eval(stmt)
		if err != nil {
			return errs, err
		}
		if v.IsError() && !v.IsAbsent() {
			errs = append(errs, RuntimeError{Pos: stmt.Pos(), Message: v.Str})
		}
	}
	return errs, nil
}

// Eval evaluates a single node. The returned error is non-nil only for
// fatal capacity faults; everything else is expressed as a value.
func (e *Evaluator) Eval(node parser.Node) (value.Value, error) {
	switch n := node.(type) {
	case *parser.NumberLit:
		return evalNumberLit(n), nil

	case *parser.StringLit:
		return value.String(n.Value), nil

	case *parser.BoolLit:
		return value.Bool(n.Value), nil

	case *parser.Ident:
		v, ok := e.symbols.Lookup(n.Name)
		if !ok {
			return value.Errorf("undefined variable %q", n.Name), nil
		}
		return v, nil

	case *parser.BinaryOp:
		return e.evalBinaryOp(n)

	case *parser.LetStmt:
		return e.evalLet(n)

	case *parser.IfStmt:
		return e.evalIf(n)

	case *parser.PrintStmt:
		return e.evalPrint(n)

	case *parser.Block:
		return e.evalBlock(n)

	case *parser.LoadinStmt:
		return value.Errorf("loadin is only allowed at file scope"), nil

	default:
		// Reserved node kinds (func, call, return, while) land here.
		return value.Errorf("unsupported construct %T", node), nil
	}
}

// evalNumberLit converts literal text to a value. A literal with a decimal
// point is a float; everything else is an int64. No literal produces an
// int32 directly.
func evalNumberLit(n *parser.NumberLit) value.Value {
	if n.IsFloat {
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return value.Errorf("invalid number literal %q", n.Text)
		}
		return value.Float(f)
	}
	i, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return value.Errorf("invalid number literal %q", n.Text)
	}
	return value.Int64(i)
}

// evalBinaryOp evaluates both operands, propagating the first Error value
// before applying the operator.
func (e *Evaluator) evalBinaryOp(n *parser.BinaryOp) (value.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	if left.IsError() {
		return left, nil
	}

	right, err := e.Eval(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	if right.IsError() {
		return right, nil
	}

	return applyBinary(n.Op, left, right), nil
}

// evalLet evaluates the bound expression, applies the declared-type
// conversion, and stores the result. The statement yields the stored value.
func (e *Evaluator) evalLet(n *parser.LetStmt) (value.Value, error) {
	v, err := e.Eval(n.Value)
	if err != nil {
		return value.Value{}, err
	}
	if v.IsError() {
		return v, nil
	}

	v = convertDeclared(v, n.Type)
	if v.IsError() {
		return v, nil
	}

	if err := e.symbols.Define(n.Name, v); err != nil {
		return value.Value{}, err
	}
	return v, nil
}

// evalIf requires a Bool condition. The taken block yields its last value.
// A false condition with no else yields the absent-value sentinel, not a
// real failure.
func (e *Evaluator) evalIf(n *parser.IfStmt) (value.Value, error) {
	cond, err := e.Eval(n.Cond)
	if err != nil {
		return value.Value{}, err
	}
	if cond.IsError() {
		return cond, nil
	}
	if cond.Kind != value.KindBool {
		return value.Errorf("if condition must be bool, got %s", cond.Kind), nil
	}

	if cond.Bit {
		return e.evalBlock(n.Body)
	}
	if n.Else != nil {
		return e.evalBlock(n.Else)
	}
	return value.Absent(), nil
}

// evalPrint writes the rendered operand and a newline to stdout. An Error
// operand propagates and nothing is printed.
func (e *Evaluator) evalPrint(n *parser.PrintStmt) (value.Value, error) {
	v, err := e.Eval(n.Value)
	if err != nil {
		return value.Value{}, err
	}
	if v.IsError() {
		return v, nil
	}

	fmt.Fprintln(e.stdout, v.Render())
	if f, ok := e.stdout.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	return v, nil
}

// evalBlock runs statements in order. The first Error value stops the
// block and becomes its result; an empty block yields Void; otherwise the
// block yields the value of its last statement. The absent-value sentinel
// from an untaken if flows through like any ordinary value and does not
// stop the block.
func (e *Evaluator) evalBlock(b *parser.Block) (value.Value, error) {
	result := value.Void()
	for _, stmt := range b.Statements {
		v, err := e.Eval(stmt)
		if err != nil {
			return value.Value{}, err
		}
		if v.IsError() && !v.IsAbsent() {
			return v, nil
		}
		result = v
	}
	return result, nil
}
