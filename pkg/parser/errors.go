package parser

import (
	"fmt"

	"github.com/adriyanbasu0/zr-sharp/pkg/token"
)

// LexError represents a lexical analysis error. Lex errors are fatal:
// the driver aborts the run instead of resuming at the next token.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// CapacityError reports a fixed limit being exceeded during parsing.
type CapacityError struct {
	Pos     token.Position
	Message string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrUnterminatedString = "unterminated string literal"
	ErrUnexpectedChar     = "unexpected character %q"
	ErrLoadinTarget       = "loadin target must be a string literal, got %s"
	ErrTooManyStatements  = "block exceeds maximum of %d statements"
)
