// Package token defines the lexical tokens of the ZR# language.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67
	STRING // "hello"

	// Operators and delimiters
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	ASSIGN    // =
	EQ        // ==
	NE        // !=
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DAMP      // &&
	DPIPE     // ||
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;
	COLON     // :
	COMMA     // ,

	// Keywords
	LET
	IF
	ELSE
	WHILE
	PRINT
	FUNC
	RETURN
	TRUE
	FALSE
	AND
	OR
	NOT
	LOADIN

	// Type keywords
	TYPE_INT
	TYPE_INT32
	TYPE_INT64
	TYPE_FLOAT
	TYPE_BOOL
	TYPE_STRING
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	ASSIGN:    "=",
	EQ:        "==",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DAMP:      "&&",
	DPIPE:     "||",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	SEMICOLON: ";",
	COLON:     ":",
	COMMA:     ",",

	LET:    "let",
	IF:     "if",
	ELSE:   "else",
	WHILE:  "while",
	PRINT:  "print",
	FUNC:   "func",
	RETURN: "return",
	TRUE:   "true",
	FALSE:  "false",
	AND:    "and",
	OR:     "or",
	NOT:    "not",
	LOADIN: "loadin",

	TYPE_INT:    "int",
	TYPE_INT32:  "int32",
	TYPE_INT64:  "int64",
	TYPE_FLOAT:  "float",
	TYPE_BOOL:   "bool",
	TYPE_STRING: "string",
}

// keywords maps keyword spellings to their token types.
var keywords = map[string]Type{
	"let":    LET,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"print":  PRINT,
	"func":   FUNC,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"loadin": LOADIN,
	"int":    TYPE_INT,
	"int32":  TYPE_INT32,
	"int64":  TYPE_INT64,
	"float":  TYPE_FLOAT,
	"bool":   TYPE_BOOL,
	"string": TYPE_STRING,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return t >= LET && t <= TYPE_STRING
}

// IsOperator returns true if the token type is an operator or delimiter.
func IsOperator(t Type) bool {
	return t >= PLUS && t <= COMMA
}

// IsTypeKeyword returns true if the token type names a declared type.
func IsTypeKeyword(t Type) bool {
	return t >= TYPE_INT && t <= TYPE_STRING
}

// Token represents a lexical token with position information.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}
