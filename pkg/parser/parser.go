// Package parser provides lexing and parsing for the ZR# language.
//
// # Usage
//
//	program, err := parser.Parse(src)
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser with a single token of
// lookahead and no error recovery:
//
//	program    → statement* EOF
//	statement  → let | if | print | loadin | expression [";"]
//	let        → "let" IDENT [":" type] "=" expression
//	if         → "if" "(" expression ")" block ["else" block]
//	print      → "print" expression
//	loadin     → "loadin" STRING
//	block      → "{" statement* "}"
//	expression → primary [binop expression]
//	primary    → IDENT | NUMBER | STRING | "true" | "false" | "(" expression ")"
//
// Note the expression rule: the right-hand side of a binary operator is the
// full expression rule, not a tighter sub-rule. There is no operator
// precedence and chains group to the right ("a + b * c" is "a + (b * c)",
// and so is "a * b + c" → "a * (b + c)"). This matches the reference
// behavior of the language and is covered by tests; do not "fix" it.
//
// Number lexing is strict: a decimal point is consumed only when a digit
// follows it, so "1." lexes as the number 1 followed by an
// unexpected-character error rather than as a float.
package parser

import (
	"fmt"
	"strings"

	"github.com/adriyanbasu0/zr-sharp/pkg/token"
)

// MaxBlockStatements is the fixed statement capacity of a block.
const MaxBlockStatements = 1000

// Parser parses ZR# source into an AST.
type Parser struct {
	lexer *Lexer
	token token.Token // current token
	err   error       // first fatal error, lex or parse
}

// NewParser creates a new parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	return p
}

// Parse parses the input and returns the program block. The root of a
// parsed file is always a Block. The first lexical or syntactic fault
// aborts parsing; there is no resynchronization.
func Parse(input string) (*Block, error) {
	p := NewParser(input)
	program := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token. A lex failure is recorded as the
// parser's fatal error and the current token degrades to EOF so the
// descent unwinds without touching the lexer again.
func (p *Parser) nextToken() {
	if p.err != nil {
		return
	}
	tok, err := p.lexer.NextToken()
	if err != nil {
		p.err = err
		p.token = token.Token{Type: token.EOF, Pos: p.token.Pos}
		return
	}
	p.token = tok
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise records an error.
func (p *Parser) expect(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.errorf(ErrUnexpectedToken, p.token.Type, t)
	return false
}

// errorf records the first parse error. Later errors are discarded: once
// the parser is off the rails every subsequent token mismatch is noise.
func (p *Parser) errorf(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{
		Pos:     p.token.Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// ---------- Program and Statements ----------

// parseProgram parses statements until EOF into the root block.
func (p *Parser) parseProgram() *Block {
	program := &Block{NodeInfo: NodeInfo{Position: p.token.Pos}}

	for !p.check(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		if len(program.Statements) >= MaxBlockStatements {
			p.err = &CapacityError{
				Pos:     stmt.Pos(),
				Message: fmt.Sprintf(ErrTooManyStatements, MaxBlockStatements),
			}
			break
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program
}

// parseStatement parses one statement. A trailing semicolon is consumed
// if present but is not required.
func (p *Parser) parseStatement() Stmt {
	var stmt Stmt

	switch p.token.Type {
	case token.LET:
		stmt = p.parseLetStatement()
	case token.IF:
		stmt = p.parseIfStatement()
	case token.PRINT:
		stmt = p.parsePrintStatement()
	case token.LOADIN:
		stmt = p.parseLoadinStatement()
	default:
		stmt = p.parseExpressionStatement()
	}

	if stmt == nil {
		return nil
	}

	p.match(token.SEMICOLON)
	return stmt
}

// parseLetStatement parses: let <name> [: <type>] = <expr>
func (p *Parser) parseLetStatement() Stmt {
	pos := p.token.Pos
	p.nextToken() // consume 'let'

	if !p.check(token.IDENT) {
		p.errorf(ErrUnexpectedToken, p.token.Type, token.IDENT)
		return nil
	}
	name := p.token.Literal
	p.nextToken()

	declared := TypeNone
	if p.match(token.COLON) {
		declared = p.parseDeclaredType()
		if declared == TypeNone {
			return nil
		}
	}

	if !p.expect(token.ASSIGN) {
		return nil
	}

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	return &LetStmt{
		NodeInfo: NodeInfo{Position: pos},
		Name:     name,
		Type:     declared,
		Value:    value,
	}
}

// parseDeclaredType maps a type keyword to its tag. "int" is sugar for
// "int64".
func (p *Parser) parseDeclaredType() DeclaredType {
	var declared DeclaredType
	switch p.token.Type {
	case token.TYPE_INT, token.TYPE_INT64:
		declared = TypeInt64
	case token.TYPE_INT32:
		declared = TypeInt32
	case token.TYPE_FLOAT:
		declared = TypeFloat
	case token.TYPE_BOOL:
		declared = TypeBool
	case token.TYPE_STRING:
		declared = TypeString
	default:
		p.errorf(ErrUnexpectedToken, p.token.Type, "type keyword")
		return TypeNone
	}
	p.nextToken()
	return declared
}

// parseIfStatement parses: if (<expr>) <block> [else <block>]
func (p *Parser) parseIfStatement() Stmt {
	pos := p.token.Pos
	p.nextToken() // consume 'if'

	if !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	var elseBlock *Block
	if p.match(token.ELSE) {
		elseBlock = p.parseBlock()
		if elseBlock == nil {
			return nil
		}
	}

	return &IfStmt{
		NodeInfo: NodeInfo{Position: pos},
		Cond:     cond,
		Body:     body,
		Else:     elseBlock,
	}
}

// parseBlock parses: { statement* }
func (p *Parser) parseBlock() *Block {
	pos := p.token.Pos
	if !p.expect(token.LBRACE) {
		return nil
	}

	block := &Block{NodeInfo: NodeInfo{Position: pos}}
	for !p.check(token.RBRACE) && !p.check(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		if len(block.Statements) >= MaxBlockStatements {
			p.err = &CapacityError{
				Pos:     stmt.Pos(),
				Message: fmt.Sprintf(ErrTooManyStatements, MaxBlockStatements),
			}
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}

	if !p.expect(token.RBRACE) {
		return nil
	}
	return block
}

// parsePrintStatement parses: print <expr>
func (p *Parser) parsePrintStatement() Stmt {
	pos := p.token.Pos
	p.nextToken() // consume 'print'

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	return &PrintStmt{NodeInfo: NodeInfo{Position: pos}, Value: value}
}

// parseLoadinStatement parses: loadin "<path>". Anything but a string
// literal after the keyword is a fatal parse error.
func (p *Parser) parseLoadinStatement() Stmt {
	pos := p.token.Pos
	p.nextToken() // consume 'loadin'

	if !p.check(token.STRING) {
		p.errorf(ErrLoadinTarget, p.token.Type)
		return nil
	}
	target := p.token.Literal
	p.nextToken()

	return &LoadinStmt{NodeInfo: NodeInfo{Position: pos}, Target: target}
}

// parseExpressionStatement parses a bare expression used as a statement.
func (p *Parser) parseExpressionStatement() Stmt {
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	// Every expression node also satisfies Stmt.
	return expr.(Stmt)
}

// ---------- Expressions ----------

// parseExpression parses: primary [binop expression]
//
// The right-hand side recurses into the full expression rule, so operator
// chains group to the right with no precedence. See the package comment.
func (p *Parser) parseExpression() Expr {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	if isBinaryOp(p.token.Type) {
		op := p.token.Literal
		pos := p.token.Pos
		p.nextToken()

		right := p.parseExpression()
		if right == nil {
			return nil
		}

		return &BinaryOp{
			NodeInfo: NodeInfo{Position: pos},
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}

	return left
}

// parsePrimary parses an identifier, literal, or parenthesized expression.
func (p *Parser) parsePrimary() Expr {
	pos := p.token.Pos

	switch p.token.Type {
	case token.IDENT:
		name := p.token.Literal
		p.nextToken()
		return &Ident{NodeInfo: NodeInfo{Position: pos}, Name: name}

	case token.NUMBER:
		text := p.token.Literal
		p.nextToken()
		return &NumberLit{
			NodeInfo: NodeInfo{Position: pos},
			Text:     text,
			IsFloat:  strings.Contains(text, "."),
		}

	case token.STRING:
		value := p.token.Literal
		p.nextToken()
		return &StringLit{NodeInfo: NodeInfo{Position: pos}, Value: value}

	case token.TRUE:
		p.nextToken()
		return &BoolLit{NodeInfo: NodeInfo{Position: pos}, Value: true}

	case token.FALSE:
		p.nextToken()
		return &BoolLit{NodeInfo: NodeInfo{Position: pos}, Value: false}

	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return expr

	default:
		p.errorf(ErrUnexpectedToken, p.token.Type, "expression")
		return nil
	}
}

// isBinaryOp returns true for token types the expression rule accepts as
// binary operators.
func isBinaryOp(t token.Type) bool {
	switch t {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.EQ, token.NE, token.LT, token.LE, token.GT, token.GE,
		token.DAMP, token.DPIPE:
		return true
	}
	return false
}
