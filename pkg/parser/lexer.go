package parser

import (
	"fmt"

	"github.com/adriyanbasu0/zr-sharp/pkg/token"
)

// Lexer tokenizes ZR# input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. A non-nil error means the whole run
// must be aborted: an unrecognized character or an unterminated string
// is not recoverable at token granularity.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok, nil
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "==", Pos: pos}
		} else {
			tok = l.newToken(token.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NE, Literal: "!=", Pos: pos}
		} else {
			return token.Token{}, l.errorf(pos, ErrUnexpectedChar, string(l.ch))
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LE, Literal: "<=", Pos: pos}
		} else {
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GE, Literal: ">=", Pos: pos}
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = token.Token{Type: token.DAMP, Literal: "&&", Pos: pos}
		} else {
			return token.Token{}, l.errorf(pos, ErrUnexpectedChar, string(l.ch))
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Type: token.DPIPE, Literal: "||", Pos: pos}
		} else {
			return token.Token{}, l.errorf(pos, ErrUnexpectedChar, string(l.ch))
		}
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case ':':
		tok = l.newToken(token.COLON, ":")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '"':
		lit, err := l.readString(pos)
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Type: token.STRING, Literal: lit, Pos: pos}, nil
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			lit := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}, nil
		case isDigit(l.ch):
			return token.Token{Type: token.NUMBER, Literal: l.readNumber(), Pos: pos}, nil
		default:
			return token.Token{}, l.errorf(pos, ErrUnexpectedChar, string(l.ch))
		}
	}

	l.readChar()
	return tok, nil
}

// newToken creates a new single-character token at the current position.
func (l *Lexer) newToken(tokenType token.Type, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// errorf builds a fatal LexError at the given position.
func (l *Lexer) errorf(pos token.Position, format string, args ...any) error {
	return &LexError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// skipWhitespaceAndComments skips whitespace and // line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		break
	}
}

// readString reads a double-quoted string literal. The closing quote must
// appear before the next newline or end of input.
func (l *Lexer) readString(pos token.Position) (string, error) {
	l.readChar() // skip opening quote

	start := l.pos
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return "", &LexError{Pos: pos, Message: ErrUnterminatedString}
		}
		l.readChar()
	}
	lit := l.input[start:l.pos]
	l.readChar() // skip closing quote
	return lit, nil
}

// readIdentifier reads an identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal: a maximal run of digits with at most
// one decimal point. No sign, no exponent.
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// isLetter returns true if ch is an ASCII letter.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, or the first lex error.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
