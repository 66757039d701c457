package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriyanbasu0/zr-sharp/pkg/token"
)

func TestLexer_LetStatement(t *testing.T) {
	tokens, err := Tokenize(`let x = 1 + 2;`)
	require.NoError(t, err)

	want := []struct {
		typ token.Type
		lit string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "1"},
		{token.PLUS, "+"},
		{token.NUMBER, "2"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	require.Len(t, tokens, len(want))
	for i, w := range want {
		assert.Equal(t, w.typ, tokens[i].Type, "token %d type", i)
		assert.Equal(t, w.lit, tokens[i].Literal, "token %d literal", i)
	}
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.STAR},
		{"/", token.SLASH},
		{"=", token.ASSIGN},
		{"==", token.EQ},
		{"!=", token.NE},
		{"<", token.LT},
		{"<=", token.LE},
		{">", token.GT},
		{">=", token.GE},
		{"&&", token.DAMP},
		{"||", token.DPIPE},
		{"(", token.LPAREN},
		{")", token.RPAREN},
		{"{", token.LBRACE},
		{"}", token.RBRACE},
		{";", token.SEMICOLON},
		{":", token.COLON},
		{",", token.COMMA},
	}

	for _, tt := range tests {
		l := NewLexer(tt.input)
		tok, err := l.NextToken()
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, tok.Type, "input %q", tt.input)
		assert.Equal(t, tt.input, tok.Literal, "input %q", tt.input)
	}
}

func TestLexer_GreedyTwoCharOperators(t *testing.T) {
	// == must beat =, <= must beat <, and so on.
	tokens, err := Tokenize("a <= b >= c == d != e")
	require.NoError(t, err)

	var types []token.Type
	for _, tok := range tokens {
		if tok.Type != token.IDENT && tok.Type != token.EOF {
			types = append(types, tok.Type)
		}
	}
	assert.Equal(t, []token.Type{token.LE, token.GE, token.EQ, token.NE}, types)
}

func TestLexer_BareAmpPipeBangFail(t *testing.T) {
	for _, input := range []string{"a & b", "a | b", "!a"} {
		_, err := Tokenize(input)
		require.Error(t, err, "input %q", input)
		var lexErr *LexError
		assert.ErrorAs(t, err, &lexErr, "input %q", input)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		lit   string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"1000000", "1000000"},
	}

	for _, tt := range tests {
		l := NewLexer(tt.input)
		tok, err := l.NextToken()
		require.NoError(t, err)
		assert.Equal(t, token.NUMBER, tok.Type, "input %q", tt.input)
		assert.Equal(t, tt.lit, tok.Literal, "input %q", tt.input)
	}
}

func TestLexer_NumberSingleDecimalPoint(t *testing.T) {
	// Only one decimal point is consumed; a second dot is not part of
	// the number and fails as an unexpected character.
	l := NewLexer("1.2.3")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "1.2", tok.Literal)

	_, err = l.NextToken()
	require.Error(t, err)
}

func TestLexer_Strings(t *testing.T) {
	l := NewLexer(`"hello world"`)
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "hello world", tok.Literal)
}

func TestLexer_UnterminatedString(t *testing.T) {
	tests := []string{
		`"no closing quote`,
		"\"crosses a\nnewline\"",
	}

	for _, input := range tests {
		_, err := Tokenize(input)
		require.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), ErrUnterminatedString, "input %q", input)
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize("let foo if else_ print loadin int32 while")
	require.NoError(t, err)

	want := []token.Type{
		token.LET, token.IDENT, token.IF, token.IDENT,
		token.PRINT, token.LOADIN, token.TYPE_INT32, token.WHILE,
		token.EOF,
	}
	require.Len(t, tokens, len(want))
	for i, w := range want {
		assert.Equal(t, w, tokens[i].Type, "token %d", i)
	}
}

func TestLexer_CommentsAndWhitespace(t *testing.T) {
	tokens, err := Tokenize("// leading comment\nlet x = 1 // trailing\n// another\nprint x")
	require.NoError(t, err)

	var types []token.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.PRINT, token.IDENT, token.EOF,
	}, types)
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := Tokenize("let x\nprint x")
	require.NoError(t, err)

	require.Len(t, tokens, 5)
	assert.Equal(t, 1, tokens[0].Pos.Line) // let
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 1, tokens[1].Pos.Line) // x
	assert.Equal(t, 5, tokens[1].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line) // print
	assert.Equal(t, 1, tokens[2].Pos.Column)
}

func TestLexer_UnrecognizedCharacter(t *testing.T) {
	_, err := Tokenize("let x = 1 @ 2")
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Pos.Line)
}
