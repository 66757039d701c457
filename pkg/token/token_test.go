package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Type
	}{
		{"let", LET},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"print", PRINT},
		{"func", FUNC},
		{"return", RETURN},
		{"true", TRUE},
		{"false", FALSE},
		{"and", AND},
		{"or", OR},
		{"not", NOT},
		{"loadin", LOADIN},
		{"int", TYPE_INT},
		{"int32", TYPE_INT32},
		{"int64", TYPE_INT64},
		{"float", TYPE_FLOAT},
		{"bool", TYPE_BOOL},
		{"string", TYPE_STRING},
		{"x", IDENT},
		{"letx", IDENT},
		{"Int64", IDENT}, // keywords are case-sensitive
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupIdent(tt.ident), "ident %q", tt.ident)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "==", EQ.String())
	assert.Equal(t, "loadin", LOADIN.String())
	assert.Equal(t, "TOKEN(9999)", Type(9999).String())
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsKeyword(LET))
	assert.True(t, IsKeyword(TYPE_STRING))
	assert.False(t, IsKeyword(IDENT))
	assert.False(t, IsKeyword(PLUS))

	assert.True(t, IsOperator(PLUS))
	assert.True(t, IsOperator(COMMA))
	assert.False(t, IsOperator(LET))

	assert.True(t, IsTypeKeyword(TYPE_INT))
	assert.True(t, IsTypeKeyword(TYPE_STRING))
	assert.False(t, IsTypeKeyword(LET))
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 14, Offset: 42}
	assert.Equal(t, "3:14", p.String())
}
