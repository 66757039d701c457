package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int64", Int64(42), "42"},
		{"negative int64", Int64(-7), "-7"},
		{"int32", Int32(5), "5"},
		{"float two decimals", Float(5.5), "5.50"},
		{"float rounds", Float(1.0 / 3.0), "0.33"},
		{"float whole", Float(3), "3.00"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"string verbatim", String("hello"), "hello"},
		{"void placeholder", Void(), "void"},
		{"error", Errorf("division by zero"), "error: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Render())
		})
	}
}

func TestErrorAndAbsent(t *testing.T) {
	err := Errorf("boom %d", 7)
	assert.True(t, err.IsError())
	assert.False(t, err.IsAbsent())
	assert.Equal(t, "boom 7", err.Str)

	absent := Absent()
	assert.True(t, absent.IsError())
	assert.True(t, absent.IsAbsent())

	assert.False(t, Int64(1).IsError())
	assert.False(t, Void().IsError())
}

func TestNumericHelpers(t *testing.T) {
	assert.True(t, Int32(1).IsNumeric())
	assert.True(t, Int64(1).IsNumeric())
	assert.True(t, Float(1).IsNumeric())
	assert.False(t, Bool(true).IsNumeric())
	assert.False(t, String("1").IsNumeric())

	assert.Equal(t, int64(9), Int32(9).AsInt64())
	assert.Equal(t, 2.5, Float(2.5).AsFloat())
	assert.Equal(t, 3.0, Int64(3).AsFloat())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int32", KindInt32.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "error", KindError.String())
}
