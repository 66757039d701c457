package output

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit text", ModeText, false, ModeText},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"empty defaults to auto", "", false, ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_NoANSIWhenPiped(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeAuto)

	r.Success("done")
	r.Error("boom")
	r.Dim("detail")

	assert.False(t, ansiPattern.MatchString(out.String()))
	assert.False(t, ansiPattern.MatchString(errOut.String()))
	assert.Contains(t, out.String(), "done")
	assert.Contains(t, errOut.String(), "boom")
}

func TestRenderer_ErrorGoesToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Error("fault: %d", 7)
	assert.Empty(t, out.String())
	assert.Equal(t, "fault: 7\n", errOut.String())
}

func TestRenderer_HeadingMarkdown(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Heading("Modules")
	assert.Equal(t, "## Modules\n\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"modules": 2}))
	assert.JSONEq(t, `{"modules": 2}`, out.String())
}
