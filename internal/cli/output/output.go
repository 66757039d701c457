// Package output handles terminal rendering for the CLI. A Renderer
// adapts to its destination: styled text on a TTY, plain markdown when
// piped, JSON when asked for machine-readable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles used in text mode.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Renderer writes CLI output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
}

// NewRenderer creates a renderer, detecting TTY state from the process
// environment.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = isTerminal(f) && termenv.EnvColorProfile() != termenv.Ascii
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use this to force either styled or plain output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Out returns the standard output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// ErrOut returns the error output writer.
func (r *Renderer) ErrOut() io.Writer {
	return r.errOut
}

// EffectiveMode resolves ModeAuto: text on a TTY, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// styled applies a style only in text mode on a TTY.
func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if r.EffectiveMode() == ModeText && r.isTTY {
		return style.Render(s)
	}
	return s
}

// Println writes a plain line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Success writes a success line.
func (r *Renderer) Success(format string, a ...any) {
	_, _ = fmt.Fprintln(r.out, r.styled(successStyle, fmt.Sprintf(format, a...)))
}

// Error writes an error line to the error output.
func (r *Renderer) Error(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styled(errorStyle, fmt.Sprintf(format, a...)))
}

// Warn writes a warning line to the error output.
func (r *Renderer) Warn(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styled(warnStyle, fmt.Sprintf(format, a...)))
}

// Dim writes a de-emphasized line.
func (r *Renderer) Dim(format string, a ...any) {
	_, _ = fmt.Fprintln(r.out, r.styled(dimStyle, fmt.Sprintf(format, a...)))
}

// Heading writes a section heading. In markdown mode it becomes an H2.
func (r *Renderer) Heading(s string) {
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.out, "## %s\n\n", s)
		return
	}
	_, _ = fmt.Fprintln(r.out, r.styled(headingStyle, s))
}

// JSON writes v as indented JSON to standard output.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
