package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/adriyanbasu0/zr-sharp/internal/cli/output"
	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
	"github.com/adriyanbasu0/zr-sharp/pkg/token"
)

// tokenRow is the machine-readable form of one token.
type tokenRow struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <script>",
		Short: "Show the token stream of a script",
		Long: `Scan a script and print every token with its position.

Useful for debugging lexical issues like unterminated strings or
unrecognized characters: scanning stops at the first lexical error and
reports it.`,
		Example: `  zr tokens main.zr
  zr tokens main.zr -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}
}

func runTokens(cmd *cobra.Command, path string) error {
	r := RendererFrom(cmd.Context())

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	tokens, err := parser.Tokenize(string(source))
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		rows := make([]tokenRow, 0, len(tokens))
		for _, tok := range tokens {
			rows = append(rows, tokenRow{
				Type:    tok.Type.String(),
				Literal: tok.Literal,
				Line:    tok.Pos.Line,
				Column:  tok.Pos.Column,
			})
		}
		return r.JSON(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Literal", "Line", "Col"})
	for i, tok := range tokens {
		literal := tok.Literal
		if tok.Type == token.EOF {
			literal = ""
		}
		t.AppendRow(table.Row{i + 1, tok.Type.String(), literal, tok.Pos.Line, tok.Pos.Column})
	}
	t.Render()
	r.Printf("(%d tokens)\n", len(tokens))
	return nil
}
