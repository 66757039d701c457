package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
)

// NewASTCommand creates the ast command.
func NewASTCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <script>",
		Short: "Show the syntax tree of a script",
		Long: `Parse a script and print its syntax tree as YAML.

The tree reflects the grouping the evaluator will use. Binary operators
group to the right, so the right operand of a node covers the whole
rest of the expression unless parentheses say otherwise.`,
		Example: `  zr ast main.zr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args[0])
		},
	}
}

func runAST(cmd *cobra.Command, path string) error {
	r := RendererFrom(cmd.Context())

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(program)
	if err != nil {
		return fmt.Errorf("cannot encode syntax tree: %w", err)
	}
	r.Printf("%s", data)
	return nil
}
