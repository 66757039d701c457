package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/adriyanbasu0/zr-sharp/internal/cli/output"
	"github.com/adriyanbasu0/zr-sharp/internal/engine"
)

// graphSummary is the machine-readable form of an include graph.
type graphSummary struct {
	Modules  []string            `json:"modules"`
	Includes map[string][]string `json:"includes,omitempty"`
	Order    []string            `json:"order"`
}

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <script>",
		Short: "Show the include graph of a script",
		Long: `Load a script and print which scripts it pulls in, directly or
transitively, and the order they are evaluated in.

The script is executed to discover the graph; its print output is
suppressed.`,
		Example: `  zr graph main.zr
  zr graph main.zr -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0])
		},
	}
}

func runGraph(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	r := RendererFrom(ctx)

	eng := engine.New(engine.Config{
		Stdout:     io.Discard,
		MaxModules: cfg.MaxModules,
		FilesDir:   cfg.FilesDir,
		Logger:     LoggerFrom(ctx),
	})

	result, err := eng.Run(path)
	if err != nil {
		return err
	}

	g := result.Graph
	order, err := g.TopologicalSort()
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		summary := graphSummary{
			Modules:  g.Modules(),
			Includes: map[string][]string{},
			Order:    order,
		}
		for _, mod := range g.Modules() {
			if children := g.Includes(mod); len(children) > 0 {
				summary.Includes[mod] = children
			}
		}
		return r.JSON(summary)
	}

	r.Heading("Modules")
	for _, mod := range g.Modules() {
		r.Println(mod)
		for _, child := range g.Includes(mod) {
			r.Printf("  loads %s\n", child)
		}
	}

	r.Heading("Evaluation order")
	for i, mod := range order {
		r.Printf("%d. %s\n", i+1, mod)
	}
	return nil
}
