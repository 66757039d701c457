package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/adriyanbasu0/zr-sharp/internal/engine"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Short:   "Start an interactive session",
		Aliases: []string{"shell"},
		Long: `Start an interactive session.

Variables persist for the whole session, so a let on one line is
visible on the next. loadin is not available interactively.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	r := RendererFrom(ctx)

	eng := newEngine(ctx)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "zr> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newSessionCompleter(eng),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r.Printf("ZR# interactive session\n")
	r.Printf("Type .help for commands, .quit to exit\n\n")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, eng, line); quit {
				break
			}
			continue
		}

		errs, err := eng.EvalLine(line)
		if err != nil {
			r.Error("%v", err)
			continue
		}
		for _, re := range errs {
			r.Error("error: %s", re.Message)
		}
	}

	return nil
}

func handleDotCommand(cmd *cobra.Command, eng *engine.Engine, line string) (quit bool) {
	r := RendererFrom(cmd.Context())
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r.Out())

	case ".symbols":
		names := eng.Symbols().Names()
		if len(names) == 0 {
			r.Println("(no symbols defined)")
			break
		}
		for _, name := range names {
			r.Println(name)
		}

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		r.Error("Unknown command: %s (type .help for commands)", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help      Show this help message
  .symbols   List defined variables
  .clear     Clear the screen
  .quit      Exit the session

Tips:
  - Semicolons between statements are optional at line ends
  - Use arrow keys to navigate history
  - Tab completion works for keywords and defined variables
`
	_, _ = fmt.Fprintln(w, help)
}

// newSessionCompleter completes keywords, dot-commands, and the names of
// variables defined so far.
func newSessionCompleter(eng *engine.Engine) *readline.PrefixCompleter {
	dynamicNames := readline.PcItemDynamic(func(string) []string {
		return eng.Symbols().Names()
	})

	return readline.NewPrefixCompleter(
		readline.PcItem("let"),
		readline.PcItem("print", dynamicNames),
		readline.PcItem("if"),
		readline.PcItem("else"),
		readline.PcItem("true"),
		readline.PcItem("false"),
		dynamicNames,
		readline.PcItem(".help"),
		readline.PcItem(".symbols"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
