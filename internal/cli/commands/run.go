package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/adriyanbasu0/zr-sharp/internal/cli/output"
	intconfig "github.com/adriyanbasu0/zr-sharp/internal/config"
	"github.com/adriyanbasu0/zr-sharp/internal/engine"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// runSummary is the machine-readable result of one run.
type runSummary struct {
	RunID         string   `json:"run_id"`
	Status        string   `json:"status"`
	Modules       []string `json:"modules"`
	RuntimeErrors []string `json:"runtime_errors,omitempty"`
	FatalError    string   `json:"fatal_error,omitempty"`
	DurationMS    int64    `json:"duration_ms"`
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script",
		Long: `Execute a script together with everything it loads.

Included scripts run before the statements of the script that loads
them. Runtime errors are reported but do not stop the remaining
top-level statements; lexical, syntax, and module errors abort the run.`,
		Example: `  # Run a script
  zr run main.zr

  # Re-run whenever a loaded script changes
  zr run main.zr --watch

  # Machine-readable summary
  zr run main.zr -o json`,
		Args: cobra.ExactArgs(1),
		// A run that completes with runtime errors returns an error to
		// exit non-zero; that is not a usage problem.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Watch {
				return runWatch(cmd.Context(), args[0])
			}
			return runOnce(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when any loaded script changes")

	return cmd
}

func runOnce(ctx context.Context, path string) error {
	r := RendererFrom(ctx)

	// Fresh symbols per run
	eng := newEngine(ctx)
	result, err := eng.Run(path)

	if r.EffectiveMode() == output.ModeJSON {
		return reportJSON(r, result, err)
	}

	for _, re := range result.RuntimeErrors {
		r.Error("error at %s: %s", re.Pos, re.Message)
	}
	if err != nil {
		return err
	}
	if n := len(result.RuntimeErrors); n > 0 {
		return fmt.Errorf("completed with %d runtime error(s)", n)
	}
	return nil
}

func reportJSON(r *output.Renderer, result *engine.RunResult, runErr error) error {
	summary := runSummary{
		RunID:      result.ID,
		Status:     result.Status,
		Modules:    result.Modules,
		FatalError: result.FatalError,
		DurationMS: result.Duration.Milliseconds(),
	}
	for _, re := range result.RuntimeErrors {
		summary.RuntimeErrors = append(summary.RuntimeErrors, fmt.Sprintf("%s: %s", re.Pos, re.Message))
	}
	if err := r.JSON(summary); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if len(result.RuntimeErrors) > 0 {
		return fmt.Errorf("completed with %d runtime error(s)", len(result.RuntimeErrors))
	}
	return nil
}

// runWatch runs the script, then re-runs it whenever the script or any
// module it loaded changes on disk.
func runWatch(ctx context.Context, path string) error {
	r := RendererFrom(ctx)
	logger := LoggerFrom(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	execute := func() {
		eng := newEngine(ctx)
		result, runErr := eng.Run(path)
		for _, re := range result.RuntimeErrors {
			r.Error("error at %s: %s", re.Pos, re.Message)
		}
		if runErr != nil {
			r.Error("%v", runErr)
		}

		// Watch the directories of everything the run touched. Watching
		// directories instead of files survives editors that replace
		// files on save.
		dirs := map[string]bool{filepath.Dir(path): true}
		for _, mod := range result.Modules {
			dirs[filepath.Dir(mod)] = true
		}
		for dir := range dirs {
			if err := watcher.Add(dir); err != nil {
				logger.Debug("cannot watch directory", "dir", dir, "error", err)
			}
		}
	}

	execute()
	r.Dim("Watching for changes... (Ctrl+C to stop)")

	// Editors fire several events per save; a short timer coalesces them
	// into one re-run.
	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != intconfig.Ext {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case <-rerun:
			r.Dim("Change detected, re-running...")
			execute()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Debug("watcher error", "error", err)
		}
	}
}
