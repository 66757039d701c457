// Package engine provides the script execution engine. It owns the
// long-lived pieces of a session (symbol table, evaluator, logger) and
// orchestrates per-run module loading and evaluation.
package engine

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adriyanbasu0/zr-sharp/internal/config"
	"github.com/adriyanbasu0/zr-sharp/internal/interp"
	"github.com/adriyanbasu0/zr-sharp/internal/loader"
	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
)

// Engine executes scripts against one persistent symbol table. A single
// engine serves either one file run or one interactive session; symbols
// defined by earlier evaluations stay visible to later ones.
type Engine struct {
	symbols    *interp.SymbolTable
	eval       *interp.Evaluator
	stdout     io.Writer
	logger     *slog.Logger
	maxModules int
	filesDir   string
}

// Config holds engine configuration.
type Config struct {
	// Stdout receives print output. Defaults to os.Stdout.
	Stdout io.Writer
	// MaxModules caps the number of modules per run. Zero means the default.
	MaxModules int
	// FilesDir is the shared-module directory name. Empty means the default.
	FilesDir string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine with a fresh symbol table.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	maxModules := cfg.MaxModules
	if maxModules == 0 {
		maxModules = config.MaxModules
	}

	symbols := interp.NewSymbolTable()
	eval := interp.New(interp.Config{
		Symbols: symbols,
		Stdout:  stdout,
		Logger:  logger,
	})

	logger.Debug("initializing engine", "max_modules", maxModules)

	return &Engine{
		symbols:    symbols,
		eval:       eval,
		stdout:     stdout,
		logger:     logger,
		maxModules: maxModules,
		filesDir:   cfg.FilesDir,
	}
}

// Symbols returns the session symbol table.
func (e *Engine) Symbols() *interp.SymbolTable {
	return e.symbols
}

// newLoader builds a loader for a run rooted at the directory of the
// initially invoked file.
func (e *Engine) newLoader(entryPath string) *loader.Loader {
	return loader.New(loader.Config{
		RootDir:    filepath.Dir(entryPath),
		FilesDir:   e.filesDir,
		MaxModules: e.maxModules,
		Evaluator:  e.eval,
		Logger:     e.logger,
	})
}

// EvalLine parses and evaluates one interactive input line against the
// session symbols. Runtime errors are returned as values; the error is
// non-nil for lex, parse, or capacity faults.
func (e *Engine) EvalLine(source string) ([]interp.RuntimeError, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.eval.EvalProgram(program)
}
