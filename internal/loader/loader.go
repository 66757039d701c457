// Package loader drives the per-file pipeline of a run: it parses each
// source file, resolves its loadin directives depth-first, and hands the
// remaining statements to the evaluator.
//
// The loader is the only component that recurses across files. For every
// file, the initial one included, the sequence is: read, parse, resolve
// each loadin eagerly (recursing through this same pipeline with the
// target's own directory as the new base), then evaluate the file's
// non-include statements as one block. Print output therefore appears in
// strict source-and-include order.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adriyanbasu0/zr-sharp/internal/config"
	"github.com/adriyanbasu0/zr-sharp/internal/dag"
	"github.com/adriyanbasu0/zr-sharp/internal/interp"
	"github.com/adriyanbasu0/zr-sharp/pkg/parser"
)

// Loader orchestrates module resolution and evaluation for one run.
type Loader struct {
	resolver *Resolver
	registry *Registry
	graph    *dag.Graph
	eval     *interp.Evaluator
	logger   *slog.Logger
}

// Config holds loader configuration.
type Config struct {
	// RootDir is the run's root: the directory of the initially invoked
	// file. Module search falls back to <RootDir>/<FilesDir>/.
	RootDir string
	// FilesDir is the shared-module directory name. Empty means the default.
	FilesDir string
	// MaxModules caps the registry. Zero means the default.
	MaxModules int
	// Evaluator executes each file's non-include statements.
	Evaluator *interp.Evaluator
	// Graph records include edges. A fresh graph is created if nil.
	Graph *dag.Graph
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates a loader.
func New(cfg Config) *Loader {
	maxModules := cfg.MaxModules
	if maxModules == 0 {
		maxModules = config.MaxModules
	}
	graph := cfg.Graph
	if graph == nil {
		graph = dag.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		resolver: NewResolver(cfg.RootDir, cfg.FilesDir),
		registry: NewRegistry(maxModules),
		graph:    graph,
		eval:     cfg.Evaluator,
		logger:   logger,
	}
}

// Graph returns the include graph built so far.
func (l *Loader) Graph() *dag.Graph {
	return l.graph
}

// Registry returns the module registry.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// LoadFile runs the initial file of a run through the pipeline. The
// returned runtime errors are non-fatal top-level Error values collected
// across all files in evaluation order; a non-nil error is fatal
// (lex/parse/module/capacity) and aborts the run where it occurred.
func (l *Loader) LoadFile(path string) ([]interp.RuntimeError, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return nil, err
	}
	if info, statErr := os.Stat(canonical); statErr != nil || !info.Mode().IsRegular() {
		return nil, &ModuleError{Target: path, Message: "not a regular file"}
	}
	if err := l.registry.Register(canonical); err != nil {
		return nil, err
	}
	return l.processFile(canonical)
}

// processFile parses one registered file, resolves its includes
// depth-first, then evaluates its remaining statements.
func (l *Loader) processFile(canonical string) ([]interp.RuntimeError, error) {
	l.logger.Debug("loading module", "path", canonical)

	source, err := os.ReadFile(canonical)
	if err != nil {
		return nil, &ModuleError{Target: canonical, Message: err.Error()}
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", canonical, err)
	}

	l.graph.AddModule(canonical)
	baseDir := filepath.Dir(canonical)

	var errs []interp.RuntimeError
	rest := &parser.Block{NodeInfo: program.NodeInfo}

	for _, stmt := range program.Statements {
		include, ok := stmt.(*parser.LoadinStmt)
		if !ok {
			rest.Statements = append(rest.Statements, stmt)
			continue
		}

		target, err := l.resolver.Resolve(include.Target, baseDir)
		if err != nil {
			return errs, err
		}
		// Register before reading, so a cycle is caught the moment the
		// path is revisited rather than after the file completes.
		if err := l.registry.Register(target); err != nil {
			return errs, err
		}
		l.graph.AddModule(target)
		if err := l.graph.AddInclude(canonical, target); err != nil {
			return errs, err
		}

		nested, err := l.processFile(target)
		errs = append(errs, nested...)
		if err != nil {
			return errs, err
		}
	}

	fileErrs, err := l.eval.EvalProgram(rest)
	errs = append(errs, fileErrs...)
	if err != nil {
		return errs, err
	}

	l.logger.Debug("module evaluated", "path", canonical, "statements", len(rest.Statements), "runtime_errors", len(fileErrs))
	return errs, nil
}
