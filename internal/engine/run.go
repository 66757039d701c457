package engine

// run.go - execution orchestration for file runs

import (
	"time"

	"github.com/google/uuid"

	"github.com/adriyanbasu0/zr-sharp/internal/dag"
	"github.com/adriyanbasu0/zr-sharp/internal/interp"
)

// Run status values.
const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// RunResult summarizes one file run.
type RunResult struct {
	// ID uniquely identifies the run.
	ID string
	// EntryPath is the initially invoked file.
	EntryPath string
	// Modules lists canonical module paths in load order.
	Modules []string
	// Graph is the include graph built during the run.
	Graph *dag.Graph
	// RuntimeErrors are the non-fatal errors collected across all files.
	RuntimeErrors []interp.RuntimeError
	// Status is completed or failed.
	Status string
	// FatalError holds the message of the fatal fault, if any.
	FatalError string
	// Duration is the wall-clock run time.
	Duration time.Duration
}

// Failed reports whether the run aborted on a fatal fault.
func (r *RunResult) Failed() bool {
	return r.Status == RunStatusFailed
}

// Run loads and evaluates the file at path together with everything it
// includes. The result is populated even when the run fails; the error
// is non-nil only for fatal faults (lex, parse, module, capacity).
func (e *Engine) Run(path string) (*RunResult, error) {
	result := &RunResult{
		ID:        uuid.NewString(),
		EntryPath: path,
		Status:    RunStatusCompleted,
	}

	e.logger.Info("starting run", "run_id", result.ID, "path", path)
	start := time.Now()

	l := e.newLoader(path)
	runtimeErrs, err := l.LoadFile(path)

	result.Duration = time.Since(start)
	result.Modules = l.Registry().Paths()
	result.Graph = l.Graph()
	result.RuntimeErrors = runtimeErrs

	if err != nil {
		result.Status = RunStatusFailed
		result.FatalError = err.Error()
		e.logger.Error("run failed", "run_id", result.ID, "error", err.Error())
		return result, err
	}

	e.logger.Info("run completed",
		"run_id", result.ID,
		"modules", len(result.Modules),
		"runtime_errors", len(runtimeErrs),
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}
