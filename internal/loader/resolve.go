package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adriyanbasu0/zr-sharp/internal/config"
)

// Resolver maps loadin targets to canonical absolute paths.
//
// Search order for a target (with the source extension appended):
//  1. relative to the including file's own directory
//  2. relative to the <root>/files/ directory of the run
//  3. the target itself, when it was given as an absolute path
//
// The first candidate that exists as a regular file wins and is
// canonicalized (symlinks and relative segments resolved) so the same
// physical file always yields the same key, however it was spelled.
type Resolver struct {
	rootDir  string // directory of the initially invoked file
	filesDir string // subdirectory name under rootDir
}

// NewResolver creates a resolver for a run rooted at rootDir. An empty
// filesDir selects the default shared-module directory name.
func NewResolver(rootDir, filesDir string) *Resolver {
	if filesDir == "" {
		filesDir = config.DefaultFilesDir
	}
	return &Resolver{rootDir: rootDir, filesDir: filesDir}
}

// Resolve resolves target against the directory of the including file.
func (r *Resolver) Resolve(target, baseDir string) (string, error) {
	name := target
	if !strings.HasSuffix(name, config.Ext) {
		name += config.Ext
	}
	if len(name) > config.MaxPathLen {
		return "", &ModuleError{
			Target:  target,
			Message: fmt.Sprintf("candidate filename exceeds %d characters", config.MaxPathLen),
		}
	}

	var candidates []string
	if filepath.IsAbs(name) {
		candidates = []string{name}
	} else {
		candidates = []string{
			filepath.Join(baseDir, name),
			filepath.Join(r.rootDir, r.filesDir, name),
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return Canonicalize(candidate)
	}

	return "", &ModuleError{Target: target, Message: "cannot resolve module"}
}

// Canonicalize resolves a path to its unique absolute form with symlinks
// and relative segments resolved.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &ModuleError{Target: path, Message: err.Error()}
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &ModuleError{Target: path, Message: err.Error()}
	}
	return canonical, nil
}
