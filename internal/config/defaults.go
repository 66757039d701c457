// Package config holds the fixed limits and default values of the runtime.
package config

// Default configuration values.
const (
	// Ext is the source file extension appended to loadin targets.
	Ext = ".zr"
	// DefaultFilesDir is the subdirectory under the run root searched for
	// modules after the including file's own directory.
	DefaultFilesDir = "files"
)

// Fixed capacities. Exceeding any of these is fatal.
const (
	// MaxModules is the module registry capacity.
	MaxModules = 64
	// MaxPathLen is the longest candidate filename a loadin may produce.
	MaxPathLen = 512
)
