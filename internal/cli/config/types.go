// Package config loads CLI configuration from file, environment, and
// flags.
package config

import (
	intconfig "github.com/adriyanbasu0/zr-sharp/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	// FilesDir is the shared-module directory name under the script root.
	FilesDir string `koanf:"files_dir"`
	// MaxModules caps the number of modules loaded per run.
	MaxModules int `koanf:"max_modules"`
	// HistoryFile stores interactive session history.
	HistoryFile string `koanf:"history_file"`
	Verbose     bool   `koanf:"verbose"`
	// OutputFormat is one of auto, text, markdown, json.
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultFilesDir    = intconfig.DefaultFilesDir
	DefaultMaxModules  = intconfig.MaxModules
	DefaultHistoryFile = ".zr_history"
	DefaultOutput      = "auto" // TTY=text, non-TTY=markdown
)
