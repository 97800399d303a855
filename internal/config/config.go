package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fakeyudi/pastediff/internal/compare"
)

// EnvDiffTool overrides the configured comparison tool when set.
const EnvDiffTool = "PASTEDIFF_DIFF_TOOL"

// Config holds all configurable pastediff settings.
type Config struct {
	DiffTool   string   `json:"diff_tool"`
	DiffArgs   []string `json:"diff_args"`   // inserted before the two file paths
	ScratchDir string   `json:"scratch_dir"` // "" = OS temp dir
	LogFile    string   `json:"log_file"`    // "" = no debug log
	LogLevel   string   `json:"log_level"`   // DEBUG | INFO | WARN | ERROR
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		DiffTool: compare.DefaultTool,
		DiffArgs: []string{},
		LogLevel: "INFO",
	}
}

// Dir returns the pastediff config directory:
// $XDG_CONFIG_HOME/pastediff or ~/.config/pastediff.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pastediff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pastediff"), nil
}

// LoadGlobal reads config.json from Dir.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return loadFile(filepath.Join(dir, "config.json"), true)
}

// LoadProject reads .pastediffconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".pastediffconfig", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	apply(&result, global)
	apply(&result, project)
	return result
}

// apply copies every set field of src over dst.
func apply(dst, src *Config) {
	if src == nil {
		return
	}
	if src.DiffTool != "" {
		dst.DiffTool = src.DiffTool
	}
	if len(src.DiffArgs) > 0 {
		dst.DiffArgs = src.DiffArgs
	}
	if src.ScratchDir != "" {
		dst.ScratchDir = src.ScratchDir
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

// ApplyEnv returns cfg with environment overrides applied.
func ApplyEnv(cfg Config) Config {
	if tool := os.Getenv(EnvDiffTool); tool != "" {
		cfg.DiffTool = tool
	}
	return cfg
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
