package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ProjectPath is the project JSON document to operate on.
	ProjectPath string

	// OutputPath receives the compiled YAML. Empty means standard output.
	OutputPath string

	// ValidateOnly runs the validation pass and reports diagnostics without
	// producing a document.
	ValidateOnly bool

	// Summary prints the project summary report after a successful run.
	Summary bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.ValidateOnly && cfg.OutputPath != "" {
		return nil, errors.New("output path is meaningless in validate-only mode")
	}
	return &cfg, nil
}
