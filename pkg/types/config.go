package types

import "errors"

// Config holds the settings the framer CLI reads from config.yaml,
// environment variables and flags.
type Config struct {
	Output   string `json:"output" yaml:"output" mapstructure:"output"`
	Workers  int    `json:"workers" yaml:"workers" mapstructure:"workers"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Layout   string `json:"layout" yaml:"layout,omitempty" mapstructure:"layout"`
}

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputTOML = "toml"
)

// Default configuration values.
const (
	DefaultOutput   = OutputText
	DefaultWorkers  = 4
	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrOutputUnknown  = errors.New("unknown output format")
	ErrWorkersInvalid = errors.New("workers must be positive")
)

// knownOutputs lists the formats that Validate accepts.
var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
	OutputTOML: true,
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		Output:   DefaultOutput,
		Workers:  DefaultWorkers,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	if c.Workers <= 0 {
		return ErrWorkersInvalid
	}
	return nil
}
