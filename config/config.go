package config

import (
	"path/filepath"

	"gopkg.in/gcfg.v1"
)

type Config struct {
	Logs struct {
		Error      string
		Info       string
		NoDateTime bool
		Verbose    bool
	}
	Output struct {
		Indent bool
	}
	Message struct {
		GenerateId bool
	}
	Metrics struct {
		Textfile string
	}
}

// IsVerbose checks if verbose logging is enabled.
func (c Config) IsVerbose() bool {
	return c.Logs.Verbose
}

// WithDateTime checks if log entries should be logged with date and time.
func (c Config) WithDateTime() bool {
	return !c.Logs.NoDateTime
}

// Indent checks if the JSON output should be indented.
func (c Config) Indent() bool {
	return c.Output.Indent
}

// GenerateMessageID checks if a message id should be generated for messages
// not having one.
func (c Config) GenerateMessageID() bool {
	return c.Message.GenerateId
}

// HasMetricsTextfile checks if metrics should be written to a file.
func (c Config) HasMetricsTextfile() bool {
	return c.Metrics.Textfile != ""
}

// MetricsTextfile returns the file metrics are written to.
func (c Config) MetricsTextfile() string {
	return c.Metrics.Textfile
}

// LoadAndParse creates a new instance of config by parsing the content of the given file.
// An empty location results in the default configuration.
func LoadAndParse(location string) (*Config, error) {
	cfg := Config{}
	if location == "" {
		return &cfg, nil
	}

	location, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}

	if err := gcfg.ReadFileInto(&cfg, location); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func CreateFromString(data string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadStringInto(cfg, data); err != nil {
		return nil, err
	}

	return cfg, nil
}
