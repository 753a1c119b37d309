package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ReportSettings holds options for the reporting and export step.
type ReportSettings struct {
	MarginThreshold float64 `yaml:"margin_threshold,omitempty"`
	Confidence      float64 `yaml:"confidence,omitempty"`
	ExportPath      string  `yaml:"export_path,omitempty"`
	ChartPath       string  `yaml:"chart_path,omitempty"`
}

// ProjectConfig is the inventory.yaml project file. Every field is optional;
// CLI flags and environment variables take precedence over it.
type ProjectConfig struct {
	// Connection is the PostgreSQL connection string (URI or DSN format).
	Connection string `yaml:"connection,omitempty"`

	// ChunkSize is the row batch size for chunked CSV loads.
	ChunkSize int `yaml:"chunk_size,omitempty"`

	// DataDir is the directory scanned for CSV files.
	DataDir string `yaml:"data_dir,omitempty"`

	// LogDir is the directory run logs are written to.
	LogDir string `yaml:"log_dir,omitempty"`

	Report ReportSettings `yaml:"report,omitempty"`
}

const ConfigFileName = "inventory.yaml"

// Load reads inventory.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
