// config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DataConfig points at the two source datasets.
type DataConfig struct {
	NEOCSV  string `yaml:"neo_csv"`
	CadJSON string `yaml:"cad_json"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig is the loaded application configuration.
var AppConfig Config

// Load reads configuration in three layers: built-in defaults, then the YAML
// file at configPath (skipped silently when the file does not exist, unless
// the path was explicitly given), then environment variable overrides. A
// .env file in the working directory is folded into the environment first.
//
// Recognized environment variables: NEOTRACK_NEO_CSV, NEOTRACK_CAD_JSON,
// NEOTRACK_LOG_LEVEL.
func Load(configPath string) error {
	// Ignore a missing .env; plain environment variables still apply.
	_ = godotenv.Load()

	AppConfig = Config{
		Data: DataConfig{
			NEOCSV:  "data/neos.csv",
			CadJSON: "data/cad.json",
		},
		Logging: LoggingConfig{Level: "info"},
	}

	path := configPath
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &AppConfig); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && configPath == "":
		// Default path and no file: defaults plus environment are enough.
	default:
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if v := os.Getenv("NEOTRACK_NEO_CSV"); v != "" {
		AppConfig.Data.NEOCSV = v
	}
	if v := os.Getenv("NEOTRACK_CAD_JSON"); v != "" {
		AppConfig.Data.CadJSON = v
	}
	if v := os.Getenv("NEOTRACK_LOG_LEVEL"); v != "" {
		AppConfig.Logging.Level = v
	}

	return nil
}
