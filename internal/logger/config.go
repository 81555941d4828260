package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// loggingFile is the layout of a logging YAML file
type loggingFile struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig logs warnings and above as text on the console only.
// The generator is a CLI, so info chatter stays off unless asked for.
func DefaultConfig() Config {
	return Config{
		Level:          "WARNING",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/amazeing.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig loads logging configuration from the `logging:` section of a
// YAML file and applies environment variable overrides. A missing or
// unparsable file leaves the defaults in place.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Decode over the defaults so absent keys keep their default value
			file := loggingFile{Logging: config}
			if err := yaml.Unmarshal(data, &file); err == nil {
				config = file.Logging
			}
		}
	}

	applyEnv(&config)
	return config, nil
}

func applyEnv(config *Config) {
	if level := os.Getenv("AMAZEING_LOG_LEVEL"); level != "" {
		config.Level = level
	}

	if format := os.Getenv("AMAZEING_LOG_FORMAT"); format != "" {
		config.ConsoleFormat = format
		config.FileFormat = format
	}

	if fileEnabled := os.Getenv("AMAZEING_LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("AMAZEING_LOG_FILE"); filePath != "" {
		config.FilePath = filePath
	}
}
