// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package caldiffconfig provides configuration parsing and validation for caldiff.
//
// Configuration is stored at caldiff.yaml within the caldiff directory (--dir flag,
// defaults to the current directory).
package caldiffconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufdev/caldiff/internal/pkg/caldate"
	"github.com/bufdev/caldiff/internal/pkg/cliio"
	"github.com/bufdev/caldiff/internal/standard/xos"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the configuration file within the caldiff directory.
	ConfigFileName = "caldiff.yaml"
	// DateRefPrefix is the prefix that marks a reference to a named date.
	DateRefPrefix = "@"
)

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The default output format.
#
# Optional. One of table, csv, json. Defaults to table.
format: table
# Named dates.
#
# Optional. Named dates can be used in place of a date argument as @name.
# Dates are written as Y-MM-DD, with a leading - for BC years.
# Dates before October 15, 1582 are on the proleptic Julian calendar.
dates:
  - name: reform
    date: 1582-10-15
  # - name: ides
  #   date: -44-03-15
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Format is the default output format.
	Format string `yaml:"format"`
	// Dates is the optional list of named dates.
	Dates []ExternalDateConfig `yaml:"dates"`
}

// ExternalDateConfig holds a named date.
type ExternalDateConfig struct {
	// Name is the name used to reference the date as @name.
	Name string `yaml:"name"`
	// Date is the date in Y-MM-DD form, validated when decoded.
	Date caldate.Date `yaml:"date"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// Format is the default output format.
	Format cliio.Format
	// NamedDates maps names to validated dates.
	NamedDates map[string]caldate.Date
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	format := cliio.FormatTable
	if externalConfig.Format != "" {
		parsedFormat, err := cliio.ParseFormat(externalConfig.Format)
		if err != nil {
			return nil, fmt.Errorf("format: %w", err)
		}
		format = parsedFormat
	}
	// Build the named dates map, checking for duplicates.
	namedDates := make(map[string]caldate.Date, len(externalConfig.Dates))
	for _, d := range externalConfig.Dates {
		if d.Name == "" {
			return nil, errors.New("date name is required")
		}
		if strings.HasPrefix(d.Name, DateRefPrefix) {
			return nil, fmt.Errorf("date name %q must not start with %q", d.Name, DateRefPrefix)
		}
		if _, ok := namedDates[d.Name]; ok {
			return nil, fmt.Errorf("duplicate date name %q", d.Name)
		}
		if d.Date == (caldate.Date{}) {
			return nil, fmt.Errorf("date %q: date is required", d.Name)
		}
		if err := d.Date.Validate(); err != nil {
			return nil, fmt.Errorf("date %q: %w", d.Name, err)
		}
		namedDates[d.Name] = d.Date
	}
	return &Config{
		Format:     format,
		NamedDates: namedDates,
	}, nil
}

// NewDefaultConfig returns the Config used when no configuration file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Format:     cliio.FormatTable,
		NamedDates: make(map[string]caldate.Date),
	}
}

// ResolveDate resolves a date argument.
//
// Arguments of the form @name are looked up in the named dates, all other
// arguments are parsed as Y-MM-DD. The returned date is valid.
func (c *Config) ResolveDate(arg string) (caldate.Date, error) {
	if name, ok := strings.CutPrefix(arg, DateRefPrefix); ok {
		date, ok := c.NamedDates[name]
		if !ok {
			return caldate.Date{}, fmt.Errorf("unknown named date %q", name)
		}
		return date, nil
	}
	var date caldate.Date
	if err := date.UnmarshalText([]byte(arg)); err != nil {
		return caldate.Date{}, err
	}
	return date, nil
}

// ConfigFilePath returns the path to the configuration file within the given caldiff directory.
func ConfigFilePath(dirPath string) string {
	return filepath.Join(dirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given caldiff directory.
// Returns a clear error message directing users to run "caldiff config init" if the file is missing.
func ReadConfig(dirPath string) (*Config, error) {
	config, err := readConfig(dirPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"caldiff config init\" to create one", ConfigFilePath(dirPath))
		}
		return nil, err
	}
	return config, nil
}

// ReadConfigOrDefault reads and validates the configuration file from the given
// caldiff directory, returning the default Config if the file does not exist.
func ReadConfigOrDefault(dirPath string) (*Config, error) {
	config, err := readConfig(dirPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultConfig(), nil
		}
		return nil, err
	}
	return config, nil
}

// InitConfig creates a new configuration file with a documented template.
// Creates the caldiff directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(dirPath string) (string, error) {
	dirPath, err := xos.ExpandHome(dirPath)
	if err != nil {
		return "", err
	}
	filePath := ConfigFilePath(dirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the caldiff directory if it does not exist.
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at the given path.
func ValidateConfigFile(filePath string) error {
	_, err := readConfigFile(filePath)
	return err
}

func readConfig(dirPath string) (*Config, error) {
	return readConfigFile(ConfigFilePath(dirPath))
}

func readConfigFile(filePath string) (*Config, error) {
	filePath, err := xos.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	config, err := NewConfig(externalConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return config, nil
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
