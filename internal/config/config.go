// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		KeywordsFile string `yaml:"keywords_file"`
		Output       string `yaml:"output"`
		OutputCSV    string `yaml:"output_csv"`
		OutputDir    string `yaml:"output_dir"`
		Recursive    bool   `yaml:"recursive"`
		Verbose      bool   `yaml:"verbose"`
		Debug        bool   `yaml:"debug"`
		NoColor      bool   `yaml:"no_color"`
		Quiet        bool   `yaml:"quiet"`
	} `yaml:"defaults"`

	// Profiles for different scanning scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings
type Profile struct {
	KeywordsFile string `yaml:"keywords_file"`
	Output       string `yaml:"output"`
	OutputCSV    string `yaml:"output_csv"`
	OutputDir    string `yaml:"output_dir"`
	Recursive    bool   `yaml:"recursive"`
	Verbose      bool   `yaml:"verbose"`
	Debug        bool   `yaml:"debug"`
	NoColor      bool   `yaml:"no_color"`
	Quiet        bool   `yaml:"quiet"`
	Description  string `yaml:"description"`
}

// Default input and output filenames.
const (
	DefaultKeywordsFile = "keywords.txt"
	DefaultJSONName     = "search_results.json"
	DefaultCSVName      = "search_results.csv"
)

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.KeywordsFile = DefaultKeywordsFile
	config.Defaults.Output = DefaultJSONName

	// Add default CI profile: plain output suitable for pipelines
	config.Profiles["ci"] = Profile{
		NoColor:     true,
		Quiet:       true,
		Description: "Optimized for CI pipelines: no colors, no progress output",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// A config file may clear the defaults; restore the hard fallbacks
	if config.Defaults.KeywordsFile == "" {
		config.Defaults.KeywordsFile = DefaultKeywordsFile
	}
	if config.Defaults.Output == "" && config.Defaults.OutputDir == "" {
		config.Defaults.Output = DefaultJSONName
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	if fileExists("pdfsift.yaml") {
		return "pdfsift.yaml"
	}
	if fileExists("pdfsift.yml") {
		return "pdfsift.yml"
	}

	// Project-specific dotfile
	if fileExists(".pdfsift.yaml") {
		return ".pdfsift.yaml"
	}
	if fileExists(".pdfsift.yml") {
		return ".pdfsift.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Legacy location in home directory
	homeConfig := filepath.Join(home, ".pdfsift.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "pdfsift", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard
// locations when configFile is empty). If loading fails, it returns a default
// configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}
