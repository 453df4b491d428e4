// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.KeywordsFile != DefaultKeywordsFile {
		t.Errorf("expected default keywords_file=%s, got %q", DefaultKeywordsFile, cfg.Defaults.KeywordsFile)
	}
	if cfg.Defaults.Output != DefaultJSONName {
		t.Errorf("expected default output=%s, got %q", DefaultJSONName, cfg.Defaults.Output)
	}
	if cfg.Defaults.Recursive {
		t.Error("expected recursive=false by default")
	}
}

func TestLoadConfig_ProfilesInitialized(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profiles == nil {
		t.Error("expected profiles map to be initialized")
	}
	// Default ci profile should exist
	if _, ok := cfg.Profiles["ci"]; !ok {
		t.Error("expected 'ci' profile to exist in defaults")
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  keywords_file: terms.txt
  output_dir: out
  recursive: true
profiles:
  audit:
    keywords_file: audit-terms.txt
    verbose: true
    description: Audit keyword sweep
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.KeywordsFile != "terms.txt" {
		t.Errorf("expected keywords_file=terms.txt, got %q", cfg.Defaults.KeywordsFile)
	}
	if !cfg.Defaults.Recursive {
		t.Error("expected recursive=true from config file")
	}
	// output_dir given, so no JSON path fallback is forced
	if cfg.Defaults.Output != "" {
		t.Errorf("expected empty output when output_dir is set, got %q", cfg.Defaults.Output)
	}

	profile := cfg.GetProfile("audit")
	if profile == nil {
		t.Fatal("expected 'audit' profile")
	}
	if profile.KeywordsFile != "audit-terms.txt" {
		t.Errorf("expected profile keywords_file=audit-terms.txt, got %q", profile.KeywordsFile)
	}
	if !profile.Verbose {
		t.Error("expected profile verbose=true")
	}
}

func TestLoadConfig_NonexistentFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent config file")
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.KeywordsFile != DefaultKeywordsFile {
		t.Errorf("expected fallback keywords_file=%s, got %q", DefaultKeywordsFile, cfg.Defaults.KeywordsFile)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte("defaults: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// An explicitly named config file that fails to parse must error so the
	// caller can refuse to run with it
	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestGetProfile_Missing(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetProfile("nope") != nil {
		t.Error("expected nil for unknown profile")
	}
}
