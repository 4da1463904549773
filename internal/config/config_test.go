package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadMissingFileUsesDefaults verifies a missing config is not an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Latex.Engine != DefaultEngine || cfg.Latex.Opts != DefaultOpts {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Archive.Path != DefaultArchivePath {
		t.Fatalf("archive default not applied: %+v", cfg.Archive)
	}
}

// TestLoadAppliesOverrides verifies file values survive normalization.
func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	content := "version: 1\nlatex:\n  engine: lualatex\n  max_workers: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Latex.Engine != "lualatex" || cfg.Latex.MaxWorkers != 2 {
		t.Fatalf("overrides lost: %+v", cfg.Latex)
	}
	if cfg.Latex.Opts != DefaultOpts {
		t.Fatalf("unset field not defaulted: %+v", cfg.Latex)
	}
}

// TestParseRejectsUnknownFields verifies strict decoding.
func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nunknown: true\n"))
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

// TestParseRejectsMultipleDocuments verifies single-document decoding.
func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

// TestValidateRejectsUnknownEngine verifies the closed engine set.
func TestValidateRejectsUnknownEngine(t *testing.T) {
	cfg := Default()
	cfg.Latex.Engine = "typst"
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for unsupported engine")
	}
}

// TestValidateRejectsNegativeWorkers verifies worker bounds.
func TestValidateRejectsNegativeWorkers(t *testing.T) {
	cfg := Default()
	cfg.Latex.MaxWorkers = -1
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for negative max_workers")
	}
}

// TestOptsList verifies option string splitting.
func TestOptsList(t *testing.T) {
	latex := LatexConfig{Opts: " -shell-escape  -auxdir=AUX "}
	opts := latex.OptsList()
	if len(opts) != 2 || opts[0] != "-shell-escape" || opts[1] != "-auxdir=AUX" {
		t.Fatalf("unexpected opts: %v", opts)
	}
}
