package config

import "strings"

// Config is the .examkit.yml schema.
type Config struct {
	Version int           `yaml:"version"`
	Latex   LatexConfig   `yaml:"latex"`
	Extract ExtractConfig `yaml:"extract"`
	Archive ArchiveConfig `yaml:"archive"`
}

// LatexConfig controls how exam versions are compiled.
type LatexConfig struct {
	// Engine is the latexmk target, e.g. "pdf" for -pdf.
	Engine string `yaml:"engine"`
	// Opts are extra latexmk options as one space-separated string.
	Opts string `yaml:"opts"`
	// AuxDir is removed during cleanup unless --keep-aux is given.
	AuxDir string `yaml:"aux_dir"`
	// MaxWorkers bounds parallel version builds; 0 means one worker
	// per version.
	MaxWorkers int `yaml:"max_workers"`
}

// ExtractConfig controls answer key extraction output.
type ExtractConfig struct {
	// Output is the default key file path; empty means stdout.
	Output string `yaml:"output"`
}

// ArchiveConfig controls the answer key archive.
type ArchiveConfig struct {
	// Path is the DuckDB database file for archived keys.
	Path string `yaml:"path"`
}

// OptsList splits the latexmk options string into arguments.
func (l LatexConfig) OptsList() []string {
	return strings.Fields(l.Opts)
}
