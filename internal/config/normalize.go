package config

// Defaults applied during normalization.
const (
	DefaultEngine      = "pdf"
	DefaultOpts        = "-shell-escape -auxdir=AUX"
	DefaultAuxDir      = "AUX"
	DefaultArchivePath = ".examkit/keys.duckdb"
)

// Normalize fills in defaults for unset fields.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Latex.Engine == "" {
		cfg.Latex.Engine = DefaultEngine
	}
	if cfg.Latex.Opts == "" {
		cfg.Latex.Opts = DefaultOpts
	}
	if cfg.Latex.AuxDir == "" {
		cfg.Latex.AuxDir = DefaultAuxDir
	}
	if cfg.Archive.Path == "" {
		cfg.Archive.Path = DefaultArchivePath
	}
}
