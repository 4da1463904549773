package config

import "fmt"

// supportedEngines is the closed set of latexmk targets the build command
// accepts.
var supportedEngines = map[string]bool{
	"pdf":      true,
	"pdfdvi":   true,
	"dvi":      true,
	"ps":       true,
	"lualatex": true,
	"xelatex":  true,
}

// Validate rejects configs the rest of the tool cannot honor.
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("config version %d is not supported (expected 1)", cfg.Version)
	}
	if !supportedEngines[cfg.Latex.Engine] {
		return fmt.Errorf("latex engine %q is not supported", cfg.Latex.Engine)
	}
	if cfg.Latex.MaxWorkers < 0 {
		return fmt.Errorf("latex max_workers must not be negative")
	}
	return nil
}
