package config

import "time"

// PlaygroundConfig configures the interpreted snippet playground.
type PlaygroundConfig struct {
	// Timeout bounds a single snippet evaluation.
	Timeout string `yaml:"timeout"`

	// AllowedImports is the import allowlist for snippets. Anything
	// outside this list is rejected before evaluation.
	AllowedImports []string `yaml:"allowed_imports"`
}

// DefaultAllowedImports returns the default snippet import allowlist.
// The built-in lesson snippets only ever need these three.
func DefaultAllowedImports() []string {
	return []string{"errors", "fmt", "strings"}
}

// ParseTimeout returns the playground timeout as a duration.
func (p *PlaygroundConfig) ParseTimeout() (time.Duration, error) {
	return time.ParseDuration(p.Timeout)
}

// GetTimeout returns the playground timeout, falling back to 10s when
// the configured value is missing or unparsable.
func (p *PlaygroundConfig) GetTimeout() time.Duration {
	d, err := p.ParseTimeout()
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// IsImportAllowed reports whether a snippet may import the given path.
func (p *PlaygroundConfig) IsImportAllowed(path string) bool {
	for _, allowed := range p.AllowedImports {
		if path == allowed {
			return true
		}
	}
	return false
}
