package testsupport

import (
	"testing"

	"scriptscan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted at a unique temp directory per
// test, with repository defaults and any provided options applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Project.Root = t.TempDir()

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithRoot overrides the project root.
func WithRoot(root string) ConfigOption {
	return func(c *config.Config) {
		c.Project.Root = root
	}
}

// WithAssetsDir overrides the assets subtree name.
func WithAssetsDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Project.AssetsDir = dir
	}
}

// WithOutputFormat overrides the report format.
func WithOutputFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.Output.Format = format
	}
}
