package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable. Existence of the project
// root is deliberately not checked here: `scriptscan config validate`
// must work from any directory, and the scan command surfaces a missing
// root as its own startup failure.
func (c *Config) Validate() error {
	if err := c.validateProject(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateProject() error {
	if c.Project.Root == "" {
		return errors.New("project.root must be set")
	}
	if c.Project.AssetsDir == "" {
		return errors.New("project.assets_dir must be set")
	}
	if filepath.IsAbs(c.Project.AssetsDir) {
		return fmt.Errorf("project.assets_dir must be relative to project.root, got %q", c.Project.AssetsDir)
	}
	if len(c.Project.AssetExtensions) == 0 {
		return errors.New("project.asset_extensions must list at least one extension")
	}
	for _, ext := range c.Project.AssetExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("project.asset_extensions entry %q must be a dotted extension", ext)
		}
	}
	if c.Project.MetaSuffix == "" {
		return errors.New("project.meta_suffix must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "plain", "table", "json":
		return nil
	default:
		return fmt.Errorf("output.format must be plain, table, or json, got %q", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
