package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeProject(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeProject() error {
	if strings.TrimSpace(c.Project.Root) == "" {
		c.Project.Root = defaultRoot
	}
	var err error
	if c.Project.Root, err = expandPath(c.Project.Root); err != nil {
		return fmt.Errorf("project.root: %w", err)
	}

	if strings.TrimSpace(c.Project.AssetsDir) == "" {
		c.Project.AssetsDir = defaultAssetsDir
	}
	c.Project.AssetsDir = strings.Trim(strings.TrimSpace(c.Project.AssetsDir), "/")

	if len(c.Project.AssetExtensions) == 0 {
		c.Project.AssetExtensions = defaultAssetExtensions()
	}
	for i, ext := range c.Project.AssetExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Project.AssetExtensions[i] = ext
	}

	if strings.TrimSpace(c.Project.MetaSuffix) == "" {
		c.Project.MetaSuffix = defaultMetaSuffix
	}
	c.Project.MetaSuffix = strings.TrimSpace(c.Project.MetaSuffix)
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
