package config

const (
	defaultRoot       = "."
	defaultAssetsDir  = "Assets"
	defaultMetaSuffix = ".cs.meta"
	defaultFormat     = "plain"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

func defaultAssetExtensions() []string {
	return []string{".prefab", ".unity", ".asset"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Project: Project{
			Root:            defaultRoot,
			AssetsDir:       defaultAssetsDir,
			AssetExtensions: defaultAssetExtensions(),
			MetaSuffix:      defaultMetaSuffix,
		},
		Output: Output{
			Format: defaultFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
