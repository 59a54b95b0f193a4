// Package config loads and validates scriptscan's TOML configuration.
//
// Resolution order: an explicit --config path, then
// ~/.config/scriptscan/config.toml, then ./scriptscan.toml. Absent any
// file, defaults scan the working directory as the project root.
package config
