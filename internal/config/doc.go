// Package config defines the typed configuration for the vnikey
// engine and host: trigger layout overrides, macro expansion settings
// and file locations. Configuration is loaded from a TOML file; a
// missing file means defaults.
package config
