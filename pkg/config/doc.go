// Package config loads richhtml configuration with koanf. Sources merge
// in order of increasing precedence: embedded defaults, a config file
// (explicit path, ./richhtml.{toml,yaml}, or the XDG config directory),
// RICHHTML_* environment variables, and programmatic overrides from the
// caller (CLI flags).
package config
