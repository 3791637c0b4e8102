package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/contentkit/richhtml/pkg/errors"
	"github.com/contentkit/richhtml/pkg/logging"
	"github.com/contentkit/richhtml/pkg/renderer"
)

//go:embed defaults.toml
var defaultConfig []byte

// envPrefix is the prefix for environment variable overrides, e.g.
// RICHHTML_RENDER_ESCAPE=false.
const envPrefix = "RICHHTML_"

// Config is the full richhtml configuration.
type Config struct {
	Render RenderConfig `koanf:"render" toml:"render"`
}

// RenderConfig configures HTML emission.
type RenderConfig struct {
	// Escape HTML-escapes text and attribute values.
	Escape bool `koanf:"escape" toml:"escape"`

	// XHTML emits self-closing void elements (<img ... />).
	XHTML bool `koanf:"xhtml" toml:"xhtml"`
}

// RendererOptions converts the configuration into engine options.
func (c *Config) RendererOptions() renderer.Options {
	return renderer.Options{
		Escape:    c.Render.Escape,
		SelfClose: c.Render.XHTML,
	}
}

// Default returns the built-in defaults without touching the filesystem
// or environment.
func Default() *Config {
	return &Config{Render: RenderConfig{Escape: true}}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// Load builds the configuration from defaults, the config file at path
// (or the standard search locations when path is empty), and environment
// variables.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of programmatic overrides,
// keyed with koanf dotted paths (e.g. "render.escape").
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. Config file
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		parser, err := parserFor(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("config file loaded")
	}

	// 3. Environment variables
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Programmatic overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// findConfigFile returns the first config file present in the search
// path: working directory first, then the XDG config directory.
func findConfigFile() string {
	candidates := []string{
		"richhtml.toml",
		"richhtml.yaml",
		filepath.Join(xdg.ConfigHome, "richhtml", "richhtml.toml"),
		filepath.Join(xdg.ConfigHome, "richhtml", "richhtml.yaml"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file extension: %s", path)
	}
}
