package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "MOVEX_"
	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// Load builds the effective configuration. Sources are applied in order,
// later ones winning:
//  1. embedded defaults
//  2. $XDG_CONFIG_HOME/movex/config.toml, if present
//  3. explicitPath, if non-empty (must exist)
//  4. MOVEX_SECTION__KEY environment variables
func Load(explicitPath string) (*Config, error) {
	return LoadWithOverrides(explicitPath, nil)
}

// LoadWithOverrides is Load followed by a last layer of section.key=value
// assignments, as given on the command line.
func LoadWithOverrides(explicitPath string, overrides []string) (*Config, error) {
	assignments, err := ParseOverrides(overrides)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		logger.Debug().Str("path", userPath).Msg("Loading user config")
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath)
		}
	}

	if explicitPath != "" {
		explicitPath = paths.ExpandHome(explicitPath)
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", explicitPath)
		}
		logger.Debug().Str("path", explicitPath).Msg("Loading explicit config")
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", explicitPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(assignments) > 0 {
		if err := k.Load(confmap.Provider(assignments, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

// ParseOverrides turns section.key=value strings into a flat koanf map.
// An empty value is allowed and clears the key.
func ParseOverrides(overrides []string) (map[string]interface{}, error) {
	assignments := make(map[string]interface{}, len(overrides))
	for _, override := range overrides {
		key, value, ok := strings.Cut(override, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || !strings.Contains(key, ".") {
			return nil, errors.Newf(errors.ErrUsage, "invalid override %q, expected section.key=value", override).
				WithDetail("override", override)
		}
		assignments[key] = value
	}
	return assignments, nil
}

// Default returns the embedded defaults with no overrides applied
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// UserConfigPath returns the location of the per-user config file
func UserConfigPath() string {
	return filepath.Join(paths.ConfigDir(), ConfigFileName)
}

// envKey maps MOVEX_EXPAND__STRICT_CHECK to expand.strict_check
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that would produce unusable paths
func (c *Config) Validate() error {
	required := map[string]string{
		"layout.build_base":   c.Layout.BuildBase,
		"layout.install_base": c.Layout.InstallBase,
		"layout.marker_dir":   c.Layout.MarkerDir,
		"tools.lsblk":         c.Tools.Lsblk,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.Newf(errors.ErrConfigParse, "%s must not be empty", key).
				WithDetail("key", key)
		}
	}
	if len(c.Build.Command) == 0 {
		return errors.New(errors.ErrConfigParse, "build.command must not be empty").
			WithDetail("key", "build.command")
	}
	return nil
}
