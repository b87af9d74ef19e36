package config

import (
	"strings"

	"github.com/arthur-debert/movex/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Render serialises cfg as TOML, the same format Load reads
func Render(cfg *Config) (string, error) {
	var b strings.Builder
	enc := toml.NewEncoder(&b)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return b.String(), nil
}
