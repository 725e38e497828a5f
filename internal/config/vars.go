package config

import (
	"errors"
	"io/fs"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"sluice/internal/rewrite"
)

// LoadVars builds a variable lookup table from a YAML file (flat name: value
// pairs) merged with env-vars (prefix `SLUICE_VAR__`, delimiter `__`). Env
// entries win over the file.
func LoadVars(path string) (rewrite.Vars, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	_ = k.Load(env.Provider("SLUICE_VAR__", "__", nil), nil)

	vars := rewrite.Vars{}
	for _, key := range k.Keys() {
		vars[key] = k.String(key)
	}
	return vars, nil
}
