package config

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a flat TOML file of KEY = value pairs. Non-string values are
// stringified so they can be read back with the typed getters.
func LoadFile(path string) (map[string]string, error) {
	raw := map[string]any{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = v
		case int64:
			values[key] = strconv.FormatInt(v, 10)
		case bool:
			values[key] = strconv.FormatBool(v)
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("config file %s: key %s must be a scalar", path, key)
		}
	}
	return values, nil
}
