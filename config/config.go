package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// Load builds the layered configuration: the optional TOML file named by
// CONFIG_FILE, then SSM parameters under SSM_PARAMETER_PATH, then the process
// environment (which always wins).
func Load(ctx context.Context) (map[string]string, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded, using existing environment variables")
	}

	env := New()
	merged := map[string]string{}

	if path := GetString(env, "CONFIG_FILE", ""); path != "" {
		fileValues, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		overlay(merged, fileValues)
	}

	if path := GetString(env, "SSM_PARAMETER_PATH", ""); path != "" {
		client, err := NewSSMClient(ctx, GetString(env, "AWS_REGION", ""))
		if err != nil {
			return nil, err
		}
		params, err := LoadSSMParameters(ctx, client, path)
		if err != nil {
			return nil, err
		}
		overlay(merged, params)
	}

	overlay(merged, env)
	return merged, nil
}

func overlay(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	s := GetString(config, key, "")
	if s == "" {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return asBool
}

// GetDuration accepts Go duration strings ("90s", "1h") and bare integers,
// which are read as seconds.
func GetDuration(config map[string]string, key string, defaultValue time.Duration) time.Duration {
	s := GetString(config, key, "")
	if s == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// GetList splits a comma separated value, dropping blank entries.
func GetList(config map[string]string, key string, defaultValue []string) []string {
	s := GetString(config, key, "")
	if s == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
