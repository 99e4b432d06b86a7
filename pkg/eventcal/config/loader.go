package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// knownKeys is the full key surface an eventcal config file may carry.
// Anything outside it is rejected so a typo like "store-path" surfaces
// as an error instead of a silently ignored setting.
var knownKeys = map[string]bool{
	KeyStorePath:  true,
	KeyListenAddr: true,
	KeyRemoteURL:  true,
	KeyLogLevel:   true,
}

// FromFile reads an eventcal config file, picking the parser from the
// extension (.yaml, .yml, or .json).
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("config %s: unrecognized extension (want .yaml, .yml, or .json)", path)
	}
}

// FromYAML builds a Config from YAML data, rejecting unknown keys.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml config: %w", err)
	}
	return fromMap(m)
}

// FromJSON builds a Config from JSON data, rejecting unknown keys.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json config: %w", err)
	}
	return fromMap(m)
}

func fromMap(m map[string]any) (Config, error) {
	for key := range m {
		if !knownKeys[key] {
			return Config{}, fmt.Errorf("unknown config key %q", key)
		}
	}
	return New(m), nil
}
