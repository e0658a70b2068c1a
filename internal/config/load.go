package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rolldice/internal/model"
)

// Load reads the config file at path and layers it over Default().
// The file format is chosen by extension. Unknown keys are rejected so
// that a typo does not silently fall back to a default.
//
// Returns a CLIError with ExitConfigError if the file is missing,
// unreadable, malformed or has an unsupported extension.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			"failed to read config file", err)
	}

	if err := Decode(filepath.Ext(path), data, &cfg); err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path), err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext (".json", ".jsonc",
// ".yaml", ".yml" or ".toml") into cfg. Keys missing from data leave the
// corresponding fields of cfg untouched.
func Decode(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		return decodeJSONC(data, cfg)
	case ".yaml", ".yml":
		return decodeYAML(data, cfg)
	case ".toml":
		return decodeTOML(data, cfg)
	default:
		return fmt.Errorf("unsupported config file extension %q (valid: .json, .jsonc, .yaml, .yml, .toml)", ext)
	}
}

// decodeJSONC strips comments and trailing commas, then parses the result
// with encoding/json.
func decodeJSONC(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document is a valid, empty config.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing YAML: %w", err)
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parsing TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parsing TOML: unknown key %q", undecoded[0].String())
	}
	return nil
}

// ApplyEnv overlays ROLLDICE_* environment variables onto cfg. Variables
// that are unset leave the existing value in place.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return model.WrapCLIError(model.ExitConfigError, "parse env", err)
	}
	if err := cfg.Validate(); err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid environment override", err)
	}
	return nil
}
