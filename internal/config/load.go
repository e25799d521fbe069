package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docnav.yaml"

// Load reads, normalizes, defaults and validates the configuration file at configPath.
func Load(configPath string) (*Config, error) {
	if _, err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.NotFoundError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		var classified *ferrors.ClassifiedError
		if errors.As(err, &classified) {
			return nil, classified.WithContext("path", configPath)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configPath when set. With an empty path it loads DefaultPath when that
// file exists and otherwise returns the defaults.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	slog.Debug("No configuration file, using defaults", "path", DefaultPath)
	return Default(), nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Parse decodes YAML configuration content. ${VAR} references are expanded from the environment.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}

	if cfg.Version != "" && !strings.HasPrefix(cfg.Version, "1") {
		return nil, ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected 1.x)", cfg.Version)).Build()
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize case-folds enumerations before defaults run so canonical values drive them.
func normalize(cfg *Config) error {
	var problems []error
	if cfg.Generator != "" {
		g, err := NormalizeGenerator(string(cfg.Generator))
		if err != nil {
			problems = append(problems, fmt.Errorf("generator: %w", err))
		}
		cfg.Generator = g
	}
	if cfg.Docs.Titles != "" {
		m, err := NormalizeTitleMode(string(cfg.Docs.Titles))
		if err != nil {
			problems = append(problems, fmt.Errorf("docs.titles: %w", err))
		}
		cfg.Docs.Titles = m
	}
	if cfg.Output.Format != "" {
		f, err := NormalizeOutputFormat(string(cfg.Output.Format))
		if err != nil {
			problems = append(problems, fmt.Errorf("output.format: %w", err))
		}
		cfg.Output.Format = f
	}
	if cfg.Legacy != nil {
		for i := range cfg.Legacy.Head {
			cfg.Legacy.Head[i].Tag = strings.ToLower(strings.TrimSpace(cfg.Legacy.Head[i].Tag))
		}
	}
	if len(problems) > 0 {
		return ferrors.WrapError(errors.Join(problems...), ferrors.CategoryConfig, "configuration invalid").Fatal().Build()
	}
	return nil
}
