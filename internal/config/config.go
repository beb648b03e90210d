package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/gostrap/internal/cleanup"
)

// Config holds user defaults for a bootstrap run.
type Config struct {
	// Template overrides the clone URL, e.g. a fork or mirror.
	Template string `yaml:"template"`
	// Ref pins a branch or tag of the template.
	Ref string `yaml:"ref"`
	// Org replaces the your-org placeholder in module paths and URLs.
	Org string `yaml:"org"`
	// Normalize passes explicit project names through normalization.
	Normalize bool `yaml:"normalize"`
	// ExtraCleanup adds doublestar patterns to the artifact cleanup list.
	ExtraCleanup []string `yaml:"extra_cleanup"`
}

// Environment variables that override file values.
const (
	EnvTemplate  = "GOSTRAP_TEMPLATE"
	EnvRef       = "GOSTRAP_REF"
	EnvOrg       = "GOSTRAP_ORG"
	EnvNormalize = "GOSTRAP_NORMALIZE"
)

// Load reads the config file at path. A missing or empty file yields the
// zero Config. Unknown keys are rejected.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any GOSTRAP_* variables that getenv reports.
func (cfg *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvTemplate); v != "" {
		cfg.Template = v
	}
	if v := getenv(EnvRef); v != "" {
		cfg.Ref = v
	}
	if v := getenv(EnvOrg); v != "" {
		cfg.Org = v
	}
	if v := getenv(EnvNormalize); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNormalize, err)
		}
		cfg.Normalize = b
	}
	return nil
}

// LoadDefault reads FilePath() and applies the process environment.
func LoadDefault() (Config, error) {
	cfg, err := Load(FilePath())
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Artifacts returns the default cleanup table followed by ExtraCleanup.
func (cfg Config) Artifacts() []cleanup.Artifact {
	artifacts := make([]cleanup.Artifact, 0, len(cleanup.DefaultArtifacts)+len(cfg.ExtraCleanup))
	artifacts = append(artifacts, cleanup.DefaultArtifacts...)
	for _, pattern := range cfg.ExtraCleanup {
		artifacts = append(artifacts, cleanup.Artifact{Pattern: pattern, Reason: "extra_cleanup"})
	}
	return artifacts
}
