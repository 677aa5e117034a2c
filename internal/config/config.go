package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/versionator/internal/core"
	"github.com/indaco/versionator/internal/tagmanager"
)

const (
	// FileName is the configuration file looked up in the working directory.
	FileName = ".versionator.yaml"

	// EnvPath overrides the configured path when set.
	EnvPath = "VERSIONATOR_PATH"
)

// TagConfig holds the tagging settings.
type TagConfig struct {
	// Prefix is nil when unset, so an explicit empty prefix is kept.
	Prefix        *string `yaml:"prefix,omitempty"`
	Annotate      bool    `yaml:"annotate,omitempty"`
	Message       string  `yaml:"message,omitempty"`
	Commit        bool    `yaml:"commit,omitempty"`
	CommitMessage string  `yaml:"commit-message,omitempty"`
	Push          bool    `yaml:"push,omitempty"`
}

// Config is the main configuration structure for versionator.
type Config struct {
	// Path is the version file, or a directory to search for one.
	Path string `yaml:"path,omitempty"`

	// Package is a subdirectory searched before the default locations.
	Package string `yaml:"package,omitempty"`

	Tag   *TagConfig `yaml:"tag,omitempty"`
	Theme string     `yaml:"theme,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Path: ".",
		Tag:  &TagConfig{},
	}
}

// TagPrefix returns the configured tag prefix or tagmanager.DefaultPrefix.
func (c *Config) TagPrefix() string {
	if c == nil || c.Tag == nil || c.Tag.Prefix == nil {
		return tagmanager.DefaultPrefix
	}
	return *c.Tag.Prefix
}

// TagManagerConfig converts the tag settings for the tag manager.
func (c *Config) TagManagerConfig() *tagmanager.Config {
	tm := tagmanager.DefaultConfig()
	if c == nil || c.Tag == nil {
		return tm
	}
	tm.Prefix = c.TagPrefix()
	tm.Annotate = c.Tag.Annotate
	tm.Push = c.Tag.Push
	if c.Tag.Message != "" {
		tm.MessageTemplate = c.Tag.Message
	}
	if c.Tag.CommitMessage != "" {
		tm.CommitMessageTemplate = c.Tag.CommitMessage
	}
	return tm
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// ConfigSaver writes configuration files through an injected filesystem.
type ConfigSaver struct {
	marshaler core.Marshaler
	fs        core.FileSystem
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, fs core.FileSystem) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &ConfigSaver{
		marshaler: marshaler,
		fs:        fs,
	}
}

// SaveTo writes cfg as YAML to configFile.
func (s *ConfigSaver) SaveTo(ctx context.Context, cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if err := s.fs.WriteFile(ctx, configFile, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// LoadConfigFn and SaveConfigFn are replaced in tests.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(ctx context.Context, cfg *Config) error {
		return NewConfigSaver(nil, nil).SaveTo(ctx, cfg, FileName)
	}
)

func loadConfig() (*Config, error) {
	cfg, err := LoadFile(FileName)
	if err != nil {
		return nil, err
	}

	if envPath := os.Getenv(EnvPath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if !filepath.IsAbs(cleanPath) && strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvPath)
		}
		cfg.Path = cleanPath
	}

	return cfg, nil
}

// LoadFile decodes the configuration at path. A missing file yields
// DefaultConfig. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Decode parses YAML configuration and fills in defaults.
func Decode(data []byte) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Path == "" {
		cfg.Path = "."
	}
	if cfg.Tag == nil {
		cfg.Tag = &TagConfig{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
