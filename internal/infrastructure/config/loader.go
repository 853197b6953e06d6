package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/neuron-cli/neuron/assets"
	appconfig "github.com/neuron-cli/neuron/internal/application/config"
	"github.com/neuron-cli/neuron/internal/domain"
	"github.com/neuron-cli/neuron/internal/pkg/filesystem"
	"github.com/neuron-cli/neuron/internal/ports"
)

// FileLoader loads YAML configuration from ~/.neuron/config.yaml (overridable via NEURON_CONFIG)
// and layers environment variables and a working-directory .env on top.
type FileLoader struct {
	overridePath string
	dotEnvPath   string
	getenv       func(string) string
}

// Option customizes a FileLoader.
type Option func(*FileLoader)

// WithDotEnv points the loader at a specific .env file.
func WithDotEnv(path string) Option {
	return func(l *FileLoader) { l.dotEnvPath = path }
}

// WithGetenv replaces os.Getenv.
func WithGetenv(getenv func(string) string) Option {
	return func(l *FileLoader) { l.getenv = getenv }
}

// NewFileLoader builds a new loader. An empty path falls back to NEURON_CONFIG
// and then ~/.neuron/config.yaml.
func NewFileLoader(path string, opts ...Option) *FileLoader {
	l := &FileLoader{overridePath: path, dotEnvPath: ".env", getenv: os.Getenv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements ports.ConfigProvider. The result is the resolved view:
// environment > config file > .env > defaults.
func (l *FileLoader) Load(ctx context.Context) (domain.Config, error) {
	cfg, err := l.Stored(ctx)
	if err != nil {
		return domain.Config{}, err
	}

	dotenv, err := readDotEnv(l.dotEnvPath)
	if err != nil {
		return domain.Config{}, fmt.Errorf("read %s: %w", l.dotEnvPath, err)
	}

	cfg.APIKey = firstNonEmpty(l.getenv(domain.EnvAPIKey), cfg.APIKey, dotenv[domain.EnvAPIKey])
	cfg.Model = firstNonEmpty(l.getenv(domain.EnvModel), cfg.Model, dotenv[domain.EnvModel], domain.DefaultModel)

	if err := appconfig.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Stored returns the config file contents without environment overlays,
// creating the file from the embedded default when it does not exist.
func (l *FileLoader) Stored(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
		if err := os.WriteFile(path, data, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return hydrateDefaults(cfg), nil
}

// Save writes cfg to the config file.
func (l *FileLoader) Save(cfg domain.Config) error {
	if err := appconfig.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(hydrateDefaults(cfg))
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Reset overwrites the config file with the embedded default.
func (l *FileLoader) Reset() error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// SetAPIKey persists a new API key.
func (l *FileLoader) SetAPIKey(ctx context.Context, key string) error {
	return l.update(ctx, func(cfg *domain.Config) { cfg.SetAPIKey(key) })
}

// SetModel persists a new model identifier.
func (l *FileLoader) SetModel(ctx context.Context, model string) error {
	return l.update(ctx, func(cfg *domain.Config) { cfg.SetModel(model) })
}

func (l *FileLoader) update(ctx context.Context, mutate func(*domain.Config)) error {
	cfg, err := l.Stored(ctx)
	if err != nil {
		return err
	}
	mutate(&cfg)
	return l.Save(cfg)
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := l.getenv(domain.EnvConfig); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".neuron", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
