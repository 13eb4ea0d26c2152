package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joeshaw/envdecode"
	"github.com/pelletier/go-toml/v2"

	"pickwise/internal/domain"
	"pickwise/internal/eventbus"
)

// FileName is the name of a per-directory config file
const FileName = ".pickwise.toml"

// Config represents the application configuration
type Config struct {
	Version           int             `toml:"version"`
	Multi             bool            `toml:"multi"`
	ToggleShift       bool            `toml:"toggle_shift"`
	FallbackSelection string          `toml:"fallback_selection,omitempty"`
	ValueKey          domain.ValueKey `toml:"value_key"`
	UISettings        UISettings      `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCounts  bool `toml:"show_counts"`
	ShowHelpBar bool `toml:"show_help_bar"`
}

// envOverrides are read from the environment after the file
type envOverrides struct {
	Multi       string `env:"PICKWISE_MULTI"`
	ToggleShift string `env:"PICKWISE_TOGGLE_SHIFT"`
	Fallback    string `env:"PICKWISE_FALLBACK"`
	ValueKey    string `env:"PICKWISE_VALUE_KEY"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service reading the user config file
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "pickwise", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service for path with event bus
// support. An empty path selects the user config file.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// there is no file, then applies environment overrides
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Multi:    cfg.Multi,
			Fallback: cfg.FallbackSelection,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return Parse(path)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Parse reads and validates a config file. Missing keys keep their
// default values.
func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ValueKey == "" {
		cfg.ValueKey = domain.ValueKeyIndex
	}
	if !cfg.ValueKey.Valid() {
		return nil, fmt.Errorf("invalid value_key %q in %s", cfg.ValueKey, path)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with PICKWISE_* environment variables
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.Multi != "" {
		v, err := strconv.ParseBool(env.Multi)
		if err != nil {
			return fmt.Errorf("PICKWISE_MULTI: %w", err)
		}
		cfg.Multi = v
	}
	if env.ToggleShift != "" {
		v, err := strconv.ParseBool(env.ToggleShift)
		if err != nil {
			return fmt.Errorf("PICKWISE_TOGGLE_SHIFT: %w", err)
		}
		cfg.ToggleShift = v
	}
	if env.Fallback != "" {
		cfg.FallbackSelection = env.Fallback
	}
	if env.ValueKey != "" {
		key := domain.ValueKey(env.ValueKey)
		if !key.Valid() {
			return fmt.Errorf("PICKWISE_VALUE_KEY: unknown key %q", env.ValueKey)
		}
		cfg.ValueKey = key
	}

	log.Printf("Applied environment overrides: %+v", env)
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		ValueKey: domain.ValueKeyIndex,
		UISettings: UISettings{
			ShowCounts:  true,
			ShowHelpBar: true,
		},
	}
}
