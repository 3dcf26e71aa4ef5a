package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/sinking-island/game/engine"
	"github.com/wricardo/sinking-island/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Extensions tried, in order, when loading a config by name
var configExtensions = []string{".json", ".yaml", ".yml"}

// Manager handles game configuration loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// configName strips a known extension from name
func configName(name string) string {
	ext := filepath.Ext(name)
	if slices.Contains(configExtensions, ext) {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

// LoadConfig loads a configuration by name. The name may carry a .json,
// .yaml or .yml extension; without one each is tried in that order.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	name = configName(name)

	m.mu.RLock()
	// Check cache first
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	config, err := m.readConfig(name)
	if err != nil {
		return nil, err
	}

	m.configs[name] = config
	return config, nil
}

// readConfig finds, decodes and validates a config file without caching it
func (m *Manager) readConfig(name string) (*engine.GameConfig, error) {
	for _, ext := range configExtensions {
		path := filepath.Join(m.configDir, name+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", engine.ErrIO, path, err)
		}

		config, err := DecodeConfig(data, ext)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := engine.ValidateGameConfig(config); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return config, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
}

// DecodeConfig parses a config document. ext selects YAML for .yaml and
// .yml; anything else is read as JSON.
func DecodeConfig(data []byte, ext string) (*engine.GameConfig, error) {
	var config engine.GameConfig
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%w: %v", engine.ErrFormat, err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%w: %v", engine.ErrFormat, err)
		}
	}
	return &config, nil
}

// ReloadConfig drops a cached configuration and reads it again from disk
func (m *Manager) ReloadConfig(name string) error {
	name = configName(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	config, err := m.readConfig(name)
	if err != nil {
		return err
	}
	m.configs[name] = config
	return nil
}

// ListConfigs returns information about all available configurations
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config directory: %v", engine.ErrIO, err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || !slices.Contains(configExtensions, ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		if seen[name] {
			continue
		}
		seen[name] = true

		// Try to load the config to get details
		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs
			continue
		}

		configs = append(configs, NewConfigInfo(entry.Name(), name, config))
	}

	return configs, nil
}

// NewConfigInfo summarises a configuration for listings
func NewConfigInfo(filename, id string, config *engine.GameConfig) *service.ConfigInfo {
	rings := 0
	for _, piece := range config.Pieces {
		rings += piece.Layers
	}
	sections := make([]string, 0, len(config.Spinner))
	for _, s := range config.Spinner {
		sections = append(sections, s.Name)
	}
	return &service.ConfigInfo{
		Filename:        filename,
		ConfigID:        id,
		Name:            config.Name,
		Description:     config.Description,
		Players:         config.Players,
		PawnsPerPlayer:  config.PawnsPerPlayer,
		Rings:           rings,
		SpinnerSections: sections,
	}
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache reloads all cached configurations from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

// loadDefaultConfig loads the default configuration
func (m *Manager) loadDefaultConfig() error {
	// Try classic first, then the first loadable config, then the built-in island
	config, err := m.LoadConfig("classic")
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			config = m.createMinimalConfig()
		} else if config, err = m.LoadConfig(configs[0].ConfigID); err != nil {
			config = m.createMinimalConfig()
		}
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
	return nil
}

// SaveConfig saves a configuration to disk. Names ending in .yaml or .yml
// are written as YAML, everything else as JSON.
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	ext := filepath.Ext(name)
	if !slices.Contains(configExtensions, ext) {
		ext = ".json"
	}
	base := configName(name)
	if base == "" || strings.ContainsAny(base, `/\`) {
		return fmt.Errorf("%w: bad config name %q", ErrInvalidConfig, name)
	}

	var (
		data []byte
		err  error
	)
	if ext == ".json" {
		data, err = json.MarshalIndent(config, "", "  ")
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(m.configDir, base+ext)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write config file: %v", engine.ErrIO, err)
	}

	m.mu.Lock()
	m.configs[base] = config
	m.mu.Unlock()

	return nil
}

// createMinimalConfig creates a minimal valid configuration
func (m *Manager) createMinimalConfig() *engine.GameConfig {
	config := engine.DefaultGameConfig(engine.MinPlayers)
	config.Name = "default"
	config.Description = "Built-in classic island"
	return config
}
