package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/govalues/fraction"
	"gopkg.in/yaml.v3"
)

const (
	envConfig = "FRACTION_CONFIG"
	envScale  = "FRACTION_SCALE"
	envMode   = "FRACTION_MODE"
)

// Config holds the settings shared by all commands.
type Config struct {
	Scale int
	Mode  fraction.RoundingMode
	JSON  bool
}

// configYAML is the YAML representation that maps to Config.
type configYAML struct {
	Scale *int   `yaml:"scale"`
	Mode  string `yaml:"mode"`
	JSON  *bool  `yaml:"json"`
}

// defaultConfig returns the configuration used when nothing else is set.
func defaultConfig() Config {
	return Config{
		Scale: 2,
		Mode:  fraction.RoundHalfUp,
		JSON:  false,
	}
}

// LoadConfig loads the configuration with precedence: defaults → YAML → env vars.
// If path is empty, the FRACTION_CONFIG variable is used instead.
// If both are empty, no file is read.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(envConfig))
	}
	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return Config{}, fmt.Errorf("load yaml config: %w", err)
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return Config{}, fmt.Errorf("load env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// loadYAML merges the YAML file into the configuration.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var yamlCfg configYAML
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if yamlCfg.Scale != nil {
		c.Scale = *yamlCfg.Scale
	}
	if yamlCfg.Mode != "" {
		m, err := fraction.ParseRoundingMode(yamlCfg.Mode)
		if err != nil {
			return err
		}
		c.Mode = m
	}
	if yamlCfg.JSON != nil {
		c.JSON = *yamlCfg.JSON
	}
	return nil
}

// loadEnv overrides the configuration with environment variables.
func (c *Config) loadEnv() error {
	if v := strings.TrimSpace(os.Getenv(envScale)); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envScale, err)
		}
		c.Scale = scale
	}
	if v := strings.TrimSpace(os.Getenv(envMode)); v != "" {
		m, err := fraction.ParseRoundingMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envMode, err)
		}
		c.Mode = m
	}
	return nil
}

// Validate checks the final configuration.
func (c Config) Validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("invalid scale: %d", c.Scale)
	}
	if !c.Mode.IsValid() {
		return fmt.Errorf("invalid mode: %v", c.Mode)
	}
	return nil
}
