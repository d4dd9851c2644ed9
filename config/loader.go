package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// the first config.yml found on the search path.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse unmarshals, validates, and applies defaults to a raw YAML
// document.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if cfg.Server.Port != 0 {
		if err := v.Struct(cfg.Server); err != nil {
			return AppConfig{}, err
		}
	}
	if err := v.Struct(cfg.Profile); err != nil {
		return AppConfig{}, err
	}
	// products are optional; if present validate each
	for _, p := range cfg.Profile.Products {
		if err := v.Struct(p); err != nil {
			return AppConfig{}, err
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16182
	}
	if cfg.Profile.Timezone == "" {
		cfg.Profile.Timezone = "Europe/Berlin"
	}
	return cfg, nil
}
