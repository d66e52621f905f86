package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./surveyd/config.yml"}
	var err error
	for _, p := range paths {
		if err = LoadAppConfigFrom(p); err == nil {
			return nil
		}
	}
	return err
}

// LoadAppConfigFrom loads and validates the application configuration from
// an explicit path.
func LoadAppConfigFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Reduce); err != nil {
		return err
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 17110
	}
	if Config.Database.Path == "" {
		Config.Database.Path = "surveyd.db"
	}
	if Config.Reduce.OriginMode == "" {
		Config.Reduce.OriginMode = "permissive"
	}
	return nil
}
