// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
package config
