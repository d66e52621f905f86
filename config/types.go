package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DatabaseConfig contains sqlite persistence configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ReduceConfig contains reduction policy configuration
type ReduceConfig struct {
	// OriginMode controls handling of an origin station that appears in no
	// shot: permissive anchors it alone, strict rejects the request.
	OriginMode string `yaml:"originMode" validate:"omitempty,oneof=permissive strict"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Database DatabaseConfig `yaml:"database"`
	Reduce   ReduceConfig   `yaml:"reduce"`
}
