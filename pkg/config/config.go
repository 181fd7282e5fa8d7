// Package config loads FlowBoard server configuration.
//
// Configuration comes from a TOML file with sensible defaults for local
// development; connection strings can additionally be supplied through
// environment variables so secrets stay out of config files. Empty Mongo
// and Redis settings mean the server falls back to in-memory stores.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variable overrides for connection settings.
const (
	EnvAddr     = "FLOWBOARD_ADDR"
	EnvMongoURI = "FLOWBOARD_MONGO_URI"
	EnvRedis    = "FLOWBOARD_REDIS_ADDR"
)

// Config is the root configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Mongo  MongoConfig  `toml:"mongo"`
	Redis  RedisConfig  `toml:"redis"`
	Clips  ClipsConfig  `toml:"clips"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	CORSOrigin string `toml:"cors_origin"`
}

// MongoConfig configures the board store. An empty URI selects the
// in-memory board store.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// RedisConfig configures the job store. An empty address selects the
// in-memory job store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ClipsConfig configures clip generation. An empty endpoint selects the
// stub generator, which returns placeholder URLs without contacting any
// backend.
type ClipsConfig struct {
	Endpoint string `toml:"endpoint"`
	BaseURL  string `toml:"base_url"`
}

// Default returns the local-development configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:       ":8080",
			CORSOrigin: "http://localhost:5173",
		},
		Mongo: MongoConfig{
			Database: "flowboard",
		},
	}
}

// Load reads configuration from path, falling back to defaults when path
// is empty, and applies environment overrides last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides connection settings from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvMongoURI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv(EnvRedis); v != "" {
		cfg.Redis.Addr = v
	}
}
