package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Mongo.URI != "" {
		t.Errorf("Mongo.URI = %q, want empty (in-memory fallback)", cfg.Mongo.URI)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr = %q, want empty (in-memory fallback)", cfg.Redis.Addr)
	}
	if cfg.Mongo.Database != "flowboard" {
		t.Errorf("Mongo.Database = %q, want flowboard", cfg.Mongo.Database)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowboard.toml")
	content := `
[server]
addr = ":9090"
cors_origin = "https://app.example.com"

[mongo]
uri = "mongodb://db:27017"
database = "boards"

[redis]
addr = "cache:6379"
db = 2

[clips]
base_url = "https://cdn.example.com/clips"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.CORSOrigin != "https://app.example.com" {
		t.Errorf("Server.CORSOrigin = %q", cfg.Server.CORSOrigin)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "boards" {
		t.Errorf("Mongo.Database = %q, want boards", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Clips.BaseURL != "https://cdn.example.com/clips" {
		t.Errorf("Clips.BaseURL = %q", cfg.Clips.BaseURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() error = nil for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvAddr, ":7070")
	t.Setenv(EnvMongoURI, "mongodb://env:27017")
	t.Setenv(EnvRedis, "env:6379")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q, want :7070", cfg.Server.Addr)
	}
	if cfg.Mongo.URI != "mongodb://env:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}
	if cfg.Redis.Addr != "env:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}
