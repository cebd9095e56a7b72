package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"mindcare/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "mindcare" {
		t.Fatalf("database = %q", cfg.Mongo.Database)
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Fatalf("jwt ttl = %v", cfg.JWT.TTL)
	}
	if cfg.Counselor.DefaultPersonality != model.PersonalitySupportive {
		t.Fatalf("default personality = %q", cfg.Counselor.DefaultPersonality)
	}
	if len(cfg.Counselor.Helplines) == 0 {
		t.Fatal("expected default helplines")
	}
	if len(cfg.Demo) != 4 {
		t.Fatalf("demo accounts = %d, want 4", len(cfg.Demo))
	}
	if cfg.Demo[0].Role != model.RoleStudent || cfg.Demo[0].Email != "student@demo.edu" {
		t.Fatalf("unexpected first demo account %+v", cfg.Demo[0])
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("REDIS_ADDR", "redis://cache:6379")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Fatalf("port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://mongo:27017" {
		t.Fatalf("mongo uri = %q", cfg.Mongo.URI)
	}
	if cfg.Redis.Addr != "cache:6379" {
		t.Fatalf("redis addr = %q, want scheme stripped", cfg.Redis.Addr)
	}
	if cfg.JWT.TTL != 2*time.Hour {
		t.Fatalf("jwt ttl = %v", cfg.JWT.TTL)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 7000
log:
  level: debug
  format: text
counselor:
  seed: 42
  helplines:
    - "Campus line: 555-0100"
demo_accounts:
  - email: only@demo.edu
    password: onlypass1
    role: admin
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Counselor.Seed != 42 || len(cfg.Counselor.Helplines) != 1 {
		t.Fatalf("unexpected counselor config %+v", cfg.Counselor)
	}
	if len(cfg.Demo) != 1 || cfg.Demo[0].Role != model.RoleAdmin {
		t.Fatalf("unexpected demo accounts %+v", cfg.Demo)
	}
}

func TestCORSConfig_Lists(t *testing.T) {
	c := CORSConfig{
		AllowedOrigins: "https://a.edu, https://b.edu,",
		AllowedMethods: "GET,POST",
		AllowedHeaders: " Authorization ",
	}
	if got := c.Origins(); !slices.Equal(got, []string{"https://a.edu", "https://b.edu"}) {
		t.Errorf("origins = %q", got)
	}
	if got := c.Methods(); !slices.Equal(got, []string{"GET", "POST"}) {
		t.Errorf("methods = %q", got)
	}
	if got := c.Headers(); !slices.Equal(got, []string{"Authorization"}) {
		t.Errorf("headers = %q", got)
	}
}
