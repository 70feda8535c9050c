package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("COMPLETION_BASE_URL", "http://localhost:9000/v1/completions")
	t.Setenv("COMPLETION_MODEL", "test-model")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

completion:
  base_url: "http://localhost:9000/v1/completions"
  model: "test-model"
  temperature: 0.3
  timeout: "20s"

phonetics:
  base_url: "http://localhost:9001"
  timeout: "5s"

dictionary:
  search_limit: 10
  import_chunk_size: 100

log:
  level: "debug"
  format: "text"
`

func TestLoad_FromEnvOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir()) // no config.yaml in cwd

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Completion.Temperature != 0.3 {
		t.Errorf("Completion.Temperature = %v, want default 0.3", cfg.Completion.Temperature)
	}
	if cfg.Completion.Timeout != 30*time.Second {
		t.Errorf("Completion.Timeout = %v, want default 30s", cfg.Completion.Timeout)
	}
	if cfg.Dictionary.SearchLimit != 20 {
		t.Errorf("Dictionary.SearchLimit = %d, want default 20", cfg.Dictionary.SearchLimit)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Completion.Timeout != 20*time.Second {
		t.Errorf("Completion.Timeout = %v, want 20s", cfg.Completion.Timeout)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("COMPLETION_MODEL", "other-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Completion.Model != "other-model" {
		t.Errorf("Completion.Model = %q, want env override", cfg.Completion.Model)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("COMPLETION_BASE_URL", "http://localhost:9000")
	t.Setenv("COMPLETION_MODEL", "m")
	// DATABASE_DSN intentionally unset
	os.Unsetenv("DATABASE_DSN")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without DATABASE_DSN")
	}
}

func TestLoad_ExplicitPathMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail for explicit missing CONFIG_PATH")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Completion: CompletionConfig{Temperature: 0.3, Timeout: 30 * time.Second},
			Phonetics:  PhoneticsConfig{Timeout: 10 * time.Second},
			Dictionary: DictionaryConfig{SearchLimit: 20, ImportChunkSize: 50},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative temperature", func(c *Config) { c.Completion.Temperature = -1 }},
		{"temperature too high", func(c *Config) { c.Completion.Temperature = 3 }},
		{"zero completion timeout", func(c *Config) { c.Completion.Timeout = 0 }},
		{"zero phonetics timeout", func(c *Config) { c.Phonetics.Timeout = 0 }},
		{"zero search limit", func(c *Config) { c.Dictionary.SearchLimit = 0 }},
		{"zero import chunk", func(c *Config) { c.Dictionary.ImportChunkSize = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
