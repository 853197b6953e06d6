package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neuron-cli/neuron/internal/domain"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func newTestLoader(t *testing.T, env map[string]string, dotenv string) (*FileLoader, string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "neuron", "config.yaml")
	dotEnvPath := filepath.Join(dir, ".env")
	if dotenv != "" {
		if err := os.WriteFile(dotEnvPath, []byte(dotenv), 0o600); err != nil {
			t.Fatalf("write .env: %v", err)
		}
	}
	return NewFileLoader(cfgPath, WithDotEnv(dotEnvPath), WithGetenv(envMap(env))), cfgPath
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	loader, path := newTestLoader(t, nil, "")

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != domain.DefaultModel {
		t.Errorf("model = %q, want %q", cfg.Model, domain.DefaultModel)
	}
	if cfg.HasAPIKey() {
		t.Error("expected no API key")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perms = %o, want 600", perm)
	}
}

func TestLoadPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		file      string
		dotenv    string
		wantKey   string
		wantModel string
	}{
		{
			name:      "environment wins",
			env:       map[string]string{domain.EnvAPIKey: "env-key", domain.EnvModel: "env/model"},
			file:      "api_key: file-key\nmodel: file/model\n",
			dotenv:    "NEURON_API_KEY=dot-key\nNEURON_MODEL=dot/model\n",
			wantKey:   "env-key",
			wantModel: "env/model",
		},
		{
			name:      "config file beats dotenv",
			file:      "api_key: file-key\nmodel: file/model\n",
			dotenv:    "NEURON_API_KEY=dot-key\nNEURON_MODEL=dot/model\n",
			wantKey:   "file-key",
			wantModel: "file/model",
		},
		{
			name:      "dotenv fills gaps",
			file:      "config_format_version: \"1\"\n",
			dotenv:    "# comment\nNEURON_API_KEY=dot-key\nNEURON_MODEL=dot/model\n",
			wantKey:   "dot-key",
			wantModel: "dot/model",
		},
		{
			name:      "model default",
			file:      "api_key: file-key\n",
			wantKey:   "file-key",
			wantModel: domain.DefaultModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, path := newTestLoader(t, tt.env, tt.dotenv)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(tt.file), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := loader.Load(context.Background())
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if cfg.APIKey != tt.wantKey {
				t.Errorf("api key = %q, want %q", cfg.APIKey, tt.wantKey)
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("model = %q, want %q", cfg.Model, tt.wantModel)
			}
		})
	}
}

func TestSetAPIKeyAndModelPersist(t *testing.T) {
	loader, path := newTestLoader(t, map[string]string{domain.EnvModel: "env/model"}, "")
	ctx := context.Background()

	if err := loader.SetAPIKey(ctx, "sk-stored"); err != nil {
		t.Fatalf("SetAPIKey error: %v", err)
	}
	if err := loader.SetModel(ctx, "openai/gpt-4.1"); err != nil {
		t.Fatalf("SetModel error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "api_key: sk-stored") {
		t.Errorf("api key not persisted:\n%s", raw)
	}
	if strings.Contains(string(raw), "env/model") {
		t.Errorf("environment override leaked into config file:\n%s", raw)
	}

	stored, err := loader.Stored(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Model != "openai/gpt-4.1" {
		t.Errorf("stored model = %q", stored.Model)
	}
}

func TestSetModelRejectsWhitespace(t *testing.T) {
	loader, _ := newTestLoader(t, nil, "")
	if err := loader.SetModel(context.Background(), "open ai"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestReset(t *testing.T) {
	loader, _ := newTestLoader(t, nil, "")
	ctx := context.Background()
	if err := loader.SetAPIKey(ctx, "sk-stored"); err != nil {
		t.Fatal(err)
	}
	if err := loader.Reset(); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	cfg, err := loader.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HasAPIKey() {
		t.Error("expected API key cleared after reset")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	loader, path := newTestLoader(t, nil, "")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("model: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathUsesEnvironmentOverride(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	loader := NewFileLoader("", WithGetenv(envMap(map[string]string{domain.EnvConfig: custom})))
	if got := loader.Path(); got != custom {
		t.Errorf("Path() = %q, want %q", got, custom)
	}
}

func TestReadDotEnvValueKeepsEquals(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NEURON_API_KEY=abc=def\r\nnot a pair\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	values, err := readDotEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if values["NEURON_API_KEY"] != "abc=def" {
		t.Errorf("value = %q", values["NEURON_API_KEY"])
	}
	if len(values) != 1 {
		t.Errorf("expected one entry, got %v", values)
	}
}
