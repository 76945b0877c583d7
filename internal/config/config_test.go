package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Dir != "output" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "output")
	}
	if cfg.Output.HTML != "index.html" {
		t.Errorf("Output.HTML = %q, want %q", cfg.Output.HTML, "index.html")
	}
	if cfg.Output.Markup != "content.md" {
		t.Errorf("Output.Markup = %q, want %q", cfg.Output.Markup, "content.md")
	}
	if cfg.Render.Provider != ProviderErnie {
		t.Errorf("Render.Provider = %q, want %q", cfg.Render.Provider, ProviderErnie)
	}
	if cfg.Render.Temperature != 0.7 || cfg.Render.TopP != 0.9 {
		t.Errorf("sampling = (%v, %v), want (0.7, 0.9)", cfg.Render.Temperature, cfg.Render.TopP)
	}
	if cfg.Render.EscapeText {
		t.Error("Render.EscapeText = true, want false")
	}
	if cfg.Services.Offline {
		t.Error("Services.Offline = true, want false")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error should mention field name %q, got %q", tt.fieldName, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "openai provider",
			mutate: func(c *Config) { c.Render.Provider = ProviderOpenAI },
		},
		{
			name:   "escape text",
			mutate: func(c *Config) { c.Render.EscapeText = true },
		},
		{
			name:   "timeout",
			mutate: func(c *Config) { c.Services.TimeoutSeconds = 30 },
		},
		{
			name:    "html name with separator",
			mutate:  func(c *Config) { c.Output.HTML = "site/index.html" },
			wantErr: ErrInvalidOutput,
		},
		{
			name:    "markup name is dot-dot",
			mutate:  func(c *Config) { c.Output.Markup = ".." },
			wantErr: ErrInvalidOutput,
		},
		{
			name:    "html and markup collide",
			mutate:  func(c *Config) { c.Output.Markup = c.Output.HTML },
			wantErr: ErrInvalidOutput,
		},
		{
			name:    "html name too long",
			mutate:  func(c *Config) { c.Output.HTML = strings.Repeat("a", MaxFileNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "endpoint too long",
			mutate:  func(c *Config) { c.OCR.Endpoint = "https://" + strings.Repeat("x", MaxURLLength) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Render.Provider = "gemini" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "temperature above one",
			mutate:  func(c *Config) { c.Render.Temperature = 1.5 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative topP",
			mutate:  func(c *Config) { c.Render.TopP = -0.1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Services.TimeoutSeconds = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "style name too long",
			mutate:  func(c *Config) { c.Assets.Style = strings.Repeat("s", MaxAssetNameLen+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads and applies defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "site.yaml")
		content := `output:
  dir: public
render:
  provider: OpenAI
  model: ernie-4.5-turbo-128k
  escapeText: true
services:
  timeoutSeconds: 20
assets:
  style: default
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "public" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "public")
		}
		if cfg.Output.HTML != DefaultHTMLName {
			t.Errorf("Output.HTML = %q, want default %q", cfg.Output.HTML, DefaultHTMLName)
		}
		if cfg.Render.Provider != ProviderOpenAI {
			t.Errorf("Render.Provider = %q, want %q", cfg.Render.Provider, ProviderOpenAI)
		}
		if cfg.Render.Model != "ernie-4.5-turbo-128k" {
			t.Errorf("Render.Model = %q", cfg.Render.Model)
		}
		if !cfg.Render.EscapeText {
			t.Error("Render.EscapeText = false, want true")
		}
		if cfg.Render.Temperature != DefaultTemperature {
			t.Errorf("Render.Temperature = %v, want default", cfg.Render.Temperature)
		}
		if cfg.Services.TimeoutSeconds != 20 {
			t.Errorf("Services.TimeoutSeconds = %d, want 20", cfg.Services.TimeoutSeconds)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("output:\n  folder: x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("credentials are not a config field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.yaml")
		if err := os.WriteFile(path, []byte("auth:\n  apiKey: secret\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value is rejected after parsing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		if err := os.WriteFile(path, []byte("output:\n  html: ../index.html\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidOutput) {
			t.Errorf("error = %v, want ErrInvalidOutput", err)
		}
	})

	t.Run("name resolves in current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile("local.yml", []byte("output:\n  dir: from-name\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig(\"local\") error = %v", err)
		}
		if cfg.Output.Dir != "from-name" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "from-name")
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nonexistent-doc2web-config")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nonexistent-doc2web-config.yaml") {
			t.Errorf("error should list tried paths, got %q", err.Error())
		}
	})
}

func TestSearchPaths(t *testing.T) {
	switch runtime.GOOS {
	case "darwin", "ios", "windows", "plan9":
		t.Skip("user config dir ignores XDG_CONFIG_HOME on " + runtime.GOOS)
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got := SearchPaths("team")
	want := []string{
		"team.yaml",
		"team.yml",
		filepath.Join("/tmp/xdg", "go-doc2web", "team.yaml"),
		filepath.Join("/tmp/xdg", "go-doc2web", "team.yml"),
	}

	if len(got) != len(want) {
		t.Fatalf("SearchPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
