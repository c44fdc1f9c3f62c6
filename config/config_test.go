package config

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"
)

type fakeFS struct {
	files     map[string]bool
	configDir string
}

func (f *fakeFS) Exists(path string) bool        { return f.files[path] }
func (f *fakeFS) LoadEnv(string) error           { return nil }
func (f *fakeFS) UserConfigDir() (string, error) { return f.configDir, nil }

type testConfig struct {
	ServiceConfig `mapstructure:",squash"`
	Bukku         struct {
		AccessToken      string        `mapstructure:"access_token"`
		CompanySubdomain string        `mapstructure:"company_subdomain"`
		Timeout          time.Duration `mapstructure:"timeout"`
		TLS              *struct {
			SkipVerify bool `mapstructure:"skip_verify"`
		} `mapstructure:"tls"`
	} `mapstructure:"bukku"`
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to production", func(t *testing.T) {
		cfg := ServiceConfig{Name: "bukku"}
		cfg.ApplyDefaults()
		if cfg.Environment != "production" {
			t.Errorf("expected 'production', got %q", cfg.Environment)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("debug lowers the log level", func(t *testing.T) {
		cfg := ServiceConfig{Name: "bukku", Debug: true}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug level, got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level wins over debug", func(t *testing.T) {
		cfg := ServiceConfig{Name: "bukku", Debug: true}
		cfg.Logging.Level = "warn"
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected warn level, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{name: "valid", cfg: ServiceConfig{Name: "bukku", Environment: "staging"}},
		{name: "missing name", cfg: ServiceConfig{Environment: "production"}, wantErr: "config.name"},
		{name: "unknown environment", cfg: ServiceConfig{Name: "bukku", Environment: "qa"}, wantErr: "config.environment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Logging.ApplyDefaults()
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnvName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "bukku.access_token", want: "BUKKU_ACCESS_TOKEN"},
		{key: "bukku.tls.skip_verify", want: "BUKKU_TLS_SKIP_VERIFY"},
		{key: "logging.level", want: "LOGGING_LEVEL"},
		{key: "debug", want: "DEBUG"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := EnvName(tt.key); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfigKeys(t *testing.T) {
	keys := configKeys(reflect.TypeFor[*testConfig](), "")

	for _, want := range []string{
		"name",
		"environment",
		"logging.level",
		"bukku.access_token",
		"bukku.timeout",
		"bukku.tls.skip_verify",
	} {
		if !slices.Contains(keys, want) {
			t.Errorf("expected %q in %v", want, keys)
		}
	}
	for _, unwanted := range []string{"serviceconfig", "bukku", "bukku.tls"} {
		if slices.Contains(keys, unwanted) {
			t.Errorf("unexpected section key %q in %v", unwanted, keys)
		}
	}
}

func TestResolveFilesUserConfigDir(t *testing.T) {
	fs := &fakeFS{
		files:     map[string]bool{filepath.Join("/home/me/.config", "bukku", "config.yml"): true},
		configDir: "/home/me/.config",
	}

	files := resolveFiles(LoaderConfig{FileSystem: fs}, "bukku")
	if files.ConfigFile != filepath.Join("/home/me/.config", "bukku", "config.yml") {
		t.Errorf("unexpected config file %q", files.ConfigFile)
	}
	if files.EnvFile != "" {
		t.Errorf("expected no env file, got %q", files.EnvFile)
	}
}

func TestResolveFilesPrefersWorkingDir(t *testing.T) {
	fs := &fakeFS{
		files: map[string]bool{
			"bukku.yml":  true,
			"config.yml": true,
			filepath.Join("/home/me/.config", "bukku", "config.yml"): true,
			".env":       true,
			".env.bukku": true,
		},
		configDir: "/home/me/.config",
	}

	files := resolveFiles(LoaderConfig{FileSystem: fs}, "bukku")
	if files.ConfigFile != "bukku.yml" {
		t.Errorf("unexpected config file %q", files.ConfigFile)
	}
	if files.EnvFile != ".env.bukku" {
		t.Errorf("unexpected env file %q", files.EnvFile)
	}
}

func TestResolveFilesExplicit(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{"config.yml": true}}

	files := resolveFiles(LoaderConfig{FileSystem: fs, ConfigFile: "/etc/bukku.yml", EnvFile: "/etc/bukku.env"}, "bukku")
	if files.ConfigFile != "/etc/bukku.yml" || files.EnvFile != "/etc/bukku.env" {
		t.Errorf("unexpected files %+v", files)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
name: bukku
environment: production
logging:
  format: json
bukku:
  access_token: file-token
  company_subdomain: acme
  timeout: 45s
`)
	t.Setenv("BUKKU_ACCESS_TOKEN", "env-token")
	t.Setenv("BUKKU_TLS_SKIP_VERIFY", "true")
	t.Setenv("ENVIRONMENT", "staging")

	var cfg testConfig
	fs := &fakeFS{files: map[string]bool{path: true}}
	if err := LoadConfig("bukku", &cfg, WithFileSystem(fs), WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "bukku" {
		t.Errorf("unexpected name %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected env override, got %q", cfg.Environment)
	}
	if cfg.Bukku.AccessToken != "env-token" {
		t.Errorf("expected env override, got %q", cfg.Bukku.AccessToken)
	}
	if cfg.Bukku.CompanySubdomain != "acme" {
		t.Errorf("unexpected subdomain %q", cfg.Bukku.CompanySubdomain)
	}
	if cfg.Bukku.Timeout != 45*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Bukku.Timeout)
	}
	if cfg.Bukku.TLS == nil || !cfg.Bukku.TLS.SkipVerify {
		t.Errorf("expected tls.skip_verify from env, got %+v", cfg.Bukku.TLS)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadConfigValidates(t *testing.T) {
	path := writeConfig(t, "environment: production\n")
	t.Setenv("ENVIRONMENT", "production")

	var cfg testConfig
	fs := &fakeFS{files: map[string]bool{path: true}}
	err := LoadConfig("bukku", &cfg, WithFileSystem(fs), WithConfigFile(path))
	if err == nil || !strings.Contains(err.Error(), "config.name") {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	path := writeConfig(t, "name: [unterminated\n")

	var cfg testConfig
	fs := &fakeFS{files: map[string]bool{path: true}}
	if err := LoadConfig("bukku", &cfg, WithFileSystem(fs), WithConfigFile(path)); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	var cfg testConfig
	fs := &fakeFS{files: map[string]bool{}}
	err := LoadConfig("bukku", &cfg, WithFileSystem(fs), WithConfigFile("/nope/config.yml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}
