package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem is the file access used while locating config files.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// RealFileSystem implements FileSystem on the local disk.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (RealFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// ResolvedFiles are the config and env files picked for a load. Empty means
// none was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem replaces the local disk, mostly for tests.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig fills cfg from config.yml, .env and the process environment,
// later sources winning. When cfg implements Config its defaults are applied
// and it is validated.
func LoadConfig(serviceName string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: RealFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}

	files := resolveFiles(lc, serviceName)
	if err := load(cfg, files, lc.FileSystem); err != nil {
		return fmt.Errorf("load config for %s: %w", serviceName, err)
	}

	if c, ok := cfg.(Config); ok {
		c.ApplyDefaults()
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config for %s: %w", serviceName, err)
		}
	}
	return nil
}

// resolveFiles keeps explicit paths and otherwise takes the first existing
// candidate: the working directory, then <user config dir>/<service>.
func resolveFiles(lc LoaderConfig, serviceName string) ResolvedFiles {
	dirs := []string{".", "./config"}
	if dir, err := lc.FileSystem.UserConfigDir(); err == nil && dir != "" {
		dirs = append(dirs, filepath.Join(dir, serviceName))
	}

	files := ResolvedFiles{ConfigFile: lc.ConfigFile, EnvFile: lc.EnvFile}
	if files.ConfigFile == "" {
		files.ConfigFile = firstExisting(lc.FileSystem, dirs, serviceName+".yml", "config.yml")
	}
	if files.EnvFile == "" {
		files.EnvFile = firstExisting(lc.FileSystem, dirs, ".env."+serviceName, ".env")
	}
	return files
}

func firstExisting(fs FileSystem, dirs []string, names ...string) string {
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if fs.Exists(path) {
				return path
			}
		}
	}
	return ""
}

func load(cfg any, files ResolvedFiles, fs FileSystem) error {
	v := viper.New()

	if files.ConfigFile != "" {
		if !fs.Exists(files.ConfigFile) {
			return fmt.Errorf("config file %s not found", files.ConfigFile)
		}
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", files.ConfigFile, err)
		}
	}

	// .env never overrides variables already set in the process.
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			return fmt.Errorf("load %s: %w", files.EnvFile, err)
		}
	}

	for _, key := range configKeys(reflect.TypeOf(cfg), "") {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// EnvName is the environment variable bound to a dotted config key:
// bukku.access_token reads BUKKU_ACCESS_TOKEN.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// configKeys lists the dotted leaf keys of t from its mapstructure tags.
// Squashed embedded structs contribute their keys without a prefix.
func configKeys(t reflect.Type, prefix string) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if strings.Contains(opts, "squash") {
			keys = append(keys, configKeys(f.Type, prefix)...)
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}

		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if isSection(f.Type) {
			keys = append(keys, configKeys(f.Type, key)...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// isSection reports whether t is a nested struct rather than a leaf value.
func isSection(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
