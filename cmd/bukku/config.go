package main

import (
	"fmt"

	"github.com/kbukum/bukku-go"
	"github.com/kbukum/bukku-go/config"
	"github.com/kbukum/bukku-go/observability"
	"github.com/kbukum/bukku-go/server"
	"github.com/kbukum/bukku-go/version"
)

// Config is the bukku command configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Bukku     bukku.Settings       `yaml:"bukku" mapstructure:"bukku"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
	Server    server.Config        `yaml:"server" mapstructure:"server"`
}

// ApplyDefaults fills every section. Credentials are not defaulted.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "bukku"
	}
	if c.Version == "" {
		c.Version = version.Short()
	}
	c.ServiceConfig.ApplyDefaults()
	c.Bukku.ApplyDefaults()

	if c.Telemetry.ServiceVersion == "" {
		c.Telemetry.ServiceVersion = c.Version
	}
	if c.Telemetry.Environment == "" {
		c.Telemetry.Environment = c.Environment
	}
	c.Telemetry.ApplyDefaults()

	if c.Server.Port == 0 {
		c.Server.Port = server.DefaultPort
	}
	c.Server.ApplyDefaults()
}

// Validate checks everything except the API credentials, which only the
// commands that call the API need.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	return nil
}

func loadConfig(opts *options) (*Config, error) {
	var loaderOpts []config.LoaderOption
	if opts.configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.configFile))
	}
	if opts.envFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(opts.envFile))
	}

	var cfg Config
	if err := config.LoadConfig("bukku", &cfg, loaderOpts...); err != nil {
		return nil, err
	}
	opts.apply(&cfg)
	return &cfg, nil
}
