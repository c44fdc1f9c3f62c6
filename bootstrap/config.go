package bootstrap

import (
	"github.com/kbukum/bukku-go/config"
)

// Config is the constraint for application configuration types. Any struct
// embedding config.ServiceConfig satisfies it through promoted methods.
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Bukku bukku.Settings `yaml:"bukku" mapstructure:"bukku"`
//	}
//
//	app, err := bootstrap.NewApp[*Config](&cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
