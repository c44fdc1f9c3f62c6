package bukku

import (
	"fmt"
	"time"

	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/util"
	"github.com/kbukum/bukku-go/validation"
)

// Settings configures New. It is loadable from config.yml under a "bukku"
// key and from BUKKU_* environment variables.
type Settings struct {
	AccessToken      string `yaml:"access_token" mapstructure:"access_token" json:"access_token" validate:"required"`
	CompanySubdomain string `yaml:"company_subdomain" mapstructure:"company_subdomain" json:"company_subdomain" validate:"required"`

	// BaseURL defaults to httpclient.ProductionBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" json:"base_url" validate:"required,url"`

	Timeout time.Duration         `yaml:"timeout" mapstructure:"timeout" json:"timeout"`
	TLS     *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls" json:"tls"`
}

// ApplyDefaults fills BaseURL.
func (s *Settings) ApplyDefaults() {
	if s.BaseURL == "" {
		s.BaseURL = httpclient.ProductionBaseURL
	}
}

// Validate reports missing credentials and a malformed base URL.
func (s *Settings) Validate() error {
	return validation.Validate(s)
}

// String masks the access token.
func (s Settings) String() string {
	return fmt.Sprintf("bukku.Settings{AccessToken: %s, CompanySubdomain: %s, BaseURL: %s, Timeout: %s}",
		util.MaskSecret(s.AccessToken), s.CompanySubdomain, s.BaseURL, s.Timeout)
}

func (s Settings) httpConfig() httpclient.HTTPConfig {
	return httpclient.HTTPConfig{Timeout: s.Timeout, TLS: s.TLS}
}
