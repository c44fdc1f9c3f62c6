package httpclient

import (
	"fmt"

	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/validation"
)

// Well-known API hosts.
const (
	ProductionBaseURL = "https://api.bukku.my"
	StagingBaseURL    = "https://api.bukku.fyi"
)

// Config configures a Client. It is copied at construction and never mutated.
type Config struct {
	// AccessToken is the opaque API token sent as a bearer credential.
	AccessToken string `json:"accessToken" validate:"required"`

	// CompanySubdomain selects the tenant via the Company-Subdomain header.
	CompanySubdomain string `json:"companySubdomain" validate:"required"`

	// BaseURL is the absolute URL every endpoint path is resolved against.
	BaseURL string `json:"apiBaseUrl" validate:"required,url"`

	// Transport performs the network exchange.
	Transport Transport `json:"transport" validate:"required"`
}

// Validate reports the first missing or malformed setting.
func (c *Config) Validate() error {
	err := validation.Validate(c)
	if err == nil {
		return nil
	}

	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}

	switch fields[0].Field {
	case "accessToken":
		return errors.MissingField("accessToken", "Bukku API Access Token (accessToken) is required.")
	case "companySubdomain":
		return errors.MissingField("companySubdomain", "Bukku Company Subdomain (companySubdomain) is required.")
	case "apiBaseUrl":
		return errors.InvalidFormat("apiBaseUrl", fmt.Sprintf("Invalid apiBaseUrl: %s. It must be a valid URL.", c.BaseURL))
	case "transport":
		return errors.MissingField("transport", "HTTP transport (transport) is required.")
	default:
		return err
	}
}
