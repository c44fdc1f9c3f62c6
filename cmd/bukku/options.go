package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/bukku-go/httpclient"
)

type options struct {
	fs *pflag.FlagSet

	configFile string
	envFile    string

	token     string
	subdomain string
	baseURL   string
	staging   bool
	timeout   time.Duration

	debug     bool
	logFormat string
	telemetry bool

	data    string
	query   []string
	status  string
	compact bool

	port int
}

func newFlagSet() (*pflag.FlagSet, *options) {
	o := &options{}
	fs := pflag.NewFlagSet("bukku", pflag.ContinueOnError)
	fs.SortFlags = false
	o.fs = fs

	fs.StringVarP(&o.configFile, "config", "c", "", "config file (default: first of bukku.yml or config.yml in ., ./config, <user config>/bukku)")
	fs.StringVar(&o.envFile, "env-file", "", ".env file to load")

	fs.StringVar(&o.token, "token", "", "API access token (BUKKU_ACCESS_TOKEN)")
	fs.StringVar(&o.subdomain, "subdomain", "", "company subdomain (BUKKU_COMPANY_SUBDOMAIN)")
	fs.StringVar(&o.baseURL, "base-url", "", "API base URL (default "+httpclient.ProductionBaseURL+")")
	fs.BoolVar(&o.staging, "staging", false, "use "+httpclient.StagingBaseURL)
	fs.DurationVar(&o.timeout, "timeout", 0, "per-request timeout")

	fs.BoolVar(&o.debug, "debug", false, "log every request")
	fs.StringVar(&o.logFormat, "log-format", "", "console, json or pretty")
	fs.BoolVar(&o.telemetry, "telemetry", false, "export traces and metrics over OTLP/HTTP")

	fs.StringVarP(&o.data, "data", "d", "", "JSON body, @file to read a file, - for stdin")
	fs.StringArrayVarP(&o.query, "query", "q", nil, "query parameter key=value (repeatable)")
	fs.StringVar(&o.status, "status", "", "target status for the status operation")
	fs.BoolVar(&o.compact, "compact", false, "print JSON on one line")

	fs.IntVarP(&o.port, "port", "p", 0, "mock-server listen port")
	return fs, o
}

// apply lets explicit flags win over file and environment values.
func (o *options) apply(cfg *Config) {
	if o.fs.Changed("token") {
		cfg.Bukku.AccessToken = o.token
	}
	if o.fs.Changed("subdomain") {
		cfg.Bukku.CompanySubdomain = o.subdomain
	}
	switch {
	case o.fs.Changed("base-url"):
		cfg.Bukku.BaseURL = o.baseURL
	case o.staging:
		cfg.Bukku.BaseURL = httpclient.StagingBaseURL
	}
	if o.fs.Changed("timeout") {
		cfg.Bukku.Timeout = o.timeout
	}
	if o.debug {
		cfg.Debug = true
		cfg.Logging.Level = "debug"
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	if o.telemetry {
		cfg.Telemetry.Enabled = true
	}
	if o.fs.Changed("port") {
		cfg.Server.Port = o.port
	}
}
