package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http2"
)

// TransportRequest is the fully built request handed to a Transport.
type TransportRequest struct {
	Method string
	URL    string
	Header http.Header
	// Body is nil when the request carries no payload.
	Body []byte
}

// TransportResponse is the raw exchange result returned by a Transport.
type TransportResponse struct {
	StatusCode int
	// StatusText is the reason phrase, e.g. "Not Found". When empty the
	// canonical text for StatusCode is used.
	StatusText string
	Header     http.Header
	Body       []byte
}

// Transport sends a request and returns the status, headers and body.
// An error means no response was received.
type Transport interface {
	RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *TransportRequest) (*TransportResponse, error)

// RoundTrip calls f(ctx, req).
func (f TransportFunc) RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
	return f(ctx, req)
}

const (
	defaultTimeout             = 30 * time.Second
	defaultHealthCheckInterval = 30 * time.Second
	defaultMaxIdleConnsPerHost = 10
)

// HTTPConfig configures NewHTTPTransport.
type HTTPConfig struct {
	// Timeout bounds a whole exchange. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures certificate verification.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// HealthCheckInterval is how long an idle HTTP/2 connection waits before
	// a ping is sent. Defaults to 30s.
	HealthCheckInterval time.Duration `yaml:"health_check_interval" mapstructure:"health_check_interval"`

	// MaxIdleConnsPerHost defaults to 10.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host"`
}

// ApplyDefaults fills in zero-value fields.
func (c *HTTPConfig) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.HealthCheckInterval <= 0 {
		c.HealthCheckInterval = defaultHealthCheckInterval
	}
	if c.MaxIdleConnsPerHost <= 0 {
		c.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}
}

// HTTPTransport is the net/http implementation of Transport.
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds a pooled net/http transport with HTTP/2 enabled.
func NewHTTPTransport(cfg HTTPConfig) (*HTTPTransport, error) {
	cfg.ApplyDefaults()

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}

	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSClientConfig:       tlsCfg,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	h2, err := http2.ConfigureTransports(base)
	if err != nil {
		return nil, fmt.Errorf("httpclient: configure http2: %w", err)
	}
	h2.ReadIdleTimeout = cfg.HealthCheckInterval
	h2.PingTimeout = 15 * time.Second

	return &HTTPTransport{
		client: &http.Client{Transport: base, Timeout: cfg.Timeout},
	}, nil
}

// NewHTTPTransportFromClient wraps an existing *http.Client.
func NewHTTPTransportFromClient(c *http.Client) *HTTPTransport {
	if c == nil {
		c = http.DefaultClient
	}
	return &HTTPTransport{client: c}
}

// RoundTrip sends req through the underlying *http.Client.
func (t *HTTPTransport) RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		httpReq.Header[k] = append([]string(nil), vs...)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // Error on close is safe to ignore for read operations

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &TransportResponse{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// CloseIdleConnections releases pooled connections.
func (t *HTTPTransport) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}

// statusText strips the numeric prefix from resp.Status ("404 Not Found").
func statusText(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
