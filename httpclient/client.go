package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/logger"
	"github.com/kbukum/bukku-go/observability"
	"github.com/kbukum/bukku-go/version"
)

// HeaderRequestID carries the per-call request id.
const HeaderRequestID = "X-Request-Id"

// Client sends requests to the Bukku API. It holds no mutable state and is
// safe for concurrent use.
type Client struct {
	cfg       Config
	baseURL   *url.URL
	userAgent string
	log       *logger.Logger
	tracer    trace.Tracer
	metrics   *observability.ClientMetrics
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger enables debug logging of every call.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.WithComponent("bukku.httpclient")
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithMetrics records a counter and a duration per call.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUserAgent replaces the default bukku-go/<version> agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New validates cfg and returns a Client. No network call is made.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.InvalidFormat("apiBaseUrl", fmt.Sprintf("Invalid apiBaseUrl: %s. It must be a valid URL.", cfg.BaseURL))
	}

	c := &Client{
		cfg:       cfg,
		baseURL:   base,
		userAgent: version.UserAgent(),
		log:       logger.Nop(),
		tracer:    observability.Tracer(observability.InstrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// CompanySubdomain returns the tenant subdomain.
func (c *Client) CompanySubdomain() string { return c.cfg.CompanySubdomain }

// Do sends req and returns the 2xx response. Every failure is an *APIError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	route := Route(req.Path)

	requestID := logger.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = logger.ContextWithRequestID(ctx, requestID)
	}

	ctx, span := c.tracer.Start(ctx, "bukku "+req.Method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrHTTPMethod, req.Method),
			attribute.String(observability.AttrServerAddr, c.baseURL.Host),
			attribute.String(observability.AttrRequestID, requestID),
			attribute.String(observability.AttrSubdomain, c.cfg.CompanySubdomain),
		),
	)
	defer span.End()

	log := c.log.WithContext(ctx)

	treq, err := c.build(req, requestID)
	if err != nil {
		apiErr := newTransportError(err)
		c.finish(ctx, span, log, req.Method, route, 0, start, apiErr)
		return nil, apiErr
	}
	span.SetAttributes(attribute.String(observability.AttrURLFull, treq.URL))

	log.Debug("bukku request", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
	))

	tresp, err := c.cfg.Transport.RoundTrip(ctx, treq)
	if err != nil {
		apiErr := newTransportError(err)
		c.finish(ctx, span, log, req.Method, route, 0, start, apiErr)
		return nil, apiErr
	}

	if !isSuccess(tresp.StatusCode) {
		apiErr := newStatusError(tresp)
		c.finish(ctx, span, log, req.Method, route, tresp.StatusCode, start, apiErr)
		return nil, apiErr
	}

	c.finish(ctx, span, log, req.Method, route, tresp.StatusCode, start, nil)
	return &Response{
		StatusCode: tresp.StatusCode,
		Header:     tresp.Header,
		Body:       tresp.Body,
	}, nil
}

func (c *Client) build(req Request, requestID string) (*TransportRequest, error) {
	target, err := resolve(c.baseURL, req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	header.Set("Company-Subdomain", c.cfg.CompanySubdomain)
	header.Set("Accept", "application/json")
	header.Set("User-Agent", c.userAgent)
	header.Set(HeaderRequestID, requestID)

	treq := &TransportRequest{Method: req.Method, URL: target, Header: header}
	if hasBody(req.Body) {
		body, contentType, err := encodeBody(req.Body)
		if err != nil {
			return nil, err
		}
		header.Set("Content-Type", contentType)
		treq.Body = body
	}
	return treq, nil
}

func (c *Client) finish(ctx context.Context, span trace.Span, log *logger.Logger, method, route string, status int, start time.Time, err error) {
	elapsed := time.Since(start)
	if status != 0 {
		span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
	}
	if c.metrics != nil {
		c.metrics.RecordCall(ctx, method, route, status, elapsed)
	}

	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldMethod, method,
		logger.FieldPath, route,
		logger.FieldStatus, status,
	), elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if status == 0 {
			span.SetAttributes(attribute.String(observability.AttrErrorReason, "transport"))
		} else {
			span.SetAttributes(attribute.String(observability.AttrErrorReason, http.StatusText(status)))
		}
		fields[logger.FieldError] = err.Error()
		log.Warn("bukku request failed", fields)
		return
	}
	log.Debug("bukku response", fields)
}

// Route replaces numeric path segments with {id} so that spans and metrics
// group calls by endpoint.
func Route(path string) string {
	path, _, _ = strings.Cut(path, "?")
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s != "" && strings.Trim(s, "0123456789") == "" {
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}
