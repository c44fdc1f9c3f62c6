package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/logger"
	"github.com/kbukum/bukku-go/observability"
)

type recorder struct {
	requests []*TransportRequest
	respond  func(req *TransportRequest) (*TransportResponse, error)
}

func (r *recorder) RoundTrip(_ context.Context, req *TransportRequest) (*TransportResponse, error) {
	r.requests = append(r.requests, req)
	if r.respond == nil {
		return &TransportResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
	}
	return r.respond(req)
}

func (r *recorder) last(t *testing.T) *TransportRequest {
	t.Helper()
	if len(r.requests) == 0 {
		t.Fatal("no request recorded")
	}
	return r.requests[len(r.requests)-1]
}

func respondWith(status int, body string) func(*TransportRequest) (*TransportResponse, error) {
	return func(*TransportRequest) (*TransportResponse, error) {
		return &TransportResponse{StatusCode: status, Body: []byte(body)}, nil
	}
}

func newTestClient(t *testing.T, baseURL string, transport Transport, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{
		AccessToken:      "secret-token",
		CompanySubdomain: "acme",
		BaseURL:          baseURL,
		Transport:        transport,
	}, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	transport := &recorder{}
	valid := Config{
		AccessToken:      "token",
		CompanySubdomain: "acme",
		BaseURL:          "https://api.example",
		Transport:        transport,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		code    errors.ErrorCode
		message string
	}{
		{"missing token", func(c *Config) { c.AccessToken = "" }, errors.ErrCodeMissingField,
			"Bukku API Access Token (accessToken) is required."},
		{"missing subdomain", func(c *Config) { c.CompanySubdomain = "" }, errors.ErrCodeMissingField,
			"Bukku Company Subdomain (companySubdomain) is required."},
		{"relative base url", func(c *Config) { c.BaseURL = "not a url" }, errors.ErrCodeInvalidFormat,
			"Invalid apiBaseUrl: not a url. It must be a valid URL."},
		{"missing transport", func(c *Config) { c.Transport = nil }, errors.ErrCodeMissingField,
			"HTTP transport (transport) is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			_, err := New(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected *AppError, got %T", err)
			}
			if appErr.Code != tt.code {
				t.Errorf("code = %s, want %s", appErr.Code, tt.code)
			}
			if appErr.Message != tt.message {
				t.Errorf("message = %q, want %q", appErr.Message, tt.message)
			}
		})
	}

	if _, err := New(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transport.requests) != 0 {
		t.Errorf("construction made %d requests, want 0", len(transport.requests))
	}
}

func TestClient_Do_Headers(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "https://api.example", rec)

	if _, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/contacts"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := rec.last(t)
	want := map[string]string{
		"Authorization":     "Bearer secret-token",
		"Company-Subdomain": "acme",
		"Accept":            "application/json",
	}
	for k, v := range want {
		if got := req.Header.Get(k); got != v {
			t.Errorf("header %s = %q, want %q", k, got, v)
		}
	}
	if !strings.HasPrefix(req.Header.Get("User-Agent"), "bukku-go/") {
		t.Errorf("User-Agent = %q", req.Header.Get("User-Agent"))
	}
	if ct := req.Header.Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type = %q on a request without body", ct)
	}
	if req.Body != nil {
		t.Errorf("body = %q, want none", req.Body)
	}
	if req.URL != "https://api.example/contacts" {
		t.Errorf("URL = %q", req.URL)
	}
}

func TestClient_Do_JSONBody(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "https://api.example", rec)

	body := map[string]any{"contact_id": 7, "amount": 12.5}
	if _, err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/sales/payments", Body: body}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := rec.last(t)
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	want, _ := json.Marshal(body)
	if !bytes.Equal(req.Body, want) {
		t.Errorf("body = %s, want %s", req.Body, want)
	}
}

func TestClient_Do_TypedNilBodyIsNoBody(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "https://api.example", rec)

	var body *struct{ A int }
	if _, err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/x", Body: body}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req := rec.last(t); req.Body != nil || req.Header.Get("Content-Type") != "" {
		t.Errorf("typed nil body was sent: %q", req.Body)
	}
}

func TestClient_Do_QueryOrder(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "https://api.example", rec)

	q := Query{}.Add("a", 1).Add("b", "x").Add("c", true)
	if _, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/foo", Query: q}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.last(t).URL; got != "https://api.example/foo?a=1&b=x&c=true" {
		t.Errorf("URL = %q", got)
	}
}

func TestClient_Do_NoContent(t *testing.T) {
	rec := &recorder{respond: respondWith(http.StatusNoContent, "not json")}
	client := newTestClient(t, "https://api.example", rec)

	got, err := Call[map[string]any](context.Background(), client, Request{Method: http.MethodDelete, Path: "/contacts/1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*got) != 0 {
		t.Errorf("result = %v, want empty", *got)
	}
}

func TestClient_Do_NotFoundJSON(t *testing.T) {
	rec := &recorder{respond: func(*TransportRequest) (*TransportResponse, error) {
		return &TransportResponse{StatusCode: 404, StatusText: "Not Found", Body: []byte(`{"message":"not found"}`)}, nil
	}}
	client := newTestClient(t, "https://api.example", rec)

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/contacts/99"})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "API request failed: 404 Not Found" {
		t.Errorf("message = %q", apiErr.Message)
	}
	payload, ok := apiErr.Payload.(map[string]any)
	if !ok || payload["message"] != "not found" {
		t.Errorf("payload = %#v", apiErr.Payload)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound = false")
	}
	if IsTransportError(err) {
		t.Error("IsTransportError = true for an HTTP failure")
	}
	if got := apiErr.ToAppError().Code; got != errors.ErrCodeNotFound {
		t.Errorf("ToAppError code = %s", got)
	}
}

func TestClient_Do_ServerErrorText(t *testing.T) {
	rec := &recorder{respond: respondWith(http.StatusInternalServerError, "upstream exploded")}
	client := newTestClient(t, "https://api.example", rec)

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/accounts"})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Payload != "upstream exploded" {
		t.Errorf("got status %d payload %#v", apiErr.StatusCode, apiErr.Payload)
	}
	if apiErr.Message != "API request failed: 500 Internal Server Error" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if StatusCode(err) != 500 {
		t.Errorf("StatusCode(err) = %d", StatusCode(err))
	}
}

func TestClient_Do_TransportError(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	client := newTestClient(t, "https://api.example", TransportFunc(func(context.Context, *TransportRequest) (*TransportResponse, error) {
		return nil, cause
	}))

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/tags"})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HasStatus() {
		t.Errorf("status = %d, want none", apiErr.StatusCode)
	}
	if apiErr.Message != cause.Error() {
		t.Errorf("message = %q", apiErr.Message)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause not kept")
	}
	if !IsTransportError(err) {
		t.Error("IsTransportError = false")
	}
	if got := apiErr.ToAppError().Code; got != errors.ErrCodeConnectionFailed {
		t.Errorf("ToAppError code = %s", got)
	}
}

func TestClient_Do_ContextDeadline(t *testing.T) {
	client := newTestClient(t, "https://api.example", TransportFunc(func(ctx context.Context, _ *TransportRequest) (*TransportResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, Request{Method: http.MethodGet, Path: "/tags"})
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	apiErr, _ := AsAPIError(err)
	if got := apiErr.ToAppError().Code; got != errors.ErrCodeTimeout {
		t.Errorf("ToAppError code = %s", got)
	}
}

func TestCall_DecodeFailure(t *testing.T) {
	rec := &recorder{respond: respondWith(http.StatusOK, "<html>")}
	client := newTestClient(t, "https://api.example", rec)

	_, err := Call[map[string]any](context.Background(), client, Request{Method: http.MethodGet, Path: "/accounts"})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HasStatus() {
		t.Errorf("status = %d, want none", apiErr.StatusCode)
	}
	if !stderrors.Is(err, ErrDecode) {
		t.Error("expected ErrDecode")
	}
	if IsTransportError(err) {
		t.Error("decode failure reported as transport error")
	}
	if got := apiErr.ToAppError().Code; got != errors.ErrCodeInvalidResponse {
		t.Errorf("ToAppError code = %s", got)
	}
}

func TestCallEnvelope(t *testing.T) {
	type account struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	t.Run("unwraps key", func(t *testing.T) {
		rec := &recorder{respond: respondWith(http.StatusCreated, `{"account":{"id":3,"name":"Cash"}}`)}
		client := newTestClient(t, "https://api.example", rec)

		got, err := CallEnvelope[account](context.Background(), client, Request{Method: http.MethodPost, Path: "/accounts", Body: account{Name: "Cash"}}, "account")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 3 || got.Name != "Cash" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		rec := &recorder{respond: respondWith(http.StatusOK, `{"other":{}}`)}
		client := newTestClient(t, "https://api.example", rec)

		_, err := CallEnvelope[account](context.Background(), client, Request{Method: http.MethodGet, Path: "/accounts/3"}, "account")
		if !errors.HasCode(err, errors.ErrCodeInvalidResponse) {
			t.Fatalf("err = %v, want INVALID_RESPONSE", err)
		}
	})

	t.Run("no content", func(t *testing.T) {
		rec := &recorder{respond: respondWith(http.StatusNoContent, "")}
		client := newTestClient(t, "https://api.example", rec)

		got, err := CallEnvelope[account](context.Background(), client, Request{Method: http.MethodPatch, Path: "/accounts/3"}, "account")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.ID != 0 {
			t.Errorf("got %+v, want zero value", got)
		}
	})
}

func TestClient_Tracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	rec := &recorder{respond: respondWith(http.StatusNotFound, `{}`)}
	client := newTestClient(t, "https://api.example", rec, WithTracer(tp.Tracer("test")))

	_, _ = client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/sales/invoices/42"})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name != "bukku GET /sales/invoices/{id}" {
		t.Errorf("span name = %q", span.Name)
	}
	attrs := map[string]string{}
	for _, kv := range span.Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs[observability.AttrHTTPStatus] != "404" {
		t.Errorf("status attribute = %q", attrs[observability.AttrHTTPStatus])
	}
	if attrs[observability.AttrSubdomain] != "acme" {
		t.Errorf("subdomain attribute = %q", attrs[observability.AttrSubdomain])
	}
	if attrs[observability.AttrRequestID] == "" {
		t.Error("request id attribute missing")
	}
}

func TestClient_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "bukku", &buf)

	rec := &recorder{respond: respondWith(http.StatusOK, `{}`)}
	client := newTestClient(t, "https://api.example", rec, WithLogger(log))

	ctx := logger.ContextWithRequestID(context.Background(), "req-1")
	if _, err := client.Do(ctx, Request{Method: http.MethodGet, Path: "/contacts/5"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"request_id":"req-1"`, `"path":"/contacts/{id}"`, `"status":200`, `"message":"bukku response"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "secret-token") {
		t.Error("access token leaked into logs")
	}
	if got := rec.last(t).Header.Get(HeaderRequestID); got != "req-1" {
		t.Errorf("%s = %q, want req-1", HeaderRequestID, got)
	}
}

func TestClient_Metrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewClientMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := &recorder{}
	client := newTestClient(t, "https://api.example", rec, WithMetrics(metrics))
	for range 2 {
		if _, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/tags"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == observability.MetricRequests {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	if total != 2 {
		t.Errorf("request count = %d, want 2", total)
	}
}

func TestHTTPTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Company-Subdomain") != "acme" {
			t.Errorf("Company-Subdomain = %q", r.Header.Get("Company-Subdomain"))
		}
		if r.URL.RawQuery != "page=2&page_size=10" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	transport, err := NewHTTPTransport(HTTPConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer transport.CloseIdleConnections()

	client := newTestClient(t, srv.URL, transport)
	_, err = client.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/contacts",
		Query:  Query{}.Add("page", 2).Add("page_size", 10),
	})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "API request failed: 418 I'm a teapot" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if apiErr.Payload != "short and stout" {
		t.Errorf("payload = %#v", apiErr.Payload)
	}
}

func TestRoute(t *testing.T) {
	tests := map[string]string{
		"/sales/invoices":         "/sales/invoices",
		"/sales/invoices/42":      "/sales/invoices/{id}",
		"/contacts/7?x=1":         "/contacts/{id}",
		"/purchases/bills/12/pay": "/purchases/bills/{id}/pay",
		"/v2/lists":               "/v2/lists",
	}
	for in, want := range tests {
		if got := Route(in); got != want {
			t.Errorf("Route(%q) = %q, want %q", in, got, want)
		}
	}
}
