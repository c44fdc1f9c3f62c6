package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
)

// Request describes one call to the API.
type Request struct {
	// Method is GET, POST, PUT, PATCH or DELETE.
	Method string
	// Path is resolved against the base URL, e.g. "/sales/invoices/42".
	Path string
	// Query is appended in order.
	Query Query
	// Body is JSON-encoded when non-nil. A *MultipartBody is sent as
	// multipart/form-data.
	Body any
}

// Response is a successful (2xx) exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NoContent reports a 204 response, which carries nothing to decode.
func (r *Response) NoContent() bool {
	return r.StatusCode == http.StatusNoContent
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// hasBody treats nil and typed-nil pointers, maps and slices as no body.
func hasBody(body any) bool {
	if body == nil {
		return false
	}
	rv := reflect.ValueOf(body)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// encodeBody returns the serialized body and its content type.
func encodeBody(body any) ([]byte, string, error) {
	if mp, ok := body.(*MultipartBody); ok {
		return mp.encode()
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return data, "application/json", nil
}

// resolve joins path onto base and appends q.
func resolve(base *url.URL, path string, q Query) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", path, err)
	}
	u := base.ResolveReference(ref)
	if len(q) > 0 {
		encoded := q.Encode()
		if u.RawQuery != "" {
			u.RawQuery += "&" + encoded
		} else {
			u.RawQuery = encoded
		}
	}
	return u.String(), nil
}
