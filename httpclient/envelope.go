package httpclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/bukku-go/errors"
)

// Envelope is a JSON object whose payload sits under a single key, e.g.
// {"transaction": {...}}.
type Envelope[T any] struct {
	Key string
}

// Decode returns the value stored under e.Key.
func (e Envelope[T]) Decode(body []byte) (*T, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, newDecodeError(body, err)
	}

	inner, ok := raw[e.Key]
	if !ok || string(inner) == "null" {
		return nil, errors.InvalidResponse(fmt.Sprintf("response has no %q field", e.Key)).
			WithDetail("field", e.Key)
	}

	var out T
	if err := json.Unmarshal(inner, &out); err != nil {
		return nil, newDecodeError(body, err)
	}
	return &out, nil
}

// DecodeJSON unmarshals a successful response into T. A 204 yields a zero T.
func DecodeJSON[T any](resp *Response) (*T, error) {
	var out T
	if resp.NoContent() {
		return &out, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, newDecodeError(resp.Body, err)
	}
	return &out, nil
}

// Call sends req and decodes the whole response body into T.
func Call[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return DecodeJSON[T](resp)
}

// CallEnvelope sends req and unwraps the object stored under key. A 204
// yields a zero T.
func CallEnvelope[T any](ctx context.Context, c *Client, req Request, key string) (*T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.NoContent() {
		return new(T), nil
	}
	return Envelope[T]{Key: key}.Decode(resp.Body)
}
