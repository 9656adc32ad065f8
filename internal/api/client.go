// Package api provides the client for the ledgerly REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB

	// genericErrorMessage is shown when the server's error envelope
	// carries no usable message in any language.
	genericErrorMessage = "Something went wrong."
)

// ErrNoToken indicates an authenticated endpoint was called without a
// bearer token.
var ErrNoToken = errors.New("api: not signed in")

// Error is a decoded API error envelope. Message is already resolved to
// the preferred language.
type Error struct {
	Message string
	Code    int
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("api: %s (code %d)", e.Message, e.Code)
	}
	return "api: " + e.Message
}

// Client talks to the ledgerly REST API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given base URL. token may be empty
// for unauthenticated calls (register, login).
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Authenticated reports whether a bearer token is set.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// envelope is the error shape shared by every endpoint:
// {success:false, errorMessage: string | {en,ru,uz}, errorCode}.
type envelope struct {
	Success      *bool           `json:"success"`
	ErrorMessage json.RawMessage `json:"errorMessage"`
	ErrorCode    int             `json:"errorCode"`
}

// do performs a JSON request and decodes the response into out.
// Error envelopes are converted to *Error exactly once, here.
func (c *Client) do(ctx context.Context, method, path string, reqBody, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("api: encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("api: reading response: %w", err)
	}

	// An envelope with success:false wins over the HTTP status; some
	// endpoints report errors with a 200.
	var env envelope
	failed := resp.StatusCode < 200 || resp.StatusCode >= 300
	if json.Unmarshal(data, &env) == nil && env.Success != nil && !*env.Success {
		failed = true
	}
	if failed {
		return &Error{Message: resolveMessage(env.ErrorMessage), Code: env.ErrorCode}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// multiLanguage is the localized message variant of the error envelope.
type multiLanguage struct {
	En string `json:"en"`
	Ru string `json:"ru"`
	Uz string `json:"uz"`
}

// resolveMessage picks the display message from a raw errorMessage
// field: plain string, else English, Russian, Uzbek, else a generic
// fallback.
func resolveMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return genericErrorMessage
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}

	var ml multiLanguage
	if err := json.Unmarshal(raw, &ml); err == nil {
		switch {
		case ml.En != "":
			return ml.En
		case ml.Ru != "":
			return ml.Ru
		case ml.Uz != "":
			return ml.Uz
		}
	}

	return genericErrorMessage
}
