// Package remote talks to the Big Trip API over HTTP. It provides the
// remote sources the stores load from and write through.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/big-trip/internal/api"
	"github.com/pkordes/big-trip/internal/domain"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultTLSTimeout     = 5 * time.Second
	defaultTimeout        = 60 * time.Second

	// maxErrorBody caps how much of a failed response is read for its message.
	maxErrorBody = 64 << 10
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

// Unwrap maps well-known statuses onto domain sentinels.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	}
	return nil
}

// Options configures a Client.
type Options struct {
	// Authorization is sent verbatim in the Authorization header when set.
	Authorization string
	// Timeout bounds a whole request including reading the body.
	Timeout time.Duration
	// HTTPClient replaces the default client. Timeout is ignored when set.
	HTTPClient *http.Client
	Log        *slog.Logger
}

// Client is a JSON client for the Big Trip API.
type Client struct {
	base          *url.URL
	authorization string
	http          *http.Client
	log           *slog.Logger
}

// New returns a Client for the API rooted at baseURL.
func New(baseURL string, opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("remote.New: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("remote.New: base url %q must be http or https", baseURL)
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = newHTTPClient(opts.Timeout)
	}
	return &Client{
		base:          base,
		authorization: opts.Authorization,
		http:          opts.HTTPClient,
		log:           opts.Log.With("component", "remote"),
	}, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dialer := &net.Dialer{Timeout: defaultConnectTimeout}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: defaultTLSTimeout,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

// Points returns the points collection.
func (c *Client) Points() *Points { return &Points{c: c} }

// Destinations returns the destination catalog.
func (c *Client) Destinations() *Destinations { return &Destinations{c: c} }

// Offers returns the offer catalog.
func (c *Client) Offers() *Offers { return &Offers{c: c} }

// do sends one request and decodes a JSON response into R. A nil body sends
// no payload; R of struct{} skips decoding.
func do[R any](ctx context.Context, c *Client, method, path string, body any) (R, error) {
	var (
		result R
		reader io.Reader
	)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return result, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return result, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()
	c.log.DebugContext(ctx, "api call", "method", method, "path", path, "status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, statusError(method, path, resp)
	}
	if _, skip := any(result).(struct{}); skip || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return result, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return result, nil
}

func statusError(method, path string, resp *http.Response) error {
	e := &StatusError{Method: method, Path: path, Status: resp.StatusCode}
	var body api.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Code != "" {
		e.Code, e.Message = body.Error.Code, body.Error.Message
	} else {
		e.Message = strings.TrimSpace(string(raw))
	}
	return e
}

// IsStatus reports whether err is a StatusError with the given status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
