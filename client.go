package tjp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultEndpoint is where the Joplin Web Clipper service listens unless configured otherwise.
const DefaultEndpoint = "http://127.0.0.1:41184"

var (
	// ErrTransport is returned (wrapped) when the note store could not be reached or answered with
	// something the client can't handle.
	ErrTransport = errors.New("note store request failed")

	// ErrStatusCode is returned in case the response from the API contains a status code that the
	// client can't handle. Errors wrapping it also satisfy errors.Is(err, ErrTransport).
	ErrStatusCode = errors.New("unhandled status code")

	// ErrNoToken is returned by NewClient when the token is empty.
	ErrNoToken = errors.New("token is not configured")
)

type clientOption func(*Client) error

// WithEndpoint is a client option to set the base URL of the Web Clipper service, e.g.,
// http://127.0.0.1:41184.
func WithEndpoint(endpoint string) clientOption {
	return func(c *Client) error {
		if endpoint == "" {
			return nil
		}
		if _, err := url.Parse(endpoint); err != nil {
			return fmt.Errorf("endpoint %q: %w", endpoint, err)
		}
		c.endpoint = strings.TrimRight(endpoint, "/")
		return nil
	}
}

// WithWireLog is a client option to be passed to NewClient in order to log all requests and responses to the
// specified log file. Useful for debugging the client itself, shouldn't be needed in normal operation.
func WithWireLog(pathname string) clientOption {
	return func(c *Client) error {
		if pathname == "" {
			return nil
		}
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			c.wlog = f
		}
		return err
	}
}

// WithHTTPClient replaces http.DefaultClient, mostly for tests.
func WithHTTPClient(hc *http.Client) clientOption {
	return func(c *Client) error {
		c.http = hc
		return nil
	}
}

// Client talks to the Joplin Web Clipper service.
type Client struct {
	endpoint string

	// The secret token to authenticate and authorize API calls.
	token string

	// If non-nil, log all requests and responses to this file, one per line, in JSON format.
	wlog io.Writer

	http *http.Client
}

// NewClient creates a new client authenticated and authorized by the given token.
func NewClient(token string, opts ...clientOption) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	c := &Client{
		endpoint: DefaultEndpoint,
		token:    token,
		wlog:     ioutil.Discard,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Endpoint returns the base URL the client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// url builds the full URL for the API path, adding the token to the given query.
func (c *Client) url(path string, query url.Values) string {
	if query == nil {
		query = make(url.Values)
	}
	query.Set("token", c.token)
	return c.endpoint + path + "?" + query.Encode()
}

// do performs one request and returns the response body of a successful call. Any failure is
// reported as ErrTransport, with the endpoint in the message.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, ErrTransport)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: is the web clipper running at %s? %v: %w", op, c.endpoint, err, ErrTransport)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"op":    op,
				"cause": err,
			}).Warning("Could not close response body")
		}
	}()
	b, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%s, read body: %v: %w", op, err, ErrTransport)
	}
	_, _ = fmt.Fprintf(c.wlog, `{"type": "response", "op": %q, "method": %q, "path": %q, "code": %d, "response": %q}`+"\n",
		op, method, path, r.StatusCode, b)
	if r.StatusCode < 200 || r.StatusCode > 299 {
		log.WithFields(log.Fields{
			"op":   op,
			"code": r.StatusCode,
			"text": string(b),
		}).Debug("Unhandled response")
		return nil, fmt.Errorf("%s at %s: %d: %w: %w", op, c.endpoint, r.StatusCode, ErrTransport, ErrStatusCode)
	}
	return b, nil
}
