// Package http implements the HTTP transport adapter: it turns a resolved
// Action plus caller-supplied parameters into a request, performs it, and
// decodes the response through the codec registry.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/hyperdoc/pkg/codecs"
	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

// ErrParameter is returned when the supplied parameters do not satisfy the
// action's field descriptors.
var ErrParameter = errors.New("invalid parameters")

// ErrUnsupportedEncoding is returned for request encodings the transport
// cannot produce.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Transport performs Actions over HTTP and HTTPS.
type Transport struct {
	client   *http.Client
	registry *codecs.Registry
	headers  map[string]string
	logger   *slog.Logger
}

var _ ports.Transport = (*Transport)(nil)

// Option configures the transport.
type Option func(*Transport)

// WithClient injects a custom http.Client (timeouts, proxies, test doubles).
func WithClient(client *http.Client) Option {
	return func(t *Transport) {
		t.client = client
	}
}

// WithRegistry sets the codec registry used for Accept headers and response
// decoding.
func WithRegistry(registry *codecs.Registry) Option {
	return func(t *Transport) {
		t.registry = registry
	}
}

// WithHeaders sets headers added to every request (e.g. Authorization).
func WithHeaders(headers map[string]string) Option {
	return func(t *Transport) {
		t.headers = headers
	}
}

// WithLogger sets a structured logger for request/response logging.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// New creates an HTTP transport. By default it uses http.DefaultClient and
// a registry of the Core JSON and plain JSON codecs.
func New(opts ...Option) *Transport {
	t := &Transport{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.registry == nil {
		t.registry = codecs.NewRegistry(corejson.New(), codecs.NewJSON())
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

// Schemes implements ports.Transport.
func (t *Transport) Schemes() []string {
	return []string{"http", "https"}
}

// Transition implements ports.Transport.
func (t *Transport) Transition(ctx context.Context, action *domain.Action, params map[string]any) (domain.Value, error) {
	placed, err := placeParams(action, params)
	if err != nil {
		return nil, err
	}

	target, err := expandTarget(action.Target(), placed.path)
	if err != nil {
		return nil, err
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("http transport: invalid target %q: %w", target, err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("http transport: target %q is not absolute", target)
	}

	method := strings.ToUpper(action.Method())
	if method == "" {
		method = http.MethodGet
	}

	if len(placed.query) > 0 {
		values := parsed.Query()
		for name, value := range placed.query {
			values.Set(name, fmt.Sprint(value))
		}
		parsed.RawQuery = values.Encode()
	}

	body, contentType, err := encodeBody(action.Encoding(), placed)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, parsed.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("http transport: %w", err)
	}
	req.Header.Set("Accept", t.registry.Accept())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, value := range t.headers {
		req.Header.Set(name, value)
	}

	t.logger.Debug("performing transition", "method", method, "url", parsed.String())

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http transport: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("http transport: reading response: %w", err)
	}

	t.logger.Debug("transition complete", "status", resp.StatusCode, "bytes", len(data))

	if len(data) == 0 {
		return nil, nil
	}

	codec, err := t.registry.Negotiate(resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	// Redirects may have moved us; decode against the final URL.
	finalURL := parsed.String()
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	decoded, err := codec.Decode(data, finalURL)
	if err != nil {
		return nil, err
	}

	if errDoc, ok := decoded.(*domain.Error); ok {
		return nil, &domain.ErrorMessage{Doc: errDoc}
	}
	return decoded, nil
}
