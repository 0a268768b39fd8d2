package hyperdoc

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	httpadapter "github.com/aretw0/hyperdoc/pkg/adapters/http"
	"github.com/aretw0/hyperdoc/pkg/codecs"
	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

// Params carries the caller-supplied parameters for an action.
type Params map[string]any

// TransitionEvent describes a dispatched action for observability hooks.
type TransitionEvent struct {
	Target  string
	Method  string
	Elapsed time.Duration
	Err     error
}

// Hooks defines callbacks for client observability.
type Hooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnResult     func(context.Context, *TransitionEvent)
}

// Client is the high-level entry point for the hyperdoc library. It resolves
// actions inside documents and dispatches them through the transport that
// claims the action's URL scheme.
type Client struct {
	transports []ports.Transport
	codecList  []ports.Codec
	headers    map[string]string
	hooks      Hooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithTransports replaces the default transport set.
func WithTransports(transports ...ports.Transport) Option {
	return func(c *Client) {
		c.transports = transports
	}
}

// WithCodecs sets the codecs the default HTTP transport negotiates with, in
// preference order. Ignored when WithTransports is used.
func WithCodecs(list ...ports.Codec) Option {
	return func(c *Client) {
		c.codecList = list
	}
}

// WithHeaders sets headers the default HTTP transport adds to every request.
// Ignored when WithTransports is used.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New initializes a Client. By default it speaks HTTP and HTTPS with the
// Core JSON and plain JSON codecs.
func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.transports == nil {
		if c.codecList == nil {
			c.codecList = []ports.Codec{corejson.New(), codecs.NewJSON()}
		}
		c.transports = []ports.Transport{
			httpadapter.New(
				httpadapter.WithRegistry(codecs.NewRegistry(c.codecList...)),
				httpadapter.WithHeaders(c.headers),
				httpadapter.WithLogger(c.logger),
			),
		}
	}
	return c
}

// Get fetches the document at the given URL by dispatching an implicit
// "get" action.
func (c *Client) Get(ctx context.Context, target string) (domain.Value, error) {
	action, err := domain.NewAction(target, domain.DefaultMethod, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, action, nil)
}

// Action resolves the action at the given key path inside doc and dispatches
// it with the given parameters. Overrides derive a modified action; the
// document and the original action are never mutated.
func (c *Client) Action(ctx context.Context, doc *domain.Document, keys any, params Params, overrides ...ActionOverride) (domain.Value, error) {
	action, err := domain.LookupAction(doc, keys)
	if err != nil {
		return nil, err
	}
	for _, override := range overrides {
		action = override(action)
	}
	return c.Do(ctx, action, params)
}

// Do dispatches an already-resolved action through the transport matching
// its URL scheme.
func (c *Client) Do(ctx context.Context, action *domain.Action, params Params) (domain.Value, error) {
	transport, err := c.transportFor(action.Target())
	if err != nil {
		return nil, err
	}

	event := &TransitionEvent{Target: action.Target(), Method: action.Method()}
	if c.hooks.OnTransition != nil {
		c.hooks.OnTransition(ctx, event)
	}

	start := time.Now()
	result, err := transport.Transition(ctx, action, params)
	event.Elapsed = time.Since(start)
	event.Err = err

	if c.hooks.OnResult != nil {
		c.hooks.OnResult(ctx, event)
	}
	if err != nil {
		c.logger.Debug("transition failed", "target", event.Target, "method", event.Method, "err", err)
		return nil, err
	}
	c.logger.Debug("transition complete", "target", event.Target, "method", event.Method, "elapsed", event.Elapsed)
	return result, nil
}

func (c *Client) transportFor(target string) (ports.Transport, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid action URL %q: %w", target, err)
	}
	scheme := parsed.Scheme
	for _, transport := range c.transports {
		for _, supported := range transport.Schemes() {
			if supported == scheme {
				return transport, nil
			}
		}
	}
	return nil, fmt.Errorf("no transport available for scheme %q in %q", scheme, target)
}

// ActionOverride derives a modified action at dispatch time.
type ActionOverride func(*domain.Action) *domain.Action

// OverrideMethod dispatches the action with a different method.
func OverrideMethod(method string) ActionOverride {
	return func(a *domain.Action) *domain.Action {
		return a.WithMethod(method)
	}
}

// OverrideEncoding dispatches the action with a different request encoding.
func OverrideEncoding(encoding string) ActionOverride {
	return func(a *domain.Action) *domain.Action {
		return a.WithOptions(domain.WithEncoding(encoding))
	}
}
