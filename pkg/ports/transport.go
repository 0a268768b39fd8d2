package ports

import (
	"context"

	"github.com/aretw0/hyperdoc/pkg/domain"
)

// Transport performs a resolved Action against the service it targets.
// The core never blocks on I/O itself; cancellation and timeouts belong to
// the transport and travel through ctx.
type Transport interface {
	// Schemes lists the URL schemes this transport accepts (e.g. "http").
	Schemes() []string

	// Transition invokes the action with the caller-supplied parameter
	// values and returns the decoded result: usually a *domain.Document,
	// but plain data for non-document responses, or nil for empty ones.
	// A service-reported failure surfaces as *domain.ErrorMessage.
	Transition(ctx context.Context, action *domain.Action, params map[string]any) (domain.Value, error)
}
