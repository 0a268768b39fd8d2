// Package middleware wraps a DocumentStore with cross-cutting behavior:
// encryption at rest and PII masking. Middlewares compose, so a store can be
// masked and then encrypted.
package middleware

import "github.com/aretw0/hyperdoc/pkg/ports"

// Middleware allows wrapping a DocumentStore to add behavior.
type Middleware func(ports.DocumentStore) ports.DocumentStore

// Chain applies middlewares left to right: the first one sees Save calls
// first and Load results last.
func Chain(store ports.DocumentStore, middlewares ...Middleware) ports.DocumentStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
