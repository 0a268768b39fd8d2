/*
Package ports defines the interfaces between the hyperdoc core and its
external collaborators, following Hexagonal Architecture principles.

The core resolves an Action inside a document tree and hands it to a
Transport; how the request is actually performed (HTTP, an in-memory fake, a
recording proxy) is entirely the adapter's concern. Codecs translate between
wire payloads and the document model, and DocumentStore persists fetched
documents for hosts that keep history or bookmarks.
*/
package ports
