/*
Package domain contains the core document model for hypermedia APIs.

It defines the immutable container family returned by hypermedia-driven services:
Documents (root containers with an origin and title), Objects (nested containers),
Actions (invokable links with parameter descriptors), and Errors (reported failures).
This package is kept pure and free of external dependencies like I/O or transports,
following Hexagonal Architecture principles.

# Key Entities

  - Document: the root of a hypermedia response, carrying identity (origin, title).
  - Object: a nested container, structurally a Document minus identity.
  - Action: an invokable leaf describing a target URL, method, and Fields.
  - Field: one parameter descriptor of an Action.
  - Error: a container representing a failure reported by the service.

Every container is built once by its constructor, which recursively coerces raw
nested input (maps, slices, primitives, pre-built values) into the closed Value
variant, and is never mutated afterwards. Concurrent readers need no locking.

Containers render two textual forms: Repr, a canonical representation that parses
back (see Parse) into an equal value, and String, an indented human-readable form.

LookupAction walks a container tree along a key path and returns the Action it
designates; invoking that Action over the network belongs to the transport
adapters, never to this package.
*/
package domain
