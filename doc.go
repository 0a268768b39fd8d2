/*
Package hyperdoc is a toolkit for consuming hypermedia APIs through an
immutable document model.

A Document is a fetched representation of a service: nested data values
interleaved with Actions (links) describing the transitions the service
offers. The Client resolves an Action by key path and dispatches it through
a Transport, yielding the next Document. Interaction with an API becomes a
sequence of value transformations rather than hand-built requests.

# Concept

The core model lives in pkg/domain: Document, Object, Array, Action, Error
and the primitive values. Containers are immutable; every operation returns
a new value. Equality is structural, and every value has a canonical
representation that parses back to an equal value.

Transports and codecs are ports (pkg/ports) with adapters under
pkg/adapters: an HTTP transport, document stores (memory, Redis), and an
MCP server. This hexagonal layout keeps the model free of I/O so hosts can
embed it in CLIs, services, or agent infrastructure.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/hyperdoc"
	)

	func main() {
		ctx := context.Background()
		client := hyperdoc.New()

		// Fetch the API root.
		doc, err := client.Get(ctx, "https://api.example.org/")
		if err != nil {
			log.Fatal(err)
		}

		// Follow the "search" link with parameters.
		result, err := client.Action(ctx, doc, []any{"search"}, hyperdoc.Params{
			"q": "hypermedia",
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(result)
	}
*/
package hyperdoc
