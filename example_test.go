package hyperdoc_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/hyperdoc"
	"github.com/aretw0/hyperdoc/pkg/domain"
)

// memoryTransport resolves mem:// URLs against canned documents, so the
// example runs without any network.
type memoryTransport struct {
	documents map[string]*domain.Document
}

func (m *memoryTransport) Schemes() []string {
	return []string{"mem"}
}

func (m *memoryTransport) Transition(_ context.Context, action *domain.Action, _ map[string]any) (domain.Value, error) {
	doc, ok := m.documents[action.Target()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, action.Target())
	}
	return doc, nil
}

// ExampleNew demonstrates using the client purely as a Go library, injecting
// a custom transport instead of talking HTTP.
func ExampleNew() {
	// 1. Build the documents the service would serve.
	note, err := domain.NewDocument("mem://notes/1", "Note", map[string]any{
		"description": "walk the dog",
		"complete":    false,
	})
	if err != nil {
		log.Fatal(err)
	}

	open, err := domain.NewAction("mem://notes/1", "get", nil)
	if err != nil {
		log.Fatal(err)
	}
	rootDoc, err := domain.NewDocument("mem://notes/", "Notes", map[string]any{
		"count": 1,
		"first": open,
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize the client with the custom transport.
	// No codecs are involved because the transport returns documents directly.
	client := hyperdoc.New(hyperdoc.WithTransports(&memoryTransport{
		documents: map[string]*domain.Document{
			"mem://notes/":  rootDoc,
			"mem://notes/1": note,
		},
	}))

	// 3. Fetch the entry point.
	ctx := context.Background()
	doc, err := client.Get(ctx, "mem://notes/")
	if err != nil {
		log.Fatal(err)
	}
	root := doc.(*domain.Document)
	fmt.Println(root)

	// 4. Follow the "first" link.
	value, err := client.Action(ctx, root, "first", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(value)
	// Output:
	// <Notes "mem://notes/">
	//     count: 1
	//     first()
	// <Note "mem://notes/1">
	//     complete: false
	//     description: "walk the dog"
}
