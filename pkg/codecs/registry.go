package codecs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elnormous/contenttype"

	"github.com/aretw0/hyperdoc/pkg/ports"
)

// ErrUnsupportedContentType is returned when no registered codec handles a
// response's media type.
var ErrUnsupportedContentType = errors.New("unsupported content type")

// Registry holds an ordered list of codecs and negotiates which one handles
// a given media type. The first codec is the preferred one and serves as the
// fallback when a response carries no Content-Type at all.
type Registry struct {
	codecs []ports.Codec
}

// NewRegistry builds a registry over the given codecs, in preference order.
func NewRegistry(list ...ports.Codec) *Registry {
	return &Registry{codecs: list}
}

// Codecs returns the registered codecs in preference order.
func (r *Registry) Codecs() []ports.Codec {
	out := make([]ports.Codec, len(r.codecs))
	copy(out, r.codecs)
	return out
}

// Negotiate returns the codec handling the given Content-Type header value.
// Parameters (charset etc.) are ignored for matching.
func (r *Registry) Negotiate(contentType string) (ports.Codec, error) {
	if len(r.codecs) == 0 {
		return nil, fmt.Errorf("%w: no codecs registered", ErrUnsupportedContentType)
	}
	if strings.TrimSpace(contentType) == "" {
		return r.codecs[0], nil
	}

	requested := contenttype.NewMediaType(contentType)
	for _, codec := range r.codecs {
		for _, mediaType := range codec.MediaTypes() {
			supported := contenttype.NewMediaType(mediaType)
			if supported.Type == requested.Type && supported.Subtype == requested.Subtype {
				return codec, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
}

// Accept renders the Accept header advertising every registered media type,
// in preference order.
func (r *Registry) Accept() string {
	var types []string
	for _, codec := range r.codecs {
		types = append(types, codec.MediaTypes()...)
	}
	return strings.Join(types, ", ")
}
