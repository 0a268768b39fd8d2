package ports

import "github.com/aretw0/hyperdoc/pkg/domain"

// Codec translates between a wire format and the document model.
type Codec interface {
	// MediaTypes lists the media types this codec handles, most specific
	// first. The first entry is used when advertising the codec.
	MediaTypes() []string

	// Decode parses a payload into a coerced value. baseURL is the address
	// the payload was retrieved from; codecs resolve relative link targets
	// against it.
	Decode(data []byte, baseURL string) (domain.Value, error)

	// Encode renders a value into the wire format.
	Encode(v domain.Value) ([]byte, error)
}
