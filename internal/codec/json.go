package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"portfolio/internal/domain"
)

// JSONCodec exports site bundles as indented JSON
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ContentType returns the MIME type for HTTP responses
func (c *JSONCodec) ContentType() string {
	return "application/json"
}

// Export writes the bundle as JSON
func (c *JSONCodec) Export(bundle *domain.SiteBundle, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(bundle); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
