package codec

import (
	"fmt"
	"io"

	"portfolio/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec exports site bundles as YAML
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// ContentType returns the MIME type for HTTP responses
func (c *YAMLCodec) ContentType() string {
	return "application/yaml"
}

// Export writes the bundle as YAML
func (c *YAMLCodec) Export(bundle *domain.SiteBundle, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(bundle); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
