package codec

import (
	"io"

	"portfolio/internal/domain"
)

// Exporter writes a full site content bundle in one format. Used by the
// admin export endpoints for backups and content migration.
type Exporter interface {
	Export(bundle *domain.SiteBundle, w io.Writer) error
	Format() string
	ContentType() string
}
