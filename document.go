package cdpchat

import (
	"context"
	"time"
)

// Document represents a scraped documentation page for one platform.
// Documents are immutable once scraped and are identified by source URL
// within their platform.
type Document struct {
	ID          string    `json:"id"`
	Platform    Platform  `json:"platform"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if !d.Platform.Valid() {
		return Errorf(EINVALID, "document platform required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// DocumentService represents a service for managing the document corpus.
type DocumentService interface {
	// CreateDocument creates a new document.
	// Returns ECONFLICT if a document with the same source URL already
	// exists for the platform.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and all associated chunks.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByPlatform removes all documents for a platform.
	DeleteDocumentsByPlatform(ctx context.Context, platform Platform) error
}

// DocumentFilter represents a filter for FindDocuments.
// Results are ordered by position within each document's platform.
type DocumentFilter struct {
	ID        *string   `json:"id"`
	Platform  *Platform `json:"platform"`
	SourceURL *string   `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
