package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/cdpsupport/cdpchat"
)

// Compile-time interface verification.
var _ cdpchat.DocumentService = (*DocumentService)(nil)

// DocumentService implements cdpchat.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document. Documents are immutable once
// created; re-scraping a URL requires deleting the document first.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *cdpchat.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, platform, source_url, title, content, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, string(doc.Platform), doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		doc.Position, doc.FetchedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return cdpchat.Errorf(cdpchat.ECONFLICT, "document already exists for %s: %s", doc.Platform.DisplayName(), doc.SourceURL)
	}
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*cdpchat.Document, error) {
	var doc cdpchat.Document
	var platform, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, platform, source_url, title, content, content_hash, position, fetched_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &platform, &doc.SourceURL, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Position, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, cdpchat.Errorf(cdpchat.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Platform = cdpchat.Platform(platform)
	doc.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, ordered by
// platform and position.
func (s *DocumentService) FindDocuments(ctx context.Context, filter cdpchat.DocumentFilter) ([]*cdpchat.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, platform, source_url, title, content, content_hash, position, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Platform != nil {
		query.WriteString(" AND platform = ?")
		args = append(args, string(*filter.Platform))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY platform ASC, position ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*cdpchat.Document
	for rows.Next() {
		var doc cdpchat.Document
		var platform, fetchedAt string

		if err := rows.Scan(&doc.ID, &platform, &doc.SourceURL, &doc.Title,
			&doc.Content, &doc.ContentHash, &doc.Position, &fetchedAt); err != nil {
			return nil, err
		}

		doc.Platform = cdpchat.Platform(platform)
		doc.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document. Associated chunks are
// removed by the foreign key cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cdpchat.Errorf(cdpchat.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByPlatform removes all documents for a platform.
func (s *DocumentService) DeleteDocumentsByPlatform(ctx context.Context, platform cdpchat.Platform) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE platform = ?", string(platform))
	return err
}
