package sqlite

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cdpsupport/cdpchat"
)

// Compile-time interface verification.
var _ cdpchat.ChunkService = (*ChunkService)(nil)

// ChunkService implements cdpchat.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks creates multiple chunks in a batch. IDs are assigned here;
// chunkers produce chunks without IDs.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*cdpchat.Chunk) error {
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
	}

	for _, chunk := range chunks {
		chunk.ID = uuid.New().String()
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, document_id, platform, source_url, content, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.DocumentID, string(chunk.Platform), chunk.SourceURL, chunk.Content, chunk.Position)
		if err != nil {
			return err
		}
	}
	return nil
}

// FindChunks retrieves chunks matching the filter, ordered by platform,
// document, and position for deterministic index builds.
func (s *ChunkService) FindChunks(ctx context.Context, filter cdpchat.ChunkFilter) ([]*cdpchat.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, platform, source_url, content, position FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Platform != nil {
		query.WriteString(" AND platform = ?")
		args = append(args, string(*filter.Platform))
	}

	query.WriteString(" ORDER BY platform ASC, document_id ASC, position ASC")

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

	var chunks []*cdpchat.Chunk
	for rows.Next() {
		var chunk cdpchat.Chunk
		var platform string

		if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &platform,
			&chunk.SourceURL, &chunk.Content, &chunk.Position); err != nil {
			return nil, err
		}

		chunk.Platform = cdpchat.Platform(platform)
		chunks = append(chunks, &chunk)
	}

	return chunks, rows.Err()
}

// DeleteChunksByDocument removes all chunks for a document.
func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", documentID)
	return err
}

// DeleteChunksByPlatform removes all chunks for a platform. Run before
// re-chunking so no chunk outlives a rebuild.
func (s *ChunkService) DeleteChunksByPlatform(ctx context.Context, platform cdpchat.Platform) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE platform = ?", string(platform))
	return err
}
