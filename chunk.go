package cdpchat

import "context"

// Chunk represents a bounded span of text extracted from one document.
// It is the unit of retrieval: the index scores chunks, not documents.
// Chunks are created by a Chunker during an offline corpus build and are
// read-only afterward; a full rebuild regenerates every chunk.
type Chunk struct {
	ID         string   `json:"id"`
	DocumentID string   `json:"documentId"`
	Platform   Platform `json:"platform"` // Denormalized for efficient filtering
	SourceURL  string   `json:"sourceUrl"`
	Content    string   `json:"content"`
	Position   int      `json:"position"` // Ordinal within the document
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if !c.Platform.Valid() {
		return Errorf(EINVALID, "chunk platform required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// Chunker splits a document into an ordered sequence of chunks.
// Implementations must be deterministic: the same document and
// configuration always produce an identical chunk sequence.
type Chunker interface {
	// Chunk splits the document's content. Returns no chunks for a
	// document with empty content; the caller decides whether to log.
	Chunk(doc *Document) []*Chunk
}

// ChunkService represents a service for managing stored chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunks retrieves chunks matching the filter, ordered by
	// platform, document, and position.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// DeleteChunksByDocument removes all chunks for a document.
	DeleteChunksByDocument(ctx context.Context, documentID string) error

	// DeleteChunksByPlatform removes all chunks for a platform.
	// Used before re-chunking so no chunk outlives a rebuild.
	DeleteChunksByPlatform(ctx context.Context, platform Platform) error
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID         *string   `json:"id"`
	DocumentID *string   `json:"documentId"`
	Platform   *Platform `json:"platform"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
