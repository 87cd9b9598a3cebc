package mock

import (
	"context"

	"github.com/cdpsupport/cdpchat"
)

var _ cdpchat.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of cdpchat.ChunkService.
type ChunkService struct {
	CreateChunksFn           func(ctx context.Context, chunks []*cdpchat.Chunk) error
	FindChunksFn             func(ctx context.Context, filter cdpchat.ChunkFilter) ([]*cdpchat.Chunk, error)
	DeleteChunksByDocumentFn func(ctx context.Context, documentID string) error
	DeleteChunksByPlatformFn func(ctx context.Context, platform cdpchat.Platform) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*cdpchat.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter cdpchat.ChunkFilter) ([]*cdpchat.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	return s.DeleteChunksByDocumentFn(ctx, documentID)
}

func (s *ChunkService) DeleteChunksByPlatform(ctx context.Context, platform cdpchat.Platform) error {
	return s.DeleteChunksByPlatformFn(ctx, platform)
}

var _ cdpchat.Chunker = (*Chunker)(nil)

// Chunker is a mock implementation of cdpchat.Chunker.
type Chunker struct {
	ChunkFn func(doc *cdpchat.Document) []*cdpchat.Chunk
}

func (c *Chunker) Chunk(doc *cdpchat.Document) []*cdpchat.Chunk {
	return c.ChunkFn(doc)
}
