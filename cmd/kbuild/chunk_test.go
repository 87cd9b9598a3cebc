package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/cdpsupport/cdpchat"
	main "github.com/cdpsupport/cdpchat/cmd/kbuild"
	"github.com/cdpsupport/cdpchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: cdpchat.DefaultConfig(),
	}
}

func TestChunkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("re-chunks documents for one platform", func(t *testing.T) {
		t.Parallel()

		var deleted []cdpchat.Platform
		var created []*cdpchat.Chunk

		deps := testDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter cdpchat.DocumentFilter) ([]*cdpchat.Document, error) {
				assert.Equal(t, cdpchat.PlatformSegment, *filter.Platform)
				return []*cdpchat.Document{
					{ID: "d1", Platform: cdpchat.PlatformSegment, SourceURL: "https://segment.com/docs/a", Content: "Some content."},
					{ID: "d2", Platform: cdpchat.PlatformSegment, SourceURL: "https://segment.com/docs/b", Content: ""},
				}, nil
			},
		}
		deps.Chunks = &mock.ChunkService{
			DeleteChunksByPlatformFn: func(_ context.Context, platform cdpchat.Platform) error {
				deleted = append(deleted, platform)
				return nil
			},
			CreateChunksFn: func(_ context.Context, chunks []*cdpchat.Chunk) error {
				created = append(created, chunks...)
				return nil
			},
		}
		deps.Chunker = &mock.Chunker{
			ChunkFn: func(doc *cdpchat.Document) []*cdpchat.Chunk {
				if doc.Content == "" {
					return nil
				}
				return []*cdpchat.Chunk{
					{DocumentID: doc.ID, Platform: doc.Platform, SourceURL: doc.SourceURL, Content: doc.Content},
				}
			},
		}

		cmd := &main.ChunkCmd{Platform: "segment"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []cdpchat.Platform{cdpchat.PlatformSegment}, deleted)
		// The empty document produces no chunks and is skipped.
		require.Len(t, created, 1)
		assert.Equal(t, "d1", created[0].DocumentID)

		assert.Contains(t, deps.Stdout.(*bytes.Buffer).String(), "Segment: 1 chunks")
	})

	t.Run("covers every platform without a flag", func(t *testing.T) {
		t.Parallel()

		var deleted []cdpchat.Platform

		deps := testDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ cdpchat.DocumentFilter) ([]*cdpchat.Document, error) {
				return nil, nil
			},
		}
		deps.Chunks = &mock.ChunkService{
			DeleteChunksByPlatformFn: func(_ context.Context, platform cdpchat.Platform) error {
				deleted = append(deleted, platform)
				return nil
			},
		}
		deps.Chunker = &mock.Chunker{
			ChunkFn: func(_ *cdpchat.Document) []*cdpchat.Chunk { return nil },
		}

		cmd := &main.ChunkCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, cdpchat.Platforms(), deleted)
	})

	t.Run("rejects an unknown platform flag", func(t *testing.T) {
		t.Parallel()

		deps := testDeps()

		cmd := &main.ChunkCmd{Platform: "salesforce"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, cdpchat.EINVALID, cdpchat.ErrorCode(err))
		assert.Contains(t, deps.Stderr.(*bytes.Buffer).String(), "error:")
	})
}
