package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cdpsupport/cdpchat"
	main "github.com/cdpsupport/cdpchat/cmd/kbuild"
	"github.com/cdpsupport/cdpchat/crawl"
	"github.com/cdpsupport/cdpchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls and chunks a single platform", func(t *testing.T) {
		t.Parallel()

		var savedDocs []*cdpchat.Document
		var createdChunks []*cdpchat.Chunk

		deps := testDeps()
		deps.Documents = &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, doc *cdpchat.Document) error {
				doc.ID = "doc-1"
				savedDocs = append(savedDocs, doc)
				return nil
			},
			FindDocumentsFn: func(_ context.Context, filter cdpchat.DocumentFilter) ([]*cdpchat.Document, error) {
				return savedDocs, nil
			},
		}
		deps.Chunks = &mock.ChunkService{
			DeleteChunksByPlatformFn: func(_ context.Context, _ cdpchat.Platform) error { return nil },
			CreateChunksFn: func(_ context.Context, chunks []*cdpchat.Chunk) error {
				createdChunks = append(createdChunks, chunks...)
				return nil
			},
		}
		deps.Chunker = &mock.Chunker{
			ChunkFn: func(doc *cdpchat.Document) []*cdpchat.Chunk {
				return []*cdpchat.Chunk{
					{DocumentID: doc.ID, Platform: doc.Platform, SourceURL: doc.SourceURL, Content: doc.Content},
				}
			},
		}
		deps.Crawler = &crawl.Crawler{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string, _ *cdpchat.URLFilter) ([]string, error) {
					assert.Equal(t, deps.Config.Sources[cdpchat.PlatformLytics], baseURL)
					return []string{"https://docs.lytics.com/audiences"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<p>Audiences group profiles.</p>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*cdpchat.ExtractResult, error) {
					return &cdpchat.ExtractResult{Title: "Audiences", ContentHTML: html}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "Audiences group profiles.", nil },
			},
			Documents: deps.Documents,
			Logger:    deps.Logger,
		}

		cmd := &main.BuildCmd{Platform: "lytics"}
		require.NoError(t, cmd.Run(deps))

		require.Len(t, savedDocs, 1)
		assert.Equal(t, cdpchat.PlatformLytics, savedDocs[0].Platform)
		assert.Equal(t, "Audiences group profiles.", savedDocs[0].Content)

		require.Len(t, createdChunks, 1)
		assert.Equal(t, "doc-1", createdChunks[0].DocumentID)

		out := deps.Stdout.(*bytes.Buffer).String()
		assert.Contains(t, out, "Lytics: crawling")
		assert.Contains(t, out, "1 pages saved, 0 failed, 1 chunks")
	})

	t.Run("skips a platform without a configured source", func(t *testing.T) {
		t.Parallel()

		deps := testDeps()
		delete(deps.Config.Sources, cdpchat.PlatformZeotap)

		cmd := &main.BuildCmd{Platform: "zeotap"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, deps.Stdout.(*bytes.Buffer).String(), "no source configured")
	})
}
