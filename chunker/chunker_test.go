package chunker_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cdpsupport/cdpchat"
	"github.com/cdpsupport/cdpchat/chunker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(content string) *cdpchat.Document {
	return &cdpchat.Document{
		ID:        "doc-1",
		Platform:  cdpchat.PlatformSegment,
		SourceURL: "https://segment.com/docs/sources/",
		Content:   content,
	}
}

func TestChunker_Chunk(t *testing.T) {
	t.Parallel()

	t.Run("short document yields a single chunk", func(t *testing.T) {
		t.Parallel()

		c := chunker.New()
		chunks := c.Chunk(testDocument("To add a source, open Connections. Click Add Source."))

		require.Len(t, chunks, 1)
		assert.Equal(t, "To add a source, open Connections. Click Add Source.", chunks[0].Content)
		assert.Equal(t, "doc-1", chunks[0].DocumentID)
		assert.Equal(t, cdpchat.PlatformSegment, chunks[0].Platform)
		assert.Equal(t, "https://segment.com/docs/sources/", chunks[0].SourceURL)
		assert.Equal(t, 0, chunks[0].Position)
	})

	t.Run("long document splits at sentence boundaries", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(chunker.WithMaxLen(50), chunker.WithOverlap(0))
		content := "First sentence here. Second sentence here. Third sentence here. Fourth sentence here."
		chunks := c.Chunk(testDocument(content))

		require.Greater(t, len(chunks), 1)
		for i, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk.Content), 50)
			assert.Equal(t, i, chunk.Position)
		}
	})

	t.Run("adjacent chunks share overlapping sentences", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(chunker.WithMaxLen(60), chunker.WithOverlap(25))
		content := "Alpha sentence one. Beta sentence two. Gamma sentence three. Delta sentence four."
		chunks := c.Chunk(testDocument(content))

		require.Greater(t, len(chunks), 1)
		first := strings.Split(chunks[0].Content, ". ")
		last := first[len(first)-1]
		assert.Contains(t, chunks[1].Content, strings.TrimSuffix(last, "."))
	})

	t.Run("oversize sentence is hard-split", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(chunker.WithMaxLen(20), chunker.WithOverlap(0))
		chunks := c.Chunk(testDocument(strings.Repeat("x", 55)))

		require.Len(t, chunks, 3)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk.Content), 20)
		}
	})

	t.Run("hard split lands on rune boundaries", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(chunker.WithMaxLen(21), chunker.WithOverlap(0))
		chunks := c.Chunk(testDocument(strings.Repeat("é", 30)))

		require.Len(t, chunks, 3)
		var rebuilt strings.Builder
		for _, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk.Content))
			rebuilt.WriteString(chunk.Content)
		}
		assert.Equal(t, strings.Repeat("é", 30), rebuilt.String())
	})

	t.Run("empty content yields no chunks", func(t *testing.T) {
		t.Parallel()

		c := chunker.New()
		assert.Nil(t, c.Chunk(testDocument("")))
		assert.Nil(t, c.Chunk(testDocument("   \n\t")))
	})

	t.Run("chunking is deterministic", func(t *testing.T) {
		t.Parallel()

		c := chunker.New(chunker.WithMaxLen(80), chunker.WithOverlap(20))
		doc := testDocument("One sentence here. Two sentence here. Three sentence here. Four sentence here. Five sentence here.")

		first := c.Chunk(doc)
		second := c.Chunk(doc)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Content, second[i].Content)
			assert.Equal(t, first[i].Position, second[i].Position)
		}
	})
}

func TestNew_ClampsOverlap(t *testing.T) {
	t.Parallel()

	// Overlap equal to maxLen would never make progress; New clamps it.
	c := chunker.New(chunker.WithMaxLen(40), chunker.WithOverlap(40))
	content := "A first sentence goes here. A second sentence goes here. A third sentence goes here."
	chunks := c.Chunk(testDocument(content))

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Content), 40)
	}
}
