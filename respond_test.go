package cdpchat_test

import (
	"strings"
	"testing"

	"github.com/cdpsupport/cdpchat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAnswer_OutOfDomain(t *testing.T) {
	t.Parallel()

	result := &cdpchat.QueryResult{
		Kind:  cdpchat.OutOfDomain,
		Query: &cdpchat.Query{RawText: "Which movie is releasing this week?"},
	}

	got := cdpchat.FormatAnswer(result)
	assert.Equal(t, cdpchat.OutOfDomainMessage, got)
	assert.Contains(t, got, "Segment")
	assert.Contains(t, got, "mParticle")
	assert.Contains(t, got, "Lytics")
	assert.Contains(t, got, "Zeotap")
}

func TestFormatAnswer_Matched(t *testing.T) {
	t.Parallel()

	t.Run("numbered steps are kept as written", func(t *testing.T) {
		t.Parallel()

		result := &cdpchat.QueryResult{
			Kind:  cdpchat.Matched,
			Query: &cdpchat.Query{RawText: "How do I create a source in Segment?", HowTo: true},
			Platforms: []cdpchat.PlatformResult{{
				Platform: cdpchat.PlatformSegment,
				Ranked: []cdpchat.ScoredChunk{{
					Chunk: &cdpchat.Chunk{
						Platform:  cdpchat.PlatformSegment,
						SourceURL: "https://segment.com/docs/connections/sources/",
						Content:   "To add a source: 1. Go to Connections. 2. Click Add Source. 3. Choose a source type.",
					},
					Score: 0.65,
				}},
			}},
		}

		got := cdpchat.FormatAnswer(result)
		assert.Contains(t, got, "Here's how to create a source in Segment:")
		assert.Contains(t, got, "1. Go to Connections.")
		assert.Contains(t, got, "2. Click Add Source.")
		assert.Contains(t, got, "3. Choose a source type.")
		assert.Contains(t, got, "For more details, see: https://segment.com/docs/connections/sources/")
	})

	t.Run("prose content falls back to sentences as steps", func(t *testing.T) {
		t.Parallel()

		result := &cdpchat.QueryResult{
			Kind:  cdpchat.Matched,
			Query: &cdpchat.Query{RawText: "How do I create an audience in Lytics?", HowTo: true},
			Platforms: []cdpchat.PlatformResult{{
				Platform: cdpchat.PlatformLytics,
				Ranked: []cdpchat.ScoredChunk{{
					Chunk: &cdpchat.Chunk{
						Platform:  cdpchat.PlatformLytics,
						SourceURL: "https://docs.lytics.com/audiences/",
						Content:   "Open the audience builder. Define your criteria. Save the audience.",
					},
					Score: 0.4,
				}},
			}},
		}

		got := cdpchat.FormatAnswer(result)
		assert.Contains(t, got, "Here's how to create an audience in Lytics:")
		assert.Contains(t, got, "1. Open the audience builder.")
		assert.Contains(t, got, "2. Define your criteria.")
		assert.Contains(t, got, "3. Save the audience.")
	})

	t.Run("plain questions get a neutral headline", func(t *testing.T) {
		t.Parallel()

		result := &cdpchat.QueryResult{
			Kind:  cdpchat.Matched,
			Query: &cdpchat.Query{RawText: "What does a warehouse sync do in Segment?"},
			Platforms: []cdpchat.PlatformResult{{
				Platform: cdpchat.PlatformSegment,
				Ranked: []cdpchat.ScoredChunk{{
					Chunk: &cdpchat.Chunk{
						Platform:  cdpchat.PlatformSegment,
						SourceURL: "https://segment.com/docs/connections/storage/",
						Content:   "Warehouse syncs copy event data into your warehouse on a schedule.",
					},
					Score: 0.3,
				}},
			}},
		}

		got := cdpchat.FormatAnswer(result)
		assert.Contains(t, got, "Here's what I found about what does a warehouse sync do in Segment:")
		assert.NotContains(t, got, "Here's how to")
	})
}

func TestFormatAnswer_Ambiguous(t *testing.T) {
	t.Parallel()

	result := &cdpchat.QueryResult{
		Kind:  cdpchat.Ambiguous,
		Query: &cdpchat.Query{RawText: "Compare Segment and mParticle audience creation", Compare: true},
		Platforms: []cdpchat.PlatformResult{
			{
				Platform: cdpchat.PlatformSegment,
				Ranked: []cdpchat.ScoredChunk{{
					Chunk: &cdpchat.Chunk{
						Platform:  cdpchat.PlatformSegment,
						SourceURL: "https://segment.com/docs/audiences/",
						Content:   "Audiences are built in Engage. Conditions use events and traits. Audiences sync to destinations. A fourth sentence should be dropped.",
					},
					Score: 0.5,
				}},
			},
			{Platform: cdpchat.PlatformMParticle},
		},
	}

	got := cdpchat.FormatAnswer(result)
	assert.Contains(t, got, "Here's a comparison between Segment and mParticle:")
	assert.Contains(t, got, "**Segment**:")
	assert.Contains(t, got, "- Audiences are built in Engage.")
	assert.NotContains(t, got, "fourth sentence")
	assert.Contains(t, got, "More details: https://segment.com/docs/audiences/")
	assert.Contains(t, got, "**mParticle**:")
	assert.Contains(t, got, "I couldn't find specific information for this platform.")
	assert.True(t, strings.HasSuffix(got, "may not cover every aspect."))
}

func TestFormatAnswer_MultiPlatformWithoutComparison(t *testing.T) {
	t.Parallel()

	result := &cdpchat.QueryResult{
		Kind:  cdpchat.Ambiguous,
		Query: &cdpchat.Query{RawText: "How do I send data from Segment to mParticle?", HowTo: true},
		Platforms: []cdpchat.PlatformResult{
			{
				Platform: cdpchat.PlatformSegment,
				Ranked: []cdpchat.ScoredChunk{{
					Chunk: &cdpchat.Chunk{
						Platform:  cdpchat.PlatformSegment,
						SourceURL: "https://segment.com/docs/connections/destinations/",
						Content:   "Destinations receive the events a source collects.",
					},
					Score: 0.4,
				}},
			},
			{Platform: cdpchat.PlatformMParticle},
		},
	}

	got := cdpchat.FormatAnswer(result)
	assert.Contains(t, got, "Your question mentions Segment and mParticle. Here's what I found for each:")
	assert.NotContains(t, got, "Here's a comparison between")
	assert.Contains(t, got, "**Segment**:")
}

func TestExtractSteps(t *testing.T) {
	t.Parallel()

	t.Run("prefers numbered steps", func(t *testing.T) {
		t.Parallel()

		steps := cdpchat.ExtractSteps("Intro text. 1. First step.\n2. Second step.\n")
		require.Len(t, steps, 2)
		assert.Equal(t, "1. First step.", steps[0])
		assert.Equal(t, "2. Second step.", steps[1])
	})

	t.Run("falls back to bullets", func(t *testing.T) {
		t.Parallel()

		steps := cdpchat.ExtractSteps("- first\n- second\n* third")
		assert.Equal(t, []string{"first", "second", "third"}, steps)
	})

	t.Run("falls back to at most five sentences", func(t *testing.T) {
		t.Parallel()

		steps := cdpchat.ExtractSteps("One. Two. Three. Four. Five. Six. Seven.")
		assert.Len(t, steps, 5)
		assert.Equal(t, "One.", steps[0])
	})
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	got := cdpchat.CleanText("See  [the docs](https://example.com)\n\tfor   more.")
	assert.Equal(t, "See the docs for more.", got)
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	t.Run("splits on terminal punctuation before whitespace", func(t *testing.T) {
		t.Parallel()

		got := cdpchat.SplitSentences("First one. Second one! Third one?")
		assert.Equal(t, []string{"First one.", "Second one!", "Third one?"}, got)
	})

	t.Run("does not split inside abbreviations glued to text", func(t *testing.T) {
		t.Parallel()

		got := cdpchat.SplitSentences("Version 2.5 shipped. It works.")
		assert.Equal(t, []string{"Version 2.5 shipped.", "It works."}, got)
	})

	t.Run("keeps trailing text without punctuation", func(t *testing.T) {
		t.Parallel()

		got := cdpchat.SplitSentences("Done. And one more thing")
		assert.Equal(t, []string{"Done.", "And one more thing"}, got)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, cdpchat.SplitSentences(""))
	})
}
