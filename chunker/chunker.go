// Package chunker splits documents into sentence-bounded, overlapping
// chunks sized for retrieval.
package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/cdpsupport/cdpchat"
)

// DefaultMaxLen is the default maximum chunk length in characters.
const DefaultMaxLen = cdpchat.DefaultChunkMaxLen

// DefaultOverlap is the default overlap between adjacent chunks in characters.
const DefaultOverlap = cdpchat.DefaultChunkOverlap

// Compile-time interface verification.
var _ cdpchat.Chunker = (*Chunker)(nil)

// Chunker packs document sentences into chunks of bounded length.
// Adjacent chunks share trailing sentences up to the configured overlap so
// an answer is less likely to be split mid-thought. Chunking is
// deterministic: the same document and configuration always produce the
// same sequence.
type Chunker struct {
	maxLen  int
	overlap int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithMaxLen sets the maximum chunk length in characters.
func WithMaxLen(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxLen = n
		}
	}
}

// WithOverlap sets the overlap between adjacent chunks in characters.
func WithOverlap(n int) Option {
	return func(c *Chunker) {
		if n >= 0 {
			c.overlap = n
		}
	}
}

// New creates a Chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxLen:  DefaultMaxLen,
		overlap: DefaultOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave room for new content in every chunk.
	if c.overlap >= c.maxLen {
		c.overlap = c.maxLen / 4
	}

	return c
}

// Chunk splits the document's content into an ordered chunk sequence.
// Returns no chunks when the content is empty or whitespace.
func (c *Chunker) Chunk(doc *cdpchat.Document) []*cdpchat.Chunk {
	text := strings.TrimSpace(doc.Content)
	if text == "" {
		return nil
	}

	sentences := splitUnits(text, c.maxLen)

	var chunks []*cdpchat.Chunk
	var current []string
	currentLen := 0

	emit := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, &cdpchat.Chunk{
			DocumentID: doc.ID,
			Platform:   doc.Platform,
			SourceURL:  doc.SourceURL,
			Content:    strings.Join(current, " "),
			Position:   len(chunks),
		})
	}

	for _, sentence := range sentences {
		if currentLen+len(sentence) > c.maxLen && len(current) > 0 {
			emit()

			// Carry trailing sentences into the next chunk as overlap.
			var carry []string
			carryLen := 0
			for i := len(current) - 1; i >= 0; i-- {
				if carryLen+len(current[i]) > c.overlap {
					break
				}
				carry = append([]string{current[i]}, carry...)
				carryLen += len(current[i])
			}
			current = carry
			currentLen = carryLen
		}

		current = append(current, sentence)
		currentLen += len(sentence)
	}
	emit()

	return chunks
}

// splitUnits splits text into sentences, hard-splitting any sentence that
// exceeds maxLen so every unit fits within a chunk.
func splitUnits(text string, maxLen int) []string {
	sentences := cdpchat.SplitSentences(text)

	var units []string
	for _, s := range sentences {
		for len(s) > maxLen {
			// Back off to a rune boundary so a cut never produces
			// invalid UTF-8.
			cut := maxLen
			for cut > 0 && !utf8.RuneStart(s[cut]) {
				cut--
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(s)
			}
			units = append(units, s[:cut])
			s = s[cut:]
		}
		if s != "" {
			units = append(units, s)
		}
	}
	return units
}
