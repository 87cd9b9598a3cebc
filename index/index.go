// Package index builds and searches the per-platform text index that
// backs the query engine. The index is an inverted term index with TF-IDF
// weights, built offline from the chunk store and treated as an immutable
// snapshot while serving.
package index

import (
	"math"
	"sort"

	"github.com/cdpsupport/cdpchat"
)

// posting records a term occurrence within one chunk.
type posting struct {
	chunk int // ordinal into platformIndex.chunks
	freq  int
}

// platformIndex is the inverted index for a single platform's chunks.
type platformIndex struct {
	chunks   []*cdpchat.Chunk
	postings map[string][]posting
	df       map[string]int // number of chunks containing each term
	norms    []float64      // L2 norm of each chunk's TF-IDF vector
}

// Snapshot is an immutable index over every platform's chunks. It is safe
// for concurrent readers; rebuilds produce a fresh Snapshot rather than
// mutating an existing one.
type Snapshot struct {
	platforms map[cdpchat.Platform]*platformIndex
}

// Build constructs a Snapshot from the full chunk set. Chunks are grouped
// by platform in input order; an empty platform corpus yields an empty
// index for that platform, not an error. Build is idempotent: identical
// input produces a structurally identical snapshot.
func Build(chunks []*cdpchat.Chunk, normalizer *cdpchat.Normalizer) *Snapshot {
	snap := &Snapshot{
		platforms: make(map[cdpchat.Platform]*platformIndex),
	}
	for _, p := range cdpchat.Platforms() {
		snap.platforms[p] = &platformIndex{
			postings: make(map[string][]posting),
			df:       make(map[string]int),
		}
	}

	for _, chunk := range chunks {
		pi, ok := snap.platforms[chunk.Platform]
		if !ok {
			continue
		}
		ordinal := len(pi.chunks)
		pi.chunks = append(pi.chunks, chunk)

		counts := termCounts(normalizer.Normalize(chunk.Content))
		for term, freq := range counts {
			pi.postings[term] = append(pi.postings[term], posting{chunk: ordinal, freq: freq})
			pi.df[term]++
		}
	}

	for _, pi := range snap.platforms {
		pi.computeNorms()
	}
	return snap
}

// computeNorms precomputes the L2 norm of each chunk's TF-IDF vector.
// Terms are accumulated in sorted order so identical input produces
// bitwise-identical norms.
func (pi *platformIndex) computeNorms() {
	pi.norms = make([]float64, len(pi.chunks))
	for _, term := range sortedTerms(pi.postings) {
		idf := pi.idf(term)
		for _, p := range pi.postings[term] {
			w := float64(p.freq) * idf
			pi.norms[p.chunk] += w * w
		}
	}
	for i, sq := range pi.norms {
		pi.norms[i] = math.Sqrt(sq)
	}
}

// idf returns the smoothed inverse document frequency for a term.
// Terms absent from the corpus get the maximum IDF (df = 0).
func (pi *platformIndex) idf(term string) float64 {
	n := float64(len(pi.chunks))
	return math.Log((1+n)/(1+float64(pi.df[term]))) + 1
}

// ChunkCount returns the number of indexed chunks for a platform.
func (s *Snapshot) ChunkCount(platform cdpchat.Platform) int {
	pi, ok := s.platforms[platform]
	if !ok {
		return 0
	}
	return len(pi.chunks)
}

// Search scores every chunk of the platform's index against the query
// terms using cosine similarity of TF-IDF vectors. Chunks scoring at or
// below floor are discarded; survivors are ranked by descending score with
// ties broken by original chunk position (lower first), then truncated to
// topK. Returns nil when the platform has no corpus or nothing clears the
// floor.
func (s *Snapshot) Search(platform cdpchat.Platform, terms []string, floor float64, topK int) []cdpchat.ScoredChunk {
	pi, ok := s.platforms[platform]
	if !ok || len(pi.chunks) == 0 {
		return nil
	}

	query := termCounts(terms)
	if len(query) == 0 {
		return nil
	}
	queryTerms := sortedTerms(query)

	// Query vector norm includes out-of-vocabulary terms so questions
	// dominated by unindexed words score low.
	var queryNorm float64
	for _, term := range queryTerms {
		w := float64(query[term]) * pi.idf(term)
		queryNorm += w * w
	}
	queryNorm = math.Sqrt(queryNorm)
	if queryNorm == 0 {
		return nil
	}

	scores := make([]float64, len(pi.chunks))
	for _, term := range queryTerms {
		postings, ok := pi.postings[term]
		if !ok {
			continue
		}
		idf := pi.idf(term)
		qw := float64(query[term]) * idf
		for _, p := range postings {
			scores[p.chunk] += qw * float64(p.freq) * idf
		}
	}

	var ranked []cdpchat.ScoredChunk
	for i, dot := range scores {
		if dot == 0 || pi.norms[i] == 0 {
			continue
		}
		score := dot / (queryNorm * pi.norms[i])
		if score <= floor {
			continue
		}
		ranked = append(ranked, cdpchat.ScoredChunk{Chunk: pi.chunks[i], Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Chunk.Position < ranked[j].Chunk.Position
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// termCounts counts term frequencies.
func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// sortedTerms returns a map's keys in sorted order, giving float
// accumulation over the map a stable iteration order.
func sortedTerms[V any](m map[string]V) []string {
	terms := make([]string, 0, len(m))
	for term := range m {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
