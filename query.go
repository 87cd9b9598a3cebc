package cdpchat

import (
	"context"
	"regexp"
)

// Query holds the ephemeral, parsed form of one incoming question.
// Queries are never persisted.
type Query struct {
	RawText   string     `json:"rawText"`
	Terms     []string   `json:"terms"`
	Platforms []Platform `json:"platforms"`
	HowTo     bool       `json:"howTo"`
	Compare   bool       `json:"compare"`
}

// ResultKind discriminates QueryResult variants.
type ResultKind string

// QueryResult variants.
const (
	// Matched means exactly one platform was detected and at least one
	// chunk cleared the relevance floor.
	Matched ResultKind = "matched"

	// Ambiguous means the question spans multiple platforms (a comparison
	// query); each platform carries its own ranked chunks.
	Ambiguous ResultKind = "ambiguous"

	// OutOfDomain means the question does not plausibly relate to any
	// supported platform, or nothing in the corpus cleared the floor.
	OutOfDomain ResultKind = "out_of_domain"
)

// ScoredChunk pairs a chunk with its relevance score.
type ScoredChunk struct {
	Chunk *Chunk  `json:"chunk"`
	Score float64 `json:"score"`
}

// PlatformResult holds the ranked chunks retrieved for one platform.
// Ranked is ordered highest score first; ties break by original chunk
// position, lower position first.
type PlatformResult struct {
	Platform Platform      `json:"platform"`
	Ranked   []ScoredChunk `json:"ranked"`
}

// QueryResult is the outcome of answering one question. Expected "no good
// answer" outcomes are represented by Kind, never by an error.
type QueryResult struct {
	Kind      ResultKind       `json:"kind"`
	Query     *Query           `json:"query"`
	Platforms []PlatformResult `json:"platforms,omitempty"`
}

// Answerer resolves a free-text question into a QueryResult.
type Answerer interface {
	// Answer normalizes the question, detects its target platform(s),
	// searches the index, and ranks candidate chunks. It returns an error
	// only for internal failures; blank input and unmatched questions
	// produce an OutOfDomain result.
	Answer(ctx context.Context, question string) (*QueryResult, error)
}

// howToPatterns recognize common how-to phrasings.
var howToPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*how\s+to\s+`),
	regexp.MustCompile(`(?i)^\s*how\s+(do|can|would|should)\s+(i|you|we)\s+`),
	regexp.MustCompile(`(?i)^\s*what'?s\s+the\s+best\s+way\s+to\s+`),
	regexp.MustCompile(`(?i)^\s*what\s+is\s+the\s+process\s+for\s+`),
}

// comparisonPatterns recognize comparison phrasings.
var comparisonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcompare[ds]?\b`),
	regexp.MustCompile(`(?i)\bcomparison\b`),
	regexp.MustCompile(`(?i)\bdifference\s+between\b`),
	regexp.MustCompile(`(?i)\bversus\b`),
	regexp.MustCompile(`(?i)\bvs\.?\b`),
}

// IsHowToQuestion reports whether the raw question is phrased as a
// how-to question.
func IsHowToQuestion(question string) bool {
	for _, re := range howToPatterns {
		if re.MatchString(question) {
			return true
		}
	}
	return false
}

// IsComparisonQuestion reports whether the raw question asks for a
// comparison.
func IsComparisonQuestion(question string) bool {
	for _, re := range comparisonPatterns {
		if re.MatchString(question) {
			return true
		}
	}
	return false
}
