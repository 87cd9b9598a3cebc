package index

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cdpsupport/cdpchat"
)

// Compile-time interface verification.
var _ cdpchat.Answerer = (*Engine)(nil)

// Engine implements cdpchat.Answerer over an index store. It only reads:
// normalization, platform detection, search, and ranking are all pure
// lookups against the published snapshot, so concurrent Answer calls need
// no locking.
type Engine struct {
	store      *Store
	normalizer *cdpchat.Normalizer
	keywords   map[cdpchat.Platform][]string
	floor      float64
	topK       int
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for operator-facing events.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine reading snapshots from store, configured by
// cfg. The config must already be validated.
func NewEngine(store *Store, cfg *cdpchat.Config, opts ...EngineOption) *Engine {
	e := &Engine{
		store:      store,
		normalizer: cdpchat.NewNormalizer(cfg.StopWords),
		keywords:   cfg.Keywords,
		floor:      cfg.RelevanceFloor,
		topK:       cfg.TopK,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Answer resolves a question into a QueryResult. Blank input, unmatched
// platforms, and sub-floor scores all produce OutOfDomain; errors are
// reserved for internal failures.
func (e *Engine) Answer(ctx context.Context, question string) (*cdpchat.QueryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := &cdpchat.Query{RawText: question}

	// Blank input short-circuits before any scoring.
	if strings.TrimSpace(question) == "" {
		return &cdpchat.QueryResult{Kind: cdpchat.OutOfDomain, Query: query}, nil
	}

	query.Terms = e.normalizer.Normalize(question)
	query.HowTo = cdpchat.IsHowToQuestion(question)
	query.Compare = cdpchat.IsComparisonQuestion(question)
	if len(query.Terms) == 0 {
		return &cdpchat.QueryResult{Kind: cdpchat.OutOfDomain, Query: query}, nil
	}

	query.Platforms = cdpchat.DetectPlatforms(query.Terms, e.keywords)
	if len(query.Platforms) == 0 {
		return &cdpchat.QueryResult{Kind: cdpchat.OutOfDomain, Query: query}, nil
	}

	snap := e.store.Snapshot()

	results := make([]cdpchat.PlatformResult, 0, len(query.Platforms))
	anyRanked := false
	for _, platform := range query.Platforms {
		if snap.ChunkCount(platform) == 0 {
			// Platform detected but no corpus behind it. The caller sees
			// OutOfDomain; operators see this log line.
			e.logger.Warn("no corpus for detected platform",
				"platform", platform,
			)
			results = append(results, cdpchat.PlatformResult{Platform: platform})
			continue
		}

		ranked := snap.Search(platform, query.Terms, e.floor, e.topK)
		if len(ranked) > 0 {
			anyRanked = true
		}
		results = append(results, cdpchat.PlatformResult{Platform: platform, Ranked: ranked})
	}

	if !anyRanked {
		return &cdpchat.QueryResult{Kind: cdpchat.OutOfDomain, Query: query}, nil
	}

	if len(query.Platforms) > 1 {
		return &cdpchat.QueryResult{
			Kind:      cdpchat.Ambiguous,
			Query:     query,
			Platforms: results,
		}, nil
	}

	return &cdpchat.QueryResult{
		Kind:      cdpchat.Matched,
		Query:     query,
		Platforms: results,
	}, nil
}
