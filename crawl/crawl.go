// Package crawl orchestrates the one-shot corpus build: discovering,
// fetching, extracting, and storing documentation pages for each
// platform. It runs offline; the chat server only ever reads the
// resulting corpus.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cdpsupport/cdpchat"
)

// DefaultConcurrency is the default number of concurrent page fetches.
const DefaultConcurrency = 10

// DefaultMaxPages bounds how many pages are stored per platform.
const DefaultMaxPages = 500

// Crawler fetches a platform's documentation pages and saves them as
// documents. URL discovery prefers sitemaps; sites without one are walked
// recursively from the source URL.
type Crawler struct {
	Sitemaps  cdpchat.SitemapService
	Fetcher   cdpchat.Fetcher
	Extractor cdpchat.Extractor
	Converter cdpchat.Converter
	Links     cdpchat.LinkExtractor
	Documents cdpchat.DocumentService
	Limiter   *DomainLimiter
	Logger    *slog.Logger

	Concurrency int
	MaxPages    int

	// RetryDelays are the backoff delays between fetch attempts. Nil
	// means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// Result holds the outcome of crawling one platform.
type Result struct {
	Saved  int
	Failed int
}

// page is one fetched-and-converted documentation page.
type page struct {
	position int
	url      string
	title    string
	markdown string
}

// CrawlPlatform builds the corpus for one platform from its
// documentation root URL.
func (c *Crawler) CrawlPlatform(ctx context.Context, platform cdpchat.Platform, sourceURL string) (*Result, error) {
	logger := c.logger()

	urls, err := c.Sitemaps.DiscoverURLs(ctx, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if len(urls) > maxPages {
		urls = urls[:maxPages]
	}

	if len(urls) == 0 {
		logger.Info("no sitemap, walking links", "platform", platform, "url", sourceURL)
		return c.walk(ctx, platform, sourceURL, maxPages)
	}

	logger.Info("crawling from sitemap", "platform", platform, "pages", len(urls))

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var mu sync.Mutex
	var pages []page
	var failed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range urls {
		g.Go(func() error {
			p, err := c.fetchPage(gctx, pageURL, i)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				logger.Warn("page fetch failed", "url", pageURL, "err", err)
				return nil
			}
			pages = append(pages, *p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Restore sitemap order so document positions are deterministic.
	sort.Slice(pages, func(i, j int) bool { return pages[i].position < pages[j].position })

	saved, err := c.savePages(ctx, platform, pages)
	if err != nil {
		return nil, err
	}
	return &Result{Saved: saved, Failed: failed}, nil
}

// walk discovers pages by following same-site links from the source URL,
// processing pages in discovery order until maxPages are saved or the
// frontier drains.
func (c *Crawler) walk(ctx context.Context, platform cdpchat.Platform, sourceURL string, maxPages int) (*Result, error) {
	logger := c.logger()

	frontier := NewFrontier(uint(maxPages)*10, 0.01)
	frontier.Push(sourceURL)

	prefix := pathPrefix(sourceURL)

	var pages []page
	var failed int

	for len(pages) < maxPages {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := c.fetchHTML(ctx, pageURL)
		if err != nil {
			failed++
			logger.Warn("page fetch failed", "url", pageURL, "err", err)
			continue
		}

		if c.Links != nil {
			links, err := c.Links.ExtractLinks(html, pageURL)
			if err == nil {
				for _, link := range links {
					if prefix == "" || hasPrefix(link, prefix) {
						frontier.Push(link)
					}
				}
			}
		}

		p, err := c.convertPage(html, pageURL, len(pages))
		if err != nil {
			failed++
			logger.Warn("page extraction failed", "url", pageURL, "err", err)
			continue
		}
		pages = append(pages, *p)
	}

	saved, err := c.savePages(ctx, platform, pages)
	if err != nil {
		return nil, err
	}
	return &Result{Saved: saved, Failed: failed}, nil
}

// fetchPage fetches and converts a single page.
func (c *Crawler) fetchPage(ctx context.Context, pageURL string, position int) (*page, error) {
	html, err := c.fetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return c.convertPage(html, pageURL, position)
}

// fetchHTML applies rate limiting and retries around the fetcher.
func (c *Crawler) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	if c.Limiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			return "", err
		}
		if err := c.Limiter.Wait(ctx, parsed.Host); err != nil {
			return "", err
		}
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return fetchWithRetry(ctx, c.Fetcher, pageURL, delays)
}

// convertPage extracts main content and converts it to markdown.
func (c *Crawler) convertPage(html, pageURL string, position int) (*page, error) {
	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if extracted.ContentHTML == "" {
		return nil, fmt.Errorf("no main content in %s", pageURL)
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &page{
		position: position,
		url:      pageURL,
		title:    extracted.Title,
		markdown: markdown,
	}, nil
}

// savePages stores pages as documents, skipping conflicts (already
// crawled URLs).
func (c *Crawler) savePages(ctx context.Context, platform cdpchat.Platform, pages []page) (int, error) {
	logger := c.logger()

	saved := 0
	for i, p := range pages {
		doc := &cdpchat.Document{
			Platform:  platform,
			SourceURL: p.url,
			Title:     p.title,
			Content:   p.markdown,
			Position:  i,
		}
		if err := c.Documents.CreateDocument(ctx, doc); err != nil {
			if cdpchat.ErrorCode(err) == cdpchat.ECONFLICT {
				logger.Warn("duplicate page skipped", "url", p.url)
				continue
			}
			return saved, err
		}
		saved++
	}
	return saved, nil
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// pathPrefix returns the path portion of a source URL used to keep the
// recursive walk inside the documentation section.
func pathPrefix(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path
}

func hasPrefix(link, prefix string) bool {
	return len(link) >= len(prefix) && link[:len(prefix)] == prefix
}
