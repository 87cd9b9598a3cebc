package mock

import (
	"context"

	"github.com/cdpsupport/cdpchat"
)

var _ cdpchat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cdpchat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ cdpchat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cdpchat.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*cdpchat.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*cdpchat.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ cdpchat.Converter = (*Converter)(nil)

// Converter is a mock implementation of cdpchat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ cdpchat.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of cdpchat.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}

var _ cdpchat.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of cdpchat.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *cdpchat.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *cdpchat.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
