package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/cdpsupport/cdpchat"
)

// maxSitemapDepth bounds sitemap index recursion.
const maxSitemapDepth = 5

// Compile-time interface verification.
var _ cdpchat.SitemapService = (*SitemapService)(nil)

// SitemapService discovers documentation URLs from a site's sitemaps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap. Sitemap locations
// come from robots.txt, falling back to /sitemap.xml; sitemap indexes are
// resolved recursively. When baseURL has a non-root path (e.g.
// https://segment.com/docs/), only URLs under that prefix are returned.
// Returns an empty slice, not an error, when the site has no sitemap.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *cdpchat.URLFilter) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the docs path.
	root := *base
	root.Path = ""

	sitemapURLs, err := s.sitemapLocations(ctx, &root)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var all []string

	for _, sitemapURL := range sitemapURLs {
		urls, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if !seenURLs[u] {
				seenURLs[u] = true
				all = append(all, u)
			}
		}
	}

	var out []string
	for _, u := range all {
		if pathPrefix != "" && !hasPathPrefix(u, pathPrefix) {
			continue
		}
		if !filter.Match(u) {
			continue
		}
		out = append(out, u)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// sitemapLocations returns sitemap URLs from robots.txt, or the
// conventional /sitemap.xml if robots.txt declares none.
func (s *SitemapService) sitemapLocations(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.String() + "/robots.txt"

	body, err := s.get(ctx, robotsURL)
	if err == nil {
		var sitemaps []string
		scanner := bufio.NewScanner(strings.NewReader(body))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if rest, ok := strings.CutPrefix(strings.ToLower(line), "sitemap:"); ok {
				// Preserve the original casing of the URL.
				loc := strings.TrimSpace(line[len(line)-len(rest):])
				if loc != "" {
					sitemaps = append(sitemaps, loc)
				}
			}
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	}

	// Conventional location fallback. A miss here means no sitemap.
	fallback := root.String() + "/sitemap.xml"
	if _, err := s.get(ctx, fallback); err != nil {
		return nil, nil
	}
	return []string{fallback}, nil
}

// walkSitemap fetches one sitemap and returns its page URLs, recursing
// into sitemap indexes.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		// A sitemap listed but unreachable is skipped, not fatal.
		return nil, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, nil
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	switch root.Tag {
	case "sitemapindex":
		var urls []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			child, err := s.walkSitemap(ctx, strings.TrimSpace(loc.Text()), seen, depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, child...)
		}
		return urls, nil

	case "urlset":
		var urls []string
		for _, u := range root.SelectElements("url") {
			loc := u.SelectElement("loc")
			if loc == nil {
				continue
			}
			if text := strings.TrimSpace(loc.Text()); text != "" {
				urls = append(urls, text)
			}
		}
		return urls, nil
	}

	return nil, nil
}

// get fetches a URL and returns its body, erroring on non-200 statuses.
func (s *SitemapService) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// hasPathPrefix checks whether a URL's path sits under prefix, respecting
// path boundaries: /docs matches /docs and /docs/intro but not
// /documentation.
func hasPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	p := strings.TrimSuffix(prefix, "/")
	return parsed.Path == p || strings.HasPrefix(parsed.Path, p+"/")
}
