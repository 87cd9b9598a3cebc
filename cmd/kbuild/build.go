package main

import (
	"fmt"

	"github.com/cdpsupport/cdpchat"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	platforms, err := selectPlatforms(c.Platform)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpchat.ErrorMessage(err))
		return err
	}

	for _, platform := range platforms {
		sourceURL, ok := deps.Config.Sources[platform]
		if !ok || sourceURL == "" {
			fmt.Fprintf(deps.Stdout, "%s: no source configured, skipping\n", platform.DisplayName())
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s: crawling %s\n", platform.DisplayName(), sourceURL)

		result, err := deps.Crawler.CrawlPlatform(deps.Ctx, platform, sourceURL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpchat.ErrorMessage(err))
			return err
		}

		created, err := rechunkPlatform(deps, platform)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpchat.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "%s: %d pages saved, %d failed, %d chunks\n",
			platform.DisplayName(), result.Saved, result.Failed, created)
	}

	return nil
}

// selectPlatforms resolves an optional platform flag to the list of
// platforms to operate on.
func selectPlatforms(flag string) ([]cdpchat.Platform, error) {
	if flag == "" {
		return cdpchat.Platforms(), nil
	}
	platform, err := cdpchat.ParsePlatform(flag)
	if err != nil {
		return nil, err
	}
	return []cdpchat.Platform{platform}, nil
}

// rechunkPlatform replaces the stored chunks for a platform with ones
// derived from its current documents. Returns the number of chunks created.
func rechunkPlatform(deps *Dependencies, platform cdpchat.Platform) (int, error) {
	if err := deps.Chunks.DeleteChunksByPlatform(deps.Ctx, platform); err != nil {
		return 0, err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, cdpchat.DocumentFilter{Platform: &platform})
	if err != nil {
		return 0, err
	}

	created := 0
	for _, doc := range docs {
		chunks := deps.Chunker.Chunk(doc)
		if len(chunks) == 0 {
			deps.Logger.Warn("document produced no chunks", "platform", platform, "url", doc.SourceURL)
			continue
		}
		if err := deps.Chunks.CreateChunks(deps.Ctx, chunks); err != nil {
			return created, err
		}
		created += len(chunks)
	}

	return created, nil
}
