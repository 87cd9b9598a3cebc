package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/cdpsupport/cdpchat"
	"github.com/cdpsupport/cdpchat/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *cdpchat.Config
	Documents cdpchat.DocumentService
	Chunks    cdpchat.ChunkService
	Chunker   cdpchat.Chunker
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" help:"Crawl configured sources and build the chunked corpus"`
	Chunk ChunkCmd `cmd:"" help:"Re-chunk stored documents without re-crawling"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Platform    string `short:"p" help:"Restrict to a single platform"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int    `default:"500" help:"Maximum pages to crawl per platform"`
}

// ChunkCmd is the "chunk" subcommand.
type ChunkCmd struct {
	Platform string `short:"p" help:"Restrict to a single platform"`
}
