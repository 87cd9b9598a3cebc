package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/cdpsupport/cdpchat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *cdpchat.Config
	Chunks   cdpchat.ChunkService
	Answerer cdpchat.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Serve the chat API over HTTP"`
	Ask   AskCmd   `cmd:"" help:"Ask a question from the terminal"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"HTTP listen address"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the documentation"`
}
