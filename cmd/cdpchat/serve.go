package main

import (
	"fmt"

	cdphttp "github.com/cdpsupport/cdpchat/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := cdphttp.NewServer()
	server.Addr = c.Addr
	server.Answerer = deps.Answerer
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", c.Addr, err)
	}
	defer server.Close()

	deps.Logger.Info("listening", "url", server.URL())

	<-deps.Ctx.Done()
	deps.Logger.Info("shutting down")

	return server.Close()
}
