package main

import (
	"fmt"

	"github.com/cdpsupport/cdpchat"
)

// Run executes the chunk command.
func (c *ChunkCmd) Run(deps *Dependencies) error {
	platforms, err := selectPlatforms(c.Platform)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpchat.ErrorMessage(err))
		return err
	}

	for _, platform := range platforms {
		created, err := rechunkPlatform(deps, platform)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpchat.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: %d chunks\n", platform.DisplayName(), created)
	}

	return nil
}
