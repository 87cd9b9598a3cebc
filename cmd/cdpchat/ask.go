package main

import (
	"fmt"

	"github.com/cdpsupport/cdpchat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	result, err := deps.Answerer.Answer(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, cdpchat.FormatAnswer(result))
	return nil
}
