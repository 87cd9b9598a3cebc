package mock

import (
	"context"

	"github.com/cdpsupport/cdpchat"
)

var _ cdpchat.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of cdpchat.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string) (*cdpchat.QueryResult, error)
}

func (a *Answerer) Answer(ctx context.Context, question string) (*cdpchat.QueryResult, error) {
	return a.AnswerFn(ctx, question)
}
