package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/cdpsupport/cdpchat"
	"github.com/cdpsupport/cdpchat/mock"
	cdpslog "github.com/cdpsupport/cdpchat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnswerer(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the result kind", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		next := &mock.Answerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpchat.QueryResult, error) {
				return &cdpchat.QueryResult{
					Kind: cdpchat.Matched,
					Query: &cdpchat.Query{
						RawText:   question,
						Platforms: []cdpchat.Platform{cdpchat.PlatformSegment},
					},
				}, nil
			},
		}
		a := cdpslog.NewLoggingAnswerer(next, slog.New(slog.NewTextHandler(&buf, nil)))

		result, err := a.Answer(context.Background(), "How do I create a source in Segment?")
		require.NoError(t, err)
		assert.Equal(t, cdpchat.Matched, result.Kind)

		out := buf.String()
		assert.Contains(t, out, "question answered")
		assert.Contains(t, out, "matched")
		assert.Contains(t, out, "segment")
	})

	t.Run("logs errors from the wrapped answerer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		next := &mock.Answerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpchat.QueryResult, error) {
				return nil, errors.New("index unavailable")
			},
		}
		a := cdpslog.NewLoggingAnswerer(next, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := a.Answer(context.Background(), "anything")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "index unavailable")
	})
}
