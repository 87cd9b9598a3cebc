package cdpchat_test

import (
	"testing"

	"github.com/cdpsupport/cdpchat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := cdpchat.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, cdpchat.DefaultRelevanceFloor, cfg.RelevanceFloor)
	assert.Equal(t, cdpchat.DefaultTopK, cfg.TopK)
	for _, p := range cdpchat.Platforms() {
		assert.NotEmpty(t, cfg.Keywords[p], "keywords for %s", p)
		assert.NotEmpty(t, cfg.Sources[p], "source for %s", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*cdpchat.Config)
	}{
		{"negative relevance floor", func(c *cdpchat.Config) { c.RelevanceFloor = -0.1 }},
		{"zero top-k", func(c *cdpchat.Config) { c.TopK = 0 }},
		{"zero chunk max length", func(c *cdpchat.Config) { c.ChunkMaxLen = 0 }},
		{"negative chunk overlap", func(c *cdpchat.Config) { c.ChunkOverlap = -1 }},
		{"overlap not smaller than max length", func(c *cdpchat.Config) { c.ChunkOverlap = c.ChunkMaxLen }},
		{"missing keyword list", func(c *cdpchat.Config) { delete(c.Keywords, cdpchat.PlatformZeotap) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := cdpchat.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, cdpchat.EINVALID, cdpchat.ErrorCode(err))
		})
	}
}
