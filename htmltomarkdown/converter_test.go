package htmltomarkdown_test

import (
	"testing"

	"github.com/cdpsupport/cdpchat"
	"github.com/cdpsupport/cdpchat/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()

	t.Run("converts headings, lists, and links", func(t *testing.T) {
		t.Parallel()

		md, err := c.Convert(`<h2>Add a source</h2><ol><li>Open Connections</li><li>Click <a href="/docs/add">Add Source</a></li></ol>`)
		require.NoError(t, err)
		assert.Contains(t, md, "## Add a source")
		assert.Contains(t, md, "1. Open Connections")
		assert.Contains(t, md, "[Add Source](/docs/add)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md, err := c.Convert(`<table><tr><th>Setting</th><th>Value</th></tr><tr><td>region</td><td>eu</td></tr></table>`)
		require.NoError(t, err)
		assert.Contains(t, md, "| Setting | Value |")
		assert.Contains(t, md, "| region | eu |")
	})

	t.Run("rejects blank input", func(t *testing.T) {
		t.Parallel()

		_, err := c.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, cdpchat.EINVALID, cdpchat.ErrorCode(err))
	})
}
