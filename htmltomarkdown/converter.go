// Package htmltomarkdown converts extracted documentation HTML to the
// markdown stored in the corpus.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/cdpsupport/cdpchat"
)

// Compile-time interface verification.
var _ cdpchat.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Tables are converted too since CDP
// documentation leans heavily on configuration tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", cdpchat.Errorf(cdpchat.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
