package sitemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderXML(t *testing.T) {
	urls := []sitemapURL{
		{
			Loc:        "https://example.com/projects/roads-bridges",
			LastMod:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ChangeFreq: "weekly",
			Priority:   0.8,
		},
	}

	xml := renderXML(urls)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://example.com/projects/roads-bridges</loc>")
	assert.Contains(t, xml, "<lastmod>2024-03-15</lastmod>")
	assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
	assert.Contains(t, xml, "<priority>0.8</priority>")
	assert.Contains(t, xml, "</urlset>")
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &amp; b", escapeXML("a & b"))
	assert.Equal(t, "&lt;tag&gt;", escapeXML("<tag>"))
	assert.Equal(t, "plain", escapeXML("plain"))
}
