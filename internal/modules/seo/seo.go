// Package seo resolves per-page metadata and schema.org structured data
// for the public site.
package seo

import (
	"github.com/odhav-enterprise/core/internal/config"
	"github.com/odhav-enterprise/core/internal/models"
)

// Meta is the resolved SEO head data for a single page.
type Meta struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Keywords       []string               `json:"keywords"`
	Canonical      string                 `json:"canonical"`
	OGImage        string                 `json:"ogImage,omitempty"`
	StructuredData map[string]interface{} `json:"structuredData"`
}

// ForArticle builds the article page metadata. Explicit meta fields win over
// the article's own title and description; the site config supplies the
// canonical host and publisher identity.
func ForArticle(site config.SiteConfig, a *models.ArticleModel) Meta {
	title := a.MetaTitle
	if title == "" {
		title = a.Title
	}
	description := a.MetaDescription
	if description == "" {
		description = a.Description
	}
	keywords := []string(a.Keywords)
	if keywords == nil {
		keywords = []string{}
	}

	canonical := site.BaseURL + "/projects/" + a.Slug

	image := a.FeaturedImage
	if image == "" && len(a.Images) > 0 {
		image = a.Images[0]
	}

	structured := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    title,
		"description": description,
		"url":         canonical,
		"mainEntityOfPage": map[string]interface{}{
			"@type": "WebPage",
			"@id":   canonical,
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  site.Name,
			"url":   site.BaseURL,
		},
		"author": map[string]interface{}{
			"@type": "Organization",
			"name":  site.Name,
		},
	}
	if image != "" {
		structured["image"] = image
	}
	if a.PublishedAt != nil {
		structured["datePublished"] = a.PublishedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	if !a.UpdatedAt.IsZero() {
		structured["dateModified"] = a.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	return Meta{
		Title:          title,
		Description:    description,
		Keywords:       keywords,
		Canonical:      canonical,
		OGImage:        image,
		StructuredData: structured,
	}
}
