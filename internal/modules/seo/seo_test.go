package seo

import (
	"testing"
	"time"

	"github.com/odhav-enterprise/core/internal/config"
	"github.com/odhav-enterprise/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSite = config.SiteConfig{
	BaseURL: "https://example.com",
	Name:    "Odhav Enterprise",
}

func TestForArticleFallsBackToContentFields(t *testing.T) {
	a := &models.ArticleModel{
		Title:       "WTG Foundation Works",
		Slug:        "wtg-foundation-works",
		Description: "Turbine foundation casting across three wind farms.",
	}

	meta := ForArticle(testSite, a)
	assert.Equal(t, "WTG Foundation Works", meta.Title)
	assert.Equal(t, "Turbine foundation casting across three wind farms.", meta.Description)
	assert.Equal(t, "https://example.com/projects/wtg-foundation-works", meta.Canonical)
	assert.Equal(t, []string{}, meta.Keywords)
}

func TestForArticlePrefersExplicitMeta(t *testing.T) {
	a := &models.ArticleModel{
		Title:           "WTG Foundation Works",
		Slug:            "wtg-foundation-works",
		Description:     "body description",
		MetaTitle:       "Wind Turbine Foundations | Odhav",
		MetaDescription: "seo description",
		Keywords:        models.StringArray{"wind", "foundation"},
	}

	meta := ForArticle(testSite, a)
	assert.Equal(t, "Wind Turbine Foundations | Odhav", meta.Title)
	assert.Equal(t, "seo description", meta.Description)
	assert.Equal(t, []string{"wind", "foundation"}, meta.Keywords)
}

func TestForArticleStructuredData(t *testing.T) {
	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := &models.ArticleModel{
		Title:         "Substation Works",
		Slug:          "substation-works",
		FeaturedImage: "https://cdn.example.com/substation.jpg",
		PublishedAt:   &published,
	}

	meta := ForArticle(testSite, a)
	sd := meta.StructuredData
	require.NotNil(t, sd)
	assert.Equal(t, "https://schema.org", sd["@context"])
	assert.Equal(t, "Article", sd["@type"])
	assert.Equal(t, "Substation Works", sd["headline"])
	assert.Equal(t, "https://example.com/projects/substation-works", sd["url"])
	assert.Equal(t, "https://cdn.example.com/substation.jpg", sd["image"])
	assert.Equal(t, "2024-05-01T12:00:00Z", sd["datePublished"])

	publisher, ok := sd["publisher"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Odhav Enterprise", publisher["name"])
}

func TestForArticleImageFallsBackToGallery(t *testing.T) {
	a := &models.ArticleModel{
		Title:  "Roads Package",
		Slug:   "roads-package",
		Images: models.StringArray{"first.jpg", "second.jpg"},
	}

	meta := ForArticle(testSite, a)
	assert.Equal(t, "first.jpg", meta.OGImage)
	assert.Equal(t, "first.jpg", meta.StructuredData["image"])
}
