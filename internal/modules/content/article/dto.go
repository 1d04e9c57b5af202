package article

import (
	"time"

	"github.com/odhav-enterprise/core/internal/models"
	"github.com/odhav-enterprise/core/internal/modules/seo"
)

// CreateArticleDTO is the request body for creating an article.
type CreateArticleDTO struct {
	Title           string   `json:"title"        binding:"required,max=200"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"  binding:"required,max=500"`
	Content         string   `json:"content"      binding:"required"`
	Clients         []string `json:"clients"      binding:"required,min=1"`
	ProjectTypes    []string `json:"projectTypes" binding:"required,min=1"`
	Status          string   `json:"status"       binding:"required,oneof=ongoing completed"`
	Location        string   `json:"location"     binding:"required"`
	ProjectValue    string   `json:"projectValue"`
	Images          []string `json:"images"`
	FeaturedImage   string   `json:"featuredImage"`
	MetaTitle       string   `json:"metaTitle"       binding:"omitempty,max=60"`
	MetaDescription string   `json:"metaDescription" binding:"omitempty,max=160"`
	Keywords        []string `json:"keywords"`
	Published       *bool    `json:"published"`
}

// UpdateArticleDTO is the request body for updating an article (all fields
// optional).
type UpdateArticleDTO struct {
	Title           *string  `json:"title"        binding:"omitempty,max=200"`
	Slug            *string  `json:"slug"`
	Description     *string  `json:"description"  binding:"omitempty,max=500"`
	Content         *string  `json:"content"`
	Clients         []string `json:"clients"      binding:"omitempty,min=1"`
	ProjectTypes    []string `json:"projectTypes" binding:"omitempty,min=1"`
	Status          *string  `json:"status"       binding:"omitempty,oneof=ongoing completed"`
	Location        *string  `json:"location"`
	ProjectValue    *string  `json:"projectValue"`
	Images          []string `json:"images"`
	FeaturedImage   *string  `json:"featuredImage"`
	MetaTitle       *string  `json:"metaTitle"       binding:"omitempty,max=60"`
	MetaDescription *string  `json:"metaDescription" binding:"omitempty,max=160"`
	Keywords        []string `json:"keywords"`
	Published       *bool    `json:"published"`
}

// clientSummary is the populated projection of a referenced client.
type clientSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Logo    string `json:"logo,omitempty"`
	Website string `json:"website,omitempty"`
}

// projectTypeSummary is the populated projection of a referenced project type.
type projectTypeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// articleResponse is the API shape of an article with populated references.
type articleResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Slug            string               `json:"slug"`
	Description     string               `json:"description"`
	Content         string               `json:"content"`
	Clients         []clientSummary      `json:"clients"`
	ProjectTypes    []projectTypeSummary `json:"projectTypes"`
	Status          string               `json:"status"`
	Location        string               `json:"location"`
	ProjectValue    string               `json:"projectValue,omitempty"`
	Images          []string             `json:"images"`
	FeaturedImage   string               `json:"featuredImage,omitempty"`
	MetaTitle       string               `json:"metaTitle,omitempty"`
	MetaDescription string               `json:"metaDescription,omitempty"`
	Keywords        []string             `json:"keywords"`
	Published       bool                 `json:"published"`
	PublishedAt     *time.Time           `json:"publishedAt,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// articleDetailResponse extends the list shape with the rendered content
// body and resolved SEO metadata for the detail page.
type articleDetailResponse struct {
	articleResponse
	ContentHTML string   `json:"contentHtml"`
	SEO         seo.Meta `json:"seo"`
}

func toResponse(a *models.ArticleModel) articleResponse {
	clients := make([]clientSummary, len(a.Clients))
	for i, cl := range a.Clients {
		clients[i] = clientSummary{
			ID:      cl.ID,
			Name:    cl.Name,
			Slug:    cl.Slug,
			Logo:    cl.Logo,
			Website: cl.Website,
		}
	}
	projectTypes := make([]projectTypeSummary, len(a.ProjectTypes))
	for i, pt := range a.ProjectTypes {
		projectTypes[i] = projectTypeSummary{
			ID:          pt.ID,
			Name:        pt.Name,
			Slug:        pt.Slug,
			Description: pt.Description,
		}
	}
	images := a.Images
	if images == nil {
		images = []string{}
	}
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return articleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		Description:     a.Description,
		Content:         a.Content,
		Clients:         clients,
		ProjectTypes:    projectTypes,
		Status:          a.Status,
		Location:        a.Location,
		ProjectValue:    a.ProjectValue,
		Images:          images,
		FeaturedImage:   a.FeaturedImage,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		Keywords:        keywords,
		Published:       a.Published,
		PublishedAt:     a.PublishedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
