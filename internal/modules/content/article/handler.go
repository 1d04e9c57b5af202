package article

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/config"
	"github.com/odhav-enterprise/core/internal/middleware"
	"github.com/odhav-enterprise/core/internal/modules/processing/markdown"
	"github.com/odhav-enterprise/core/internal/modules/seo"
	"github.com/odhav-enterprise/core/internal/pkg/response"
)

// Handler exposes the article HTTP endpoints.
type Handler struct {
	service *Service
	site    config.SiteConfig
}

func NewHandler(service *Service, site config.SiteConfig) *Handler {
	return &Handler{service: service, site: site}
}

// RegisterRoutes mounts the article endpoints. Reads are public, writes
// require authentication.
func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	articles := r.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/filters", h.FilterOptions)
		articles.GET("/:slug", h.GetBySlug)

		articles.POST("", auth, h.Create)
		articles.PUT("/:slug", auth, h.Update)
		articles.DELETE("/:slug", auth, h.Delete)
	}
}

// List handles GET /articles.
func (h *Handler) List(c *gin.Context) {
	spec := BuildSpec(c.Request.URL.Query())

	articles, meta, err := h.service.List(spec)
	if err != nil {
		response.InternalError(c, "failed to fetch articles", err)
		return
	}

	out := make([]articleResponse, len(articles))
	for i := range articles {
		out[i] = toResponse(&articles[i])
	}
	response.Paged(c, out, meta, spec.Filters)
}

// FilterOptions handles GET /articles/filters.
func (h *Handler) FilterOptions(c *gin.Context) {
	opts, err := h.service.GetFilterOptions()
	if err != nil {
		response.InternalError(c, "failed to fetch filter options", err)
		return
	}
	response.OK(c, opts)
}

// GetBySlug handles GET /articles/:slug. Authenticated callers can see
// unpublished articles; everyone else gets a 404 for them.
func (h *Handler) GetBySlug(c *gin.Context) {
	article, err := h.service.GetBySlug(c.Param("slug"), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to fetch article", err)
		return
	}
	if article == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}

	detail := articleDetailResponse{
		articleResponse: toResponse(article),
		ContentHTML:     markdown.RenderHTML(article.Content),
		SEO:             seo.ForArticle(h.site, article),
	}
	response.OK(c, detail)
}

// Create handles POST /articles.
func (h *Handler) Create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	article, err := h.service.Create(&dto)
	if err != nil {
		h.writeError(c, err, "failed to create article")
		return
	}
	response.Created(c, toResponse(article))
}

// Update handles PUT /articles/:slug.
func (h *Handler) Update(c *gin.Context) {
	existing, err := h.service.GetBySlug(c.Param("slug"), true)
	if err != nil {
		response.InternalError(c, "failed to fetch article", err)
		return
	}
	if existing == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}

	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	article, err := h.service.Update(existing.ID, &dto)
	if err != nil {
		h.writeError(c, err, "failed to update article")
		return
	}
	if article == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, toResponse(article))
}

// Delete handles DELETE /articles/:slug.
func (h *Handler) Delete(c *gin.Context) {
	existing, err := h.service.GetBySlug(c.Param("slug"), true)
	if err != nil {
		response.InternalError(c, "failed to fetch article", err)
		return
	}
	if existing == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}

	if err := h.service.Delete(existing.ID); err != nil {
		response.InternalError(c, "failed to delete article", err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidSlug),
		errors.Is(err, ErrClientNotFound),
		errors.Is(err, ErrProjectTypeNotFound):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, fallback, err)
	}
}
