package projecttype

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/middleware"
	"github.com/odhav-enterprise/core/internal/pkg/response"
)

// Handler exposes the project type HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	projectTypes := r.Group("/project-types")
	{
		projectTypes.GET("", h.List)
		projectTypes.GET("/:slug", h.GetBySlug)

		projectTypes.POST("", auth, h.Create)
		projectTypes.PUT("/:slug", auth, h.Update)
		projectTypes.DELETE("/:slug", auth, h.Delete)
	}
}

// List handles GET /project-types. Anonymous callers see active project
// types only; authenticated callers see everything.
func (h *Handler) List(c *gin.Context) {
	projectTypes, err := h.service.List(!middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to fetch project types", err)
		return
	}
	response.OK(c, projectTypes)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	projectType, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, "failed to fetch project type", err)
		return
	}
	if projectType == nil {
		response.NotFoundMsg(c, "project type not found")
		return
	}
	response.OK(c, projectType)
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateProjectTypeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	projectType, err := h.service.Create(&dto)
	if err != nil {
		h.writeError(c, err, "failed to create project type")
		return
	}
	response.Created(c, projectType)
}

func (h *Handler) Update(c *gin.Context) {
	var dto UpdateProjectTypeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	projectType, err := h.service.Update(c.Param("slug"), &dto)
	if err != nil {
		h.writeError(c, err, "failed to update project type")
		return
	}
	if projectType == nil {
		response.NotFoundMsg(c, "project type not found")
		return
	}
	response.OK(c, projectType)
}

func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Param("slug"))
	if err != nil {
		response.InternalError(c, "failed to delete project type", err)
		return
	}
	if !deleted {
		response.NotFoundMsg(c, "project type not found")
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNameTaken), errors.Is(err, ErrSlugTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidSlug):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, fallback, err)
	}
}
