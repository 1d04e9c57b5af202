package client

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/middleware"
	"github.com/odhav-enterprise/core/internal/pkg/response"
)

// Handler exposes the client HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	clients := r.Group("/clients")
	{
		clients.GET("", h.List)
		clients.GET("/:slug", h.GetBySlug)

		clients.POST("", auth, h.Create)
		clients.PUT("/:slug", auth, h.Update)
		clients.DELETE("/:slug", auth, h.Delete)
	}
}

// List handles GET /clients. Anonymous callers see active clients only;
// authenticated callers see everything.
func (h *Handler) List(c *gin.Context) {
	clients, err := h.service.List(!middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to fetch clients", err)
		return
	}
	response.OK(c, clients)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	client, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, "failed to fetch client", err)
		return
	}
	if client == nil {
		response.NotFoundMsg(c, "client not found")
		return
	}
	response.OK(c, client)
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateClientDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	client, err := h.service.Create(&dto)
	if err != nil {
		h.writeError(c, err, "failed to create client")
		return
	}
	response.Created(c, client)
}

func (h *Handler) Update(c *gin.Context) {
	var dto UpdateClientDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	client, err := h.service.Update(c.Param("slug"), &dto)
	if err != nil {
		h.writeError(c, err, "failed to update client")
		return
	}
	if client == nil {
		response.NotFoundMsg(c, "client not found")
		return
	}
	response.OK(c, client)
}

func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Param("slug"))
	if err != nil {
		response.InternalError(c, "failed to delete client", err)
		return
	}
	if !deleted {
		response.NotFoundMsg(c, "client not found")
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNameTaken), errors.Is(err, ErrSlugTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidSlug), errors.Is(err, ErrInvalidWebsite):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, fallback, err)
	}
}
