package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/odhav-enterprise/core/internal/middleware"
	"github.com/odhav-enterprise/core/internal/pkg/response"
)

// LoginDTO is the request body for POST /auth/login.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Handler exposes the authentication endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.GET("/me", auth, h.Me)
	}
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	token, user, err := h.service.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, "login failed", err)
		return
	}

	response.OK(c, gin.H{"token": token, "user": user})
}

// Me handles GET /auth/me.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "failed to fetch user", err)
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}
