// Package response implements the API envelope: every success payload
// carries success=true, every failure carries success=false with a message
// and the underlying error text.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination metadata returned with paginated responses.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// listResponse is the envelope for paginated list responses.
type listResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
	Filters    interface{} `json:"filters,omitempty"`
}

// OK sends a 200 response wrapping data in the success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Paged sends a paginated list response with the filters actually applied.
func Paged(c *gin.Context, data interface{}, pagination Pagination, filters interface{}) {
	c.JSON(http.StatusOK, listResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
		Filters:    filters,
	})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message, nil)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context) {
	fail(c, http.StatusUnauthorized, "authentication required", nil)
}

// NotFoundMsg sends a 404 error with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message, nil)
}

// NotFound sends a generic 404 error response.
func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "not found", nil)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, "method not allowed", nil)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, message, nil)
}

// UnprocessableEntity sends a 422 error response.
func UnprocessableEntity(c *gin.Context, message string) {
	fail(c, http.StatusUnprocessableEntity, message, nil)
}

// InternalError sends a 500 error response with the underlying error text.
func InternalError(c *gin.Context, message string, err error) {
	fail(c, http.StatusInternalServerError, message, err)
}

func fail(c *gin.Context, code int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(code, body)
}
