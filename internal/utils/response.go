// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mutation responses always carry {success, message, ...} so the frontend can
// toast them directly; list/detail reads return the payload unwrapped.

func SuccessResponse(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusOK, envelope(true, message, extra))
}

func CreatedResponse(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusCreated, envelope(true, message, extra))
}

func BadRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope(false, message, nil))
}

func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope(false, message, nil))
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, envelope(false, message, nil))
}

func envelope(success bool, message string, extra gin.H) gin.H {
	body := gin.H{"success": success, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	return body
}
