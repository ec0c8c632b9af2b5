package response

import (
	"errors"
	"net/http"

	"solwallet-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// The wire format follows the browser client's contract: success payloads
// are emitted as-is, and every error carries a single message field.

// ErrorBody is the standard error envelope.
type ErrorBody struct {
	Message string `json:"message"`
}

// OK sends a 200 response with the payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{Message: appErr.Message})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "Internal server error"})
}
