package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error reply. AppErrors keep their status code; anything
// else becomes an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
