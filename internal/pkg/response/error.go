package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
)

// Error sends a JSON error envelope for any failure raised by a handler.
// AppErrors keep their status code and message; anything else becomes a 500
// with a generic message, while the original error is logged server-side so
// internals never leak to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
			log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
		}
		c.JSON(appErr.Code, Envelope{
			Success: false,
			Error:   appErr.Message,
		})
		return
	}

	log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   "internal server error",
	})
}
