package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mag7pulse/internal/domain/dto"
)

// ErrorHandler renders errors attached with c.Error when the handler chain
// did not write a response itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", c.Errors.Last().Err))
}

// AbortWithError stops the chain and answers status with an ErrorResponse.
// err is recorded on the context so RequestLogger reports it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
