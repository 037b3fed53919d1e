package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
					"panic": fmt.Sprint(rec),
					"stack": string(debug.Stack()),
				}).Error("Recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
					"code":  apperrors.CodeInternal,
				})
			}
		}()

		c.Next()
	}
}
