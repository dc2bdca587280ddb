package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/i18n"
	"github.com/packline/packaging-service/internal/logger"
)

// Recovery converts panics into 500 responses so one bad request cannot take
// the process down. The panic value is logged with the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := logger.Logger()
				log.Error().
					Str("request_id", GetRequestID(c)).
					Interface("panic", r).
					Msg("PANIC recovered")

				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:     dto.ErrCodeInternal,
					Message:   message,
					RequestID: GetRequestID(c),
				})
			}
		}()
		c.Next()
	}
}
