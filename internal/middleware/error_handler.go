package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/i18n"
	"github.com/packline/packaging-service/internal/logger"
)

// ErrorHandler logs errors attached to the context after the handler chain
// runs. Handlers that attach an error without writing a response get a
// generic 500; handlers that already responded are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			resp := dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, resp)
		}
	}
}
