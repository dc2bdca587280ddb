package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header checked for the API key.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter fallback for the API key.
	APIKeyQuery = "api_key"
)

// APIKeyAuth validates requests against a set of accepted API keys. The
// X-API-Key header wins over the api_key query parameter. An empty key set
// disables the check entirely.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			rejectUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			rejectUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

func rejectUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	resp := dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}
