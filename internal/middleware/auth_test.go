package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(validKeys map[string]bool) *gin.Engine {
	router := gin.New()
	router.Use(APIKeyAuth(validKeys))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	validKeys := map[string]bool{"valid-key": true}

	tests := []struct {
		name           string
		setupRequest   func(*http.Request)
		expectedStatus int
	}{
		{
			name:           "missing key",
			setupRequest:   func(req *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid key in header",
			setupRequest: func(req *http.Request) {
				req.Header.Set(APIKeyHeader, "valid-key")
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid key in header",
			setupRequest: func(req *http.Request) {
				req.Header.Set(APIKeyHeader, "wrong-key")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid key in query parameter",
			setupRequest: func(req *http.Request) {
				q := req.URL.Query()
				q.Set(APIKeyQuery, "valid-key")
				req.URL.RawQuery = q.Encode()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "header takes precedence over query",
			setupRequest: func(req *http.Request) {
				req.Header.Set(APIKeyHeader, "wrong-key")
				q := req.URL.Query()
				q.Set(APIKeyQuery, "valid-key")
				req.URL.RawQuery = q.Encode()
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(validKeys)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAPIKeyAuth_DisabledWithoutKeys(t *testing.T) {
	tests := []struct {
		name      string
		validKeys map[string]bool
	}{
		{name: "nil keys", validKeys: nil},
		{name: "empty keys", validKeys: map[string]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(tt.validKeys)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAPIKeyAuth_TranslatedError(t *testing.T) {
	router := newAuthRouter(map[string]bool{"valid-key": true})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Language", "nl")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API-sleutel")
}
