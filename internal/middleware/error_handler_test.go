package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	t.Run("writes 500 for unhandled context errors", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/fail", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeInternal)
	})

	t.Run("leaves handled responses alone", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/handled", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
			c.JSON(http.StatusNotFound, dto.NewError(dto.ErrCodeNotFound, "Product not found"))
		})

		req := httptest.NewRequest(http.MethodGet, "/handled", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeNotFound)
	})

	t.Run("no errors no interference", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID(), ErrorHandler())
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
