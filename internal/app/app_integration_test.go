//go:build integration

package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/config"
	"github.com/packline/packaging-service/internal/domain/dto"
	"github.com/packline/packaging-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Auth: config.AuthConfig{
			Enabled: false,
		},
		Database: config.DatabaseConfig{
			URI:                            testutil.GetSharedContainerURI(),
			DatabaseName:                   testutil.SanitizeDBName(t.Name()),
			LogsTTL:                        30 * 24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	router, err := InitializeApp(integrationConfig(t))
	require.NoError(t, err)
	require.NotNil(t, router)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApp_OrderFlow_Integration(t *testing.T) {
	t.Parallel()

	router, err := InitializeApp(integrationConfig(t))
	require.NoError(t, err)

	// Create a product
	w := doJSON(t, router, http.MethodPost, "/api/v1/products", map[string]any{
		"code":       "CE",
		"name":       "Cheese",
		"base_price": 5.95,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Attach a packaging option
	w = doJSON(t, router, http.MethodPost, "/api/v1/packaging-options", map[string]any{
		"product_code": "CE",
		"bundle_size":  5,
		"bundle_price": 20.95,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Order 7 items: one bundle of 5 plus two single items
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", map[string]any{
		"items": []map[string]any{
			{"product_code": "CE", "quantity": 7},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data dto.OrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.OrderID)
	assert.Equal(t, "32.85", created.Data.TotalPrice.String())
	assert.Equal(t, 3, created.Data.TotalPackages)
	require.Len(t, created.Data.Products, 1)

	product := created.Data.Products[0]
	assert.Equal(t, "CE", product.ProductCode)
	assert.Equal(t, "Cheese", product.ProductName)
	assert.Equal(t, 7, product.QuantityOrdered)
	require.Len(t, product.Packages, 2)
	assert.Equal(t, "1 package of 5 items ($20.95 each)", product.Packages[0].Description)
	assert.Equal(t, "2 packages of 1 item ($5.95 each)", product.Packages[1].Description)

	// Reading the order back yields the same breakdown
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/"+created.Data.OrderID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loaded struct {
		Data dto.OrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, created.Data.OrderID, loaded.Data.OrderID)
	assert.Equal(t, created.Data.TotalPrice, loaded.Data.TotalPrice)
	assert.Equal(t, created.Data.TotalPackages, loaded.Data.TotalPackages)
	assert.Equal(t, created.Data.Products, loaded.Data.Products)
}

func TestApp_CatalogFlow_Integration(t *testing.T) {
	t.Parallel()

	router, err := InitializeApp(integrationConfig(t))
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/v1/products", map[string]any{
		"code":       "HM",
		"name":       "Ham",
		"base_price": 3.00,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate code conflicts
	w = doJSON(t, router, http.MethodPost, "/api/v1/products", map[string]any{
		"code":       "hm",
		"name":       "Ham again",
		"base_price": 3.50,
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Option for an unknown product is rejected
	w = doJSON(t, router, http.MethodPost, "/api/v1/packaging-options", map[string]any{
		"product_code": "NOPE",
		"bundle_size":  3,
		"bundle_price": 9.00,
	})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// Deleting the product cascades to its options
	w = doJSON(t, router, http.MethodPost, "/api/v1/packaging-options", map[string]any{
		"product_code": "HM",
		"bundle_size":  3,
		"bundle_price": 8.00,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodDelete, "/api/v1/products/HM", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/packaging-options?product_code=HM", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}
