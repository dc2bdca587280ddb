package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/internal/domain/model"
	"github.com/packline/packaging-service/internal/mocks"
	"github.com/packline/packaging-service/internal/money"
	"github.com/packline/packaging-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newOptionRouter(optionRepo *mocks.MockPackagingOptionRepositoryInterface, productRepo *mocks.MockProductRepositoryInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewPackagingOptionHandler(service.NewPackagingOptionService(optionRepo, productRepo))
	router.POST("/packaging-options", handler.CreateOption)
	router.GET("/packaging-options", handler.ListOptions)
	router.GET("/packaging-options/:id", handler.GetOption)
	router.PUT("/packaging-options/:id", handler.UpdateOption)
	router.DELETE("/packaging-options/:id", handler.DeleteOption)
	return router
}

func TestPackagingOptionHandler_CreateOption(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockPackagingOptionRepositoryInterface, *mocks.MockProductRepositoryInterface)
		expectedStatus int
	}{
		{
			name: "successful create",
			requestBody: map[string]interface{}{
				"product_code": "CE", "bundle_size": 5, "bundle_price": 20.95,
			},
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface, productRepo *mocks.MockProductRepositoryInterface) {
				productRepo.On("ExistsByCode", mock.Anything, "CE").Return(true, nil)
				optionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown product",
			requestBody: map[string]interface{}{
				"product_code": "NOPE", "bundle_size": 5, "bundle_price": 20.95,
			},
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface, productRepo *mocks.MockProductRepositoryInterface) {
				productRepo.On("ExistsByCode", mock.Anything, "NOPE").Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "bundle size below minimum",
			requestBody: map[string]interface{}{
				"product_code": "CE", "bundle_size": 1, "bundle_price": 5.95,
			},
			setupMocks:     func(*mocks.MockPackagingOptionRepositoryInterface, *mocks.MockProductRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
			productRepo := new(mocks.MockProductRepositoryInterface)
			tt.setupMocks(optionRepo, productRepo)
			router := newOptionRouter(optionRepo, productRepo)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/packaging-options", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			optionRepo.AssertExpectations(t)
		})
	}
}

func TestPackagingOptionHandler_GetOption(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockPackagingOptionRepositoryInterface)
		expectedStatus int
	}{
		{
			name: "found",
			path: "/packaging-options/" + id.Hex(),
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface) {
				optionRepo.On("FindByID", mock.Anything, id).
					Return(&model.PackagingOption{ID: id, ProductCode: "CE", BundleSize: 5, BundlePrice: money.MustParse("20.95")}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/packaging-options/" + id.Hex(),
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface) {
				optionRepo.On("FindByID", mock.Anything, id).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			path:           "/packaging-options/not-a-hex-id",
			setupMocks:     func(*mocks.MockPackagingOptionRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
			productRepo := new(mocks.MockProductRepositoryInterface)
			tt.setupMocks(optionRepo)
			router := newOptionRouter(optionRepo, productRepo)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPackagingOptionHandler_ListOptions(t *testing.T) {
	t.Run("all options", func(t *testing.T) {
		optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
		productRepo := new(mocks.MockProductRepositoryInterface)
		optionRepo.On("FindAll", mock.Anything).Return([]model.PackagingOption{
			{ID: primitive.NewObjectID(), ProductCode: "CE", BundleSize: 5, BundlePrice: money.MustParse("20.95")},
		}, nil)
		router := newOptionRouter(optionRepo, productRepo)

		req := httptest.NewRequest(http.MethodGet, "/packaging-options", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("filtered by product code", func(t *testing.T) {
		optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
		productRepo := new(mocks.MockProductRepositoryInterface)
		productRepo.On("ExistsByCode", mock.Anything, "CE").Return(true, nil)
		optionRepo.On("FindByProductCode", mock.Anything, "CE").Return([]model.PackagingOption{}, nil)
		router := newOptionRouter(optionRepo, productRepo)

		req := httptest.NewRequest(http.MethodGet, "/packaging-options?product_code=ce", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		optionRepo.AssertCalled(t, "FindByProductCode", mock.Anything, "CE")
	})

	t.Run("filter by unknown product", func(t *testing.T) {
		optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
		productRepo := new(mocks.MockProductRepositoryInterface)
		productRepo.On("ExistsByCode", mock.Anything, "NOPE").Return(false, nil)
		router := newOptionRouter(optionRepo, productRepo)

		req := httptest.NewRequest(http.MethodGet, "/packaging-options?product_code=nope", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPackagingOptionHandler_UpdateOption(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockPackagingOptionRepositoryInterface, *mocks.MockProductRepositoryInterface)
		expectedStatus int
	}{
		{
			name: "successful update",
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface, productRepo *mocks.MockProductRepositoryInterface) {
				productRepo.On("ExistsByCode", mock.Anything, "CE").Return(true, nil)
				optionRepo.On("Update", mock.Anything, mock.Anything).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown option",
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface, productRepo *mocks.MockProductRepositoryInterface) {
				productRepo.On("ExistsByCode", mock.Anything, "CE").Return(true, nil)
				optionRepo.On("Update", mock.Anything, mock.Anything).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown product",
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface, productRepo *mocks.MockProductRepositoryInterface) {
				productRepo.On("ExistsByCode", mock.Anything, "CE").Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
			productRepo := new(mocks.MockProductRepositoryInterface)
			tt.setupMocks(optionRepo, productRepo)
			router := newOptionRouter(optionRepo, productRepo)

			body, _ := json.Marshal(map[string]interface{}{
				"product_code": "CE", "bundle_size": 3, "bundle_price": 13.95,
			})
			req := httptest.NewRequest(http.MethodPut, "/packaging-options/"+id.Hex(), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPackagingOptionHandler_DeleteOption(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockPackagingOptionRepositoryInterface)
		expectedStatus int
	}{
		{
			name: "successful delete",
			path: "/packaging-options/" + id.Hex(),
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface) {
				optionRepo.On("DeleteByID", mock.Anything, id).Return(true, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "unknown id",
			path: "/packaging-options/" + id.Hex(),
			setupMocks: func(optionRepo *mocks.MockPackagingOptionRepositoryInterface) {
				optionRepo.On("DeleteByID", mock.Anything, id).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			path:           "/packaging-options/xyz",
			setupMocks:     func(*mocks.MockPackagingOptionRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optionRepo := new(mocks.MockPackagingOptionRepositoryInterface)
			productRepo := new(mocks.MockProductRepositoryInterface)
			tt.setupMocks(optionRepo)
			router := newOptionRouter(optionRepo, productRepo)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
