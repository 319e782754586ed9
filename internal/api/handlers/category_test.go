package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tiaraclaudya/inventory-service/internal/api/handlers"
	appErrors "github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	"github.com/tiaraclaudya/inventory-service/internal/services/mocks"
	"github.com/tiaraclaudya/inventory-service/internal/testutils"
)

func TestListCategories(t *testing.T) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	t.Run("Success - Categories Listed", func(t *testing.T) {
		// Arrange
		categories := []*models.Category{
			{ID: 3, Name: "Electronics"},
			{ID: 4, Name: "Office"},
		}
		mockCategoryService.On("ListCategories", mock.Anything).Return(categories, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/categories", nil, nil)

		// Act
		categoryHandler.ListCategories().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)
		require.NotNil(t, env.Count)
		assert.Equal(t, 2, *env.Count)
		mockCategoryService.AssertExpectations(t)
	})
}

func TestListCategoriesWithCount(t *testing.T) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	t.Run("Success - Counts Included", func(t *testing.T) {
		// Arrange
		categories := []*models.CategoryWithCount{
			{Category: models.Category{ID: 3, Name: "Electronics"}, ProductCount: 12},
		}
		mockCategoryService.On("ListWithProductCount", mock.Anything).Return(categories, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/categories/with-count", nil, nil)

		// Act
		categoryHandler.ListCategoriesWithCount().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)

		var got []struct {
			Name         string `json:"name"`
			ProductCount int    `json:"product_count"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, 12, got[0].ProductCount)
		mockCategoryService.AssertExpectations(t)
	})
}

func TestGetCategory(t *testing.T) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	t.Run("Success - Category Found", func(t *testing.T) {
		// Arrange
		category := &models.Category{ID: 3, Name: "Electronics"}
		mockCategoryService.On("GetCategoryByID", mock.Anything, int64(3)).Return(category, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/categories/3", nil, map[string]string{"id": "3"})

		// Act
		categoryHandler.GetCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)
		mockCategoryService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/categories/abc", nil, map[string]string{"id": "abc"})

		// Act
		categoryHandler.GetCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Invalid category id", env.Message)
		mockCategoryService.AssertNotCalled(t, "GetCategoryByID")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockCategoryService.On("GetCategoryByID", mock.Anything, int64(999)).
			Return(nil, appErrors.NotFoundError("Category not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/categories/999", nil, map[string]string{"id": "999"})

		// Act
		categoryHandler.GetCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Category not found", env.Message)
		mockCategoryService.AssertExpectations(t)
	})
}

func TestCreateCategoryHandler(t *testing.T) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	t.Run("Success - Category Created", func(t *testing.T) {
		// Arrange
		created := &models.Category{ID: 9, Name: "Networking", Description: "Routers and switches"}
		mockCategoryService.On("CreateCategory", mock.Anything, mock.MatchedBy(func(req *models.CreateCategoryRequest) bool {
			return req.Name == "Networking"
		})).Return(created, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/categories",
			bytes.NewReader([]byte(`{"name":"Networking","description":"Routers and switches"}`)), nil)

		// Act
		categoryHandler.CreateCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Category created successfully", env.Message)
		mockCategoryService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Name", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/categories",
			bytes.NewReader([]byte(`{"description":"Nameless"}`)), nil)

		// Act
		categoryHandler.CreateCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Category name is required", env.Message)
		mockCategoryService.AssertNotCalled(t, "CreateCategory")
	})

	t.Run("Failure - Duplicate Name", func(t *testing.T) {
		// Arrange
		mockCategoryService.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.CreateCategoryRequest")).
			Return(nil, appErrors.ConflictError("Category name already exists")).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPost, "/api/categories",
			bytes.NewReader([]byte(`{"name":"Electronics"}`)), nil)

		// Act
		categoryHandler.CreateCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Category name already exists", env.Message)
		mockCategoryService.AssertExpectations(t)
	})
}

func TestUpdateCategoryHandler(t *testing.T) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	t.Run("Success - Category Updated", func(t *testing.T) {
		// Arrange
		updated := &models.Category{ID: 3, Name: "Electronics", Description: "Consumer electronics"}
		mockCategoryService.On("UpdateCategory", mock.Anything, int64(3), mock.AnythingOfType("*models.UpdateCategoryRequest")).
			Return(updated, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPut, "/api/categories/3",
			bytes.NewReader([]byte(`{"description":"Consumer electronics"}`)), map[string]string{"id": "3"})

		// Act
		categoryHandler.UpdateCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Category updated successfully", env.Message)
		mockCategoryService.AssertExpectations(t)
	})

	t.Run("Failure - Bad JSON", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodPut, "/api/categories/3",
			bytes.NewReader([]byte("{invalid json")), map[string]string{"id": "3"})

		// Act
		categoryHandler.UpdateCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCategoryService.AssertNotCalled(t, "UpdateCategory")
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	t.Run("Success - Category Deleted", func(t *testing.T) {
		// Arrange
		mockCategoryService.On("DeleteCategory", mock.Anything, int64(3)).Return(nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodDelete, "/api/categories/3", nil, map[string]string{"id": "3"})

		// Act
		categoryHandler.DeleteCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Category deleted successfully", env.Message)
		mockCategoryService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockCategoryService.On("DeleteCategory", mock.Anything, int64(999)).
			Return(appErrors.NotFoundError("Category not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodDelete, "/api/categories/999", nil, map[string]string{"id": "999"})

		// Act
		categoryHandler.DeleteCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockCategoryService.AssertExpectations(t)
	})
}
