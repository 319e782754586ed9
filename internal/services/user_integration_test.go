package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	repoMocks "github.com/tiaraclaudya/inventory-service/internal/repositories/mocks"
	service "github.com/tiaraclaudya/inventory-service/internal/services"
	"github.com/tiaraclaudya/inventory-service/pkg/userservice"
	clientMocks "github.com/tiaraclaudya/inventory-service/pkg/userservice/mocks"
)

func TestFetchUsers(t *testing.T) {
	// Arrange
	mockClient := new(clientMocks.Client)
	mockRepo := new(repoMocks.ProductRepository)
	userService := service.NewUserIntegrationService(mockClient, mockRepo)
	ctx := context.Background()

	t.Run("Success - Users Relayed", func(t *testing.T) {
		// Arrange
		count := 2
		resp := &userservice.Response{Success: true, Count: &count, Data: json.RawMessage(`[{"id":"u1"},{"id":"u2"}]`)}
		mockClient.On("ListUsers", mock.Anything).Return(resp, nil).Once()

		// Act
		result, err := userService.FetchUsers(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, resp, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Service Unreachable", func(t *testing.T) {
		// Arrange
		transportErr := &userservice.APIError{Err: errors.New("connection refused")}
		mockClient.On("ListUsers", mock.Anything).Return(nil, transportErr).Once()

		// Act
		result, err := userService.FetchUsers(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
		assert.Equal(t, "Make sure User Service is reachable", appErr.Suggestion)
		mockClient.AssertExpectations(t)
	})
}

func TestFetchUser(t *testing.T) {
	// Arrange
	mockClient := new(clientMocks.Client)
	mockRepo := new(repoMocks.ProductRepository)
	userService := service.NewUserIntegrationService(mockClient, mockRepo)
	ctx := context.Background()

	t.Run("Success - User Relayed", func(t *testing.T) {
		// Arrange
		resp := &userservice.Response{Success: true, Data: json.RawMessage(`{"id":"u1","name":"Tiara"}`)}
		mockClient.On("GetUser", mock.Anything, "u1").Return(resp, nil).Once()

		// Act
		result, err := userService.FetchUser(ctx, "u1")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, resp, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Remote 404 Stays 404", func(t *testing.T) {
		// Arrange
		apiErr := &userservice.APIError{StatusCode: http.StatusNotFound, Body: &userservice.Response{Success: false}}
		mockClient.On("GetUser", mock.Anything, "ghost").Return(nil, apiErr).Once()

		// Act
		result, err := userService.FetchUser(ctx, "ghost")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "User not found in User Service", appErr.Message)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Remote 500 Becomes Upstream Error", func(t *testing.T) {
		// Arrange
		apiErr := &userservice.APIError{StatusCode: http.StatusInternalServerError}
		mockClient.On("GetUser", mock.Anything, "u1").Return(nil, apiErr).Once()

		// Act
		result, err := userService.FetchUser(ctx, "u1")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
		assert.Equal(t, "Failed to fetch user from User Service", appErr.Message)
		mockClient.AssertExpectations(t)
	})
}

func TestCreateUser(t *testing.T) {
	// Arrange
	mockClient := new(clientMocks.Client)
	mockRepo := new(repoMocks.ProductRepository)
	userService := service.NewUserIntegrationService(mockClient, mockRepo)
	ctx := context.Background()

	body := json.RawMessage(`{"name":"Tiara","email":"tiara@example.com"}`)

	t.Run("Success - User Created", func(t *testing.T) {
		// Arrange
		resp := &userservice.Response{Success: true, Data: json.RawMessage(`{"id":"u3"}`)}
		mockClient.On("CreateUser", mock.Anything, body).Return(resp, nil).Once()

		// Act
		result, err := userService.CreateUser(ctx, body)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, resp, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Remote Validation Errors Relayed", func(t *testing.T) {
		// Arrange
		remoteErrors := json.RawMessage(`[{"field":"email","message":"Invalid email"}]`)
		apiErr := &userservice.APIError{
			StatusCode: http.StatusBadRequest,
			Body:       &userservice.Response{Success: false, Errors: remoteErrors},
		}
		mockClient.On("CreateUser", mock.Anything, body).Return(nil, apiErr).Once()

		// Act
		result, err := userService.CreateUser(ctx, body)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Validation error in User Service", appErr.Message)
		assert.Equal(t, remoteErrors, appErr.Errors, "The remote error list should ride along untouched")
		mockClient.AssertExpectations(t)
	})
}

func TestDeleteUser(t *testing.T) {
	// Arrange
	mockClient := new(clientMocks.Client)
	mockRepo := new(repoMocks.ProductRepository)
	userService := service.NewUserIntegrationService(mockClient, mockRepo)
	ctx := context.Background()

	t.Run("Success - User Deleted", func(t *testing.T) {
		// Arrange
		resp := &userservice.Response{Success: true, Message: "User deleted"}
		mockClient.On("DeleteUser", mock.Anything, "u1").Return(resp, nil).Once()

		// Act
		result, err := userService.DeleteUser(ctx, "u1")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, resp, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Remote 404 Stays 404", func(t *testing.T) {
		// Arrange
		apiErr := &userservice.APIError{StatusCode: http.StatusNotFound}
		mockClient.On("DeleteUser", mock.Anything, "ghost").Return(nil, apiErr).Once()

		// Act
		result, err := userService.DeleteUser(ctx, "ghost")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockClient.AssertExpectations(t)
	})
}

func TestGetProductCreator(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Product And Creator Joined", func(t *testing.T) {
		// Arrange
		// The product half of the composite comes from the live repository
		// row, not a canned placeholder.
		mockClient := new(clientMocks.Client)
		mockRepo := new(repoMocks.ProductRepository)
		userService := service.NewUserIntegrationService(mockClient, mockRepo)

		product := &models.Product{ID: 7, ProductCode: "KB-001", Name: "Mechanical Keyboard"}
		creator := json.RawMessage(`{"id":"u1","name":"Tiara"}`)

		mockRepo.On("FindByID", mock.Anything, int64(7)).Return(product, nil).Once()
		mockClient.On("GetUser", mock.Anything, "u1").Return(&userservice.Response{Success: true, Data: creator}, nil).Once()

		// Act
		result, err := userService.GetProductCreator(ctx, 7, "u1")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, product, result.Product)
		assert.Equal(t, creator, result.Creator)
		mockRepo.AssertExpectations(t)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Product Missing", func(t *testing.T) {
		// Arrange
		mockClient := new(clientMocks.Client)
		mockRepo := new(repoMocks.ProductRepository)
		userService := service.NewUserIntegrationService(mockClient, mockRepo)

		mockRepo.On("FindByID", mock.Anything, int64(999)).Return(nil, nil).Once()

		// Act
		result, err := userService.GetProductCreator(ctx, 999, "u1")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Product not found", appErr.Message)
		mockClient.AssertNotCalled(t, "GetUser")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Creator Missing", func(t *testing.T) {
		// Arrange
		mockClient := new(clientMocks.Client)
		mockRepo := new(repoMocks.ProductRepository)
		userService := service.NewUserIntegrationService(mockClient, mockRepo)

		product := &models.Product{ID: 7, ProductCode: "KB-001"}
		apiErr := &userservice.APIError{StatusCode: http.StatusNotFound}

		mockRepo.On("FindByID", mock.Anything, int64(7)).Return(product, nil).Once()
		mockClient.On("GetUser", mock.Anything, "ghost").Return(nil, apiErr).Once()

		// Act
		result, err := userService.GetProductCreator(ctx, 7, "ghost")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "User ghost not found in User Service", appErr.Message)
		mockRepo.AssertExpectations(t)
		mockClient.AssertExpectations(t)
	})
}

func TestCheckHealth(t *testing.T) {
	// Arrange
	mockClient := new(clientMocks.Client)
	mockRepo := new(repoMocks.ProductRepository)
	userService := service.NewUserIntegrationService(mockClient, mockRepo)
	ctx := context.Background()

	t.Run("Success - Upstream Healthy", func(t *testing.T) {
		// Arrange
		resp := &userservice.Response{Success: true, Status: "OK", Service: "User Service"}
		mockClient.On("Health", mock.Anything).Return(resp, nil).Once()

		// Act
		result, err := userService.CheckHealth(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, resp, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Upstream Down", func(t *testing.T) {
		// Arrange
		transportErr := &userservice.APIError{Err: errors.New("connection refused")}
		mockClient.On("Health", mock.Anything).Return(nil, transportErr).Once()

		// Act
		result, err := userService.CheckHealth(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeUnavailable, appErr.Code)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.StatusCode)
		mockClient.AssertExpectations(t)
	})
}
