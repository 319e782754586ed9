package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	appErrors "github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	repository "github.com/tiaraclaudya/inventory-service/internal/repositories"
	"github.com/tiaraclaudya/inventory-service/pkg/userservice"
)

const unreachableSuggestion = "Make sure User Service is reachable"

// UserIntegrationService relays calls to the external user service and maps
// its faults onto this service's error taxonomy: remote 404 stays 404,
// remote 400 stays 400 with the relayed error list, everything else
// (network and timeout included) becomes an upstream 500.
type UserIntegrationService interface {
	FetchUsers(ctx context.Context) (*userservice.Response, error)
	FetchUser(ctx context.Context, id string) (*userservice.Response, error)
	SearchUsers(ctx context.Context, query string) (*userservice.Response, error)
	CreateUser(ctx context.Context, body json.RawMessage) (*userservice.Response, error)
	UpdateUser(ctx context.Context, id string, body json.RawMessage) (*userservice.Response, error)
	DeleteUser(ctx context.Context, id string) (*userservice.Response, error)
	GetProductCreator(ctx context.Context, productID int64, userID string) (*models.ProductCreator, error)
	CheckHealth(ctx context.Context) (*userservice.Response, error)
}

type userIntegrationService struct {
	client      userservice.Client
	productRepo repository.ProductRepository
}

func NewUserIntegrationService(client userservice.Client, productRepo repository.ProductRepository) UserIntegrationService {
	return &userIntegrationService{client: client, productRepo: productRepo}
}

// translate maps a client error to an AppError. notFoundMessage is used for
// remote 404s; empty means a 404 is not expected for the call and falls
// through to the generic upstream failure.
func translate(err error, notFoundMessage, failMessage string) error {
	var apiErr *userservice.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound && notFoundMessage != "":
			return appErrors.NotFoundError(notFoundMessage)
		case apiErr.StatusCode == http.StatusBadRequest:
			validationErr := appErrors.ValidationError("Validation error in User Service")
			if apiErr.Body != nil && apiErr.Body.Errors != nil {
				validationErr = validationErr.WithErrors(apiErr.Body.Errors)
			}

			return validationErr
		}
	}

	return appErrors.UpstreamError(failMessage).
		WithSuggestion(unreachableSuggestion).
		WithError(err)
}

func (s *userIntegrationService) FetchUsers(ctx context.Context) (*userservice.Response, error) {

	resp, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, translate(err, "", "Failed to fetch users from User Service")
	}

	return resp, nil
}

func (s *userIntegrationService) FetchUser(ctx context.Context, id string) (*userservice.Response, error) {

	resp, err := s.client.GetUser(ctx, id)
	if err != nil {
		return nil, translate(err, "User not found in User Service", "Failed to fetch user from User Service")
	}

	return resp, nil
}

func (s *userIntegrationService) SearchUsers(ctx context.Context, query string) (*userservice.Response, error) {

	resp, err := s.client.SearchUsers(ctx, query)
	if err != nil {
		return nil, translate(err, "", "Failed to search users in User Service")
	}

	return resp, nil
}

func (s *userIntegrationService) CreateUser(ctx context.Context, body json.RawMessage) (*userservice.Response, error) {

	resp, err := s.client.CreateUser(ctx, body)
	if err != nil {
		return nil, translate(err, "", "Failed to create user in User Service")
	}

	return resp, nil
}

func (s *userIntegrationService) UpdateUser(ctx context.Context, id string, body json.RawMessage) (*userservice.Response, error) {

	resp, err := s.client.UpdateUser(ctx, id, body)
	if err != nil {
		return nil, translate(err, "User not found in User Service", "Failed to update user in User Service")
	}

	return resp, nil
}

func (s *userIntegrationService) DeleteUser(ctx context.Context, id string) (*userservice.Response, error) {

	resp, err := s.client.DeleteUser(ctx, id)
	if err != nil {
		return nil, translate(err, "User not found in User Service", "Failed to delete user in User Service")
	}

	return resp, nil
}

// GetProductCreator joins a locally stored product with its creator fetched
// remotely. The product side reads the real repository row.
func (s *userIntegrationService) GetProductCreator(ctx context.Context, productID int64, userID string) (*models.ProductCreator, error) {

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, appErrors.NotFoundError("Product not found")
	}

	userResp, err := s.client.GetUser(ctx, userID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("User %s not found in User Service", userID), "Failed to get user and product data")
	}

	return &models.ProductCreator{
		Product: product,
		Creator: userResp.Data,
	}, nil
}

func (s *userIntegrationService) CheckHealth(ctx context.Context) (*userservice.Response, error) {

	resp, err := s.client.Health(ctx)
	if err != nil {
		return nil, appErrors.UnavailableError("User Service is not available").WithError(err)
	}

	return resp, nil
}
