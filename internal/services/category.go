package service

import (
	"context"

	"github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	repository "github.com/tiaraclaudya/inventory-service/internal/repositories"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListWithProductCount(ctx context.Context) ([]*models.CategoryWithCount, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	if category == nil {
		return nil, errors.NotFoundError("Category not found")
	}

	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		// Store-level uniqueness must surface as a client error, not a
		// server error.
		if repository.IsUniqueViolation(err) {
			return nil, errors.ConflictError("Category name already exists")
		}

		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	if category == nil {
		return nil, errors.NotFoundError("Category not found")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.ConflictError("Category name already exists")
		}

		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	return category, nil
}

// DeleteCategory removes the category without touching products that
// reference it; they keep a dangling category_id.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	if category == nil {
		return errors.NotFoundError("Category not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete category").WithError(err)
	}

	return nil
}

func (s *categoryService) ListWithProductCount(ctx context.Context) ([]*models.CategoryWithCount, error) {

	categories, err := s.repo.FindWithProductCount(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}
