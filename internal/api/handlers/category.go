package handlers

import (
	"log/slog"
	"net/http"

	appErrors "github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	service "github.com/tiaraclaudya/inventory-service/internal/services"
	"github.com/tiaraclaudya/inventory-service/internal/utils"
	"github.com/tiaraclaudya/inventory-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())

		if err != nil {
			slog.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.List(w, len(categories), categories)

	}
}

func (h *CategoryHandler) ListCategoriesWithCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListWithProductCount(r.Context())

		if err != nil {
			slog.Error("Failed to fetch categories with count", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.OK(w, categories)

	}
}

func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid category id"))
			return
		}

		category, err := h.categoryService.GetCategoryByID(r.Context(), id)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.OK(w, category)

	}
}

func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateCategoryRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		if req.Name == "" {
			response.Error(w, appErrors.ValidationError("Category name is required"))
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)

		if err != nil {
			slog.Warn("Category creation rejected", slog.String("name", req.Name), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Category created successfully", slog.Int64("categoryId", category.ID))
		response.Created(w, "Category created successfully", category)

	}
}

func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid category id"))
			return
		}

		var req models.UpdateCategoryRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)

		if err != nil {
			slog.Warn("Category update rejected", slog.Int64("categoryId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Category updated successfully", slog.Int64("categoryId", id))
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "Category updated successfully",
			Data:    category,
		})

	}
}

func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid category id"))
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			slog.Warn("Category deletion rejected", slog.Int64("categoryId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Category deleted", slog.Int64("categoryId", id))
		response.Message(w, "Category deleted successfully")

	}
}
