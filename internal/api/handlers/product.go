package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	appErrors "github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/tiaraclaudya/inventory-service/internal/models"
	service "github.com/tiaraclaudya/inventory-service/internal/services"
	"github.com/tiaraclaudya/inventory-service/internal/utils"
	"github.com/tiaraclaudya/inventory-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context())

		if err != nil {
			slog.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.List(w, len(products), products)

	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid product id"))
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.OK(w, product)

	}
}

func (h *ProductHandler) GetProductByCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		code := r.PathValue("code")

		product, err := h.productService.GetProductByCode(r.Context(), code)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.OK(w, product)

	}
}

// for eg: GET /api/product/search?q=laptop
func (h *ProductHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query().Get("q")

		if query == "" {
			response.Error(w, appErrors.ValidationError("Search query is required"))
			return
		}

		products, err := h.productService.SearchProducts(r.Context(), query)

		if err != nil {
			slog.Error("Failed to search products", slog.String("query", query), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		count := len(products)
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Count:   &count,
			Query:   query,
			Data:    products,
		})

	}
}

func (h *ProductHandler) ListProductsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categoryID, err := parseID(r, "categoryId")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid category id"))
			return
		}

		products, err := h.productService.ListByCategory(r.Context(), categoryID)

		if err != nil {
			response.Error(w, err)
			return
		}

		count := len(products)
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success:    true,
			Count:      &count,
			CategoryID: &categoryID,
			Data:       products,
		})

	}
}

// for eg: GET /api/product/low-stock?threshold=5, default threshold 10
func (h *ProductHandler) ListLowStockProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		threshold := service.DefaultLowStockThreshold

		if raw := r.URL.Query().Get("threshold"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				response.Error(w, appErrors.ValidationError("Threshold must be a valid non-negative number"))
				return
			}

			threshold = parsed
		}

		products, err := h.productService.ListLowStock(r.Context(), threshold)

		if err != nil {
			response.Error(w, err)
			return
		}

		count := len(products)
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success:   true,
			Count:     &count,
			Threshold: &threshold,
			Data:      products,
		})

	}
}

// for eg: GET /api/product/price-range?min=100&max=500, both bounds required
func (h *ProductHandler) ListProductsByPriceRange() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		minRaw := r.URL.Query().Get("min")
		maxRaw := r.URL.Query().Get("max")

		if minRaw == "" || maxRaw == "" {
			response.Error(w, appErrors.ValidationError("Min and max price are required"))
			return
		}

		minPrice, minErr := strconv.ParseFloat(minRaw, 64)
		maxPrice, maxErr := strconv.ParseFloat(maxRaw, 64)

		if minErr != nil || maxErr != nil {
			response.Error(w, appErrors.ValidationError("Min and max must be valid numbers"))
			return
		}

		products, err := h.productService.ListByPriceRange(r.Context(), minPrice, maxPrice)

		if err != nil {
			response.Error(w, err)
			return
		}

		count := len(products)
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success:    true,
			Count:      &count,
			PriceRange: models.PriceRange{Min: minPrice, Max: maxPrice},
			Data:       products,
		})

	}
}

func (h *ProductHandler) GetStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.productService.GetStatistics(r.Context())

		if err != nil {
			slog.Error("Failed to fetch statistics", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.OK(w, stats)

	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		// Decode the request body
		var req models.CreateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		if req.ProductCode == "" || req.Name == "" || req.Price == nil {
			response.Error(w, appErrors.ValidationError("Product code, name, and price are required"))
			return
		}

		// Validate Input
		if errs := utils.ValidateStruct(h.validator, &req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)

		if err != nil {
			slog.Warn("Product creation rejected", slog.String("productCode", req.ProductCode), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product created successfully", slog.Int64("productId", product.ID), slog.String("productCode", product.ProductCode))
		response.Created(w, "Product created successfully", product)

	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid product id"))
			return
		}

		// Decode the request body
		var req models.UpdateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		// Validate Input
		if errs := utils.ValidateStruct(h.validator, &req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)

		if err != nil {
			slog.Warn("Product update rejected", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product updated successfully", slog.Int64("productId", product.ID))
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "Product updated successfully",
			Data:    product,
		})

	}
}

func (h *ProductHandler) UpdateProductStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid product id"))
			return
		}

		var req models.UpdateStockRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		if req.StockChange == nil {
			response.Error(w, appErrors.ValidationError("Stock change value is required"))
			return
		}

		product, err := h.productService.UpdateStock(r.Context(), id, &req)

		if err != nil {
			slog.Warn("Stock update rejected", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product stock updated", slog.Int64("productId", id), slog.Int("stock", product.Stock))
		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "Product stock updated successfully",
			Data:    product,
		})

	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := parseID(r, "id")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid product id"))
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			slog.Warn("Product deletion rejected", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Product deleted", slog.Int64("productId", id))
		response.Message(w, "Product deleted successfully")

	}
}
