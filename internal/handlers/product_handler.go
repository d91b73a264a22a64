package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"productcatalog/internal/models"
	"productcatalog/internal/repository"
	"productcatalog/internal/service"

	"github.com/go-chi/chi/v5"
)

// Defaults applied when page/limit query parameters are absent or invalid.
const (
	defaultPage  = 1
	defaultLimit = 5
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
// Supports optional category, page and limit query parameters. The category
// filter is applied before pagination and total reports the filtered count.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)

	result, err := h.service.ListProducts(ctx, category, page, limit)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// CreateProduct handles POST /api/products
// Fields missing from the body are stored as zero values; the catalog does
// not validate product fields.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.logger.Warn("failed to decode create request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	created, err := h.service.CreateProduct(ctx, product)
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		WriteError(w, http.StatusInternalServerError, "Error creating product", h.logger)
		return
	}

	h.logger.Info("product created", "productId", created.ID)
	WriteJSON(w, http.StatusCreated, created, h.logger)
}

// UpdateProduct handles PUT /api/products/{id}
// The record is fully replaced: fields omitted from the body become zero
// values, never retained from the prior record. The id is preserved.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "id")

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.logger.Warn("failed to decode update request", "productId", productID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	updated, err := h.service.UpdateProduct(ctx, productID, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to update product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, updated, h.logger)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to delete product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	h.logger.Info("product deleted", "productId", productID)
	w.WriteHeader(http.StatusNoContent)
}

// SearchProducts handles GET /api/products/search/{name}
// Returns every product whose name contains the given substring,
// case-insensitively. No match yields an empty array, not an error.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	products, err := h.service.SearchProducts(ctx, name)
	if err != nil {
		h.logger.Error("failed to search products", "name", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.GetStats(ctx)
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, stats, h.logger)
}

// queryInt reads a positive integer query parameter, falling back to the
// default when the parameter is absent, non-numeric, or less than one.
func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
