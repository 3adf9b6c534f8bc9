package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/usecase"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// ListProducts handles GET /api/products?category=<id>&is_active=<bool>
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, ok := productFilterFromQuery(w, r)
	if !ok {
		return
	}

	products, err := h.service.ListProducts(r.Context(), paginationFromQuery(r), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", product)
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.ProductRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated", product)
}

// PatchProduct handles PATCH /api/products/{id}
func (h *ProductHandler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.ProductPatchRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	product, err := h.service.PatchProduct(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch product")
		return
	}

	utils.ResponseSuccess(w, "Product updated", product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted", nil)
}

// productFilterFromQuery parses the list filters. Any is_active value other
// than "true" (case-insensitive) selects inactive products.
func productFilterFromQuery(w http.ResponseWriter, r *http.Request) (entity.ProductFilter, bool) {
	var filter entity.ProductFilter
	query := r.URL.Query()

	if query.Has("category") {
		categoryID, err := strconv.ParseInt(query.Get("category"), 10, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{
				"category": "category must be an integer",
			})
			return filter, false
		}
		filter.CategoryID = &categoryID
	}

	if query.Has("is_active") {
		active := strings.EqualFold(query.Get("is_active"), "true")
		filter.IsActive = &active
	}

	return filter, true
}
