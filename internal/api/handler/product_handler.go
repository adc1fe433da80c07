package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct POST /api/v1/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorResponse(w, http.StatusBadRequest, "product name is required")
		return
	}
	if req.Price.IsNegative() {
		errorResponse(w, http.StatusBadRequest, "price cannot be negative")
		return
	}

	product := &model.Product{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		StockQuantity:      req.StockQuantity,
		DiscountPercentage: req.DiscountPercentage,
		ImageUrl:           req.ImageUrl,
		CategoryID:         req.CategoryId,
	}
	created, err := h.productService.CreateProduct(r.Context(), product)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusCreated, convertProductToDTO(created))
}

// GetProduct GET /api/v1/products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "productID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertProductToDTO(product))
}

// GetAllProducts GET /api/v1/products
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}

	res := make([]dto.ProductResponseDTO, 0, len(products))
	for i := range products {
		res = append(res, convertProductToDTO(&products[i]))
	}
	successResponse(w, http.StatusOK, res)
}

// GetProductsByCategory GET /api/v1/categories/{categoryID}/products
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUintParam(r, "categoryID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid category id")
		return
	}

	products, err := h.productService.GetProductsByCategory(r.Context(), categoryID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}

	res := make([]dto.ProductResponseDTO, 0, len(products))
	for i := range products {
		res = append(res, convertProductToDTO(&products[i]))
	}
	successResponse(w, http.StatusOK, res)
}

// UpdateProduct PUT /api/v1/products/{productID}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "productID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.ProductUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Price.IsNegative() {
		errorResponse(w, http.StatusBadRequest, "price cannot be negative")
		return
	}

	product := &model.Product{
		ProductID:          productID,
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		StockQuantity:      req.StockQuantity,
		DiscountPercentage: req.DiscountPercentage,
		ImageUrl:           req.ImageUrl,
		CategoryID:         req.CategoryId,
	}
	updated, err := h.productService.UpdateProduct(r.Context(), product)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertProductToDTO(updated))
}

// SetAvailability PATCH /api/v1/products/{productID}/availability
func (h *ProductHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "productID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.ProductAvailabilityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.productService.SetAvailability(r.Context(), productID, req.IsAvailable); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, nil)
}

// DeleteProduct DELETE /api/v1/products/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUintParam(r, "productID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, nil)
}
