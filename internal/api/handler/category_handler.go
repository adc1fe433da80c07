package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ecommerce/internal/api/dto"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/service"
)

type CategoryHandler struct {
	categoryService service.ICategoryService
}

func NewCategoryHandler(categoryService service.ICategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorResponse(w, http.StatusBadRequest, "category name is required")
		return
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	created, err := h.categoryService.CreateCategory(r.Context(), category)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusCreated, convertCategoryToDTO(created))
}

// GetCategory GET /api/v1/categories/{categoryID}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUintParam(r, "categoryID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCategoryToDTO(category))
}

// GetAllCategories GET /api/v1/categories
func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAllCategories(r.Context())
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}

	res := make([]dto.CategoryResponseDTO, 0, len(categories))
	for i := range categories {
		res = append(res, convertCategoryToDTO(&categories[i]))
	}
	successResponse(w, http.StatusOK, res)
}

// UpdateCategory PUT /api/v1/categories/{categoryID}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUintParam(r, "categoryID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req dto.CategoryUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := &model.Category{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
	}
	updated, err := h.categoryService.UpdateCategory(r.Context(), category)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, convertCategoryToDTO(updated))
}

// DeleteCategory DELETE /api/v1/categories/{categoryID}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUintParam(r, "categoryID")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), categoryID); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	successResponse(w, http.StatusOK, nil)
}
